package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slavikovics/EducationalSystem-sub000/handlers"
	"github.com/slavikovics/EducationalSystem-sub000/middleware"
)

func TestRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	tests := api.Group("/tests", middleware.Protected(), middleware.NotBlocked())
	tests.Get("", handlers.ListTests)
	tests.Get("/:testId", handlers.GetTest)
	tests.Post("/:testId/submit", handlers.SubmitTest)

	authoring := tests.Group("", middleware.TutorRequired())
	authoring.Post("", handlers.CreateTest)
	authoring.Put("/:testId/questions", handlers.UpdateTestQuestions)
	authoring.Delete("/:testId", handlers.DeleteTest)
	authoring.Get("/:testId/results", handlers.GetTestResults)

	api.Get("/results/me", middleware.Protected(), middleware.NotBlocked(), handlers.GetMyResults)
	api.Get("/certificates/me", middleware.Protected(), middleware.NotBlocked(), handlers.GetMyCertificates)

	app.Get("/ws/results", middleware.Protected(), middleware.TutorRequired(), handlers.WebSocketUpgrade, handlers.ResultsFeedSocket)
}

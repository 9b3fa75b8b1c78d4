package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slavikovics/EducationalSystem-sub000/handlers"
	"github.com/slavikovics/EducationalSystem-sub000/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
	users.Delete("/:userId", handlers.AdminDeleteUser)

	reviews := admin.Group("/reviews")
	reviews.Delete("/:reviewId", handlers.AdminDeleteReview)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slavikovics/EducationalSystem-sub000/handlers"
	"github.com/slavikovics/EducationalSystem-sub000/middleware"
)

func MaterialRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	materials := api.Group("/materials", middleware.Protected(), middleware.NotBlocked())
	materials.Get("", handlers.ListMaterials)
	materials.Get("/:materialId", handlers.GetMaterial)
	materials.Get("/:materialId/test", handlers.GetTestByMaterial)

	materials.Post("/:materialId/reviews", handlers.CreateReview)
	materials.Get("/:materialId/reviews", handlers.ListMaterialReviews)

	authoring := materials.Group("", middleware.TutorRequired())
	authoring.Post("", handlers.CreateMaterial)
	authoring.Put("/:materialId", handlers.UpdateMaterial)
	authoring.Delete("/:materialId", handlers.DeleteMaterial)
	authoring.Post("/:materialId/media", handlers.UploadMaterialMedia)
}

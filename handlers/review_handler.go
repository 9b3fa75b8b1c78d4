package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slavikovics/EducationalSystem-sub000/database"
	"github.com/slavikovics/EducationalSystem-sub000/middleware"
	"github.com/slavikovics/EducationalSystem-sub000/models"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

func CreateReview(c *fiber.Ctx) error {
	materialID := c.Params("materialId")
	var material models.Material
	if err := database.DB.First(&material, "id = ?", materialID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review := models.Review{
		MaterialID: material.ID,
		UserID:     middleware.UserID(c),
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func ListMaterialReviews(c *fiber.Ctx) error {
	materialID := c.Params("materialId")
	var material models.Material
	if err := database.DB.First(&material, "id = ?", materialID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	var reviews []models.Review
	if err := database.DB.Preload("User").Where("material_id = ?", material.ID).Order("created_at desc").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(reviews)
}

func AdminDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("reviewId")
	result := database.DB.Delete(&models.Review{}, "id = ?", reviewID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete review"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

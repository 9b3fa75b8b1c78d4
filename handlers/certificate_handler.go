package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slavikovics/EducationalSystem-sub000/database"
	"github.com/slavikovics/EducationalSystem-sub000/middleware"
	"github.com/slavikovics/EducationalSystem-sub000/models"
)

func GetMyCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	err := database.DB.
		Where("user_id = ?", middleware.UserID(c)).
		Order("issued_at desc").
		Find(&certificates).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(certificates)
}

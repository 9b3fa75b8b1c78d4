package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/slavikovics/EducationalSystem-sub000/configs"
	"github.com/slavikovics/EducationalSystem-sub000/database"
	"github.com/slavikovics/EducationalSystem-sub000/models"
)

// UploadMaterialMedia uploads a file to Cloudinary and appends the hosted
// URL to the material's media links.
func UploadMaterialMedia(c *fiber.Ctx) error {
	materialID := c.Params("materialId")

	var material models.Material
	if err := database.DB.Preload("Content").First(&material, "id = ?", materialID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	file, err := c.FormFile("media")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Media file is required."})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Media storage is not configured."})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "material_media",
		PublicID: fmt.Sprintf("material_%s_%s", materialID, uuid.NewString()),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file."})
	}

	material.Content.MediaLinks = append(material.Content.MediaLinks, uploadResult.SecureURL)
	if err := database.DB.Save(material.Content).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to attach media to material."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":         uploadResult.SecureURL,
		"media_links": material.Content.MediaLinks,
	})
}

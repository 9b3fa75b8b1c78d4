package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/slavikovics/EducationalSystem-sub000/database"
	"github.com/slavikovics/EducationalSystem-sub000/middleware"
	"github.com/slavikovics/EducationalSystem-sub000/models"
	"github.com/slavikovics/EducationalSystem-sub000/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MaterialRequest struct {
	Title      string   `json:"title" validate:"required,min=2"`
	Category   string   `json:"category" validate:"required,min=2"`
	Text       string   `json:"text" validate:"required"`
	MediaLinks []string `json:"media_links" validate:"omitempty,dive,url"`
}

func getOrCreateCategory(tx *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := tx.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	category = models.Category{Name: name}
	if err := tx.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func CreateMaterial(c *fiber.Ctx) error {
	var req MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var material models.Material
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		category, err := getOrCreateCategory(tx, req.Category)
		if err != nil {
			return err
		}
		material = models.Material{
			Title:       req.Title,
			CategoryID:  category.ID,
			CreatedByID: middleware.UserID(c),
			Content: &models.Content{
				Text:       req.Text,
				MediaLinks: datatypes.NewJSONSlice(req.MediaLinks),
			},
		}
		return tx.Create(&material).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create material"})
	}

	return c.Status(fiber.StatusCreated).JSON(material)
}

func ListMaterials(c *fiber.Ctx) error {
	var materials []models.Material
	query := database.DB.Preload("Category").Preload("Content").Order("id asc")
	if category := c.Query("category"); category != "" {
		query = query.Joins("JOIN categories ON categories.id = materials.category_id").
			Where("categories.name = ?", category)
	}
	if err := query.Find(&materials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(materials)
}

func GetMaterial(c *fiber.Ctx) error {
	materialID := c.Params("materialId")
	var material models.Material
	if err := database.DB.Preload("Category").Preload("Content").First(&material, "id = ?", materialID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}
	return c.JSON(material)
}

func UpdateMaterial(c *fiber.Ctx) error {
	materialID := c.Params("materialId")
	var material models.Material
	if err := database.DB.Preload("Content").First(&material, "id = ?", materialID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	var req MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		category, err := getOrCreateCategory(tx, req.Category)
		if err != nil {
			return err
		}
		material.Title = req.Title
		material.CategoryID = category.ID
		if err := tx.Save(&material).Error; err != nil {
			return err
		}
		material.Content.Text = req.Text
		material.Content.MediaLinks = datatypes.NewJSONSlice(req.MediaLinks)
		return tx.Save(material.Content).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update material"})
	}

	return c.JSON(material)
}

// DeleteMaterial removes the material with its content and reviews. The
// attached test, if any, goes through the test service so its questions and
// results are cleaned up the same way a direct test deletion would.
func DeleteMaterial(c *fiber.Ctx) error {
	materialID := c.Params("materialId")
	var material models.Material
	if err := database.DB.First(&material, "id = ?", materialID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	svc := testService()
	if test, err := svc.GetTestByMaterialID(material.ID); err == nil {
		if err := svc.DeleteTest(test.ID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attached test"})
		}
	} else if !errors.Is(err, services.ErrTestNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("material_id = ?", material.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("material_id = ?", material.ID).Delete(&models.Content{}).Error; err != nil {
			return err
		}
		return tx.Delete(&material).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete material"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

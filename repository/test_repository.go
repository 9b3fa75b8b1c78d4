package repository

import (
	"errors"

	"github.com/slavikovics/EducationalSystem-sub000/models"
	"github.com/slavikovics/EducationalSystem-sub000/services"
	"gorm.io/gorm"
)

// GormTestRepository is the storage side of the test workflow. Single-entity
// reads translate gorm.ErrRecordNotFound into the service-level sentinels;
// list reads return empty slices, never an error, when nothing matches.
type GormTestRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) *GormTestRepository {
	return &GormTestRepository{db: db}
}

func (r *GormTestRepository) MaterialExists(materialID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Material{}).Where("id = ?", materialID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateTest persists the test together with its questions in one
// transaction, so a failed question insert never leaves a question-less test
// behind.
func (r *GormTestRepository) CreateTest(test *models.Test) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(test).Error
	})
}

func (r *GormTestRepository) DeleteTest(testID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var test models.Test
		if err := tx.First(&test, "id = ?", testID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrTestNotFound
			}
			return err
		}
		if err := tx.Where("test_id = ?", testID).Delete(&models.TestResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", testID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&test).Error
	})
}

// ReplaceQuestions removes the test's current question set, inserts the new
// one and stores the recomputed passing score, all in one transaction.
func (r *GormTestRepository) ReplaceQuestions(testID uint, questions []models.Question, passingScore int) (*models.Test, error) {
	var test models.Test
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&test, "id = ?", testID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrTestNotFound
			}
			return err
		}
		if err := tx.Where("test_id = ?", testID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].TestID = testID
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		test.PassingScore = passingScore
		if err := tx.Save(&test).Error; err != nil {
			return err
		}
		test.Questions = questions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *GormTestRepository) FindTestByID(testID uint) (*models.Test, error) {
	var test models.Test
	if err := r.db.Preload("Questions").First(&test, "id = ?", testID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTestNotFound
		}
		return nil, err
	}
	return &test, nil
}

func (r *GormTestRepository) FindTestByMaterialID(materialID uint) (*models.Test, error) {
	var test models.Test
	if err := r.db.Preload("Questions").First(&test, "material_id = ?", materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTestNotFound
		}
		return nil, err
	}
	return &test, nil
}

func (r *GormTestRepository) ListTests() ([]models.Test, error) {
	var tests []models.Test
	err := r.db.
		Preload("Questions").
		Preload("Material").
		Preload("Material.Category").
		Preload("Material.Content").
		Order("id asc").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *GormTestRepository) InsertResult(result *models.TestResult) error {
	return r.db.Create(result).Error
}

func (r *GormTestRepository) ListResultsByUser(userID uint) ([]models.TestResult, error) {
	var results []models.TestResult
	if err := r.db.Where("user_id = ?", userID).Order("submitted_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *GormTestRepository) ListResultsByTest(testID uint) ([]models.TestResult, error) {
	var results []models.TestResult
	if err := r.db.Where("test_id = ?", testID).Order("submitted_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

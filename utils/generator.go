package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/slavikovics/EducationalSystem-sub000/models"
	"gorm.io/gorm"
)

const serialGroupCount = 3
const serialGroupLength = 4
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueSerial produces a certificate serial like "A1B2-C3D4-E5F6"
// that no existing certificate carries.
func GenerateUniqueSerial(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		groups := make([]string, serialGroupCount)
		for g := range groups {
			b := make([]byte, serialGroupLength)
			for i := range b {
				b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
			}
			groups[g] = string(b)
		}
		serial := strings.Join(groups, "-")

		var certificate models.Certificate
		err := tx.Where("serial = ?", serial).First(&certificate).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return serial, nil
			}
			return "", err
		}
	}
}

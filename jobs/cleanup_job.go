package jobs

import (
	"log"
	"time"

	"github.com/slavikovics/EducationalSystem-sub000/database"
	"github.com/slavikovics/EducationalSystem-sub000/models"
)

// ClearExpiredResetTokens nulls out password-reset tokens whose 15-minute
// window has passed, so stale links stop matching anything.
func ClearExpiredResetTokens() {
	log.Println("Running job: ClearExpiredResetTokens...")

	result := database.DB.Model(&models.User{}).
		Where("reset_password_token IS NOT NULL AND reset_password_token_expires_at < ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_password_token":            nil,
			"reset_password_token_expires_at": nil,
		})

	if result.Error != nil {
		log.Printf("Error clearing expired reset tokens: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Cleared %d expired reset tokens.", result.RowsAffected)
	}
}

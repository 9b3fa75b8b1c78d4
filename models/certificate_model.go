package models

import (
	"time"
)

type Certificate struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	TestID uint `gorm:"not null" json:"test_id"`

	// Title of the material the test belonged to, copied at issue time so
	// the certificate survives material renames and deletions.
	MaterialTitle string `gorm:"size:255;not null" json:"material_title"`

	Serial         string    `gorm:"size:32;not null;unique" json:"serial"`
	Score          int       `gorm:"not null" json:"score"`
	CertificateURL string    `gorm:"type:text;not null" json:"certificate_url"`
	IssuedAt       time.Time `gorm:"not null" json:"issued_at"`
}

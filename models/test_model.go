package models

import (
	"time"
)

type Test struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	MaterialID  uint `gorm:"not null;uniqueIndex" json:"material_id"`
	CreatedByID uint `gorm:"not null" json:"created_by_id"`

	// Minimum number of correct answers needed to pass. Derived from the
	// question count on create and on every question replacement.
	PassingScore int `gorm:"not null" json:"passing_score"`

	Questions []Question `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE" json:"questions"`
	Material  *Material  `gorm:"foreignKey:MaterialID" json:"material,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

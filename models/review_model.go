package models

import (
	"time"
)

type Review struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	MaterialID uint   `gorm:"not null;index" json:"material_id"`
	UserID     uint   `gorm:"not null" json:"user_id"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `gorm:"type:text" json:"comment"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

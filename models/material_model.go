package models

import (
	"time"
)

type Material struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	CategoryID  uint     `gorm:"not null" json:"category_id"`
	CreatedByID uint     `gorm:"not null" json:"created_by_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category"`
	Content     *Content `gorm:"foreignKey:MaterialID" json:"content,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

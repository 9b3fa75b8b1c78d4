package models

import "gorm.io/datatypes"

// Content holds the body of a Material: the text itself plus the ordered
// list of media links (videos, images) attached to it.
type Content struct {
	ID         uint                        `gorm:"primaryKey" json:"id"`
	MaterialID uint                        `gorm:"not null;uniqueIndex" json:"material_id"`
	Text       string                      `gorm:"type:text;not null" json:"text"`
	MediaLinks datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"media_links"`
}

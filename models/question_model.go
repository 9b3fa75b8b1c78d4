package models

import "gorm.io/datatypes"

type Question struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TestID       uint   `gorm:"not null;index" json:"test_id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`

	// Ordered answer choices. Empty for open-text questions.
	Options datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"options"`

	CorrectAnswer string `gorm:"type:text;not null" json:"correct_answer"`
}

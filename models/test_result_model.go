package models

import (
	"time"

	"gorm.io/datatypes"
)

// TestResult is one scored submission. Rows are append-only: a retake
// inserts a new row, nothing is ever updated or merged.
type TestResult struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TestID uint `gorm:"not null;index" json:"test_id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Score          int `gorm:"not null" json:"score"`
	TotalQuestions int `gorm:"not null" json:"total_questions"`

	// Snapshot of the test's passing score at submission time, so a later
	// question replacement cannot change how this attempt is judged.
	PassingScore int `gorm:"not null" json:"passing_score"`

	UserAnswers datatypes.JSONType[map[uint]string] `gorm:"type:jsonb" json:"user_answers"`

	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
}

func (r *TestResult) Passed() bool {
	return r.Score >= r.PassingScore
}

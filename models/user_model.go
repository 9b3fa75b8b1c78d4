package models

import "time"

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255;not null" json:"full_name"`
	Email    string `gorm:"size:255;not null;unique" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20;not null;default:'student'" json:"role"`

	IsBlocked bool `gorm:"default:false" json:"is_blocked"`

	// Tutor profile fields, empty for students and admins.
	ExperienceYears *int    `json:"experience_years,omitempty"`
	Specialty       *string `gorm:"size:255" json:"specialty,omitempty"`

	// Set only for seeded admin accounts.
	AccessKey *string `gorm:"size:255" json:"-"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID                         uint    `gorm:"primarykey"`
	FirstName                  string  `gorm:"not null;size:50"`
	LastName                   string  `gorm:"not null;size:50"`
	Username                   string  `gorm:"uniqueIndex;not null;size:30"`
	Email                      string  `gorm:"uniqueIndex;not null;size:255"`
	Phone                      string  `gorm:"size:20"`
	Gender                     string  `gorm:"size:10"`
	DOB                        time.Time
	Role                       string  `gorm:"not null;default:user;size:20"`
	IsActive                   bool    `gorm:"not null;default:true;index"`
	EmailVerified              bool    `gorm:"default:false"`
	PasswordHash               *string `gorm:"size:255"`
	EmailVerificationToken     *string `gorm:"size:64;index:idx_email_verification_token"`
	EmailVerificationExpiresAt *time.Time
	PasswordResetToken         *string `gorm:"size:64;index:idx_password_reset_token"`
	PasswordResetExpiresAt     *time.Time
	LastPasswordChangeAt       *time.Time
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

package models

import "time"

// SessionModel represents the database persistence model for sessions
type SessionModel struct {
	ID         string `gorm:"primarykey;size:64"`
	UserID     uint   `gorm:"not null;index:idx_sessions_user_active,priority:1"`
	IsActive   bool   `gorm:"not null;default:true;index:idx_sessions_user_active,priority:2"`
	LoginAt    time.Time `gorm:"not null"`
	LogoutAt   *time.Time
	IPAddress  string `gorm:"size:45"`
	UserAgent  string `gorm:"size:512"`
	DeviceInfo string `gorm:"size:512"`
	TokenHash  string `gorm:"size:64;index"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

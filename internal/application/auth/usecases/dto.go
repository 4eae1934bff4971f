package usecases

import (
	"time"

	"sentinel/internal/domain/user"
)

// UserResponse is the sanitized user representation returned to clients.
// Credential and token fields never leave the application layer.
type UserResponse struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	DOB           time.Time `json:"dob"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"is_active"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SessionResponse describes one login session for session management views
type SessionResponse struct {
	ID         string     `json:"id"`
	IsActive   bool       `json:"is_active"`
	LoginAt    time.Time  `json:"login_at"`
	LogoutAt   *time.Time `json:"logout_at,omitempty"`
	IPAddress  string     `json:"ip_address,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
	DeviceInfo string     `json:"device_info,omitempty"`
	Current    bool       `json:"current"`
}

// NewUserResponse converts a user aggregate to its API representation
func NewUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:            u.ID(),
		FirstName:     u.FirstName().String(),
		LastName:      u.LastName().String(),
		Username:      u.Username().String(),
		Email:         u.Email().String(),
		Phone:         u.Phone(),
		Gender:        u.Gender().String(),
		DOB:           u.DOB(),
		Role:          u.Role().String(),
		IsActive:      u.IsActive(),
		EmailVerified: u.IsEmailVerified(),
		CreatedAt:     u.CreatedAt(),
		UpdatedAt:     u.UpdatedAt(),
	}
}

// NewSessionResponse converts a session, flagging the one bound to the
// presented token
func NewSessionResponse(s *user.Session, currentTokenHash string) *SessionResponse {
	if s == nil {
		return nil
	}

	return &SessionResponse{
		ID:         s.ID,
		IsActive:   s.IsActive,
		LoginAt:    s.LoginAt,
		LogoutAt:   s.LogoutAt,
		IPAddress:  s.IPAddress,
		UserAgent:  s.UserAgent,
		DeviceInfo: s.DeviceInfo,
		Current:    currentTokenHash != "" && s.TokenHash == currentTokenHash,
	}
}

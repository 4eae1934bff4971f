package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Session records one authenticated login. Sessions are revoked by
// flipping IsActive, never deleted, so login history survives logout.
// Expired rows are purged by the retention sweeper after 30 days.
type Session struct {
	ID         string
	UserID     uint
	IsActive   bool
	LoginAt    time.Time
	LogoutAt   *time.Time
	IPAddress  string
	UserAgent  string
	DeviceInfo string
	TokenHash  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSession creates an active session for a login event
func NewSession(userID uint, ipAddress, userAgent, tokenHash string) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := time.Now().UTC()
	return &Session{
		ID:         id,
		UserID:     userID,
		IsActive:   true,
		LoginAt:    now,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		DeviceInfo: userAgent,
		TokenHash:  tokenHash,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Deactivate ends the session. Calling it on an already inactive
// session is a no-op; a session never transitions back to active.
func (s *Session) Deactivate() {
	if !s.IsActive {
		return
	}

	now := time.Now().UTC()
	s.IsActive = false
	s.LogoutAt = &now
	s.UpdatedAt = now
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SessionRepository defines the interface for session persistence
type SessionRepository interface {
	// Create persists a new session
	Create(ctx context.Context, session *Session) error

	// GetByID retrieves a session regardless of state
	GetByID(ctx context.Context, sessionID string) (*Session, error)

	// GetActiveByUserID lists a user's active sessions, newest login first
	GetActiveByUserID(ctx context.Context, userID uint) ([]*Session, error)

	// GetActiveByUserIDAndTokenHash finds the active session bound to a
	// specific issued token; returns nil when no such session exists
	GetActiveByUserIDAndTokenHash(ctx context.Context, userID uint, tokenHash string) (*Session, error)

	// Update persists session state changes
	Update(ctx context.Context, session *Session) error

	// DeactivateAllByUserID bulk-deactivates every active session for a
	// user and returns how many were flipped
	DeactivateAllByUserID(ctx context.Context, userID uint) (int64, error)

	// DeleteExpired removes sessions created before the cutoff
	// (retention garbage collection, not a correctness path)
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

package usecases

import (
	"time"

	"sentinel/internal/infrastructure/auth"
	"sentinel/internal/shared/authorization"
)

// JWTService issues and inspects the access tokens handed to clients
type JWTService interface {
	Generate(userID uint, email string, role authorization.UserRole) (string, error)
	Verify(tokenString string) (*auth.Claims, error)
	TTL() time.Duration
}

// EmailService sends the transactional mail triggered by auth flows.
// Delivery failures are logged, never surfaced to the caller.
type EmailService interface {
	SendWelcomeEmail(to, firstName string) error
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}

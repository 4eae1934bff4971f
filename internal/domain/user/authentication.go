package user

import (
	"fmt"
	"time"

	vo "sentinel/internal/domain/user/valueobjects"
)

// PasswordHasher abstracts the one-way credential hashing scheme.
// Verify must treat a malformed digest and a wrong password identically.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// Fallback lifetimes used when the caller passes a non-positive TTL
const (
	DefaultVerificationTokenTTL = 24 * time.Hour
	DefaultResetTokenTTL        = time.Hour
)

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u.passwordHash = &hash
	u.lastPasswordChangeAt = &now
	u.updatedAt = now

	return nil
}

// VerifyPassword checks a plain password against the stored hash
func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) bool {
	if u.passwordHash == nil || *u.passwordHash == "" {
		return false
	}
	return hasher.Verify(plainPassword, *u.passwordHash)
}

// HasPassword reports whether a credential is set
func (u *User) HasPassword() bool {
	return u.passwordHash != nil && *u.passwordHash != ""
}

// GenerateEmailVerificationToken issues a new verification token with
// the given lifetime. Only the token hash is retained on the aggregate.
func (u *User) GenerateEmailVerificationToken(ttl time.Duration) (*vo.Token, error) {
	if ttl <= 0 {
		ttl = DefaultVerificationTokenTTL
	}

	token, err := vo.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	now := time.Now().UTC()
	hash := token.Hash()
	expiresAt := now.Add(ttl)

	u.emailVerificationToken = &hash
	u.emailVerificationExpiresAt = &expiresAt
	u.updatedAt = now

	return token, nil
}

// VerifyEmail consumes a verification token and marks the email verified
func (u *User) VerifyEmail(plainToken string) error {
	if u.emailVerified {
		return fmt.Errorf("email is already verified")
	}

	if u.emailVerificationToken == nil || *u.emailVerificationToken == "" {
		return fmt.Errorf("no verification token found")
	}

	if u.emailVerificationExpiresAt == nil || time.Now().After(*u.emailVerificationExpiresAt) {
		return fmt.Errorf("verification token has expired")
	}

	token, err := vo.NewTokenFromValue(plainToken)
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}

	if token.Hash() != *u.emailVerificationToken {
		return fmt.Errorf("invalid verification token")
	}

	u.emailVerified = true
	u.emailVerificationToken = nil
	u.emailVerificationExpiresAt = nil
	u.updatedAt = time.Now().UTC()

	return nil
}

// IsEmailVerified reports whether the email has been verified
func (u *User) IsEmailVerified() bool {
	return u.emailVerified
}

// GeneratePasswordResetToken issues a single-use reset token with the
// given lifetime. A second call replaces any outstanding token.
func (u *User) GeneratePasswordResetToken(ttl time.Duration) (*vo.Token, error) {
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}

	token, err := vo.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	now := time.Now().UTC()
	hash := token.Hash()
	expiresAt := now.Add(ttl)

	u.passwordResetToken = &hash
	u.passwordResetExpiresAt = &expiresAt
	u.updatedAt = now

	return token, nil
}

// ResetPassword consumes a reset token and replaces the credential.
// The token is invalidated whether or not it has expired.
func (u *User) ResetPassword(plainToken string, newPassword *vo.Password, hasher PasswordHasher) error {
	if u.passwordResetToken == nil || *u.passwordResetToken == "" {
		return fmt.Errorf("no password reset token found")
	}

	if u.passwordResetExpiresAt == nil || time.Now().After(*u.passwordResetExpiresAt) {
		return fmt.Errorf("password reset token has expired")
	}

	token, err := vo.NewTokenFromValue(plainToken)
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}

	if token.Hash() != *u.passwordResetToken {
		return fmt.Errorf("invalid reset token")
	}

	if err := u.SetPassword(newPassword, hasher); err != nil {
		return fmt.Errorf("failed to set new password: %w", err)
	}

	u.passwordResetToken = nil
	u.passwordResetExpiresAt = nil

	return nil
}

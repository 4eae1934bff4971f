package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by email (case-insensitive)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByIdentifier retrieves a user matching either email or username
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)

	// ExistsByEmailOrUsername checks whether any user holds either value
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// GetByVerificationTokenHash retrieves a user by email verification token hash
	GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*User, error)

	// GetByPasswordResetTokenHash retrieves a user by password reset token hash
	GetByPasswordResetTokenHash(ctx context.Context, tokenHash string) (*User, error)
}

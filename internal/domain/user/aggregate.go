package user

import (
	"fmt"
	"time"

	vo "sentinel/internal/domain/user/valueobjects"
	"sentinel/internal/shared/authorization"
)

// User represents the user aggregate root (pure domain model without
// persistence concerns)
type User struct {
	id        uint
	firstName *vo.Name
	lastName  *vo.Name
	username  *vo.Username
	email     *vo.Email
	phone     string
	gender    vo.Gender
	dob       time.Time
	role      authorization.UserRole
	isActive  bool
	createdAt time.Time
	updatedAt time.Time

	passwordHash               *string
	emailVerified              bool
	emailVerificationToken     *string
	emailVerificationExpiresAt *time.Time
	passwordResetToken         *string
	passwordResetExpiresAt     *time.Time
	lastPasswordChangeAt       *time.Time
}

// NewUserParams bundles the attributes required to create a user
type NewUserParams struct {
	FirstName *vo.Name
	LastName  *vo.Name
	Username  *vo.Username
	Email     *vo.Email
	Phone     string
	Gender    vo.Gender
	DOB       time.Time
	Role      authorization.UserRole
}

// NewUser creates a new user aggregate with initial values.
// New users are active by default; the role defaults to the least
// privileged role when unset.
func NewUser(p NewUserParams) (*User, error) {
	if p.Email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if p.Username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if p.FirstName == nil || p.LastName == nil {
		return nil, fmt.Errorf("first and last name are required")
	}
	if p.DOB.IsZero() {
		return nil, fmt.Errorf("date of birth is required")
	}
	if !p.DOB.Before(time.Now()) {
		return nil, fmt.Errorf("date of birth must be in the past")
	}

	role := p.Role
	if !role.IsValid() {
		role = authorization.RoleUser
	}

	now := time.Now().UTC()
	return &User{
		firstName: p.FirstName,
		lastName:  p.LastName,
		username:  p.Username,
		email:     p.Email,
		phone:     p.Phone,
		gender:    p.Gender,
		dob:       p.DOB,
		role:      role,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// AuthData carries credential state between the aggregate and persistence
type AuthData struct {
	PasswordHash               *string
	EmailVerified              bool
	EmailVerificationToken     *string
	EmailVerificationExpiresAt *time.Time
	PasswordResetToken         *string
	PasswordResetExpiresAt     *time.Time
	LastPasswordChangeAt       *time.Time
}

// ReconstructUserParams bundles the attributes stored for a user
type ReconstructUserParams struct {
	ID        uint
	FirstName *vo.Name
	LastName  *vo.Name
	Username  *vo.Username
	Email     *vo.Email
	Phone     string
	Gender    vo.Gender
	DOB       time.Time
	Role      authorization.UserRole
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Auth      *AuthData
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(p ReconstructUserParams) (*User, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if p.Email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if p.Username == nil {
		return nil, fmt.Errorf("username is required")
	}

	u := &User{
		id:        p.ID,
		firstName: p.FirstName,
		lastName:  p.LastName,
		username:  p.Username,
		email:     p.Email,
		phone:     p.Phone,
		gender:    p.Gender,
		dob:       p.DOB,
		role:      p.Role,
		isActive:  p.IsActive,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}

	if p.Auth != nil {
		u.passwordHash = p.Auth.PasswordHash
		u.emailVerified = p.Auth.EmailVerified
		u.emailVerificationToken = p.Auth.EmailVerificationToken
		u.emailVerificationExpiresAt = p.Auth.EmailVerificationExpiresAt
		u.passwordResetToken = p.Auth.PasswordResetToken
		u.passwordResetExpiresAt = p.Auth.PasswordResetExpiresAt
		u.lastPasswordChangeAt = p.Auth.LastPasswordChangeAt
	}

	return u, nil
}

// GetAuthData exposes credential state for the persistence layer
func (u *User) GetAuthData() *AuthData {
	return &AuthData{
		PasswordHash:               u.passwordHash,
		EmailVerified:              u.emailVerified,
		EmailVerificationToken:     u.emailVerificationToken,
		EmailVerificationExpiresAt: u.emailVerificationExpiresAt,
		PasswordResetToken:         u.passwordResetToken,
		PasswordResetExpiresAt:     u.passwordResetExpiresAt,
		LastPasswordChangeAt:       u.lastPasswordChangeAt,
	}
}

// ID returns the user ID
func (u *User) ID() uint {
	return u.id
}

// FirstName returns the user's first name
func (u *User) FirstName() *vo.Name {
	return u.firstName
}

// LastName returns the user's last name
func (u *User) LastName() *vo.Name {
	return u.lastName
}

// Username returns the user's login handle
func (u *User) Username() *vo.Username {
	return u.username
}

// Email returns the user's email
func (u *User) Email() *vo.Email {
	return u.email
}

// Phone returns the user's phone number
func (u *User) Phone() string {
	return u.phone
}

// Gender returns the user's gender
func (u *User) Gender() vo.Gender {
	return u.gender
}

// DOB returns the user's date of birth
func (u *User) DOB() time.Time {
	return u.dob
}

// Role returns the user's role
func (u *User) Role() authorization.UserRole {
	return u.role
}

// IsActive reports whether the account is active (soft delete flag)
func (u *User) IsActive() bool {
	return u.isActive
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Deactivate soft-deletes the account. Idempotent.
func (u *User) Deactivate() {
	if u.isActive {
		u.isActive = false
		u.updatedAt = time.Now().UTC()
	}
}

// Activate re-enables a deactivated account. Idempotent.
func (u *User) Activate() {
	if !u.isActive {
		u.isActive = true
		u.updatedAt = time.Now().UTC()
	}
}

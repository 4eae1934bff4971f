package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// usernameRegex restricts usernames to alpha-numeric characters and underscores
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Username represents a unique login handle
type Username struct {
	value string
}

// NewUsername creates a new Username value object with validation
func NewUsername(value string) (*Username, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	if len(trimmed) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}

	if len(trimmed) > 30 {
		return nil, fmt.Errorf("username cannot exceed 30 characters")
	}

	if !usernameRegex.MatchString(trimmed) {
		return nil, fmt.Errorf("username must only contain alpha-numeric characters and underscores")
	}

	return &Username{value: trimmed}, nil
}

// String returns the string representation of the username
func (u *Username) String() string {
	return u.value
}

// Equals checks if two username objects are equal
func (u *Username) Equals(other *Username) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.value == other.value
}

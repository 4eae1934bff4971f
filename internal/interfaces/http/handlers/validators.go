package handlers

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RegisterCustomValidators installs the request validators on gin's
// validator engine. Must be called once before routes are served.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type")
	}

	if err := v.RegisterValidation("username_charset", validateUsernameCharset); err != nil {
		return fmt.Errorf("failed to register username_charset: %w", err)
	}
	if err := v.RegisterValidation("gender_enum", validateGenderEnum); err != nil {
		return fmt.Errorf("failed to register gender_enum: %w", err)
	}
	if err := v.RegisterValidation("password_strength", validatePasswordStrength); err != nil {
		return fmt.Errorf("failed to register password_strength: %w", err)
	}

	return nil
}

func validateUsernameCharset(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func validateGenderEnum(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "male", "female", "other":
		return true
	}
	return false
}

// validatePasswordStrength mirrors the domain password policy so weak
// passwords are rejected at the boundary with a field-level message
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 128 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

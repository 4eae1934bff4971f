package valueobjects

import (
	"strings"
	"testing"
)

func TestNewPassword_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"minimum length", "Abcdef12"},
		{"long password", "Sup3rSecretPassphrase"},
		{"with symbols", "P@ssw0rd!"},
		{"maximum length", "Aa1" + strings.Repeat("x", 125)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := NewPassword(tt.input)
			if err != nil {
				t.Fatalf("NewPassword(%q) error = %v, want nil", tt.input, err)
			}
			if password.String() != tt.input {
				t.Errorf("String() = %q, want %q", password.String(), tt.input)
			}
		})
	}
}

func TestNewPassword_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "Abc1def"},
		{"too long", "Aa1" + strings.Repeat("x", 126)},
		{"no uppercase", "abcdef12"},
		{"no lowercase", "ABCDEF12"},
		{"no digit", "Abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPassword(tt.input); err == nil {
				t.Errorf("NewPassword(%q) error = nil, want error", tt.input)
			}
		})
	}
}

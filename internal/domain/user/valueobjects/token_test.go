package valueobjects

import (
	"strings"
	"testing"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if len(token.Value()) != 64 {
		t.Errorf("Value() length = %d, want 64", len(token.Value()))
	}
	if token.Hash() == token.Value() {
		t.Error("Hash() equals Value(), plain token must never be stored")
	}
	if token.Hash() != HashToken(token.Value()) {
		t.Error("Hash() does not match HashToken(Value())")
	}

	other, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token.Value() == other.Value() {
		t.Error("two generated tokens share the same value")
	}
}

func TestNewTokenFromValue(t *testing.T) {
	generated, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	restored, err := NewTokenFromValue(generated.Value())
	if err != nil {
		t.Fatalf("NewTokenFromValue() error = %v", err)
	}
	if restored.Hash() != generated.Hash() {
		t.Error("restored token hash differs from original")
	}
}

func TestNewTokenFromValue_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "abcdef0123456789"},
		{"not hexadecimal", strings.Repeat("z", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTokenFromValue(tt.input); err == nil {
				t.Errorf("NewTokenFromValue(%q) error = nil, want error", tt.input)
			}
		})
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("HashToken is not deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("different inputs produced the same hash")
	}
	if len(HashToken("abc")) != 64 {
		t.Errorf("HashToken length = %d, want 64", len(HashToken("abc")))
	}
}

package valueobjects

import "testing"

func TestNewEmail_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "ada@example.com", "ada@example.com"},
		{"uppercase normalized", "Ada@Example.COM", "ada@example.com"},
		{"surrounding whitespace", "  ada@example.com  ", "ada@example.com"},
		{"plus addressing", "ada+test@example.com", "ada+test@example.com"},
		{"subdomain", "ada@mail.example.co.uk", "ada@mail.example.co.uk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if err != nil {
				t.Fatalf("NewEmail(%q) error = %v, want nil", tt.input, err)
			}
			if email.String() != tt.want {
				t.Errorf("String() = %q, want %q", email.String(), tt.want)
			}
		})
	}
}

func TestNewEmail_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"missing at sign", "ada.example.com"},
		{"missing domain", "ada@"},
		{"missing tld", "ada@example"},
		{"missing local part", "@example.com"},
		{"spaces inside", "ada lovelace@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEmail(tt.input); err == nil {
				t.Errorf("NewEmail(%q) error = nil, want error", tt.input)
			}
		})
	}
}

func TestEmail_Equals(t *testing.T) {
	a, _ := NewEmail("ada@example.com")
	b, _ := NewEmail("ADA@example.com")
	c, _ := NewEmail("grace@example.com")

	if !a.Equals(b) {
		t.Error("Equals() = false for same normalized address, want true")
	}
	if a.Equals(c) {
		t.Error("Equals() = true for different addresses, want false")
	}
	if a.Equals(nil) {
		t.Error("Equals(nil) = true, want false")
	}
}

func TestEmail_Domain(t *testing.T) {
	email, _ := NewEmail("ada@mail.example.com")
	if got := email.Domain(); got != "mail.example.com" {
		t.Errorf("Domain() = %q, want %q", got, "mail.example.com")
	}
}

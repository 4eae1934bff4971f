package valueobjects

import (
	"fmt"
	"strings"
)

// Gender represents the gender enum on a user profile
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// NewGender parses and validates a gender value (case-insensitive)
func NewGender(value string) (Gender, error) {
	gender := Gender(strings.ToLower(strings.TrimSpace(value)))

	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return gender, nil
	default:
		return "", fmt.Errorf("gender must be male, female, or other")
	}
}

func (g Gender) String() string {
	return string(g)
}

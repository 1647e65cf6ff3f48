package domain

import (
	"regexp"
	"strings"
)

// emailRegex enforces a simple local@domain.tld shape. Full RFC 5322 parsing
// is deliberately out of scope; the mail system is the final authority.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated, normalized (trimmed, lower-cased) email address.
// The zero value is invalid; construct via NewEmail.
type Email struct {
	value string
}

// NewEmail normalizes and validates a raw email address.
func NewEmail(raw string) (Email, error) {
	value := strings.ToLower(strings.TrimSpace(raw))

	if value == "" {
		return Email{}, newValidationError("email cannot be empty")
	}

	if !emailRegex.MatchString(value) {
		return Email{}, newValidationErrorf("invalid email format: %s", raw)
	}

	return Email{value: value}, nil
}

// Value returns the normalized email string.
func (e Email) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return e.value
}

// Equals reports value equality on the normalized string.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// DisplayName length bounds, measured after trimming.
const (
	displayNameMinLength = 2
	displayNameMaxLength = 100
)

// DisplayName is a validated, trimmed human-readable name.
// The zero value is invalid; construct via NewDisplayName.
type DisplayName struct {
	value string
}

// NewDisplayName trims and validates a raw display name.
func NewDisplayName(raw string) (DisplayName, error) {
	value := strings.TrimSpace(raw)

	if value == "" {
		return DisplayName{}, newValidationError("name cannot be empty or only whitespace")
	}

	if length := len([]rune(value)); length < displayNameMinLength {
		return DisplayName{}, newValidationErrorf(
			"name must be at least %d characters, got %d", displayNameMinLength, length)
	} else if length > displayNameMaxLength {
		return DisplayName{}, newValidationErrorf(
			"name cannot exceed %d characters, got %d", displayNameMaxLength, length)
	}

	return DisplayName{value: value}, nil
}

// Value returns the trimmed name string.
func (n DisplayName) Value() string {
	return n.value
}

// String implements fmt.Stringer.
func (n DisplayName) String() string {
	return n.value
}

// Equals reports value equality on the trimmed string.
func (n DisplayName) Equals(other DisplayName) bool {
	return n.value == other.value
}

// Package validation provides input validation utilities
package validation

import (
	"net/url"
	"regexp"
	"strings"

	"atelier/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateName checks that a display name is non-blank.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError("name is required")
	}
	return nil
}

// ValidateTitle checks that a lane or card title is non-blank.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("title is required")
	}
	return nil
}

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return models.NewValidationError("email must be a valid email address")
	}
	return nil
}

// ValidatePassword checks the password against the minimum length policy.
func ValidatePassword(password string) error {
	if len(password) < 4 {
		return models.NewValidationError("password must be at least 4 characters long")
	}
	if len(password) > 128 {
		return models.NewValidationError("password must not exceed 128 characters")
	}
	return nil
}

// ValidateURL checks that the value parses as an absolute http(s) URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return models.NewValidationError("url must be a valid URI")
	}
	return nil
}

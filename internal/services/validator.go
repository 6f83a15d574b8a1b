package services

import (
	"regexp"
	"strings"

	"github.com/adventcare/registry-backend/internal/models"
)

// emailPattern accepts the usual local@domain.tld shape without trying to
// implement the full RFC grammar.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration checks the intake payload and returns every problem
// found, not just the first. It never mutates its input. Specialty and bio
// are optional and pass through unvalidated.
func ValidateRegistration(req *models.RegistrationRequest) []string {
	var errors []string

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, "Name is required")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errors = append(errors, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errors = append(errors, "Invalid email format")
	}

	if strings.TrimSpace(req.Hospital) == "" {
		errors = append(errors, "Hospital is required")
	}

	if strings.TrimSpace(req.Role) == "" {
		errors = append(errors, "Role is required")
	}

	return errors
}

// NormalizeEmail produces the canonical form used for storage and
// duplicate detection: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package bootstrap

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinPasswordLength is inclusive: an 8-character password passes.
	MinPasswordLength = 8
	MinNameLength     = 2
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// ValidateInput checks every field and returns the full list of violations,
// not just the first one found.
func ValidateInput(in Input) []string {
	var violations []string

	email := strings.TrimSpace(in.Email)
	if !emailPattern.MatchString(email) {
		violations = append(violations, fmt.Sprintf("email %q is not a valid address", email))
	}
	if len(in.Password) < MinPasswordLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if len(strings.TrimSpace(in.FirstName)) < MinNameLength {
		violations = append(violations, fmt.Sprintf("first name must be at least %d characters", MinNameLength))
	}
	if len(strings.TrimSpace(in.LastName)) < MinNameLength {
		violations = append(violations, fmt.Sprintf("last name must be at least %d characters", MinNameLength))
	}

	return violations
}

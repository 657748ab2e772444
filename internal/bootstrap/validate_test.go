package bootstrap

import (
	"strings"
	"testing"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name       string
		input      Input
		violations int
		mention    string
	}{
		{
			name:       "all valid",
			input:      Input{Email: "new@admin.org", Password: "longenough1", FirstName: "Jo", LastName: "Li"},
			violations: 0,
		},
		{
			name:       "missing at-sign",
			input:      Input{Email: "admin.org", Password: "longenough1", FirstName: "Jo", LastName: "Li"},
			violations: 1,
			mention:    "email",
		},
		{
			name:       "missing tld",
			input:      Input{Email: "new@admin", Password: "longenough1", FirstName: "Jo", LastName: "Li"},
			violations: 1,
			mention:    "email",
		},
		{
			name:       "single-char tld",
			input:      Input{Email: "new@admin.o", Password: "longenough1", FirstName: "Jo", LastName: "Li"},
			violations: 1,
			mention:    "email",
		},
		{
			name:       "password of seven",
			input:      Input{Email: "new@admin.org", Password: "1234567", FirstName: "Jo", LastName: "Li"},
			violations: 1,
			mention:    "password",
		},
		{
			name:       "password of exactly eight passes",
			input:      Input{Email: "new@admin.org", Password: "12345678", FirstName: "Jo", LastName: "Li"},
			violations: 0,
		},
		{
			name:       "one-char first name",
			input:      Input{Email: "new@admin.org", Password: "longenough1", FirstName: "J", LastName: "Li"},
			violations: 1,
			mention:    "first name",
		},
		{
			name:       "whitespace-only last name",
			input:      Input{Email: "new@admin.org", Password: "longenough1", FirstName: "Jo", LastName: "  "},
			violations: 1,
			mention:    "last name",
		},
		{
			name:       "everything wrong reports everything",
			input:      Input{Email: "nope", Password: "short", FirstName: "", LastName: ""},
			violations: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateInput(tt.input)
			if len(violations) != tt.violations {
				t.Fatalf("expected %d violations, got %d: %v", tt.violations, len(violations), violations)
			}
			if tt.mention == "" {
				return
			}
			found := false
			for _, v := range violations {
				if strings.Contains(v, tt.mention) {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected a violation mentioning %q, got %v", tt.mention, violations)
			}
		})
	}
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alumnihub/internal/auth"
	"alumnihub/internal/entity"
	"alumnihub/internal/model"

	"gorm.io/gorm"
)

// Fixed sentinel values for schema-required profile fields that carry no
// meaning on an administrative account. Documented constants rather than
// random data so imported-record audits can recognise bootstrap rows.
const (
	PlaceholderGraduationYear = 1900
	PlaceholderDegree         = "n/a"
	PlaceholderMajor          = "n/a"
	PlaceholderPhone          = "000-0000"
	PlaceholderChapter        = "headquarters"
)

// ValidationError reports every input violation found.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Violations, "; ")
}

// DuplicateEmailError is returned when an account with the requested email
// already exists. The existing account's role and status are surfaced so the
// operator can tell what they would have clobbered.
type DuplicateEmailError struct {
	Email          string
	Role           string
	ApprovalStatus string
	IsActive       bool
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("account %s already exists (role=%s, status=%s, active=%t)",
		e.Email, e.Role, e.ApprovalStatus, e.IsActive)
}

// Result describes a successful bootstrap run.
type Result struct {
	Account *entity.DbAccount

	// SuperAdminExisted is true when another super-admin account was already
	// present. Creation still proceeds; callers should surface a warning.
	SuperAdminExisted bool
}

// CreateSuperAdmin provisions one new super-admin account. It refuses
// duplicates and performs zero writes on any validation or duplicate failure.
//
// The duplicate check and the insert are deliberately not wrapped in a
// transaction: two racing invocations both passing the check surface as
// gorm.ErrDuplicatedKey at insert time, never as a silent overwrite.
func CreateSuperAdmin(ctx context.Context, repo model.Repository, in Input) (*Result, error) {
	if repo == nil {
		return nil, errors.New("repository is nil")
	}

	if violations := ValidateInput(in); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := repo.GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, &DuplicateEmailError{
			Email:          existing.Email,
			Role:           existing.Role,
			ApprovalStatus: existing.ApprovalStatus,
			IsActive:       existing.IsActive,
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// email is free
	default:
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}

	superAdminExisted := false
	_, err = repo.FindAccountByRole(ctx, entity.AccountRoleSuperAdmin)
	switch {
	case err == nil:
		superAdminExisted = true
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first super admin
	default:
		return nil, fmt.Errorf("super admin lookup failed: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &entity.DbAccount{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         entity.AccountRoleSuperAdmin,

		// Trust flags forced to their fully-approved values, bypassing the
		// membership approval workflow.
		ApprovalStatus: entity.ApprovalStatusApproved,
		IsActive:       true,
		EmailVerified:  true,

		GraduationYear: PlaceholderGraduationYear,
		Degree:         PlaceholderDegree,
		Major:          PlaceholderMajor,
		Phone:          PlaceholderPhone,
		Chapter:        PlaceholderChapter,
	}

	if err := repo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return &Result{Account: account, SuperAdminExisted: superAdminExisted}, nil
}

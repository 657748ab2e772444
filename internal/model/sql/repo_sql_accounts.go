package sql

import (
	"context"
	"fmt"
	"strings"

	"alumnihub/internal/entity"

	"gorm.io/gorm"
)

// CreateAccount persists a new account record.
func (r *GormRepository) CreateAccount(ctx context.Context, account *entity.DbAccount) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if account == nil {
		return fmt.Errorf("account is nil")
	}
	return r.db.WithContext(ctx).Create(account).Error
}

// UpdateAccount applies partial updates to an existing account.
func (r *GormRepository) UpdateAccount(ctx context.Context, id uint, updates entity.AccountUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid account id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbAccount{}).Where("id = ?", id).Updates(values).Error
}

// GetAccountByEmail loads an account by email, case-insensitively.
func (r *GormRepository) GetAccountByEmail(ctx context.Context, email string) (*entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, fmt.Errorf("email is empty")
	}

	var account entity.DbAccount
	if err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(trimmed)).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByID loads an account by ID.
func (r *GormRepository) GetAccountByID(ctx context.Context, id uint) (*entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid account id")
	}
	var account entity.DbAccount
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindAccountByRole returns the first account holding the given role.
func (r *GormRepository) FindAccountByRole(ctx context.Context, role string) (*entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(role)
	if trimmed == "" {
		return nil, fmt.Errorf("role is empty")
	}
	var account entity.DbAccount
	if err := r.db.WithContext(ctx).Where("role = ?", trimmed).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccounts returns paginated accounts.
func (r *GormRepository) ListAccounts(ctx context.Context, params *entity.AccountQuery) ([]entity.DbAccount, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbAccount{})
	if params != nil {
		if trimmed := strings.TrimSpace(params.Role); trimmed != "" {
			query = query.Where("role = ?", trimmed)
		}
		if trimmed := strings.TrimSpace(params.ApprovalStatus); trimmed != "" {
			query = query.Where("approval_status = ?", trimmed)
		}
		if keyword := strings.TrimSpace(params.Keyword); keyword != "" {
			kw := "%" + strings.ToLower(keyword) + "%"
			query = query.Where("LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", kw, kw, kw)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page := 1
	pageSize := 20
	if params != nil {
		if params.Page > 0 {
			page = int(params.Page)
		}
		if params.PageSize > 0 {
			pageSize = int(params.PageSize)
		}
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	var accounts []entity.DbAccount
	if err := query.Order("id DESC").Offset(offset).Limit(pageSize).Find(&accounts).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, pageSize)
	return accounts, meta, nil
}

// ListRecentAccounts returns the most recently created accounts, newest first.
func (r *GormRepository) ListRecentAccounts(ctx context.Context, limit int) ([]entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if limit <= 0 {
		limit = 5
	}
	var accounts []entity.DbAccount
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// DeleteAccount removes an account by ID.
func (r *GormRepository) DeleteAccount(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid account id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbAccount{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountAccounts returns total account count.
func (r *GormRepository) CountAccounts(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbAccount{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

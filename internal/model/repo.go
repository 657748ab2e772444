package model

import (
	"context"

	"alumnihub/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 账户管理
	CreateAccount(ctx context.Context, account *entity.DbAccount) error
	UpdateAccount(ctx context.Context, id uint, updates entity.AccountUpdates) error
	GetAccountByEmail(ctx context.Context, email string) (*entity.DbAccount, error)
	GetAccountByID(ctx context.Context, id uint) (*entity.DbAccount, error)
	FindAccountByRole(ctx context.Context, role string) (*entity.DbAccount, error)
	ListAccounts(ctx context.Context, params *entity.AccountQuery) ([]entity.DbAccount, *entity.Meta, error)
	ListRecentAccounts(ctx context.Context, limit int) ([]entity.DbAccount, error)
	DeleteAccount(ctx context.Context, id uint) error
	CountAccounts(ctx context.Context) (int64, error)

	// 站点内容
	ListPillars(ctx context.Context) ([]entity.DbPillar, error)
	GetPillarBySlug(ctx context.Context, slug string) (*entity.DbPillar, error)
	CreatePillar(ctx context.Context, pillar *entity.DbPillar) error
	ListTeamMembers(ctx context.Context) ([]entity.DbTeamMember, error)
	GetTeamMemberByName(ctx context.Context, name string) (*entity.DbTeamMember, error)
	CreateTeamMember(ctx context.Context, member *entity.DbTeamMember) error
	ListPartners(ctx context.Context) ([]entity.DbPartner, error)
	GetPartnerByName(ctx context.Context, name string) (*entity.DbPartner, error)
	CreatePartner(ctx context.Context, partner *entity.DbPartner) error

	// Close releases the underlying database connection pool.
	Close() error
}

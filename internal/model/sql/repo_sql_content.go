package sql

import (
	"context"
	"fmt"
	"strings"

	"alumnihub/internal/entity"
)

// ListPillars returns all pillars ordered for display.
func (r *GormRepository) ListPillars(ctx context.Context) ([]entity.DbPillar, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var pillars []entity.DbPillar
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&pillars).Error; err != nil {
		return nil, err
	}
	return pillars, nil
}

// GetPillarBySlug loads a pillar by its slug.
func (r *GormRepository) GetPillarBySlug(ctx context.Context, slug string) (*entity.DbPillar, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(slug)
	if trimmed == "" {
		return nil, fmt.Errorf("slug is empty")
	}
	var pillar entity.DbPillar
	if err := r.db.WithContext(ctx).Where("slug = ?", trimmed).First(&pillar).Error; err != nil {
		return nil, err
	}
	return &pillar, nil
}

// CreatePillar persists a new pillar record.
func (r *GormRepository) CreatePillar(ctx context.Context, pillar *entity.DbPillar) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if pillar == nil {
		return fmt.Errorf("pillar is nil")
	}
	return r.db.WithContext(ctx).Create(pillar).Error
}

// ListTeamMembers returns all team members ordered for display.
func (r *GormRepository) ListTeamMembers(ctx context.Context) ([]entity.DbTeamMember, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var members []entity.DbTeamMember
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetTeamMemberByName loads a team member by name.
func (r *GormRepository) GetTeamMemberByName(ctx context.Context, name string) (*entity.DbTeamMember, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("name is empty")
	}
	var member entity.DbTeamMember
	if err := r.db.WithContext(ctx).Where("name = ?", trimmed).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateTeamMember persists a new team member record.
func (r *GormRepository) CreateTeamMember(ctx context.Context, member *entity.DbTeamMember) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if member == nil {
		return fmt.Errorf("team member is nil")
	}
	return r.db.WithContext(ctx).Create(member).Error
}

// ListPartners returns all partners ordered for display.
func (r *GormRepository) ListPartners(ctx context.Context) ([]entity.DbPartner, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var partners []entity.DbPartner
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// GetPartnerByName loads a partner by name.
func (r *GormRepository) GetPartnerByName(ctx context.Context, name string) (*entity.DbPartner, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("name is empty")
	}
	var partner entity.DbPartner
	if err := r.db.WithContext(ctx).Where("name = ?", trimmed).First(&partner).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

// CreatePartner persists a new partner record.
func (r *GormRepository) CreatePartner(ctx context.Context, partner *entity.DbPartner) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if partner == nil {
		return fmt.Errorf("partner is nil")
	}
	return r.db.WithContext(ctx).Create(partner).Error
}

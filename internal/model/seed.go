package model

import (
	"context"
	"errors"

	"alumnihub/internal/entity"

	"gorm.io/gorm"
)

// SeedDefaultContent ensures the static marketing content (pillars, team,
// partners) exists in the database. Existing rows are never overwritten, so
// operators can edit copy directly in the database without it being reset on
// the next deploy.
func SeedDefaultContent(ctx context.Context, repo Repository) error {
	if repo == nil {
		return nil
	}

	for _, seed := range defaultPillars() {
		pillar := seed
		_, err := repo.GetPillarBySlug(ctx, pillar.Slug)
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := repo.CreatePillar(ctx, &pillar); err != nil {
				return err
			}
		default:
			return err
		}
	}

	for _, seed := range defaultTeamMembers() {
		member := seed
		_, err := repo.GetTeamMemberByName(ctx, member.Name)
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := repo.CreateTeamMember(ctx, &member); err != nil {
				return err
			}
		default:
			return err
		}
	}

	for _, seed := range defaultPartners() {
		partner := seed
		_, err := repo.GetPartnerByName(ctx, partner.Name)
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := repo.CreatePartner(ctx, &partner); err != nil {
				return err
			}
		default:
			return err
		}
	}

	return nil
}

func defaultPillars() []entity.DbPillar {
	return []entity.DbPillar{
		{
			Slug:      "network",
			Title:     "Network",
			Summary:   "Connect with alumni across classes, chapters, and industries.",
			Body:      "From regional chapter meetups to the annual reunion, the association keeps graduates connected long after they leave campus.",
			SortOrder: 1,
		},
		{
			Slug:      "mentorship",
			Title:     "Mentorship",
			Summary:   "Give back by guiding current students and recent graduates.",
			Body:      "Our mentorship programme pairs experienced alumni with students preparing to enter the workforce.",
			SortOrder: 2,
		},
		{
			Slug:      "giving",
			Title:     "Giving",
			Summary:   "Support scholarships and campus initiatives.",
			Body:      "Member contributions fund scholarships, campus improvements, and emergency grants for students in need.",
			SortOrder: 3,
		},
	}
}

func defaultTeamMembers() []entity.DbTeamMember {
	return []entity.DbTeamMember{
		{Name: "Maria Okafor", Title: "President", Bio: "Class of 2004. Leads the association board.", SortOrder: 1},
		{Name: "Daniel Reyes", Title: "Vice President", Bio: "Class of 2009. Coordinates chapter programming.", SortOrder: 2},
		{Name: "Priya Natarajan", Title: "Treasurer", Bio: "Class of 2011. Oversees the scholarship fund.", SortOrder: 3},
	}
}

func defaultPartners() []entity.DbPartner {
	return []entity.DbPartner{
		{Name: "City Credit Union", WebsiteURL: "https://example.com/ccu", SortOrder: 1},
		{Name: "Harbor Insurance Group", WebsiteURL: "https://example.com/harbor", SortOrder: 2},
		{Name: "Northside Career Services", WebsiteURL: "https://example.com/northside", SortOrder: 3},
	}
}

package entity

import "time"

// DbPillar is one of the association's mission pillars shown on the site.
type DbPillar struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Slug      string    `gorm:"column:slug;type:varchar(100);uniqueIndex;not null" json:"slug"`
	Title     string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Summary   string    `gorm:"column:summary;type:varchar(500)" json:"summary"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	SortOrder int       `gorm:"column:sort_order;index" json:"sort_order"`
}

func (DbPillar) TableName() string {
	return "pillars"
}

// DbTeamMember is a board/staff member listed on the team page.
type DbTeamMember struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"column:name;type:varchar(200);uniqueIndex;not null" json:"name"`
	Title     string    `gorm:"column:title;type:varchar(200)" json:"title"`
	Bio       string    `gorm:"column:bio;type:text" json:"bio"`
	PhotoPath string    `gorm:"column:photo_path;type:varchar(500)" json:"photo_path"`
	SortOrder int       `gorm:"column:sort_order;index" json:"sort_order"`
}

func (DbTeamMember) TableName() string {
	return "team_members"
}

// DbPartner is a partner organisation shown on the partners page.
type DbPartner struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `gorm:"column:name;type:varchar(200);uniqueIndex;not null" json:"name"`
	LogoPath   string    `gorm:"column:logo_path;type:varchar(500)" json:"logo_path"`
	WebsiteURL string    `gorm:"column:website_url;type:varchar(500)" json:"website_url"`
	SortOrder  int       `gorm:"column:sort_order;index" json:"sort_order"`
}

func (DbPartner) TableName() string {
	return "partners"
}

type PillarListResponse struct {
	Pillars []DbPillar `json:"pillars"`
}

type TeamListResponse struct {
	Team []TeamMemberItem `json:"team"`
}

type TeamMemberItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
}

type PartnerListResponse struct {
	Partners []PartnerItem `json:"partners"`
}

type PartnerItem struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
}

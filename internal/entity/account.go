package entity

import "time"

const (
	AccountRoleSuperAdmin = "super_admin"
	AccountRoleAdmin      = "admin"
	AccountRoleMember     = "member"
)

const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// DbAccount represents a persisted member account.
type DbAccount struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100)" json:"first_name"`
	LastName     string    `gorm:"column:last_name;type:varchar(100)" json:"last_name"`
	Role         string    `gorm:"column:role;type:varchar(50);index;not null" json:"role"`

	// Trust flags. Ordinary registrations start pending/unverified; the
	// alumnictl bootstrap path force-sets all three.
	ApprovalStatus string `gorm:"column:approval_status;type:varchar(20);index;not null;default:pending" json:"approval_status"`
	IsActive       bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`
	EmailVerified  bool   `gorm:"column:email_verified;not null;default:false" json:"email_verified"`

	// ExternalID carries the record id from the legacy alumni CRM import.
	ExternalID string `gorm:"column:external_id;type:varchar(64);index" json:"external_id"`

	// Alumni profile fields required by the schema.
	GraduationYear int    `gorm:"column:graduation_year" json:"graduation_year"`
	Degree         string `gorm:"column:degree;type:varchar(100)" json:"degree"`
	Major          string `gorm:"column:major;type:varchar(150)" json:"major"`
	Phone          string `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Chapter        string `gorm:"column:chapter;type:varchar(100)" json:"chapter"`
}

// TableName overrides default pluralised name.
func (DbAccount) TableName() string {
	return "accounts"
}

// IsApproved reports whether the account passed the approval workflow.
func (a *DbAccount) IsApproved() bool {
	return a != nil && a.ApprovalStatus == ApprovalStatusApproved
}

// AccountSummary is a lightweight account description returned to clients.
type AccountSummary struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	ApprovalStatus string    `json:"approval_status"`
	IsActive       bool      `json:"is_active"`
	EmailVerified  bool      `json:"email_verified"`
	ExternalID     string    `json:"external_id,omitempty"`
	GraduationYear int       `json:"graduation_year,omitempty"`
	Chapter        string    `json:"chapter,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AccountQuery supports listing accounts with pagination.
type AccountQuery struct {
	BaseParams
	Role           string `json:"role" form:"role" query:"role"`
	ApprovalStatus string `json:"approval_status" form:"approval_status" query:"approval_status"`
	Keyword        string `json:"keyword" form:"keyword" query:"keyword"`
}

type AuthStatusResponse struct {
	HasAccount bool `json:"has_account"`
}

type AuthLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthRegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FirstName      string `json:"first_name" binding:"required,min=2"`
	LastName       string `json:"last_name" binding:"required,min=2"`
	GraduationYear int    `json:"graduation_year"`
	Degree         string `json:"degree"`
	Major          string `json:"major"`
	Phone          string `json:"phone"`
	Chapter        string `json:"chapter"`
}

type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Account   AccountSummary `json:"account"`
}

type MemberUpdateRequest struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Role           *string `json:"role,omitempty"`
	Password       *string `json:"password,omitempty"`
	ApprovalStatus *string `json:"approval_status,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	Chapter        *string `json:"chapter,omitempty"`
}

type MemberListResponse struct {
	Members []AccountSummary `json:"members"`
	Meta    *Meta            `json:"meta"`
}

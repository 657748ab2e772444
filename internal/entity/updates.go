package entity

// AccountUpdates 账户更新字段
type AccountUpdates struct {
	FirstName      *string
	LastName       *string
	Role           *string
	PasswordHash   *string
	ApprovalStatus *string
	IsActive       *bool
	EmailVerified  *bool
	Chapter        *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u AccountUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.FirstName != nil {
		updates["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		updates["last_name"] = *u.LastName
	}
	if u.Role != nil {
		updates["role"] = *u.Role
	}
	if u.PasswordHash != nil {
		updates["password_hash"] = *u.PasswordHash
	}
	if u.ApprovalStatus != nil {
		updates["approval_status"] = *u.ApprovalStatus
	}
	if u.IsActive != nil {
		updates["is_active"] = *u.IsActive
	}
	if u.EmailVerified != nil {
		updates["email_verified"] = *u.EmailVerified
	}
	if u.Chapter != nil {
		updates["chapter"] = *u.Chapter
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u AccountUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

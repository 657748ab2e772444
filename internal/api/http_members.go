package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"alumnihub/internal/auth"
	"alumnihub/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListMembers 分页返回会员账户列表（管理端）
func (h *HTTPHandler) ListMembers(c *gin.Context) {
	var params entity.AccountQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	accounts, meta, err := h.repo.ListAccounts(ctx, &params)
	if err != nil {
		logrus.WithError(err).Error("failed to list accounts")
		InternalError(c, "failed to list members")
		return
	}

	members := make([]entity.AccountSummary, 0, len(accounts))
	for i := range accounts {
		members = append(members, makeAccountSummary(&accounts[i]))
	}

	c.JSON(http.StatusOK, entity.MemberListResponse{Members: members, Meta: meta})
}

// ApproveMember 批准待审核的会员申请
func (h *HTTPHandler) ApproveMember(c *gin.Context) {
	id, ok := parseMemberID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	account, err := h.repo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeMemberNotFound, "member not found")
			return
		}
		logrus.WithError(err).WithField("member_id", id).Error("failed to load member")
		InternalError(c, "failed to load member")
		return
	}

	approved := entity.ApprovalStatusApproved
	updates := entity.AccountUpdates{ApprovalStatus: &approved}
	if err := h.repo.UpdateAccount(ctx, account.ID, updates); err != nil {
		logrus.WithError(err).WithField("member_id", id).Error("failed to approve member")
		InternalError(c, "failed to approve member")
		return
	}

	account.ApprovalStatus = entity.ApprovalStatusApproved
	c.JSON(http.StatusOK, makeAccountSummary(account))
}

// UpdateMember 更新会员资料与权限
func (h *HTTPHandler) UpdateMember(c *gin.Context) {
	id, ok := parseMemberID(c)
	if !ok {
		return
	}

	var req entity.MemberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	target, err := h.repo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeMemberNotFound, "member not found")
			return
		}
		logrus.WithError(err).WithField("member_id", id).Error("failed to load member")
		InternalError(c, "failed to load member")
		return
	}

	actor := CurrentAccount(c)

	// 只有超级管理员可以修改角色，且不能修改其他超级管理员
	if req.Role != nil || target.Role == entity.AccountRoleSuperAdmin {
		if actor == nil || !actor.IsSuperAdmin() {
			Forbidden(c, "super admin privileges required")
			return
		}
	}
	if req.Role != nil && !isValidRole(*req.Role) {
		BadRequest(c, ErrCodeInvalidRequest, "invalid role")
		return
	}
	if req.ApprovalStatus != nil && !isValidApprovalStatus(*req.ApprovalStatus) {
		BadRequest(c, ErrCodeInvalidRequest, "invalid approval status")
		return
	}

	updates := entity.AccountUpdates{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           req.Role,
		ApprovalStatus: req.ApprovalStatus,
		IsActive:       req.IsActive,
		Chapter:        req.Chapter,
	}

	if req.Password != nil {
		password := strings.TrimSpace(*req.Password)
		if password == "" {
			MissingField(c, "password")
			return
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			logrus.WithError(err).Error("failed to hash password")
			InternalError(c, "failed to update member")
			return
		}
		updates.PasswordHash = &hash
	}

	if updates.IsEmpty() {
		BadRequest(c, ErrCodeInvalidRequest, "no fields to update")
		return
	}

	if err := h.repo.UpdateAccount(ctx, target.ID, updates); err != nil {
		logrus.WithError(err).WithField("member_id", id).Error("failed to update member")
		InternalError(c, "failed to update member")
		return
	}

	updated, err := h.repo.GetAccountByID(ctx, target.ID)
	if err != nil {
		logrus.WithError(err).WithField("member_id", id).Error("failed to reload member")
		InternalError(c, "failed to load member")
		return
	}

	c.JSON(http.StatusOK, makeAccountSummary(updated))
}

// DeleteMember 删除会员账户
func (h *HTTPHandler) DeleteMember(c *gin.Context) {
	id, ok := parseMemberID(c)
	if !ok {
		return
	}

	actor := CurrentAccount(c)
	if actor != nil && actor.ID == id {
		BadRequest(c, ErrCodeCannotDeleteSelf, "cannot delete your own account")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	target, err := h.repo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeMemberNotFound, "member not found")
			return
		}
		logrus.WithError(err).WithField("member_id", id).Error("failed to load member")
		InternalError(c, "failed to load member")
		return
	}

	if target.Role == entity.AccountRoleSuperAdmin && (actor == nil || !actor.IsSuperAdmin()) {
		Forbidden(c, "super admin privileges required")
		return
	}

	if err := h.repo.DeleteAccount(ctx, target.ID); err != nil {
		logrus.WithError(err).WithField("member_id", id).Error("failed to delete member")
		InternalError(c, "failed to delete member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": target.ID})
}

func parseMemberID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid member id")
		return 0, false
	}
	return uint(id), true
}

func isValidRole(role string) bool {
	switch role {
	case entity.AccountRoleSuperAdmin, entity.AccountRoleAdmin, entity.AccountRoleMember:
		return true
	default:
		return false
	}
}

func isValidApprovalStatus(status string) bool {
	switch status {
	case entity.ApprovalStatusPending, entity.ApprovalStatusApproved, entity.ApprovalStatusRejected:
		return true
	default:
		return false
	}
}

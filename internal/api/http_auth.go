package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"alumnihub/internal/auth"
	"alumnihub/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Register creates a member account. It enters the approval workflow:
// approval_status starts pending and email_verified starts false.
func (h *HTTPHandler) Register(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account repository not available"})
		return
	}

	var req entity.AuthRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register account"})
		return
	}

	account := &entity.DbAccount{
		Email:          email,
		PasswordHash:   hash,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Role:           entity.AccountRoleMember,
		ApprovalStatus: entity.ApprovalStatusPending,
		IsActive:       true,
		EmailVerified:  false,
		GraduationYear: req.GraduationYear,
		Degree:         strings.TrimSpace(req.Degree),
		Major:          strings.TrimSpace(req.Major),
		Phone:          strings.TrimSpace(req.Phone),
		Chapter:        strings.TrimSpace(req.Chapter),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		logrus.WithError(err).Error("failed to create account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account": makeAccountSummary(account),
		"message": "registration received; an administrator will review your application",
	})
}

func (h *HTTPHandler) Login(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account repository not available"})
		return
	}

	var req entity.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login payload"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	account, err := h.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).WithField("email", email).Warn("login attempt failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	if err := auth.VerifyPassword(account.PasswordHash, password); err != nil {
		logrus.WithError(err).WithField("email", email).Warn("password verification failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	if !account.IsApproved() {
		c.JSON(http.StatusForbidden, APIError{
			Code:    ErrCodeAccountPending,
			Message: "membership application has not been approved yet",
		})
		return
	}

	if !account.IsActive {
		c.JSON(http.StatusForbidden, APIError{
			Code:    ErrCodeAccountDisabled,
			Message: "account is disabled",
		})
		return
	}

	token, expiresAt, err := h.authManager.GenerateToken(account)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, entity.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   makeAccountSummary(account),
	})
}

func (h *HTTPHandler) AuthStatus(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusOK, entity.AuthStatusResponse{HasAccount: false})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	count, err := h.repo.CountAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to count accounts for auth status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check auth status"})
		return
	}
	c.JSON(http.StatusOK, entity.AuthStatusResponse{HasAccount: count > 0})
}

func (h *HTTPHandler) Me(c *gin.Context) {
	account := CurrentAccount(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbAccount, err := h.repo.GetAccountByID(ctx, account.ID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Error("failed to load account profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, makeAccountSummary(dbAccount))
}

func makeAccountSummary(account *entity.DbAccount) entity.AccountSummary {
	if account == nil {
		return entity.AccountSummary{}
	}
	return entity.AccountSummary{
		ID:             account.ID,
		Email:          account.Email,
		FirstName:      account.FirstName,
		LastName:       account.LastName,
		Role:           account.Role,
		ApprovalStatus: account.ApprovalStatus,
		IsActive:       account.IsActive,
		EmailVerified:  account.EmailVerified,
		ExternalID:     account.ExternalID,
		GraduationYear: account.GraduationYear,
		Chapter:        account.Chapter,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

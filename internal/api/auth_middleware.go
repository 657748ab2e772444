package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"alumnihub/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	currentAccountContextKey = "current-account"
)

// RequestAccount 存储请求上下文中的认证账户信息
type RequestAccount struct {
	ID        uint
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// IsAdmin 判断账户是否具有管理员权限
func (a *RequestAccount) IsAdmin() bool {
	if a == nil {
		return false
	}
	switch a.Role {
	case entity.AccountRoleAdmin, entity.AccountRoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsSuperAdmin 判断账户是否为超级管理员
func (a *RequestAccount) IsSuperAdmin() bool {
	if a == nil {
		return false
	}
	return a.Role == entity.AccountRoleSuperAdmin
}

// AuthMiddleware JWT 认证中间件
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "invalid authorization header format",
			})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		claims, err := h.authManager.ParseToken(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("failed to parse jwt token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeSessionExpired,
				Message: "token invalid or expired",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		account, err := h.repo.GetAccountByID(ctx, claims.AccountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
					Code:    ErrCodeMemberNotFound,
					Message: "account not found",
				})
				return
			}
			logrus.WithError(err).WithField("account_id", claims.AccountID).Error("failed to load account")
			c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
				Code:    ErrCodeInternalError,
				Message: "failed to verify account",
			})
			return
		}

		if !account.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeAccountDisabled,
				Message: "account is disabled",
			})
			return
		}

		requestAccount := &RequestAccount{
			ID:        account.ID,
			Email:     account.Email,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Role:      account.Role,
		}

		c.Set(currentAccountContextKey, requestAccount)
		c.Next()
	}
}

// RequireAdmin 管理员权限守卫中间件
func (h *HTTPHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil || !account.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: "admin privileges required",
			})
			return
		}
		c.Next()
	}
}

// CurrentAccount 从上下文获取当前认证账户
func CurrentAccount(c *gin.Context) *RequestAccount {
	value, exists := c.Get(currentAccountContextKey)
	if !exists {
		return nil
	}
	account, ok := value.(*RequestAccount)
	if !ok {
		return nil
	}
	return account
}

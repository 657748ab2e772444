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

// ListPillars 返回站点使命板块列表（公开接口）
func (h *HTTPHandler) ListPillars(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	pillars, err := h.repo.ListPillars(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list pillars")
		InternalError(c, "failed to load pillars")
		return
	}
	c.JSON(http.StatusOK, entity.PillarListResponse{Pillars: pillars})
}

// GetPillar 按 slug 返回单个板块
func (h *HTTPHandler) GetPillar(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid pillar slug")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	pillar, err := h.repo.GetPillarBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeNotFound, "pillar not found")
			return
		}
		logrus.WithError(err).WithField("slug", slug).Error("failed to load pillar")
		InternalError(c, "failed to load pillar")
		return
	}
	c.JSON(http.StatusOK, pillar)
}

// ListTeam 返回团队成员列表（公开接口）
func (h *HTTPHandler) ListTeam(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	members, err := h.repo.ListTeamMembers(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list team members")
		InternalError(c, "failed to load team")
		return
	}

	items := make([]entity.TeamMemberItem, 0, len(members))
	for _, member := range members {
		items = append(items, entity.TeamMemberItem{
			ID:       member.ID,
			Name:     member.Name,
			Title:    member.Title,
			Bio:      member.Bio,
			PhotoURL: h.publicURL(member.PhotoPath),
		})
	}
	c.JSON(http.StatusOK, entity.TeamListResponse{Team: items})
}

// ListPartners 返回合作伙伴列表（公开接口）
func (h *HTTPHandler) ListPartners(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	partners, err := h.repo.ListPartners(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list partners")
		InternalError(c, "failed to load partners")
		return
	}

	items := make([]entity.PartnerItem, 0, len(partners))
	for _, partner := range partners {
		items = append(items, entity.PartnerItem{
			ID:         partner.ID,
			Name:       partner.Name,
			LogoURL:    h.publicURL(partner.LogoPath),
			WebsiteURL: partner.WebsiteURL,
		})
	}
	c.JSON(http.StatusOK, entity.PartnerListResponse{Partners: items})
}

package api

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"alumnihub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 上传文件大小上限 10MB
const maxUploadBytes = 10 << 20

// UploadMedia 接收管理端上传的媒体文件并写入存储后端
func (h *HTTPHandler) UploadMedia(c *gin.Context) {
	if h.storage == nil {
		ServiceUnavailable(c, "storage backend not available")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		MissingField(c, "file")
		return
	}
	if fileHeader.Size <= 0 || fileHeader.Size > maxUploadBytes {
		BadRequest(c, ErrCodeInvalidRequest, "file is empty or exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("failed to open uploaded file")
		InternalError(c, "failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		logrus.WithError(err).Error("failed to read uploaded file")
		InternalError(c, "failed to read upload")
		return
	}
	if len(data) > maxUploadBytes {
		BadRequest(c, ErrCodeInvalidRequest, "file exceeds the 10MB limit")
		return
	}

	category := strings.TrimSpace(c.PostForm("category"))
	if category == "" {
		category = "uploads"
	}

	ext := filepath.Ext(fileHeader.Filename)
	base := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	path, err := h.storage.Save(ctx, data, storage.SaveOptions{
		Category:  category,
		Extension: ext,
		BaseName:  base,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to save uploaded file")
		InternalError(c, "failed to save upload")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": path,
		"url":  h.publicURL(path),
	})
}

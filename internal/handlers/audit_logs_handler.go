package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dcarehealth/transport-api/internal/httperr"
	"github.com/dcarehealth/transport-api/internal/httpresp"
	"github.com/dcarehealth/transport-api/internal/middleware"
	"github.com/dcarehealth/transport-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the caller's own activity trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var logs []models.AuditLog
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Internal server error")
		return
	}

	httpresp.List(c, logs)
}

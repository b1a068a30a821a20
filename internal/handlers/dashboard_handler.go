package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dcarehealth/transport-api/internal/httperr"
	"github.com/dcarehealth/transport-api/internal/middleware"
	"github.com/dcarehealth/transport-api/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Get composes the dashboard view: user summary plus the patient
// profile, which is null until the user creates one.
func (h *DashboardHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.Preload("Profile").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found")
			return
		}
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}

	var profile any
	if user.Profile != nil {
		profile = user.Profile
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back, %s!", user.Email),
		"user": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"profile": profile,
		},
	})
}

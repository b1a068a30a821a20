package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dcarehealth/transport-api/internal/audit"
	"github.com/dcarehealth/transport-api/internal/httperr"
	"github.com/dcarehealth/transport-api/internal/middleware"
	"github.com/dcarehealth/transport-api/internal/models"
)

type ProfileHandler struct {
	db    *gorm.DB
	audit audit.Recorder
}

func NewProfileHandler(db *gorm.DB, audit audit.Recorder) *ProfileHandler {
	return &ProfileHandler{db: db, audit: audit}
}

// --------- Requests ---------

type SaveProfileRequest struct {
	FullName          string   `json:"fullName" binding:"required"`
	EmergencyContact  string   `json:"emergencyContact" binding:"required"`
	HomeAddress       string   `json:"homeAddress" binding:"required"`
	MedicalConditions []string `json:"medicalConditions"`
	MobilityNeeds     string   `json:"mobilityNeeds" binding:"required,oneof=None Wheelchair Stretcher Walker"`
}

// --------- Handlers ---------

// Save replaces the whole profile row for the authenticated user.
// There is no partial update: the payload is the new profile.
func (h *ProfileHandler) Save(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.MedicalConditions == nil {
		req.MedicalConditions = []string{}
	}

	conditions, err := json.Marshal(req.MedicalConditions)
	if err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Internal server error")
		return
	}

	profile := models.PatientProfile{
		UserID:            userID,
		FullName:          req.FullName,
		EmergencyContact:  req.EmergencyContact,
		HomeAddress:       req.HomeAddress,
		MedicalConditions: datatypes.JSON(conditions),
		MobilityNeeds:     req.MobilityNeeds,
	}

	// Single atomic upsert keyed by the user id.
	if err := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Internal server error")
		return
	}

	var saved models.PatientProfile
	if err := h.db.Where("user_id = ?", userID).First(&saved).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Internal server error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "profile_saved",
		Entity: "patient_profile",
	})

	c.JSON(http.StatusOK, saved)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var profile models.PatientProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "profile_not_found", "No profile has been created yet")
			return
		}
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}

	c.JSON(http.StatusOK, profile)
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dcarehealth/transport-api/internal/audit"
	domainUser "github.com/dcarehealth/transport-api/internal/domain/user"
	"github.com/dcarehealth/transport-api/internal/httperr"
	"github.com/dcarehealth/transport-api/internal/models"
	"github.com/dcarehealth/transport-api/internal/token"
	"github.com/dcarehealth/transport-api/internal/validators"
)

type AuthHandler struct {
	users  domainUser.Repository
	tokens *token.Service
	audit  audit.Recorder

	emailDomainValid func(string) bool
}

func NewAuthHandler(users domainUser.Repository, tokens *token.Service, audit audit.Recorder) *AuthHandler {
	return &AuthHandler{
		users:            users,
		tokens:           tokens,
		audit:            audit,
		emailDomainValid: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	exists, err := h.users.EmailExists(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}
	if exists {
		httperr.Conflict(c, "email_already_registered", "An account with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Internal server error")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, domainUser.ErrEmailTaken) {
			httperr.Conflict(c, "email_already_registered", "An account with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Internal server error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password answer identically, so the
	// endpoint cannot be used to enumerate accounts.
	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domainUser.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
			return
		}
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	tokenString, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Internal server error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

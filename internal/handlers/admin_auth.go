package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/dto"
	apierrors "github.com/taskhive/taskhive-api/internal/errors"
	"github.com/taskhive/taskhive-api/internal/middleware"
	"github.com/taskhive/taskhive-api/internal/services"
)

// AdminAuthHandler coordinates admin authentication HTTP handlers over
// the admin_session cookie namespace.
type AdminAuthHandler struct {
	adminService *services.AdminService
}

// NewAdminAuthHandler creates a new AdminAuthHandler.
func NewAdminAuthHandler(adminService *services.AdminService) *AdminAuthHandler {
	return &AdminAuthHandler{
		adminService: adminService,
	}
}

// Login authenticates an admin and initializes the admin session.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.adminService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAdminAuthError(c, err)
		return
	}

	session := sessions.DefaultMany(c, constants.AdminSessionName)
	session.Set(constants.ContextKeyAdminID, admin.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDTO(*admin))
}

// Logout removes the admin session.
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	session := sessions.DefaultMany(c, constants.AdminSessionName)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// GetCurrentAdmin returns the authenticated admin.
func (h *AdminAuthHandler) GetCurrentAdmin(c *gin.Context) {
	adminID, exists := middleware.GetAdminID(c)
	if !exists {
		apierrors.Unauthorized(c, "Admin authentication required")
		return
	}

	admin, err := h.adminService.GetAdmin(adminID)
	if err != nil {
		respondAdminAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDTO(*admin))
}

// Bootstrap provisions an admin account, gated by the configured shared
// secret. This is a one-off setup mechanism, not a recurring auth path.
func (h *AdminAuthHandler) Bootstrap(c *gin.Context) {
	type BootstrapRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Secret   string `json:"secret_key" binding:"required"`
	}

	var req BootstrapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.adminService.Bootstrap(services.BootstrapInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Secret:   req.Secret,
	})
	if err != nil {
		respondAdminAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdminDTO(*admin))
}

func respondAdminAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrInvalidBootstrapSecret):
		apierrors.Unauthorized(c, "Invalid secret key")
	case errors.Is(err, services.ErrBootstrapDisabled):
		apierrors.Forbidden(c, "Admin bootstrap is disabled")
	case errors.Is(err, services.ErrAdminEmailTaken):
		apierrors.Conflict(c, "Admin with this email already exists")
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, "Password is too short")
	case errors.Is(err, services.ErrAdminNotFound):
		apierrors.NotFound(c, "Admin not found")
	default:
		log.WithError(err).Error("Admin auth operation failed")
		apierrors.InternalError(c, "")
	}
}

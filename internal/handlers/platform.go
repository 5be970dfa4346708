package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	apierrors "github.com/taskhive/taskhive-api/internal/errors"
	"github.com/taskhive/taskhive-api/internal/services"
)

// PlatformHandler manages the platform name registry.
type PlatformHandler struct {
	platformService *services.PlatformService
}

// NewPlatformHandler creates a new PlatformHandler.
func NewPlatformHandler(platformService *services.PlatformService) *PlatformHandler {
	return &PlatformHandler{
		platformService: platformService,
	}
}

// ListPlatforms returns all registered platform names, alphabetical.
func (h *PlatformHandler) ListPlatforms(c *gin.Context) {
	names, err := h.platformService.List()
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"platforms": names})
}

// AddPlatform registers a new platform name.
func (h *PlatformHandler) AddPlatform(c *gin.Context) {
	type AddPlatformRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req AddPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	name, err := h.platformService.Add(req.Name)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"name":    name,
	})
}

// RemovePlatform deletes a platform name. Tasks tagged with the name
// keep it; removing an unknown name still succeeds.
func (h *PlatformHandler) RemovePlatform(c *gin.Context) {
	name := c.Param("name")

	if err := h.platformService.Remove(name); err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Platform removed successfully",
	})
}

func respondPlatformError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPlatformNameRequired):
		apierrors.BadRequest(c, "Platform name is required")
	case errors.Is(err, services.ErrDuplicatePlatform):
		apierrors.Conflict(c, "Platform already exists")
	default:
		log.WithError(err).Error("Platform operation failed")
		apierrors.InternalError(c, "")
	}
}

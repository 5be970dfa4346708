package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	apierrors "github.com/taskhive/taskhive-api/internal/errors"
	"github.com/taskhive/taskhive-api/internal/services"
)

// BootstrapHandler exposes the demo-data seeding endpoint.
type BootstrapHandler struct {
	bootstrapService *services.BootstrapService
}

// NewBootstrapHandler creates a new BootstrapHandler.
func NewBootstrapHandler(bootstrapService *services.BootstrapService) *BootstrapHandler {
	return &BootstrapHandler{
		bootstrapService: bootstrapService,
	}
}

// Seed provisions default platforms and, on an empty deployment, a demo
// user with sample tasks. Safe to call repeatedly.
func (h *BootstrapHandler) Seed(c *gin.Context) {
	result, err := h.bootstrapService.Seed()
	if err != nil {
		log.WithError(err).Error("Seeding failed")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"demo_user_created":    result.DemoUserCreated,
		"sample_tasks_created": result.SampleTasksCreated,
	})
}

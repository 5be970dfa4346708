package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/dto"
	apierrors "github.com/taskhive/taskhive-api/internal/errors"
	"github.com/taskhive/taskhive-api/internal/middleware"
	"github.com/taskhive/taskhive-api/internal/services"
	"github.com/taskhive/taskhive-api/internal/utils"
)

// EventHandler serves event reads for users and mutations for admins.
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

type eventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	ImageURL    string    `json:"image_url"`
}

func (r eventRequest) toInput() services.EventInput {
	return services.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
	}
}

// ListEvents returns every event, date ascending.
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": dto.ToEventDTOs(events)})
}

// ListUpcoming returns events dated now or later, soonest first.
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	limit := utils.ParseLimit(c, constants.DefaultUpcomingEventsLimit)

	events, err := h.eventService.ListUpcoming(limit)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": dto.ToEventDTOs(events)})
}

// CreateEvent records a new event attributed to the current admin.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	adminID, exists := middleware.GetAdminID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.CreateEvent(req.toInput(), adminID)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDTO(*event))
}

// UpdateEvent replaces an event's fields.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.UpdateEvent(eventID, req.toInput())
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event))
}

// DeleteEvent removes an event.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(eventID); err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event deleted successfully",
	})
}

func respondEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEventTitleRequired),
		errors.Is(err, services.ErrEventDateRequired),
		errors.Is(err, services.ErrEventLocationRequired):
		apierrors.BadRequest(c, "Missing required field")
	case errors.Is(err, services.ErrEventNotFound):
		apierrors.NotFound(c, "Event not found")
	default:
		log.WithError(err).Error("Event operation failed")
		apierrors.InternalError(c, "")
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/dto"
	apierrors "github.com/taskhive/taskhive-api/internal/errors"
	"github.com/taskhive/taskhive-api/internal/services"
	"github.com/taskhive/taskhive-api/internal/utils"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetUserStats returns total, active, and new user counts.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	stats, err := h.statsService.GetUserStats()
	if err != nil {
		log.WithError(err).Error("Failed to compute user stats")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserStatsDTO(stats))
}

// GetTaskStats returns status, platform, and per-day task breakdowns.
func (h *StatsHandler) GetTaskStats(c *gin.Context) {
	stats, err := h.statsService.GetTaskStats()
	if err != nil {
		log.WithError(err).Error("Failed to compute task stats")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskStatsDTO(stats))
}

// GetRecentTasks returns the newest tasks with owner info, or a null
// user when the owner no longer exists.
func (h *StatsHandler) GetRecentTasks(c *gin.Context) {
	limit := utils.ParseLimit(c, constants.DefaultRecentTasksLimit)

	rows, err := h.statsService.GetRecentTasks(limit)
	if err != nil {
		log.WithError(err).Error("Failed to list recent tasks")
		apierrors.InternalError(c, "")
		return
	}

	dtos := make([]dto.RecentTaskDTO, len(rows))
	for i, row := range rows {
		dtos[i] = dto.ToRecentTaskDTO(row)
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dtos})
}

// GetTopUsers returns the heaviest task owners, busiest first.
func (h *StatsHandler) GetTopUsers(c *gin.Context) {
	limit := utils.ParseLimit(c, constants.DefaultTopUsersLimit)

	rows, err := h.statsService.GetTopUsers(limit)
	if err != nil {
		log.WithError(err).Error("Failed to list top users")
		apierrors.InternalError(c, "")
		return
	}

	dtos := make([]dto.TopUserDTO, len(rows))
	for i, row := range rows {
		dtos[i] = dto.ToTopUserDTO(row)
	}

	c.JSON(http.StatusOK, gin.H{"users": dtos})
}

// ListUsersWithCounts returns every user with its task count for the
// admin user-management view.
func (h *StatsHandler) ListUsersWithCounts(c *gin.Context) {
	rows, err := h.statsService.GetAllUsersWithCounts()
	if err != nil {
		log.WithError(err).Error("Failed to list users with counts")
		apierrors.InternalError(c, "")
		return
	}

	dtos := make([]dto.AdminUserDTO, len(rows))
	for i, row := range rows {
		dtos[i] = dto.ToAdminUserDTO(row.User, row.TaskCount)
	}

	c.JSON(http.StatusOK, gin.H{"users": dtos})
}

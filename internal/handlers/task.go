package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/taskhive/taskhive-api/internal/dto"
	apierrors "github.com/taskhive/taskhive-api/internal/errors"
	"github.com/taskhive/taskhive-api/internal/middleware"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/services"
)

// TaskHandler coordinates task CRUD and the shared dashboard listing.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// taskRequest is the write shape shared by create and update.
type taskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Platform    string    `json:"platform" binding:"required"`
	SubPlatform string    `json:"sub_platform"`
	Status      string    `json:"status"`
	Assignee    string    `json:"assignee" binding:"required"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

func (r taskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Platform:    r.Platform,
		SubPlatform: r.SubPlatform,
		Status:      models.TaskStatus(r.Status),
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
	}
}

// ListTasks returns every user's tasks, due date ascending, optionally
// filtered by exact platform name (?platform=all disables the filter).
func (h *TaskHandler) ListTasks(c *gin.Context) {
	platform := c.DefaultQuery("platform", "all")

	rows, err := h.taskService.ListTasks(platform)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	dtos := make([]dto.TaskWithOwnerDTO, len(rows))
	for i, row := range rows {
		dtos[i] = dto.ToTaskWithOwnerDTO(row)
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dtos})
}

// CreateTask creates a new task owned by the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(req.toInput(), userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask replaces a task's writable fields; owner-scoped.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(taskID, req.toInput(), userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateStatus moves a task to one of the three statuses; owner-scoped.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type StatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateStatus(taskID, models.TaskStatus(req.Status), userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task; owner-scoped and irreversible.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(taskID, userID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// AdminDeleteTask removes any task regardless of owner.
func (h *TaskHandler) AdminDeleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.AdminDeleteTask(taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrPlatformRequired),
		errors.Is(err, services.ErrAssigneeRequired),
		errors.Is(err, services.ErrDueDateRequired):
		apierrors.BadRequest(c, "Missing required field")
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, "Status must be todo, in-progress, or done")
	case errors.Is(err, services.ErrTaskNotOwned):
		// Ownership violation and missing record are deliberately the
		// same answer.
		apierrors.NotFound(c, "Task not found or you do not have permission to modify it")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		log.WithError(err).Error("Task operation failed")
		apierrors.InternalError(c, "")
	}
}

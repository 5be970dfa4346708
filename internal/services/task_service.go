package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotOwned     = errors.New("task not found or not owned by user")
	ErrTitleRequired    = errors.New("title is required")
	ErrPlatformRequired = errors.New("platform is required")
	ErrAssigneeRequired = errors.New("assignee is required")
	ErrDueDateRequired  = errors.New("due date is required")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrTaskNotFound     = errors.New("task not found")
)

// UnknownOwnerName is shown when a task's creating user no longer exists.
const UnknownOwnerName = "Unknown User"

// TaskService handles task business logic. Listing is visible to every
// authenticated user; create, update, and delete are scoped to the owner.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// TaskInput carries the writable task fields.
type TaskInput struct {
	Title       string
	Description string
	Platform    string
	SubPlatform string
	Status      models.TaskStatus
	Assignee    string
	DueDate     time.Time
}

// TaskWithOwner is a task joined with its creating user's display name.
type TaskWithOwner struct {
	Task      models.Task
	OwnerName string
}

func validateTaskInput(input *TaskInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Platform = strings.TrimSpace(input.Platform)
	input.Assignee = strings.TrimSpace(input.Assignee)

	switch {
	case input.Title == "":
		return ErrTitleRequired
	case input.Platform == "":
		return ErrPlatformRequired
	case input.Assignee == "":
		return ErrAssigneeRequired
	case input.DueDate.IsZero():
		return ErrDueDateRequired
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// CreateTask creates a new task owned by userID.
func (s *TaskService) CreateTask(input TaskInput, userID uint64) (*models.Task, error) {
	if err := validateTaskInput(&input); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Platform:    input.Platform,
		SubPlatform: input.SubPlatform,
		Status:      input.Status,
		Assignee:    input.Assignee,
		DueDate:     input.DueDate,
		UserID:      userID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns every user's tasks, due date ascending, each annotated
// with the creating user's name. platform filters by exact name; "all" or
// empty disables the filter.
func (s *TaskService) ListTasks(platform string) ([]TaskWithOwner, error) {
	filter := repository.TaskFilter{}
	if platform != "" && platform != "all" {
		filter.Platform = &platform
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	names, err := s.ownerNames(tasks)
	if err != nil {
		return nil, err
	}

	rows := make([]TaskWithOwner, len(tasks))
	for i, task := range tasks {
		name, ok := names[task.UserID]
		if !ok {
			name = UnknownOwnerName
		}
		rows[i] = TaskWithOwner{Task: task, OwnerName: name}
	}

	return rows, nil
}

// UpdateTask replaces the writable fields of a task owned by userID.
func (s *TaskService) UpdateTask(taskID uint64, input TaskInput, userID uint64) (*models.Task, error) {
	if err := validateTaskInput(&input); err != nil {
		return nil, err
	}

	task, err := s.findOwned(taskID, userID)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Platform = input.Platform
	task.SubPlatform = input.SubPlatform
	task.Status = input.Status
	task.Assignee = input.Assignee
	task.DueDate = input.DueDate

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// UpdateStatus sets the status of a task owned by userID. Any status can
// be reached from any status.
func (s *TaskService) UpdateStatus(taskID uint64, status models.TaskStatus, userID uint64) (*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.findOwned(taskID, userID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task owned by userID. Deletion is immediate and
// irreversible.
func (s *TaskService) DeleteTask(taskID, userID uint64) error {
	rows, err := s.taskRepo.DeleteOwned(taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotOwned
	}
	return nil
}

// AdminDeleteTask removes any task regardless of owner.
func (s *TaskService) AdminDeleteTask(taskID uint64) error {
	rows, err := s.taskRepo.Delete(taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *TaskService) findOwned(taskID, userID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotOwned
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ownerNames resolves the display names for every distinct owner in tasks
// with a single batched lookup.
func (s *TaskService) ownerNames(tasks []models.Task) (map[uint64]string, error) {
	seen := make(map[uint64]struct{}, len(tasks))
	ids := make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		if _, ok := seen[task.UserID]; ok {
			continue
		}
		seen[task.UserID] = struct{}{}
		ids = append(ids, task.UserID)
	}

	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve task owners: %w", err)
	}

	names := make(map[uint64]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}
	return names, nil
}

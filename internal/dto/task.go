package dto

import (
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/services"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Platform    string            `json:"platform"`
	SubPlatform string            `json:"sub_platform"`
	Status      models.TaskStatus `json:"status"`
	Assignee    string            `json:"assignee"`
	DueDate     string            `json:"due_date"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// TaskWithOwnerDTO is a task in the shared dashboard listing, annotated
// with the creating user's display name.
type TaskWithOwnerDTO struct {
	TaskDTO
	UserName string `json:"user_name"`
}

// TaskUserDTO is the abbreviated owner reference on admin task views
type TaskUserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RecentTaskDTO is a task row on the admin dashboard. User is null when
// the owner has been deleted.
type RecentTaskDTO struct {
	TaskDTO
	User *TaskUserDTO `json:"user"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          formatID(task.ID),
		Title:       task.Title,
		Description: task.Description,
		Platform:    task.Platform,
		SubPlatform: task.SubPlatform,
		Status:      task.Status,
		Assignee:    task.Assignee,
		DueDate:     formatTime(task.DueDate),
		CreatedAt:   formatTime(task.CreatedAt),
		UpdatedAt:   formatTime(task.UpdatedAt),
	}
}

// ToTaskWithOwnerDTO converts a service listing row to TaskWithOwnerDTO
func ToTaskWithOwnerDTO(row services.TaskWithOwner) TaskWithOwnerDTO {
	return TaskWithOwnerDTO{
		TaskDTO:  ToTaskDTO(row.Task),
		UserName: row.OwnerName,
	}
}

// ToRecentTaskDTO converts a service recent-task row to RecentTaskDTO
func ToRecentTaskDTO(row services.RecentTask) RecentTaskDTO {
	dto := RecentTaskDTO{
		TaskDTO: ToTaskDTO(row.Task),
	}
	if row.User != nil {
		dto.User = &TaskUserDTO{
			ID:    formatID(row.User.ID),
			Name:  row.User.Name,
			Email: row.User.Email,
		}
	}
	return dto
}

package dto

import (
	"strconv"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
)

// Public shapes use string ids and RFC 3339 timestamps.

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// AdminDTO represents an admin in API responses
type AdminDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminUserDTO represents a user row in the admin user-management view
type AdminUserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	TaskCount int64  `json:"task_count"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        formatID(user.ID),
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}
}

// ToAdminDTO converts an Admin model to AdminDTO
func ToAdminDTO(admin models.Admin) AdminDTO {
	return AdminDTO{
		ID:    formatID(admin.ID),
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
	}
}

// ToAdminUserDTO converts a User model plus its task count to AdminUserDTO
func ToAdminUserDTO(user models.User, taskCount int64) AdminUserDTO {
	return AdminUserDTO{
		ID:        formatID(user.ID),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: formatTime(user.CreatedAt),
		TaskCount: taskCount,
	}
}

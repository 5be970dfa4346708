package dto

import "github.com/taskhive/taskhive-api/internal/services"

// UserStatsDTO is the admin dashboard user summary
type UserStatsDTO struct {
	TotalUsers  int64 `json:"total_users"`
	ActiveUsers int64 `json:"active_users"`
	NewUsers    int64 `json:"new_users"`
}

// DayCountDTO is one point of the tasks-per-day series. Dates with no
// tasks are absent; consumers treat missing dates as zero.
type DayCountDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TaskStatsDTO is the admin dashboard task summary
type TaskStatsDTO struct {
	Total      int64            `json:"total"`
	Todo       int64            `json:"todo"`
	InProgress int64            `json:"in_progress"`
	Completed  int64            `json:"completed"`
	ByPlatform map[string]int64 `json:"by_platform"`
	ByDate     []DayCountDTO    `json:"by_date"`
}

// TopUserDTO is one row of the top-users-by-task-count board
type TopUserDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TotalTasks     int64  `json:"total_tasks"`
	CompletedTasks int64  `json:"completed_tasks"`
}

// ToUserStatsDTO converts service user stats
func ToUserStatsDTO(stats services.UserStats) UserStatsDTO {
	return UserStatsDTO{
		TotalUsers:  stats.TotalUsers,
		ActiveUsers: stats.ActiveUsers,
		NewUsers:    stats.NewUsers,
	}
}

// ToTaskStatsDTO converts service task stats
func ToTaskStatsDTO(stats services.TaskStats) TaskStatsDTO {
	byDate := make([]DayCountDTO, len(stats.ByDate))
	for i, day := range stats.ByDate {
		byDate[i] = DayCountDTO{Date: day.Date, Count: day.Count}
	}
	return TaskStatsDTO{
		Total:      stats.Total,
		Todo:       stats.Todo,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		ByPlatform: stats.ByPlatform,
		ByDate:     byDate,
	}
}

// ToTopUserDTO converts one service top-user row
func ToTopUserDTO(row services.TopUser) TopUserDTO {
	return TopUserDTO{
		ID:             formatID(row.User.ID),
		Name:           row.User.Name,
		Email:          row.User.Email,
		TotalTasks:     row.TotalTasks,
		CompletedTasks: row.CompletedTasks,
	}
}

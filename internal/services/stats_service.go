package services

import (
	"fmt"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
)

// StatsService computes the admin dashboard aggregates. It holds no state
// and every call reflects the store at call time.
type StatsService struct {
	statsRepo repository.StatsRepository
	taskRepo  repository.TaskRepository
	userRepo  repository.UserRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(statsRepo repository.StatsRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		taskRepo:  taskRepo,
		userRepo:  userRepo,
	}
}

// UserStats summarizes the user base over a rolling 30-day window.
type UserStats struct {
	TotalUsers  int64
	ActiveUsers int64
	NewUsers    int64
}

// DayCount is one point of the tasks-per-day series.
type DayCount struct {
	Date  string
	Count int64
}

// TaskStats summarizes the task pool.
type TaskStats struct {
	Total      int64
	Todo       int64
	InProgress int64
	Completed  int64
	ByPlatform map[string]int64
	ByDate     []DayCount
}

// RecentTask is a task joined with its creating user. User is nil when
// the owner has been deleted.
type RecentTask struct {
	Task models.Task
	User *models.User
}

// TopUser is one row of the top-users-by-task-count board.
type TopUser struct {
	User           models.User
	TotalTasks     int64
	CompletedTasks int64
}

// GetUserStats returns total, active, and new user counts. Active means
// owning a task updated within the last 30 days.
func (s *StatsService) GetUserStats() (UserStats, error) {
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	total, err := s.statsRepo.CountUsers()
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to count users: %w", err)
	}

	active, err := s.statsRepo.CountActiveUsersSince(thirtyDaysAgo)
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to count active users: %w", err)
	}

	newUsers, err := s.statsRepo.CountUsersCreatedSince(thirtyDaysAgo)
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to count new users: %w", err)
	}

	return UserStats{
		TotalUsers:  total,
		ActiveUsers: active,
		NewUsers:    newUsers,
	}, nil
}

// GetTaskStats returns status, platform, and trailing-7-day breakdowns.
// Days with no tasks are absent from ByDate rather than zero-filled.
func (s *StatsService) GetTaskStats() (TaskStats, error) {
	stats := TaskStats{}

	var err error
	if stats.Total, err = s.statsRepo.CountTasks(); err != nil {
		return TaskStats{}, fmt.Errorf("failed to count tasks: %w", err)
	}
	if stats.Todo, err = s.statsRepo.CountTasksByStatus(models.TaskStatusTodo); err != nil {
		return TaskStats{}, fmt.Errorf("failed to count todo tasks: %w", err)
	}
	if stats.InProgress, err = s.statsRepo.CountTasksByStatus(models.TaskStatusInProgress); err != nil {
		return TaskStats{}, fmt.Errorf("failed to count in-progress tasks: %w", err)
	}
	if stats.Completed, err = s.statsRepo.CountTasksByStatus(models.TaskStatusDone); err != nil {
		return TaskStats{}, fmt.Errorf("failed to count done tasks: %w", err)
	}

	platformCounts, err := s.statsRepo.CountTasksByPlatform()
	if err != nil {
		return TaskStats{}, fmt.Errorf("failed to count tasks by platform: %w", err)
	}
	stats.ByPlatform = make(map[string]int64, len(platformCounts))
	for _, row := range platformCounts {
		stats.ByPlatform[row.Platform] = row.Count
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	dayCounts, err := s.statsRepo.CountTasksByDay(sevenDaysAgo)
	if err != nil {
		return TaskStats{}, fmt.Errorf("failed to count tasks by day: %w", err)
	}
	stats.ByDate = make([]DayCount, len(dayCounts))
	for i, row := range dayCounts {
		stats.ByDate[i] = DayCount{
			Date:  string(row.Day),
			Count: row.Count,
		}
	}

	return stats, nil
}

// GetRecentTasks returns the newest limit tasks joined with their owners.
func (s *StatsService) GetRecentTasks(limit int) ([]RecentTask, error) {
	tasks, err := s.taskRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tasks: %w", err)
	}

	users, err := s.ownersByID(taskOwnerIDs(tasks))
	if err != nil {
		return nil, err
	}

	rows := make([]RecentTask, len(tasks))
	for i, task := range tasks {
		row := RecentTask{Task: task}
		if user, ok := users[task.UserID]; ok {
			row.User = user
		}
		rows[i] = row
	}

	return rows, nil
}

// GetTopUsers returns up to limit users ordered by task volume. Users
// with no tasks never appear, and owners that were deleted after creating
// tasks are filtered out.
func (s *StatsService) GetTopUsers(limit int) ([]TopUser, error) {
	counts, err := s.statsRepo.TopTaskOwners(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank task owners: %w", err)
	}

	ids := make([]uint64, len(counts))
	for i, row := range counts {
		ids[i] = row.UserID
	}

	users, err := s.ownersByID(ids)
	if err != nil {
		return nil, err
	}

	rows := make([]TopUser, 0, len(counts))
	for _, row := range counts {
		user, ok := users[row.UserID]
		if !ok {
			continue
		}
		rows = append(rows, TopUser{
			User:           *user,
			TotalTasks:     row.Total,
			CompletedTasks: row.Completed,
		})
	}

	return rows, nil
}

// UserWithTaskCount is a user row in the admin user-management view.
type UserWithTaskCount struct {
	User      models.User
	TaskCount int64
}

// GetAllUsersWithCounts returns every user, newest first, each with its
// task count.
func (s *StatsService) GetAllUsersWithCounts() ([]UserWithTaskCount, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	counts, err := s.statsRepo.CountTasksPerUser()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks per user: %w", err)
	}

	rows := make([]UserWithTaskCount, len(users))
	for i, user := range users {
		rows[i] = UserWithTaskCount{
			User:      user,
			TaskCount: counts[user.ID],
		}
	}

	return rows, nil
}

func taskOwnerIDs(tasks []models.Task) []uint64 {
	seen := make(map[uint64]struct{}, len(tasks))
	ids := make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		if _, ok := seen[task.UserID]; ok {
			continue
		}
		seen[task.UserID] = struct{}{}
		ids = append(ids, task.UserID)
	}
	return ids
}

func (s *StatsService) ownersByID(ids []uint64) (map[uint64]*models.User, error) {
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owners: %w", err)
	}

	byID := make(map[uint64]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	return byID, nil
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type statsTestEnv struct {
	db      *gorm.DB
	service *StatsService
}

func setupStatsTestEnv(t *testing.T) statsTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Task{})
	require.NoError(t, err)

	service := NewStatsService(
		repository.NewStatsRepository(db),
		repository.NewTaskRepository(db),
		repository.NewUserRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return statsTestEnv{db: db, service: service}
}

func (env statsTestEnv) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email, PasswordHash: "x"}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env statsTestEnv) createTask(t *testing.T, userID uint64, platform string, status models.TaskStatus) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:    "task",
		Platform: platform,
		Status:   status,
		Assignee: "Someone",
		DueDate:  time.Now().AddDate(0, 0, 7),
		UserID:   userID,
	}
	require.NoError(t, env.db.Create(task).Error)
	return task
}

func TestStatsService_GetTaskStats(t *testing.T) {
	env := setupStatsTestEnv(t)
	user := env.createUser(t, "Owner", "owner@example.com")

	env.createTask(t, user.ID, "Twitter", models.TaskStatusTodo)
	env.createTask(t, user.ID, "Twitter", models.TaskStatusInProgress)
	env.createTask(t, user.ID, "LinkedIn", models.TaskStatusDone)
	env.createTask(t, user.ID, "LinkedIn", models.TaskStatusDone)

	stats, err := env.service.GetTaskStats()
	require.NoError(t, err)

	require.Equal(t, int64(4), stats.Total)
	require.Equal(t, int64(1), stats.Todo)
	require.Equal(t, int64(1), stats.InProgress)
	require.Equal(t, int64(2), stats.Completed)
	require.Equal(t, stats.Total, stats.Todo+stats.InProgress+stats.Completed)

	require.Equal(t, int64(2), stats.ByPlatform["Twitter"])
	require.Equal(t, int64(2), stats.ByPlatform["LinkedIn"])

	// Everything was created just now, so the series has exactly one
	// point; empty days never appear as zeros.
	require.Len(t, stats.ByDate, 1)
	require.Equal(t, time.Now().Format("2006-01-02"), stats.ByDate[0].Date)
	require.Equal(t, int64(4), stats.ByDate[0].Count)
}

func TestStatsService_GetUserStats(t *testing.T) {
	env := setupStatsTestEnv(t)

	active := env.createUser(t, "Active", "active@example.com")
	env.createUser(t, "Idle", "idle@example.com")
	env.createTask(t, active.ID, "Twitter", models.TaskStatusTodo)

	stats, err := env.service.GetUserStats()
	require.NoError(t, err)

	require.Equal(t, int64(2), stats.TotalUsers)
	require.Equal(t, int64(1), stats.ActiveUsers, "only task owners with recent activity count")
	require.Equal(t, int64(2), stats.NewUsers, "both accounts were created inside the window")
}

func TestStatsService_GetTopUsers(t *testing.T) {
	env := setupStatsTestEnv(t)

	heavy := env.createUser(t, "Heavy", "heavy@example.com")
	light := env.createUser(t, "Light", "light@example.com")
	env.createUser(t, "None", "none@example.com")

	env.createTask(t, heavy.ID, "Twitter", models.TaskStatusDone)
	env.createTask(t, heavy.ID, "Twitter", models.TaskStatusDone)
	env.createTask(t, heavy.ID, "Twitter", models.TaskStatusTodo)
	env.createTask(t, light.ID, "LinkedIn", models.TaskStatusTodo)

	rows, err := env.service.GetTopUsers(5)
	require.NoError(t, err)

	require.Len(t, rows, 2, "users with no tasks never appear")
	require.Equal(t, "Heavy", rows[0].User.Name)
	require.Equal(t, int64(3), rows[0].TotalTasks)
	require.Equal(t, int64(2), rows[0].CompletedTasks)
	require.Equal(t, "Light", rows[1].User.Name)
}

func TestStatsService_GetTopUsers_TiesAndLimit(t *testing.T) {
	env := setupStatsTestEnv(t)

	first := env.createUser(t, "First", "first@example.com")
	second := env.createUser(t, "Second", "second@example.com")
	third := env.createUser(t, "Third", "third@example.com")

	for _, user := range []*models.User{first, second, third} {
		env.createTask(t, user.ID, "Twitter", models.TaskStatusTodo)
		env.createTask(t, user.ID, "Twitter", models.TaskStatusTodo)
	}

	rows, err := env.service.GetTopUsers(2)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.Equal(t, first.ID, rows[0].User.ID, "ties break toward the older account")
	require.Equal(t, second.ID, rows[1].User.ID)
}

func TestStatsService_GetTopUsers_DeletedOwnerFiltered(t *testing.T) {
	env := setupStatsTestEnv(t)

	ghost := env.createUser(t, "Ghost", "ghost@example.com")
	alive := env.createUser(t, "Alive", "alive@example.com")
	env.createTask(t, ghost.ID, "Twitter", models.TaskStatusTodo)
	env.createTask(t, ghost.ID, "Twitter", models.TaskStatusTodo)
	env.createTask(t, alive.ID, "LinkedIn", models.TaskStatusTodo)

	require.NoError(t, env.db.Delete(&models.User{}, ghost.ID).Error)

	rows, err := env.service.GetTopUsers(5)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	require.Equal(t, "Alive", rows[0].User.Name)
}

func TestStatsService_GetRecentTasks(t *testing.T) {
	env := setupStatsTestEnv(t)

	ghost := env.createUser(t, "Ghost", "ghost@example.com")
	alive := env.createUser(t, "Alive", "alive@example.com")
	env.createTask(t, ghost.ID, "Twitter", models.TaskStatusTodo)
	env.createTask(t, alive.ID, "LinkedIn", models.TaskStatusTodo)

	require.NoError(t, env.db.Delete(&models.User{}, ghost.ID).Error)

	rows, err := env.service.GetRecentTasks(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byPlatform := map[string]RecentTask{}
	for _, row := range rows {
		byPlatform[row.Task.Platform] = row
	}
	require.Nil(t, byPlatform["Twitter"].User, "deleted owner surfaces as null")
	require.NotNil(t, byPlatform["LinkedIn"].User)
	require.Equal(t, "Alive", byPlatform["LinkedIn"].User.Name)
}

func TestStatsService_GetAllUsersWithCounts(t *testing.T) {
	env := setupStatsTestEnv(t)

	busy := env.createUser(t, "Busy", "busy@example.com")
	env.createUser(t, "Idle", "idle@example.com")
	env.createTask(t, busy.ID, "Twitter", models.TaskStatusTodo)
	env.createTask(t, busy.ID, "Twitter", models.TaskStatusDone)

	rows, err := env.service.GetAllUsersWithCounts()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.User.Name] = row.TaskCount
	}
	require.Equal(t, int64(2), counts["Busy"])
	require.Equal(t, int64(0), counts["Idle"])
}

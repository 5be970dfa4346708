package repository

import (
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"gorm.io/gorm"
)

// GormStatsRepository is a GORM implementation of StatsRepository
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &GormStatsRepository{db: db}
}

// CountUsers counts all users
func (r *GormStatsRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountUsersCreatedSince counts users created at or after t
func (r *GormStatsRepository) CountUsersCreatedSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

// CountActiveUsersSince counts users owning at least one task whose
// updated_at is at or after t. Activity is keyed to the task update
// timestamp, not the due date.
func (r *GormStatsRepository) CountActiveUsersSince(t time.Time) (int64, error) {
	owners := r.db.Model(&models.Task{}).
		Select("user_id").
		Where("updated_at >= ?", t)

	var count int64
	err := r.db.Model(&models.User{}).
		Where("id IN (?)", owners).
		Count(&count).Error
	return count, err
}

// CountTasks counts all tasks
func (r *GormStatsRepository) CountTasks() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}

// CountTasksByStatus counts tasks with the given status
func (r *GormStatsRepository) CountTasksByStatus(status models.TaskStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountTasksByPlatform groups all tasks by their platform string. Values
// that were never registered, or whose registry entry has since been
// removed, still show up here.
func (r *GormStatsRepository) CountTasksByPlatform() ([]PlatformCount, error) {
	var rows []PlatformCount
	err := r.db.Model(&models.Task{}).
		Select("platform, COUNT(*) AS count").
		Group("platform").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountTasksByDay groups tasks created at or after since by calendar date,
// ascending. Days with no tasks produce no row.
func (r *GormStatsRepository) CountTasksByDay(since time.Time) ([]DayCount, error) {
	var rows []DayCount
	err := r.db.Model(&models.Task{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopTaskOwners groups tasks by owner with total and completed counts.
// Ties on total break on owner id so repeated calls over unchanged data
// return the same order.
func (r *GormStatsRepository) TopTaskOwners(limit int) ([]OwnerTaskCount, error) {
	var rows []OwnerTaskCount
	err := r.db.Model(&models.Task{}).
		Select("user_id, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed", models.TaskStatusDone).
		Group("user_id").
		Order("total DESC, user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountTasksPerUser returns the task count for every owner with at least
// one task
func (r *GormStatsRepository) CountTasksPerUser() (map[uint64]int64, error) {
	var rows []struct {
		UserID uint64
		Count  int64
	}
	err := r.db.Model(&models.Task{}).
		Select("user_id, COUNT(*) AS count").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}

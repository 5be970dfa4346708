package repository

import (
	"github.com/taskhive/taskhive-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindOwned finds a task matching both id and owner
func (r *GormTaskRepository) FindOwned(id, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks for every user, due date ascending. Listing is
// global across users; only mutations are owner-scoped.
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	query := r.db.Model(&models.Task{})

	if filter.Platform != nil {
		query = query.Where("platform = ?", *filter.Platform)
	}

	var tasks []models.Task
	if err := query.Order("due_date ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListRecent retrieves the most recently created tasks, capped at limit
func (r *GormTaskRepository) ListRecent(limit int) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// DeleteOwned deletes a task scoped to its owner
func (r *GormTaskRepository) DeleteOwned(id, userID uint64) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	return res.RowsAffected, res.Error
}

// Delete deletes a task regardless of owner
func (r *GormTaskRepository) Delete(id uint64) (int64, error) {
	res := r.db.Delete(&models.Task{}, id)
	return res.RowsAffected, res.Error
}

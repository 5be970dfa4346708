package repository

import (
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

// Create creates a new event
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// FindByID finds an event by ID
func (r *GormEventRepository) FindByID(id uint64) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListAll lists all events, date ascending
func (r *GormEventRepository) ListAll() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListUpcoming lists events with date >= from, ascending, capped at limit.
// An event dated exactly at from is included.
func (r *GormEventRepository) ListUpcoming(from time.Time, limit int) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Where("date >= ?", from).Order("date ASC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update updates an event
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete deletes an event
func (r *GormEventRepository) Delete(id uint64) (int64, error) {
	res := r.db.Delete(&models.Event{}, id)
	return res.RowsAffected, res.Error
}

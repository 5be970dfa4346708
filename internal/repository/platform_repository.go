package repository

import (
	"github.com/taskhive/taskhive-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPlatformRepository is a GORM implementation of PlatformRepository
type GormPlatformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository creates a new PlatformRepository
func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &GormPlatformRepository{db: db}
}

// ListNames lists platform names alphabetically
func (r *GormPlatformRepository) ListNames() ([]string, error) {
	var names []string
	if err := r.db.Model(&models.Platform{}).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// FindByNameFold finds a platform by case-insensitive name match
func (r *GormPlatformRepository) FindByNameFold(name string) (*models.Platform, error) {
	var platform models.Platform
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&platform).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}

// Create inserts a new platform
func (r *GormPlatformRepository) Create(platform *models.Platform) error {
	return r.db.Create(platform).Error
}

// DeleteByName removes a platform by exact name
func (r *GormPlatformRepository) DeleteByName(name string) (int64, error) {
	res := r.db.Where("name = ?", name).Delete(&models.Platform{})
	return res.RowsAffected, res.Error
}

// Count counts registered platforms
func (r *GormPlatformRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Platform{}).Count(&count).Error
	return count, err
}

// SeedDefaults inserts the given names, skipping any already present.
// The conflict-ignoring insert plus the unique index on name keeps two
// concurrent first-run seeds from producing duplicates.
func (r *GormPlatformRepository) SeedDefaults(names []string) error {
	platforms := make([]models.Platform, len(names))
	for i, name := range names {
		platforms[i] = models.Platform{Name: name}
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&platforms).Error
}

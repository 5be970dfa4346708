package services

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDuplicatePlatform    = errors.New("platform already exists")
	ErrPlatformNameRequired = errors.New("platform name is required")
)

// PlatformService maintains the registry of platform tags. Tasks reference
// platforms by name only, so removing a registry entry never touches tasks.
type PlatformService struct {
	platformRepo repository.PlatformRepository
}

// NewPlatformService creates a new PlatformService.
func NewPlatformService(platformRepo repository.PlatformRepository) *PlatformService {
	return &PlatformService{
		platformRepo: platformRepo,
	}
}

// List returns all platform names, alphabetical.
func (s *PlatformService) List() ([]string, error) {
	names, err := s.platformRepo.ListNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	return names, nil
}

// Add registers a new platform name and returns it as stored. Duplicates
// are checked case-insensitively, so "twitter" collides with "Twitter".
func (s *PlatformService) Add(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrPlatformNameRequired
	}

	if _, err := s.platformRepo.FindByNameFold(name); err == nil {
		return "", ErrDuplicatePlatform
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check platform: %w", err)
	}

	if err := s.platformRepo.Create(&models.Platform{Name: name}); err != nil {
		// The unique index backstops the check above under concurrency.
		return "", ErrDuplicatePlatform
	}

	return name, nil
}

// Remove deletes a platform by exact name. Removing a name that is not
// registered is still a success.
func (s *PlatformService) Remove(name string) error {
	if _, err := s.platformRepo.DeleteByName(name); err != nil {
		return fmt.Errorf("failed to remove platform: %w", err)
	}
	return nil
}

// EnsureDefaults seeds the registry on first run. The insert ignores
// conflicts, so two concurrent first-run calls still end with exactly one
// row per default name.
func (s *PlatformService) EnsureDefaults() error {
	count, err := s.platformRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count platforms: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.platformRepo.SeedDefaults(constants.DefaultPlatforms); err != nil {
		return fmt.Errorf("failed to seed default platforms: %w", err)
	}

	log.Info("Default platforms initialized")
	return nil
}

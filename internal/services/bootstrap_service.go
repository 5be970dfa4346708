package services

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
)

// BootstrapService provisions demo data on an empty deployment: a demo
// user, the default platforms, and a couple of sample tasks.
type BootstrapService struct {
	authService     *AuthService
	platformService *PlatformService
	userRepo        repository.UserRepository
	taskRepo        repository.TaskRepository
	statsRepo       repository.StatsRepository
}

// NewBootstrapService creates a new BootstrapService.
func NewBootstrapService(
	authService *AuthService,
	platformService *PlatformService,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	statsRepo repository.StatsRepository,
) *BootstrapService {
	return &BootstrapService{
		authService:     authService,
		platformService: platformService,
		userRepo:        userRepo,
		taskRepo:        taskRepo,
		statsRepo:       statsRepo,
	}
}

// SeedResult reports what a seed call actually did.
type SeedResult struct {
	DemoUserCreated    bool
	SampleTasksCreated int
}

// Seed ensures the default platforms exist and, when the user table is
// empty, provisions the demo account with a handful of sample tasks.
// Non-empty collections are left alone, so repeated calls are harmless.
func (s *BootstrapService) Seed() (SeedResult, error) {
	result := SeedResult{}

	if err := s.platformService.EnsureDefaults(); err != nil {
		return result, err
	}

	userCount, err := s.userRepo.Count()
	if err != nil {
		return result, fmt.Errorf("failed to count users: %w", err)
	}
	if userCount > 0 {
		return result, nil
	}

	demoUser, err := s.authService.Register(RegisterInput{
		Name:     "Demo User",
		Email:    "demo@example.com",
		Password: "password123",
	})
	if err != nil {
		return result, fmt.Errorf("failed to create demo user: %w", err)
	}
	result.DemoUserCreated = true
	log.WithField("user_id", demoUser.ID).Info("Seeded demo user")

	taskCount, err := s.statsRepo.CountTasks()
	if err != nil {
		return result, fmt.Errorf("failed to count tasks: %w", err)
	}
	if taskCount > 0 {
		return result, nil
	}

	samples := []models.Task{
		{
			Title:       "Write launch announcement",
			Description: "Draft the product launch post for review",
			Platform:    "LinkedIn",
			Status:      models.TaskStatusTodo,
			Assignee:    "Demo User",
			DueDate:     time.Now().AddDate(0, 0, 3),
			UserID:      demoUser.ID,
		},
		{
			Title:       "Schedule weekly thread",
			Description: "Queue the tips thread for Thursday morning",
			Platform:    "Twitter",
			Status:      models.TaskStatusInProgress,
			Assignee:    "Demo User",
			DueDate:     time.Now().AddDate(0, 0, 1),
			UserID:      demoUser.ID,
		},
	}

	for i := range samples {
		if err := s.taskRepo.Create(&samples[i]); err != nil {
			return result, fmt.Errorf("failed to create sample task: %w", err)
		}
		result.SampleTasksCreated++
	}

	return result, nil
}

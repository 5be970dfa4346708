package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBootstrapService(t *testing.T) (*gorm.DB, *BootstrapService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}, &models.Platform{}))

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	service := NewBootstrapService(
		NewAuthService(userRepo),
		NewPlatformService(repository.NewPlatformRepository(db)),
		userRepo,
		taskRepo,
		repository.NewStatsRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, service
}

func TestBootstrapService_SeedEmptyDatabase(t *testing.T) {
	db, service := setupBootstrapService(t)

	result, err := service.Seed()
	require.NoError(t, err)
	require.True(t, result.DemoUserCreated)
	require.Equal(t, 2, result.SampleTasksCreated)

	var user models.User
	require.NoError(t, db.Where("email = ?", "demo@example.com").First(&user).Error)
	require.Equal(t, "Demo User", user.Name)

	var platformCount int64
	require.NoError(t, db.Model(&models.Platform{}).Count(&platformCount).Error)
	require.Equal(t, int64(len(constants.DefaultPlatforms)), platformCount)
}

func TestBootstrapService_SeedIsIdempotent(t *testing.T) {
	db, service := setupBootstrapService(t)

	_, err := service.Seed()
	require.NoError(t, err)

	result, err := service.Seed()
	require.NoError(t, err)
	require.False(t, result.DemoUserCreated)
	require.Equal(t, 0, result.SampleTasksCreated)

	var userCount, taskCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	require.Equal(t, int64(1), userCount)
	require.Equal(t, int64(2), taskCount)
}

func TestBootstrapService_SeedSkipsExistingUsers(t *testing.T) {
	db, service := setupBootstrapService(t)

	existing := &models.User{Name: "Existing", Email: "existing@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(existing).Error)

	result, err := service.Seed()
	require.NoError(t, err)
	require.False(t, result.DemoUserCreated, "non-empty user table is left alone")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

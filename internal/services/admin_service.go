package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAdminNotFound          = errors.New("admin not found")
	ErrAdminEmailTaken        = errors.New("admin email already registered")
	ErrInvalidBootstrapSecret = errors.New("invalid bootstrap secret")
	ErrBootstrapDisabled      = errors.New("admin bootstrap is not configured")
)

// AdminService handles the admin identity space: login plus the one-off
// secret-gated bootstrap. Admin accounts are never self-service.
type AdminService struct {
	adminRepo       repository.AdminRepository
	bootstrapSecret string
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo repository.AdminRepository, bootstrapSecret string) *AdminService {
	return &AdminService{
		adminRepo:       adminRepo,
		bootstrapSecret: bootstrapSecret,
	}
}

// Login verifies admin credentials and returns the authenticated admin.
func (s *AdminService) Login(input LoginInput) (*models.Admin, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithField("email", email).Info("Admin login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		log.WithField("admin_id", admin.ID).Info("Admin login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// GetAdmin retrieves an admin by ID.
func (s *AdminService) GetAdmin(id uint64) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	return admin, nil
}

// BootstrapInput carries the fields for the secret-gated admin creation.
type BootstrapInput struct {
	Name     string
	Email    string
	Password string
	Secret   string
}

// Bootstrap creates an admin account when the supplied secret matches the
// configured one. Intended for provisioning the first admin only.
func (s *AdminService) Bootstrap(input BootstrapInput) (*models.Admin, error) {
	if s.bootstrapSecret == "" {
		return nil, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(input.Secret), []byte(s.bootstrapSecret)) != 1 {
		return nil, ErrInvalidBootstrapSecret
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.adminRepo.FindByEmail(email); err == nil {
		return nil, ErrAdminEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check admin email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	admin := &models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         "admin",
	}

	if err := s.adminRepo.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	log.WithField("admin_id", admin.ID).Info("Bootstrapped admin account")
	return admin, nil
}

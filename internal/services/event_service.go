package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrEventTitleRequired    = errors.New("event title is required")
	ErrEventDateRequired     = errors.New("event date is required")
	ErrEventLocationRequired = errors.New("event location is required")
)

// EventService handles event management. Reads are open to any
// authenticated user; mutations are admin-only (enforced at the route).
type EventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// EventInput carries the writable event fields.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	ImageURL    string
}

func validateEventInput(input *EventInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Location = strings.TrimSpace(input.Location)

	switch {
	case input.Title == "":
		return ErrEventTitleRequired
	case input.Date.IsZero():
		return ErrEventDateRequired
	case input.Location == "":
		return ErrEventLocationRequired
	}
	return nil
}

// CreateEvent persists a new event recorded against the creating admin.
// Dates are normalized to UTC on write.
func (s *EventService) CreateEvent(input EventInput, adminID uint64) (*models.Event, error) {
	if err := validateEventInput(&input); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date.UTC(),
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		CreatedByID: adminID,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// UpdateEvent replaces the writable fields of an event.
func (s *EventService) UpdateEvent(eventID uint64, input EventInput) (*models.Event, error) {
	if err := validateEventInput(&input); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Date = input.Date.UTC()
	event.Location = input.Location
	event.ImageURL = input.ImageURL

	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// DeleteEvent removes an event.
func (s *EventService) DeleteEvent(eventID uint64) error {
	rows, err := s.eventRepo.Delete(eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if rows == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ListEvents returns every event, date ascending.
func (s *EventService) ListEvents() ([]models.Event, error) {
	events, err := s.eventRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListUpcoming returns events dated now or later, ascending, capped at
// limit. "Now" is evaluated per call and the boundary is inclusive.
func (s *EventService) ListUpcoming(limit int) ([]models.Event, error) {
	events, err := s.eventRepo.ListUpcoming(time.Now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return events, nil
}

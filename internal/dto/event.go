package dto

import "github.com/taskhive/taskhive-api/internal/models"

// EventDTO represents an event in API responses
type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ToEventDTO converts an Event model to EventDTO
func ToEventDTO(event models.Event) EventDTO {
	return EventDTO{
		ID:          formatID(event.ID),
		Title:       event.Title,
		Description: event.Description,
		Date:        formatTime(event.Date),
		Location:    event.Location,
		ImageURL:    event.ImageURL,
		CreatedAt:   formatTime(event.CreatedAt),
	}
}

// ToEventDTOs converts a slice of events
func ToEventDTOs(events []models.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i, event := range events {
		dtos[i] = ToEventDTO(event)
	}
	return dtos
}

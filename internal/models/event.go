package models

import "time"

type Event struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	ImageURL    string    `gorm:"type:varchar(512)" json:"image_url"`
	CreatedByID uint64    `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	CreatedBy Admin `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

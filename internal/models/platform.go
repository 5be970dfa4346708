package models

import "time"

// Platform is a registry entry for the category tags tasks are filed under.
// The unique index on Name is what makes seeding idempotent under
// concurrent first-run calls.
type Platform struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

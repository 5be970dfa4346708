package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task.Platform carries the platform name as a plain string. It is
// deliberately not a foreign key into the platforms table: removing a
// platform from the registry leaves existing tasks untouched.
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Platform    string     `gorm:"type:varchar(100);not null" json:"platform"`
	SubPlatform string     `gorm:"type:varchar(100)" json:"sub_platform"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Assignee    string     `gorm:"type:varchar(255);not null" json:"assignee"`
	DueDate     time.Time  `gorm:"not null" json:"due_date"`
	UserID      uint64     `gorm:"not null" json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

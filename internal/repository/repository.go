package repository

import (
	"fmt"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByIDs fetches all users whose id is in ids, in one query
	FindByIDs(ids []uint64) ([]models.User, error)

	// ListAll lists all users, newest first
	ListAll() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Count counts all users
	Count() (int64, error)
}

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	// Create creates a new admin
	Create(admin *models.Admin) error

	// FindByID finds an admin by ID
	FindByID(id uint64) (*models.Admin, error)

	// FindByEmail finds an admin by email
	FindByEmail(email string) (*models.Admin, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	// Platform filters by exact platform name; nil means all platforms.
	Platform *string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindOwned finds a task matching both id and owner. A miss on either
	// is indistinguishable from the other on purpose.
	FindOwned(id, userID uint64) (*models.Task, error)

	// List retrieves tasks for every user, due date ascending
	List(filter TaskFilter) ([]models.Task, error)

	// ListRecent retrieves the most recently created tasks, capped at limit
	ListRecent(limit int) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// DeleteOwned deletes a task scoped to its owner; returns the number
	// of rows removed
	DeleteOwned(id, userID uint64) (int64, error)

	// Delete deletes a task regardless of owner; returns rows removed
	Delete(id uint64) (int64, error)
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(event *models.Event) error

	// FindByID finds an event by ID
	FindByID(id uint64) (*models.Event, error)

	// ListAll lists all events, date ascending
	ListAll() ([]models.Event, error)

	// ListUpcoming lists events with date >= from, ascending, capped at limit
	ListUpcoming(from time.Time, limit int) ([]models.Event, error)

	// Update updates an event
	Update(event *models.Event) error

	// Delete deletes an event; returns rows removed
	Delete(id uint64) (int64, error)
}

// PlatformRepository defines the interface for the platform registry
type PlatformRepository interface {
	// ListNames lists platform names alphabetically
	ListNames() ([]string, error)

	// FindByNameFold finds a platform by case-insensitive name match
	FindByNameFold(name string) (*models.Platform, error)

	// Create inserts a new platform
	Create(platform *models.Platform) error

	// DeleteByName removes a platform by exact name; returns rows removed
	DeleteByName(name string) (int64, error)

	// Count counts registered platforms
	Count() (int64, error)

	// SeedDefaults inserts the given names, silently skipping any that
	// already exist
	SeedDefaults(names []string) error
}

// PlatformCount is one row of the tasks-per-platform aggregation.
type PlatformCount struct {
	Platform string
	Count    int64
}

// CalendarDate is a YYYY-MM-DD date scanned from a DATE() aggregate.
// Drivers disagree on the wire shape: sqlite hands back text, mysql with
// parseTime and postgres hand back time.Time.
type CalendarDate string

// Scan implements sql.Scanner.
func (d *CalendarDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = CalendarDate(v.Format("2006-01-02"))
	case string:
		*d = CalendarDate(v)
	case []byte:
		*d = CalendarDate(v)
	default:
		return fmt.Errorf("unsupported calendar date type %T", value)
	}
	return nil
}

// DayCount is one row of the tasks-per-day aggregation. Days with no
// tasks produce no row at all.
type DayCount struct {
	Day   CalendarDate
	Count int64
}

// OwnerTaskCount is one row of the tasks-per-owner aggregation.
type OwnerTaskCount struct {
	UserID    uint64
	Total     int64
	Completed int64
}

// StatsRepository defines the read-only aggregation queries behind the
// admin dashboards. Everything is computed fresh on every call.
type StatsRepository interface {
	// CountUsers counts all users
	CountUsers() (int64, error)

	// CountUsersCreatedSince counts users created at or after t
	CountUsersCreatedSince(t time.Time) (int64, error)

	// CountActiveUsersSince counts users owning at least one task updated
	// at or after t
	CountActiveUsersSince(t time.Time) (int64, error)

	// CountTasks counts all tasks
	CountTasks() (int64, error)

	// CountTasksByStatus counts tasks with the given status
	CountTasksByStatus(status models.TaskStatus) (int64, error)

	// CountTasksByPlatform groups all tasks by their platform string,
	// including values no longer present in the registry
	CountTasksByPlatform() ([]PlatformCount, error)

	// CountTasksByDay groups tasks created at or after since by calendar
	// date, ascending
	CountTasksByDay(since time.Time) ([]DayCount, error)

	// TopTaskOwners groups tasks by owner with total and completed counts,
	// sorted by total descending (owner id ascending on ties), capped at
	// limit. Owners with zero tasks never appear.
	TopTaskOwners(limit int) ([]OwnerTaskCount, error)

	// CountTasksPerUser returns the task count for every owner that has
	// at least one task
	CountTasksPerUser() (map[uint64]int64, error)
}

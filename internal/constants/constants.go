package constants

// Session cookie names. The two namespaces share mechanics but never
// share identity: a user id stored under the admin cookie is meaningless.
const (
	UserSessionName  = "session"
	AdminSessionName = "admin_session"
)

// Keys used both inside the session payload and in the gin context.
const (
	ContextKeyUserID  = "user_id"
	ContextKeyAdminID = "admin_id"
)

// SessionMaxAge is 7 days, identical for user and admin cookies.
const SessionMaxAge = 86400 * 7

const MinPasswordLength = 8

// Default and maximum limits for capped list endpoints.
const (
	DefaultRecentTasksLimit    = 10
	DefaultTopUsersLimit       = 5
	DefaultUpcomingEventsLimit = 3
	MaxListLimit               = 100
)

// DefaultPlatforms is inserted once, when the registry is empty.
var DefaultPlatforms = []string{"Facebook", "LinkedIn", "Twitter", "Medium", "Dev.to", "Quora"}

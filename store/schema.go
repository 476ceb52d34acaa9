package store

// Collection names.
const (
	Users            = "Users"
	UserEmails       = "UserEmails"
	Organizations    = "Organizations"
	Projects         = "Projects"
	Tasks            = "Tasks"
	KanbanColumns    = "KanbanColumns"
	Notes            = "Notes"
	Habits           = "Habits"
	HabitEntries     = "HabitEntries"
	PomodoroSessions = "PomodoroSessions"
)

// Indexes lists the secondary indexes each collection is queried by.
// Firestore indexes single fields automatically; the Mongo and SQLite
// backends create these at startup.
var Indexes = map[string][]string{
	Users:            {"email"},
	Organizations:    {"userId"},
	Projects:         {"userId", "organizationId"},
	Tasks:            {"userId", "projectId"},
	KanbanColumns:    {"projectId"},
	Notes:            {"userId"},
	Habits:           {"userId"},
	HabitEntries:     {"userId", "habitId"},
	PomodoroSessions: {"userId"},
}

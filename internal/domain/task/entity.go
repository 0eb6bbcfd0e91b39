package task

import "time"

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Progress and Status are set independently; the board does not force
// completed tasks to 100%.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	StartDate   time.Time
	DueDate     time.Time
	Status      Status
	Progress    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join field for responses
	UserFullName *string
}

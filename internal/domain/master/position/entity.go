package position

import "time"

// DepartmentID is nullable: removing a department orphans its positions
// instead of deleting them.
type Position struct {
	ID           string
	Title        string
	DepartmentID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join field for responses
	DepartmentName *string
}

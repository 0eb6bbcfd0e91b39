package attendance

import "time"

// Attendance records one check-in/check-out pair per user per calendar day.
// Date is the day key in the configured timezone; CheckOut stays nil while the
// row is open.
type Attendance struct {
	ID       string
	UserID   string
	Date     string // "YYYY-MM-DD" in office timezone
	CheckIn  time.Time
	CheckOut *time.Time
	IsLate   bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join field for responses
	UserFullName *string
}

package attendance

import "context"

type AttendanceService interface {
	// CheckIn opens today's row for the caller; a second call the same day fails.
	CheckIn(ctx context.Context) (Attendance, error)
	// CheckOut closes today's open row.
	CheckOut(ctx context.Context) (Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
	// Today returns the caller's row for the current day, nil if absent.
	Today(ctx context.Context) (*Attendance, error)
}

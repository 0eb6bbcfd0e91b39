package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	// GetByUserAndDate returns nil when the user has no row for that day.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Attendance, error)
	GetByUserID(ctx context.Context, userID string) ([]Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
	SetCheckOut(ctx context.Context, id string) (Attendance, error)
}

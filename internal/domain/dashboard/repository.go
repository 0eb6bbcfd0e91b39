package dashboard

import "context"

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	// GetAttendanceStatsByDate returns today's on-time and late check-in counts.
	GetAttendanceStatsByDate(ctx context.Context, date string) (onTime int64, late int64, err error)
	CountPendingLeaves(ctx context.Context) (int64, error)
	// GetUserLeaveOverview joins users against their leave ledger counts.
	GetUserLeaveOverview(ctx context.Context) ([]UserOverview, error)
}

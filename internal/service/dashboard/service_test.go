package dashboard

import (
	"context"
	"testing"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	employees int64
	onTime    int64
	late      int64
	pending   int64
	users     []dashboard.UserOverview
}

func (f *fakeDashboardRepo) CountEmployees(ctx context.Context) (int64, error) {
	return f.employees, nil
}

func (f *fakeDashboardRepo) GetAttendanceStatsByDate(ctx context.Context, date string) (int64, int64, error) {
	return f.onTime, f.late, nil
}

func (f *fakeDashboardRepo) CountPendingLeaves(ctx context.Context) (int64, error) {
	return f.pending, nil
}

func (f *fakeDashboardRepo) GetUserLeaveOverview(ctx context.Context) ([]dashboard.UserOverview, error) {
	return f.users, nil
}

func TestGetDashboard(t *testing.T) {
	repo := &fakeDashboardRepo{
		employees: 12,
		onTime:    7,
		late:      2,
		pending:   3,
		users: []dashboard.UserOverview{
			{UserID: "u1", FullName: "One", RemainingLeaves: 15, PendingLeaves: 2, ApprovedLeaves: 3},
			{UserID: "u2", FullName: "Two", RemainingLeaves: 20, PendingLeaves: 0, ApprovedLeaves: 0},
		},
	}
	svc := NewDashboardService(repo, "UTC")

	data, err := svc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), data.Summary.TotalEmployees)
	assert.Equal(t, int64(7), data.Summary.OnTimeToday)
	assert.Equal(t, int64(2), data.Summary.LateToday)
	assert.Equal(t, int64(3), data.Summary.PendingApprovals)
	require.Len(t, data.Users, 2)
	assert.Equal(t, int64(2), data.Users[0].PendingLeaves)
	assert.Equal(t, int64(3), data.Users[0].ApprovedLeaves)
}

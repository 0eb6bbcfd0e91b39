package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	location *time.Location
}

func NewDashboardService(repo dashboard.DashboardRepository, timezone string) *DashboardServiceImpl {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}
	return &DashboardServiceImpl{DashboardRepository: repo, location: loc}
}

// GetDashboard fans the four aggregate queries out concurrently and joins
// them into one payload.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	today := time.Now().In(s.location).Format("2006-01-02")

	var (
		totalEmployees int64
		onTime, late   int64
		pending        int64
		users          []dashboard.UserOverview
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.DashboardRepository.CountEmployees(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		onTime, late, err = s.DashboardRepository.GetAttendanceStatsByDate(gCtx, today)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = s.DashboardRepository.CountPendingLeaves(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.DashboardRepository.GetUserLeaveOverview(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	return &dashboard.DashboardResponse{
		Summary: dashboard.SummaryResponse{
			TotalEmployees:   totalEmployees,
			OnTimeToday:      onTime,
			LateToday:        late,
			PendingApprovals: pending,
		},
		Users: users,
	}, nil
}

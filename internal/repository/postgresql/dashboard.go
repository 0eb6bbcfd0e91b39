package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// GetAttendanceStatsByDate implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetAttendanceStatsByDate(ctx context.Context, date string) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN is_late = FALSE THEN 1 ELSE 0 END), 0) AS on_time,
			COALESCE(SUM(CASE WHEN is_late = TRUE THEN 1 ELSE 0 END), 0) AS late
		FROM attendances
		WHERE date = $1
	`

	var onTime, late int64
	if err := q.QueryRow(ctx, query, date).Scan(&onTime, &late); err != nil {
		return 0, 0, fmt.Errorf("failed to get attendance stats: %w", err)
	}
	return onTime, late, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var pending int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE is_approved = FALSE`).Scan(&pending); err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return pending, nil
}

// GetUserLeaveOverview implements dashboard.DashboardRepository. One query for
// the whole board; pending + approved adds up to the user's full ledger.
func (r *dashboardRepository) GetUserLeaveOverview(ctx context.Context) ([]dashboard.UserOverview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			u.id, u.full_name, u.email, u.remaining_leaves,
			COALESCE(SUM(CASE WHEN l.is_approved = FALSE THEN 1 ELSE 0 END), 0) AS pending_leaves,
			COALESCE(SUM(CASE WHEN l.is_approved = TRUE THEN 1 ELSE 0 END), 0) AS approved_leaves
		FROM users u
		LEFT JOIN leaves l ON l.user_id = u.id
		GROUP BY u.id, u.full_name, u.email, u.remaining_leaves
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get user leave overview: %w", err)
	}
	defer rows.Close()

	var overviews []dashboard.UserOverview
	for rows.Next() {
		var o dashboard.UserOverview
		if err := rows.Scan(&o.UserID, &o.FullName, &o.Email, &o.RemainingLeaves, &o.PendingLeaves, &o.ApprovedLeaves); err != nil {
			return nil, fmt.Errorf("failed to scan user overview: %w", err)
		}
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}

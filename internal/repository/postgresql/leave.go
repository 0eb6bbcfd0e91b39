package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.user_id, l.leave_type, l.start_date, l.end_date,
	l.is_approved, l.approved_by, l.approved_at,
	l.created_at, l.updated_at, u.full_name
`

const leaveJoins = `
	FROM leaves l
	JOIN users u ON u.id = l.user_id
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate,
		&l.IsApproved, &l.ApprovedBy, &l.ApprovedAt,
		&l.CreatedAt, &l.UpdatedAt, &l.UserFullName,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to generate leave id: %w", err)
	}
	newLeave.ID = id.String()

	query := `
		INSERT INTO leaves (id, user_id, leave_type, start_date, end_date, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		newLeave.ID,
		newLeave.UserID,
		newLeave.Type,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.IsApproved,
	).Scan(&newLeave.CreatedAt, &newLeave.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return newLeave, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveJoins + ` WHERE l.id = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave by id: %w", err)
	}
	return l, nil
}

// GetByUserID implements leave.LeaveRepository.
func (r *leaveRepository) GetByUserID(ctx context.Context, userID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveJoins + ` WHERE l.user_id = $1 ORDER BY l.start_date DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves by user: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveJoins + ` ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// CountCommittedDays implements leave.LeaveRepository. Pending rows count too,
// so a user cannot overcommit the cap with a pile of unapproved requests.
func (r *leaveRepository) CountCommittedDays(ctx context.Context, userID string, leaveType leave.LeaveType) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(end_date - start_date + 1), 0)
		FROM leaves
		WHERE user_id = $1 AND leave_type = $2
	`

	var days int
	if err := q.QueryRow(ctx, query, userID, leaveType).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to count committed leave days: %w", err)
	}
	return days, nil
}

// Approve implements leave.LeaveRepository. The is_approved guard in the WHERE
// clause makes concurrent double-approval a no-op detected by RowsAffected.
func (r *leaveRepository) Approve(ctx context.Context, id string, approverID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET is_approved = TRUE, approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND is_approved = FALSE
	`
	tag, err := q.Exec(ctx, query, id, approverID)
	if err != nil {
		return fmt.Errorf("failed to approve leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyApproved
	}
	return nil
}

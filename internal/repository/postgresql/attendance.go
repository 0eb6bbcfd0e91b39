package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.date, a.check_in, a.check_out, a.is_late,
	a.created_at, a.updated_at, u.full_name
`

const attendanceJoins = `
	FROM attendances a
	JOIN users u ON u.id = a.user_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.IsLate,
		&att.CreatedAt, &att.UpdatedAt, &att.UserFullName,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. The UNIQUE(user_id, date)
// constraint backs the one-check-in-per-day rule under concurrent requests.
func (r *attendanceRepository) Create(ctx context.Context, newAtt attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	newAtt.ID = id.String()

	query := `
		INSERT INTO attendances (id, user_id, date, check_in, is_late)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		newAtt.ID,
		newAtt.UserID,
		newAtt.Date,
		newAtt.CheckIn,
		newAtt.IsLate,
	).Scan(&newAtt.CreatedAt, &newAtt.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAtt, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.user_id = $1 AND a.date = $2 LIMIT 1`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}
	return &att, nil
}

// GetByUserID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserID(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.user_id = $1 ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by user: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` ORDER BY a.date DESC, a.check_in DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var atts []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		atts = append(atts, att)
	}
	return atts, rows.Err()
}

// SetCheckOut implements attendance.AttendanceRepository. The check_out IS NULL
// guard keeps the field write-once even under concurrent check-outs.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = NOW(), updated_at = NOW()
		WHERE id = $1 AND check_out IS NULL
		RETURNING id, user_id, date, check_in, check_out, is_late, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.IsLate,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}
	return att, nil
}

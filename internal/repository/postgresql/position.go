package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/position"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type positionRepository struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepository{db: db}
}

// Create implements position.PositionRepository.
func (r *positionRepository) Create(ctx context.Context, pos position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to generate position id: %w", err)
	}
	pos.ID = id.String()

	query := `
		INSERT INTO positions (id, title, department_id)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query, pos.ID, pos.Title, pos.DepartmentID).Scan(&pos.CreatedAt, &pos.UpdatedAt)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}
	return pos, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepository) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.title, p.department_id, p.created_at, p.updated_at, d.name
		FROM positions p
		LEFT JOIN departments d ON d.id = p.department_id
		WHERE p.id = $1
	`

	var pos position.Position
	err := q.QueryRow(ctx, query, id).Scan(
		&pos.ID, &pos.Title, &pos.DepartmentID, &pos.CreatedAt, &pos.UpdatedAt, &pos.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position by id: %w", err)
	}
	return pos, nil
}

// List implements position.PositionRepository.
func (r *positionRepository) List(ctx context.Context) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.title, p.department_id, p.created_at, p.updated_at, d.name
		FROM positions p
		LEFT JOIN departments d ON d.id = p.department_id
		ORDER BY p.title
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var pos position.Position
		if err := rows.Scan(&pos.ID, &pos.Title, &pos.DepartmentID, &pos.CreatedAt, &pos.UpdatedAt, &pos.DepartmentName); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, pos)
	}
	return positions, rows.Err()
}

// Delete implements position.PositionRepository.
func (r *positionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}
	return nil
}

// ClearDepartment implements position.PositionRepository.
func (r *positionRepository) ClearDepartment(ctx context.Context, departmentID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE positions SET department_id = NULL, updated_at = NOW() WHERE department_id = $1`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to clear department reference: %w", err)
	}
	return nil
}

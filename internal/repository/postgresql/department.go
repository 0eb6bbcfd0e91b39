package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/department"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to generate department id: %w", err)
	}
	dept.ID = id.String()

	query := `
		INSERT INTO departments (id, name)
		VALUES ($1, $2)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query, dept.ID, dept.Name).Scan(&dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return dept, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by id: %w", err)
	}
	return dept, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var depts []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		depts = append(depts, dept)
	}
	return depts, rows.Err()
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, position Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	List(ctx context.Context) ([]Position, error)
	Delete(ctx context.Context, id string) error
	// ClearDepartment nulls the department reference on every position that
	// points at the removed department.
	ClearDepartment(ctx context.Context, departmentID string) error
}

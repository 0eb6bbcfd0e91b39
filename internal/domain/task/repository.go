package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	GetByUserID(ctx context.Context, userID string) ([]Task, error)
	List(ctx context.Context) ([]Task, error)
	Update(ctx context.Context, task Task) error
}

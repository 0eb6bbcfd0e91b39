package task

import "context"

type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) (Task, error)
	List(ctx context.Context) ([]Task, error)
}

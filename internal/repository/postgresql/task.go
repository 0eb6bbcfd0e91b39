package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `
	t.id, t.user_id, t.title, t.description, t.start_date, t.due_date,
	t.status, t.progress, t.created_at, t.updated_at, u.full_name
`

const taskJoins = `
	FROM tasks t
	JOIN users u ON u.id = t.user_id
`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.StartDate, &t.DueDate,
		&t.Status, &t.Progress, &t.CreatedAt, &t.UpdatedAt, &t.UserFullName,
	)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to generate task id: %w", err)
	}
	newTask.ID = id.String()

	query := `
		INSERT INTO tasks (id, user_id, title, description, start_date, due_date, status, progress)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		newTask.ID,
		newTask.UserID,
		newTask.Title,
		newTask.Description,
		newTask.StartDate,
		newTask.DueDate,
		newTask.Status,
		newTask.Progress,
	).Scan(&newTask.CreatedAt, &newTask.UpdatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return newTask, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + taskJoins + ` WHERE t.id = $1`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}
	return t, nil
}

// GetByUserID implements task.TaskRepository.
func (r *taskRepository) GetByUserID(ctx context.Context, userID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + taskJoins + ` WHERE t.user_id = $1 ORDER BY t.due_date`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by user: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// List implements task.TaskRepository.
func (r *taskRepository) List(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + taskJoins + ` ORDER BY t.due_date`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update implements task.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, progress = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, t.ID, t.Title, t.Description, t.Status, t.Progress)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

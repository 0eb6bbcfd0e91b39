package task

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

type TaskServiceImpl struct {
	task.TaskRepository
	user.UserRepository
}

func NewTaskService(taskRepository task.TaskRepository, userRepository user.UserRepository) *TaskServiceImpl {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
		UserRepository: userRepository,
	}
}

func caller(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), nil
}

// Create assigns a task to a user. The route is HR-gated; the assignee must
// exist.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	if _, err := s.UserRepository.GetByID(ctx, req.UserID); err != nil {
		return task.Task{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	created, err := s.TaskRepository.Create(ctx, task.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
		Status:      task.StatusNotStarted,
		Progress:    0,
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// Update patches title, description, status and progress. Only the task's
// owner or HR may touch it.
func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	callerID, callerRole, err := caller(ctx)
	if err != nil {
		return task.Task{}, err
	}

	existing, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.Task{}, err
	}

	if existing.UserID != callerID && callerRole != user.RoleHR {
		return task.Task{}, task.ErrNotTaskOwner
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Status != nil {
		existing.Status = task.Status(*req.Status)
	}
	if req.Progress != nil {
		existing.Progress = *req.Progress
	}

	if err := s.TaskRepository.Update(ctx, existing); err != nil {
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return existing, nil
}

// List returns all tasks for HR and the caller's tasks otherwise.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.Task, error) {
	callerID, callerRole, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if callerRole == user.RoleHR {
		return s.TaskRepository.List(ctx)
	}
	return s.TaskRepository.GetByUserID(ctx, callerID)
}

package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user User) error
	// ApplyLeaveDays moves approved days onto the per-type counter and off the
	// remaining balance. Runs as a single UPDATE so concurrent approvals stay atomic.
	ApplyLeaveDays(ctx context.Context, userID string, leaveType string, days int) error
	ClearDepartment(ctx context.Context, departmentID string) error
	ClearPosition(ctx context.Context, positionID string) error
}

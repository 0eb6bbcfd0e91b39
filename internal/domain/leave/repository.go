package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	GetByUserID(ctx context.Context, userID string) ([]Leave, error)
	List(ctx context.Context) ([]Leave, error)
	// CountCommittedDays sums the inclusive day spans of every ledger row of the
	// given type for a user, pending and approved alike. The ledger, not the
	// user counters, is the source of truth for quota checks.
	CountCommittedDays(ctx context.Context, userID string, leaveType LeaveType) (int, error)
	Approve(ctx context.Context, id string, approverID string) error
}

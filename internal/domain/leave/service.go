package leave

import "context"

type LeaveService interface {
	// Submit files a pending leave after checking the per-type quota.
	Submit(ctx context.Context, req SubmitLeaveRequest) (Leave, error)
	// Approve marks the leave approved and applies its days to the owner's
	// counters. Re-approving fails.
	Approve(ctx context.Context, leaveID string) (Leave, error)
	// List is role-scoped: HR sees everything, employees see their own.
	List(ctx context.Context) ([]Leave, error)
}

package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// Caps carries the per-type leave limits from configuration.
type Caps struct {
	Casual int
	Sick   int
}

func (c Caps) For(t leave.LeaveType) int {
	if t == leave.LeaveTypeSick {
		return c.Sick
	}
	return c.Casual
}

type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type LeaveServiceImpl struct {
	tx TxRunner
	leave.LeaveRepository
	user.UserRepository
	caps Caps
}

func NewLeaveService(tx TxRunner, leaveRepository leave.LeaveRepository, userRepository user.UserRepository, caps Caps) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		tx:              tx,
		LeaveRepository: leaveRepository,
		UserRepository:  userRepository,
		caps:            caps,
	}
}

// caller extracts the requesting user's id and role from the JWT claims.
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

// Submit creates a pending ledger row. The quota check runs against the
// ledger itself (approved + pending days), not against the cached counters on
// the user row; counters only move at approval time.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	callerID, callerRole, err := caller(ctx)
	if err != nil {
		return leave.Leave{}, err
	}

	ownerID := callerID
	if req.UserID != nil && *req.UserID != callerID {
		// Only HR may file on behalf of someone else.
		if callerRole != user.RoleHR {
			return leave.Leave{}, user.ErrHRPrivilegeRequired
		}
		ownerID = *req.UserID
	}

	if _, err := s.UserRepository.GetByID(ctx, ownerID); err != nil {
		return leave.Leave{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	if endDate.Before(startDate) {
		return leave.Leave{}, leave.ErrInvalidDateRange
	}

	leaveType := leave.LeaveType(req.LeaveType)
	duration := int(endDate.Sub(startDate).Hours()/24) + 1

	committed, err := s.LeaveRepository.CountCommittedDays(ctx, ownerID, leaveType)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to count committed days: %w", err)
	}
	if committed+duration > s.caps.For(leaveType) {
		return leave.Leave{}, leave.ErrQuotaExceeded
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		UserID:     ownerID,
		Type:       leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		IsApproved: false,
	})
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return created, nil
}

// Approve flips the ledger row and moves its days onto the owner's counters
// in one transaction. Approving twice fails instead of double-counting.
func (s *LeaveServiceImpl) Approve(ctx context.Context, leaveID string) (leave.Leave, error) {
	approverID, _, err := caller(ctx)
	if err != nil {
		return leave.Leave{}, err
	}

	leaveData, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.Leave{}, err
	}
	if leaveData.IsApproved {
		return leave.Leave{}, leave.ErrAlreadyApproved
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.LeaveRepository.Approve(txCtx, leaveID, approverID); err != nil {
			return err
		}
		return s.UserRepository.ApplyLeaveDays(txCtx, leaveData.UserID, string(leaveData.Type), leaveData.DurationDays())
	})
	if err != nil {
		return leave.Leave{}, err
	}

	now := time.Now()
	leaveData.IsApproved = true
	leaveData.ApprovedBy = &approverID
	leaveData.ApprovedAt = &now

	return leaveData, nil
}

// List returns the whole ledger for HR and only the caller's rows otherwise.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.Leave, error) {
	callerID, callerRole, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if callerRole == user.RoleHR {
		return s.LeaveRepository.List(ctx)
	}
	return s.LeaveRepository.GetByUserID(ctx, callerID)
}

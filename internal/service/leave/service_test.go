package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeaveRepo struct {
	leaves        map[string]leave.Leave
	committedDays map[leave.LeaveType]int
	created       []leave.Leave
	approved      []string
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		leaves:        map[string]leave.Leave{},
		committedDays: map[leave.LeaveType]int{},
	}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = "leave-1"
	l.CreatedAt = time.Now()
	f.created = append(f.created, l)
	f.leaves[l.ID] = l
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	l, ok := f.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (f *fakeLeaveRepo) GetByUserID(ctx context.Context, userID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeaveRepo) CountCommittedDays(ctx context.Context, userID string, leaveType leave.LeaveType) (int, error) {
	return f.committedDays[leaveType], nil
}

func (f *fakeLeaveRepo) Approve(ctx context.Context, id string, approverID string) error {
	l, ok := f.leaves[id]
	if !ok || l.IsApproved {
		return leave.ErrAlreadyApproved
	}
	l.IsApproved = true
	f.leaves[id] = l
	f.approved = append(f.approved, id)
	return nil
}

type fakeUserRepo struct {
	users        map[string]user.User
	appliedType  string
	appliedDays  int
	appliedCalls int
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	users := map[string]user.User{}
	for _, id := range ids {
		users[id] = user.User{ID: id, Role: user.RoleEmployee}
	}
	return &fakeUserRepo{users: users}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }

func (f *fakeUserRepo) ApplyLeaveDays(ctx context.Context, userID string, leaveType string, days int) error {
	f.appliedType = leaveType
	f.appliedDays = days
	f.appliedCalls++
	return nil
}

func (f *fakeUserRepo) ClearDepartment(ctx context.Context, departmentID string) error { return nil }

func (f *fakeUserRepo) ClearPosition(ctx context.Context, positionID string) error { return nil }

func authedContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   "someone@example.com",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testCaps() Caps {
	return Caps{Casual: 10, Sick: 10}
}

func TestSubmit_WithinQuota(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.committedDays[leave.LeaveTypeCasual] = 7
	svc := NewLeaveService(fakeTx{}, leaveRepo, newFakeUserRepo("u1"), testCaps())

	ctx := authedContext(t, "u1", user.RoleEmployee)
	created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "casual",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04", // 3 days inclusive, 7 + 3 == cap
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.False(t, created.IsApproved)
	assert.Equal(t, 3, created.DurationDays())
}

func TestSubmit_QuotaExceeded(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.committedDays[leave.LeaveTypeCasual] = 8
	svc := NewLeaveService(fakeTx{}, leaveRepo, newFakeUserRepo("u1"), testCaps())

	ctx := authedContext(t, "u1", user.RoleEmployee)
	_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "casual",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04", // 8 + 3 > 10
	})

	assert.ErrorIs(t, err, leave.ErrQuotaExceeded)
	assert.Empty(t, leaveRepo.created)
}

func TestSubmit_QuotaCountsPendingRequests(t *testing.T) {
	// Committed days include pending rows, so two overlapping pending
	// requests cannot both slip under the cap.
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.committedDays[leave.LeaveTypeSick] = 9
	svc := NewLeaveService(fakeTx{}, leaveRepo, newFakeUserRepo("u1"), testCaps())

	ctx := authedContext(t, "u1", user.RoleEmployee)
	_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "sick",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-03",
	})

	assert.ErrorIs(t, err, leave.ErrQuotaExceeded)
}

func TestSubmit_SingleDayCountsAsOne(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(fakeTx{}, leaveRepo, newFakeUserRepo("u1"), testCaps())

	ctx := authedContext(t, "u1", user.RoleEmployee)
	created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "sick",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.DurationDays())
}

func TestSubmit_EndBeforeStart(t *testing.T) {
	svc := NewLeaveService(fakeTx{}, newFakeLeaveRepo(), newFakeUserRepo("u1"), testCaps())

	ctx := authedContext(t, "u1", user.RoleEmployee)
	_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "casual",
		StartDate: "2026-03-04",
		EndDate:   "2026-03-02",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestSubmit_OnBehalfRequiresHR(t *testing.T) {
	svc := NewLeaveService(fakeTx{}, newFakeLeaveRepo(), newFakeUserRepo("u1", "u2"), testCaps())

	other := "u2"
	ctx := authedContext(t, "u1", user.RoleEmployee)
	_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "casual",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		UserID:    &other,
	})

	assert.ErrorIs(t, err, user.ErrHRPrivilegeRequired)
}

func TestSubmit_HROnBehalf(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(fakeTx{}, leaveRepo, newFakeUserRepo("hr1", "u2"), testCaps())

	other := "u2"
	ctx := authedContext(t, "hr1", user.RoleHR)
	created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "casual",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		UserID:    &other,
	})

	require.NoError(t, err)
	assert.Equal(t, "u2", created.UserID)
}

func TestApprove_AppliesDaysToCounters(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.leaves["leave-1"] = leave.Leave{
		ID:        "leave-1",
		UserID:    "u1",
		Type:      leave.LeaveTypeCasual,
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	userRepo := newFakeUserRepo("u1")
	svc := NewLeaveService(fakeTx{}, leaveRepo, userRepo, testCaps())

	ctx := authedContext(t, "hr1", user.RoleHR)
	approved, err := svc.Approve(ctx, "leave-1")

	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "hr1", *approved.ApprovedBy)
	assert.Equal(t, 1, userRepo.appliedCalls)
	assert.Equal(t, "casual", userRepo.appliedType)
	assert.Equal(t, 3, userRepo.appliedDays)
}

func TestApprove_AlreadyApproved(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.leaves["leave-1"] = leave.Leave{ID: "leave-1", UserID: "u1", Type: leave.LeaveTypeCasual, IsApproved: true}
	userRepo := newFakeUserRepo("u1")
	svc := NewLeaveService(fakeTx{}, leaveRepo, userRepo, testCaps())

	ctx := authedContext(t, "hr1", user.RoleHR)
	_, err := svc.Approve(ctx, "leave-1")

	assert.ErrorIs(t, err, leave.ErrAlreadyApproved)
	assert.Zero(t, userRepo.appliedCalls)
}

func TestList_ScopedByRole(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.leaves["l1"] = leave.Leave{ID: "l1", UserID: "u1"}
	leaveRepo.leaves["l2"] = leave.Leave{ID: "l2", UserID: "u2"}
	svc := NewLeaveService(fakeTx{}, leaveRepo, newFakeUserRepo("u1", "u2"), testCaps())

	own, err := svc.List(authedContext(t, "u1", user.RoleEmployee))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "u1", own[0].UserID)

	all, err := svc.List(authedContext(t, "hr1", user.RoleHR))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

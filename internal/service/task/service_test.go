package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks  map[string]task.Task
	nextID int
}

func newFakeTaskRepo(tasks ...task.Task) *fakeTaskRepo {
	f := &fakeTaskRepo{tasks: map[string]task.Task{}}
	for _, tk := range tasks {
		f.tasks[tk.ID] = tk
	}
	return f
}

func (f *fakeTaskRepo) Create(ctx context.Context, tk task.Task) (task.Task, error) {
	f.nextID++
	tk.ID = fmt.Sprintf("task-%d", f.nextID)
	f.tasks[tk.ID] = tk
	return tk, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	tk, ok := f.tasks[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return tk, nil
}

func (f *fakeTaskRepo) GetByUserID(ctx context.Context, userID string) ([]task.Task, error) {
	var out []task.Task
	for _, tk := range f.tasks {
		if tk.UserID == userID {
			out = append(out, tk)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) List(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	for _, tk := range f.tasks {
		out = append(out, tk)
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, tk task.Task) error {
	if _, ok := f.tasks[tk.ID]; !ok {
		return task.ErrTaskNotFound
	}
	f.tasks[tk.ID] = tk
	return nil
}

type fakeUserRepo struct {
	ids map[string]bool
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	f := &fakeUserRepo{ids: map[string]bool{}}
	for _, id := range ids {
		f.ids[id] = true
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if !f.ids[id] {
		return user.User{}, user.ErrUserNotFound
	}
	return user.User{ID: id}, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }

func (f *fakeUserRepo) ApplyLeaveDays(ctx context.Context, userID string, leaveType string, days int) error {
	return nil
}

func (f *fakeUserRepo) ClearDepartment(ctx context.Context, departmentID string) error { return nil }

func (f *fakeUserRepo) ClearPosition(ctx context.Context, positionID string) error { return nil }

func authedContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

const assigneeID = "01890a5d-ac96-774b-bcce-b302099a8057"

func TestCreate_AssignsTask(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, newFakeUserRepo(assigneeID))

	created, err := svc.Create(authedContext(t, "hr1", user.RoleHR), task.CreateTaskRequest{
		UserID:    assigneeID,
		Title:     "Quarterly report",
		StartDate: "2026-03-02",
		DueDate:   "2026-03-09",
	})

	require.NoError(t, err)
	assert.Equal(t, task.StatusNotStarted, created.Status)
	assert.Equal(t, 0, created.Progress)
	assert.Equal(t, assigneeID, created.UserID)
}

func TestCreate_UnknownAssignee(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeUserRepo())

	_, err := svc.Create(authedContext(t, "hr1", user.RoleHR), task.CreateTaskRequest{
		UserID:    assigneeID,
		Title:     "Quarterly report",
		StartDate: "2026-03-02",
		DueDate:   "2026-03-09",
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdate_OwnerCanUpdate(t *testing.T) {
	repo := newFakeTaskRepo(task.Task{ID: "t1", UserID: "u1", Title: "Report", Status: task.StatusNotStarted})
	svc := NewTaskService(repo, newFakeUserRepo("u1"))

	status := "in_progress"
	progress := 40
	updated, err := svc.Update(authedContext(t, "u1", user.RoleEmployee), task.UpdateTaskRequest{
		ID:       "t1",
		Status:   &status,
		Progress: &progress,
	})

	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, updated.Status)
	assert.Equal(t, 40, updated.Progress)
	assert.Equal(t, "Report", updated.Title)
}

func TestUpdate_HRCanUpdateAnyTask(t *testing.T) {
	repo := newFakeTaskRepo(task.Task{ID: "t1", UserID: "u1"})
	svc := NewTaskService(repo, newFakeUserRepo("u1"))

	progress := 100
	_, err := svc.Update(authedContext(t, "hr1", user.RoleHR), task.UpdateTaskRequest{
		ID:       "t1",
		Progress: &progress,
	})

	assert.NoError(t, err)
}

func TestUpdate_StrangerRejected(t *testing.T) {
	repo := newFakeTaskRepo(task.Task{ID: "t1", UserID: "u1"})
	svc := NewTaskService(repo, newFakeUserRepo("u1", "u2"))

	progress := 100
	_, err := svc.Update(authedContext(t, "u2", user.RoleEmployee), task.UpdateTaskRequest{
		ID:       "t1",
		Progress: &progress,
	})

	assert.ErrorIs(t, err, task.ErrNotTaskOwner)
}

func TestUpdate_InvalidProgress(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeUserRepo())

	progress := 101
	_, err := svc.Update(authedContext(t, "u1", user.RoleEmployee), task.UpdateTaskRequest{
		ID:       "t1",
		Progress: &progress,
	})

	assert.Error(t, err)
}

func TestList_ScopedByRole(t *testing.T) {
	repo := newFakeTaskRepo(
		task.Task{ID: "t1", UserID: "u1"},
		task.Task{ID: "t2", UserID: "u2"},
	)
	svc := NewTaskService(repo, newFakeUserRepo("u1", "u2"))

	own, err := svc.List(authedContext(t, "u1", user.RoleEmployee))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "u1", own[0].UserID)

	all, err := svc.List(authedContext(t, "hr1", user.RoleHR))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

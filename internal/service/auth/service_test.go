package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/position"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	byEmail map[string]user.User
	byID    map[string]user.User
	created []user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: map[string]user.User{}, byID: map[string]user.User{}}
	for _, u := range users {
		f.byEmail[u.Email] = u
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "new-user"
	f.created = append(f.created, u)
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }

func (f *fakeUserRepo) ApplyLeaveDays(ctx context.Context, userID string, leaveType string, days int) error {
	return nil
}

func (f *fakeUserRepo) ClearDepartment(ctx context.Context, departmentID string) error { return nil }

func (f *fakeUserRepo) ClearPosition(ctx context.Context, positionID string) error { return nil }

type fakeDepartmentRepo struct{}

func (fakeDepartmentRepo) Create(ctx context.Context, d department.Department) (department.Department, error) {
	return d, nil
}
func (fakeDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	return department.Department{ID: id}, nil
}
func (fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	return nil, nil
}
func (fakeDepartmentRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePositionRepo struct{}

func (fakePositionRepo) Create(ctx context.Context, p position.Position) (position.Position, error) {
	return p, nil
}
func (fakePositionRepo) GetByID(ctx context.Context, id string) (position.Position, error) {
	return position.Position{ID: id}, nil
}
func (fakePositionRepo) List(ctx context.Context) ([]position.Position, error) { return nil, nil }
func (fakePositionRepo) Delete(ctx context.Context, id string) error           { return nil }
func (fakePositionRepo) ClearDepartment(ctx context.Context, departmentID string) error {
	return nil
}

type fakeJWTRepo struct {
	stored  []string
	revoked map[string]bool
}

func newFakeJWTRepo() *fakeJWTRepo {
	return &fakeJWTRepo{revoked: map[string]bool{}}
}

func (f *fakeJWTRepo) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	f.stored = append(f.stored, token)
	return nil
}

func (f *fakeJWTRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func mustHash(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func newService(t *testing.T, users ...user.User) (auth.AuthService, *fakeJWTRepo, *fakeUserRepo) {
	t.Helper()
	jwtSvc := jwt.NewJWTService("test-secret", "15m", "168h")
	jwtRepo := newFakeJWTRepo()
	userRepo := newFakeUserRepo(users...)
	svc := NewAuthService(fakeTx{}, userRepo, fakeDepartmentRepo{}, fakePositionRepo{}, jwtSvc, jwtRepo, 20)
	return svc, jwtRepo, userRepo
}

func employeeAccount(t *testing.T) user.User {
	return user.User{
		ID:           "u1",
		Email:        "employee@example.com",
		FullName:     "Employee One",
		PasswordHash: mustHash(t, "correct-horse"),
		Role:         user.RoleEmployee,
	}
}

func hrAccount(t *testing.T) user.User {
	return user.User{
		ID:           "hr1",
		Email:        "hr@example.com",
		FullName:     "HR One",
		PasswordHash: mustHash(t, "correct-horse"),
		Role:         user.RoleHR,
	}
}

func TestLogin_Success(t *testing.T) {
	svc, jwtRepo, _ := newService(t, employeeAccount(t))

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "employee@example.com",
		Password: "correct-horse",
	}, auth.SessionTrackingRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Len(t, jwtRepo.stored, 1)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newService(t, employeeAccount(t))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "employee@example.com",
		Password: "wrong",
	}, auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	}, auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginHR_RejectsEmployeeLikeBadCredentials(t *testing.T) {
	svc, _, _ := newService(t, employeeAccount(t))

	_, err := svc.LoginHR(context.Background(), auth.LoginRequest{
		Email:    "employee@example.com",
		Password: "correct-horse",
	}, auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginHR_Success(t *testing.T) {
	svc, _, _ := newService(t, hrAccount(t))

	tokens, err := svc.LoginHR(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "correct-horse",
	}, auth.SessionTrackingRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLoginWithGoogle_UnknownEmail(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.LoginWithGoogle(context.Background(), "nobody@example.com", "google-id", auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegister_Success(t *testing.T) {
	svc, _, userRepo := newService(t, hrAccount(t))

	created, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "new@example.com",
		Password: "super-secret",
		FullName: "New Person",
		Role:     "employee",
		Salary:   "5000.00",
		JoinDate: "2026-03-02",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-user", created.ID)
	assert.Equal(t, 0, created.CasualLeavesTaken)
	assert.Equal(t, 0, created.SickLeavesTaken)
	assert.Equal(t, 20, created.RemainingLeaves)
	require.Len(t, userRepo.created, 1)
	require.NotNil(t, userRepo.created[0].PasswordHash)
	assert.NotEqual(t, "super-secret", *userRepo.created[0].PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newService(t, employeeAccount(t))

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "employee@example.com",
		Password: "super-secret",
		FullName: "Someone Else",
		Role:     "employee",
		Salary:   "5000.00",
		JoinDate: "2026-03-02",
	})

	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	svc, jwtRepo, _ := newService(t, employeeAccount(t))

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "employee@example.com",
		Password: "correct-horse",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), tokens.RefreshToken, auth.SessionTrackingRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// The presented token is spent.
	assert.True(t, jwtRepo.revoked[tokens.RefreshToken])

	_, err = svc.RefreshToken(context.Background(), tokens.RefreshToken, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshToken_RejectsGarbage(t *testing.T) {
	svc, _, _ := newService(t, employeeAccount(t))

	_, err := svc.RefreshToken(context.Background(), "not-a-token", auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, jwtRepo, _ := newService(t, employeeAccount(t))

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "employee@example.com",
		Password: "correct-horse",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))
	assert.True(t, jwtRepo.revoked[tokens.RefreshToken])

	// Logging out twice reports the revocation.
	err = svc.Logout(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/position"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// TxRunner is the slice of postgresql.TxManager the service needs.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AuthServiceImpl struct {
	tx TxRunner
	user.UserRepository
	department.DepartmentRepository
	position.PositionRepository
	jwt.Service
	postgresql.JWTRepository
	leaveAllowance int
}

func NewAuthService(
	tx TxRunner,
	userRepository user.UserRepository,
	departmentRepository department.DepartmentRepository,
	positionRepository position.PositionRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
	leaveAllowance int,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:                   tx,
		UserRepository:       userRepository,
		DepartmentRepository: departmentRepository,
		PositionRepository:   positionRepository,
		Service:              jwtService,
		JWTRepository:        jwtRepository,
		leaveAllowance:       leaveAllowance,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// authenticate resolves an account by email and checks its password. Every
// failure collapses into ErrInvalidCredentials so callers cannot probe which
// emails exist.
func (a *AuthServiceImpl) authenticate(ctx context.Context, email, password string) (user.User, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, auth.ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return user.User{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(password)); err != nil {
		return user.User{}, auth.ErrInvalidCredentials
	}

	return userData, nil
}

// issueTokens generates an access/refresh pair and persists the refresh token
// hash inside one transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.authenticate(ctx, loginReq.Email, loginReq.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return a.issueTokens(ctx, userData, sessionReq)
}

// LoginHR implements auth.AuthService. A non-HR account gets the same answer
// as a wrong password.
func (a *AuthServiceImpl) LoginHR(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.authenticate(ctx, loginReq.Email, loginReq.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !userData.IsHR() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	return a.issueTokens(ctx, userData, sessionReq)
}

// LoginWithGoogle implements auth.AuthService. Accounts are only ever created
// through Register, so an unknown Google email is a failed login.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.OAuthProviderID != nil && *userData.OAuthProviderID != googleID {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// Register implements auth.AuthService. HR-only; the route is gated by
// middleware and the created identity starts with a full leave allowance.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.User, error) {
	existing, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil && err != pgx.ErrNoRows {
		return user.User{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing.ID != "" {
		return user.User{}, user.ErrEmailExists
	}

	if req.DepartmentID != nil {
		if _, err := a.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return user.User{}, err
		}
	}
	if req.PositionID != nil {
		if _, err := a.PositionRepository.GetByID(ctx, *req.PositionID); err != nil {
			return user.User{}, err
		}
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to parse salary: %w", err)
	}
	joinDate, ok := validator.IsValidDate(req.JoinDate)
	if !ok {
		return user.User{}, fmt.Errorf("failed to parse join date %q", req.JoinDate)
	}

	newUser := user.User{
		Email:             req.Email,
		FullName:          req.FullName,
		PasswordHash:      &passwordHash,
		Role:              user.Role(req.Role),
		Salary:            salary,
		JoinDate:          joinDate,
		DepartmentID:      req.DepartmentID,
		PositionID:        req.PositionID,
		CasualLeavesTaken: 0,
		SickLeavesTaken:   0,
		RemainingLeaves:   a.leaveAllowance,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// RefreshToken implements auth.AuthService. Rotation: the presented token is
// revoked and a fresh pair is issued, so each refresh token works once.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userID, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.Service.ValidateRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}

	revoked, err := a.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.ErrInvalidToken
		}
		return fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.ErrRefreshTokenRevoked
	}

	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

package auth

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

type AuthService interface {
	// Login authenticates any active account.
	Login(ctx context.Context, loginReq LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	// LoginHR authenticates like Login but additionally requires the HR role.
	// A role mismatch is reported exactly like bad credentials.
	LoginHR(ctx context.Context, loginReq LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	// LoginWithGoogle signs in an existing account by verified Google email.
	// It never creates accounts; registration stays an HR action.
	LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	// Register creates a new identity with default leave counters.
	Register(ctx context.Context, req RegisterRequest) (user.User, error)
	// RefreshToken rotates a valid refresh token into a new token pair.
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	// Logout revokes the given refresh token. Revocation is one-way.
	Logout(ctx context.Context, refreshToken string) error
}

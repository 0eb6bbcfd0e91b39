package profile

import "context"

type ProfileService interface {
	// GetProfile returns the caller's own profile.
	GetProfile(ctx context.Context) (*ProfileResponse, error)
	// GetProfileByID returns any user's profile; callers must be HR-gated.
	GetProfileByID(ctx context.Context, userID string) (*ProfileResponse, error)
}

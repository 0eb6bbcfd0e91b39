package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/profile"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetProfileByID(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &ProfileHandlerImpl{profileService: profileService}
}

// GetProfile implements ProfileHandler: the caller's own profile.
func (h *ProfileHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	data, err := h.profileService.GetProfile(r.Context())
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// GetProfileByID implements ProfileHandler. HR-gated by middleware.
func (h *ProfileHandlerImpl) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	data, err := h.profileService.GetProfileByID(r.Context(), userID)
	if err != nil {
		slog.Error("GetProfileByID service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

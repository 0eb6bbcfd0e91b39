package http

import (
	"log/slog"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler. HR-gated by middleware.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

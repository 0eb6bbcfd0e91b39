package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/position"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

// MasterService is what the handler needs from the directory service.
type MasterService interface {
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error)
	ListDepartments(ctx context.Context) ([]department.Department, error)
	DeleteDepartment(ctx context.Context, id string) error
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.Position, error)
	ListPositions(ctx context.Context) ([]position.Position, error)
	DeletePosition(ctx context.Context, id string) error
}

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
	CreatePosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService MasterService
}

func NewMasterHandler(masterService MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var createReq department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateDepartment(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", department.ToResponse(created))
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	out := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, department.ToResponse(d))
	}
	response.Success(w, out)
}

// DeleteDepartment implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteDepartment(r.Context(), id); err != nil {
		slog.Error("DeleteDepartment service error", "error", err, "department_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Department deleted", "department_id", id)
	response.SuccessWithMessage(w, "Department deleted", nil)
}

// CreatePosition implements MasterHandler.
func (h *MasterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var createReq position.CreatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePosition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreatePosition(r.Context(), createReq)
	if err != nil {
		slog.Error("CreatePosition service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created", position.ToResponse(created))
}

// ListPositions implements MasterHandler.
func (h *MasterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.masterService.ListPositions(r.Context())
	if err != nil {
		slog.Error("ListPositions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	out := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		out = append(out, position.ToResponse(p))
	}
	response.Success(w, out)
}

// DeletePosition implements MasterHandler.
func (h *MasterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeletePosition(r.Context(), id); err != nil {
		slog.Error("DeletePosition service error", "error", err, "position_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Position deleted", "position_id", id)
	response.SuccessWithMessage(w, "Position deleted", nil)
}

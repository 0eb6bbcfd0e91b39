package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq leave.SubmitLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave submitted", "leave_id", created.ID)
	response.Created(w, "Leave request submitted", leave.ToResponse(created))
}

// Approve implements LeaveHandler. HR-gated by middleware.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "id")

	approved, err := h.leaveService.Approve(r.Context(), leaveID)
	if err != nil {
		slog.Error("Approve leave service error", "error", err, "leave_id", leaveID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave approved", "leave_id", leaveID)
	response.SuccessWithMessage(w, "Leave request approved", leave.ToResponse(approved))
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.List(r.Context())
	if err != nil {
		slog.Error("List leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToResponseList(leaves))
}

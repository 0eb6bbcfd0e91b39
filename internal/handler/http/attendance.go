package http

import (
	"log/slog"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	att, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked in", "attendance_id", att.ID, "is_late", att.IsLate)
	response.Created(w, "Checked in", attendance.ToResponse(att))
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	att, err := h.attendanceService.CheckOut(r.Context())
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked out", "attendance_id", att.ID)
	response.SuccessWithMessage(w, "Checked out", attendance.ToResponse(att))
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	atts, err := h.attendanceService.List(r.Context())
	if err != nil {
		slog.Error("List attendances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToResponseList(atts))
}

// Today implements AttendanceHandler: the caller's row for the current day.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	att, err := h.attendanceService.Today(r.Context())
	if err != nil {
		slog.Error("Today attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	if att == nil {
		response.Success(w, nil)
		return
	}

	response.Success(w, attendance.ToResponse(*att))
}

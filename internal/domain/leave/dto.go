package leave

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// UserID lets HR submit on behalf of another user; ignored for everyone else.
	UserID *string `json:"user_id,omitempty"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be casual or sick",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if r.UserID != nil && !validator.IsValidUUID(*r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserFullName *string `json:"user_full_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DurationDays int     `json:"duration_days"`
	IsApproved   bool    `json:"is_approved"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		UserFullName: l.UserFullName,
		LeaveType:    string(l.Type),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		DurationDays: l.DurationDays(),
		IsApproved:   l.IsApproved,
		ApprovedBy:   l.ApprovedBy,
	}
}

func ToResponseList(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, ToResponse(l))
	}
	return out
}

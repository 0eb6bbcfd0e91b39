package task

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid id",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
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

	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	ID          string  `json:"-"` // from URL
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be not_started, in_progress or completed",
		})
	}

	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserFullName *string `json:"user_full_name,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	StartDate    string  `json:"start_date"`
	DueDate      string  `json:"due_date"`
	Status       Status  `json:"status"`
	Progress     int     `json:"progress"`
}

func ToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		UserFullName: t.UserFullName,
		Title:        t.Title,
		Description:  t.Description,
		StartDate:    t.StartDate.Format("2006-01-02"),
		DueDate:      t.DueDate.Format("2006-01-02"),
		Status:       t.Status,
		Progress:     t.Progress,
	}
}

func ToResponseList(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToResponse(t))
	}
	return out
}

package position

import "github.com/staffhub/staffhub-backend-go/internal/pkg/validator"

type CreatePositionRequest struct {
	Title        string  `json:"title"`
	DepartmentID *string `json:"department_id,omitempty"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 100 characters",
		})
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
}

func ToResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:             p.ID,
		Title:          p.Title,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
	}
}

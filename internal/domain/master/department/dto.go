package department

import "github.com/staffhub/staffhub-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

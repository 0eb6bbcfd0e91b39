package auth

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	FullName     string  `json:"full_name"`
	Role         string  `json:"role"`
	Salary       string  `json:"salary"`
	JoinDate     string  `json:"join_date"`
	DepartmentID *string `json:"department_id,omitempty"`
	PositionID   *string `json:"position_id,omitempty"`
}

// Validate reports every field problem at once so the caller can fix the whole
// form in one round trip.
func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !user.Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be hr or employee",
		})
	}

	if validator.IsEmpty(r.Salary) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary is required",
		})
	} else if salary, err := decimal.NewFromString(r.Salary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be a non-negative number",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be YYYY-MM-DD",
		})
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid id",
		})
	}

	if r.PositionID != nil && !validator.IsValidUUID(*r.PositionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position_id must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

// SessionTrackingRequest carries request metadata stored next to refresh tokens.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

package user

import "github.com/shopspring/decimal"

type UserResponse struct {
	ID                string          `json:"id"`
	Email             string          `json:"email"`
	FullName          string          `json:"full_name"`
	Role              Role            `json:"role"`
	Salary            decimal.Decimal `json:"salary"`
	JoinDate          string          `json:"join_date"`
	DepartmentID      *string         `json:"department_id,omitempty"`
	DepartmentName    *string         `json:"department_name,omitempty"`
	PositionID        *string         `json:"position_id,omitempty"`
	PositionTitle     *string         `json:"position_title,omitempty"`
	CasualLeavesTaken int             `json:"casual_leaves_taken"`
	SickLeavesTaken   int             `json:"sick_leaves_taken"`
	RemainingLeaves   int             `json:"remaining_leaves"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		FullName:          u.FullName,
		Role:              u.Role,
		Salary:            u.Salary,
		JoinDate:          u.JoinDate.Format("2006-01-02"),
		DepartmentID:      u.DepartmentID,
		DepartmentName:    u.DepartmentName,
		PositionID:        u.PositionID,
		PositionTitle:     u.PositionTitle,
		CasualLeavesTaken: u.CasualLeavesTaken,
		SickLeavesTaken:   u.SickLeavesTaken,
		RemainingLeaves:   u.RemainingLeaves,
	}
}

package user

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is deliberately a closed two-variant type. Permission checks switch on it
// instead of an is_hr boolean so a missing case is visible at review time.
type Role string

const (
	RoleHR       Role = "hr"       // Can register users, approve leave, view the dashboard
	RoleEmployee Role = "employee" // Regular account
)

func (r Role) Valid() bool {
	return r == RoleHR || r == RoleEmployee
}

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash *string
	Role         Role

	Salary       decimal.Decimal
	JoinDate     time.Time
	DepartmentID *string
	PositionID   *string

	// Leave counters are a materialized view of the leave ledger. They are only
	// written inside the approval transaction; quota checks go to the ledger.
	CasualLeavesTaken int
	SickLeavesTaken   int
	RemainingLeaves   int

	OAuthProvider   *string
	OAuthProviderID *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields for responses
	DepartmentName *string
	PositionTitle  *string
}

// IsHR checks if the user holds the elevated HR role.
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// CanApprove checks if the user may approve leave requests.
func (u *User) CanApprove() bool {
	return u.IsHR()
}

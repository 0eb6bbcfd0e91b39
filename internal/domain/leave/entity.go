package leave

import "time"

type LeaveType string

const (
	LeaveTypeCasual LeaveType = "casual"
	LeaveTypeSick   LeaveType = "sick"
)

func (t LeaveType) Valid() bool {
	return t == LeaveTypeCasual || t == LeaveTypeSick
}

// Leave is the ledger row. A leave is either pending or approved; there is no
// third state, so pending + approved always adds up to the full ledger.
type Leave struct {
	ID     string
	UserID string
	Type   LeaveType

	StartDate time.Time
	EndDate   time.Time

	IsApproved bool
	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join field for responses
	UserFullName *string
}

// DurationDays is inclusive of both endpoints: a single-day leave counts as 1.
func (l *Leave) DurationDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

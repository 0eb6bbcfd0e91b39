package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrQuotaExceeded    = errors.New("leave quota exceeded for this type")
	ErrAlreadyApproved  = errors.New("leave request already approved")
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
	ErrInvalidLeaveType = errors.New("leave_type must be casual or sick")
)

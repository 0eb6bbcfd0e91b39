package attendance

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNoOpenCheckIn     = errors.New("no open check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

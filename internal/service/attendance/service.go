package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// Clock lets tests pin the current time.
type Clock func() time.Time

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	officeStartSecs int
	location        *time.Location
	now             Clock
}

// NewAttendanceService builds the service around the office start threshold
// ("HH:MM") and the timezone the attendance day is keyed in. Both come from
// configuration and are validated at startup, so parse failures here fall
// back to sane defaults rather than erroring.
func NewAttendanceService(repo attendance.AttendanceRepository, officeStart string, timezone string, now Clock) *AttendanceServiceImpl {
	mins := 9 * 60
	if t, err := time.Parse("15:04", officeStart); err == nil {
		mins = t.Hour()*60 + t.Minute()
	}

	loc := time.Local
	if timezone != "" && timezone != "Local" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}

	if now == nil {
		now = time.Now
	}

	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		officeStartSecs:      mins * 60,
		location:             loc,
		now:                  now,
	}
}

func caller(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), nil
}

// isLate reports whether t is strictly after office start. Arriving exactly
// on the threshold is on time; one second past it is late.
func (s *AttendanceServiceImpl) isLate(t time.Time) bool {
	local := t.In(s.location)
	return local.Hour()*3600+local.Minute()*60+local.Second() > s.officeStartSecs
}

func (s *AttendanceServiceImpl) dayKey(t time.Time) string {
	return t.In(s.location).Format("2006-01-02")
}

// CheckIn opens today's attendance row for the caller. One row per user per
// day; a second check-in the same day is rejected.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.Attendance, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now()
	today := s.dayKey(now)

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:  userID,
		Date:    today,
		CheckIn: now,
		IsLate:  s.isLate(now),
	})
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// CheckOut closes today's open row. No row today means nothing to close;
// a row that is already closed stays closed.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.Attendance, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	today := s.dayKey(s.now())

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing == nil {
		return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
	}
	if existing.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}

	return s.AttendanceRepository.SetCheckOut(ctx, existing.ID)
}

// List returns every row for HR and the caller's rows otherwise.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if role == user.RoleHR {
		return s.AttendanceRepository.List(ctx)
	}
	return s.AttendanceRepository.GetByUserID(ctx, userID)
}

// Today returns the caller's row for the current day, or nil if absent.
func (s *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.Attendance, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.AttendanceRepository.GetByUserAndDate(ctx, userID, s.dayKey(s.now()))
}

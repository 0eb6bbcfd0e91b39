package profile

import (
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// ProfileResponse joins a user's identity with everything they own.
type ProfileResponse struct {
	User        user.UserResponse               `json:"user"`
	Leaves      []leave.LeaveResponse           `json:"leaves"`
	Tasks       []task.TaskResponse             `json:"tasks"`
	Attendances []attendance.AttendanceResponse `json:"attendances"`
}

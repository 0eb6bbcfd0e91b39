package profile

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/domain/profile"
	"github.com/staffhub/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type ProfileServiceImpl struct {
	user.UserRepository
	leave.LeaveRepository
	task.TaskRepository
	attendance.AttendanceRepository
}

func NewProfileService(userRepository user.UserRepository, leaveRepository leave.LeaveRepository, taskRepository task.TaskRepository, attendanceRepository attendance.AttendanceRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		UserRepository:       userRepository,
		LeaveRepository:      leaveRepository,
		TaskRepository:       taskRepository,
		AttendanceRepository: attendanceRepository,
	}
}

// GetProfile returns the caller's own profile, identified by the user_id claim.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context) (*profile.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("user_id claim is missing or invalid")
	}

	return s.GetProfileByID(ctx, userID)
}

// GetProfileByID collects the user plus everything they own, fanned out
// concurrently.
func (s *ProfileServiceImpl) GetProfileByID(ctx context.Context, userID string) (*profile.ProfileResponse, error) {
	var (
		userData    user.User
		leaves      []leave.Leave
		tasks       []task.Task
		attendances []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		userData, err = s.UserRepository.GetByID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.LeaveRepository.GetByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.TaskRepository.GetByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		attendances, err = s.AttendanceRepository.GetByUserID(gCtx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &profile.ProfileResponse{
		User:        user.ToResponse(userData),
		Leaves:      leave.ToResponseList(leaves),
		Tasks:       task.ToResponseList(tasks),
		Attendances: attendance.ToResponseList(attendances),
	}, nil
}

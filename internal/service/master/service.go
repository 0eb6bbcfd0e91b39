package master

import (
	"context"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/master/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/position"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MasterServiceImpl manages the directory entities (departments, positions).
// Every route that reaches it is HR-gated by middleware.
type MasterServiceImpl struct {
	tx TxRunner
	department.DepartmentRepository
	position.PositionRepository
	user.UserRepository
}

func NewMasterService(tx TxRunner, departmentRepository department.DepartmentRepository, positionRepository position.PositionRepository, userRepository user.UserRepository) *MasterServiceImpl {
	return &MasterServiceImpl{
		tx:                   tx,
		DepartmentRepository: departmentRepository,
		PositionRepository:   positionRepository,
		UserRepository:       userRepository,
	}
}

func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return s.DepartmentRepository.List(ctx)
}

// DeleteDepartment removes the department and nulls every reference to it,
// on positions and on users, in one transaction.
func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.DepartmentRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.PositionRepository.ClearDepartment(txCtx, id); err != nil {
			return fmt.Errorf("failed to clear positions: %w", err)
		}
		if err := s.UserRepository.ClearDepartment(txCtx, id); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		return s.DepartmentRepository.Delete(txCtx, id)
	})
}

func (s *MasterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return position.Position{}, err
		}
	}

	created, err := s.PositionRepository.Create(ctx, position.Position{
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}
	return created, nil
}

func (s *MasterServiceImpl) ListPositions(ctx context.Context) ([]position.Position, error) {
	return s.PositionRepository.List(ctx)
}

// DeletePosition removes the position and nulls user references to it.
func (s *MasterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	if _, err := s.PositionRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.UserRepository.ClearPosition(txCtx, id); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		return s.PositionRepository.Delete(txCtx, id)
	})
}

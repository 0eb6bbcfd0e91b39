package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	u.id, u.email, u.full_name, u.password_hash, u.role,
	u.salary, u.join_date, u.department_id, u.position_id,
	u.casual_leaves_taken, u.sick_leaves_taken, u.remaining_leaves,
	u.oauth_provider, u.oauth_provider_id,
	u.created_at, u.updated_at,
	d.name, p.title
`

const userJoins = `
	FROM users u
	LEFT JOIN departments d ON d.id = u.department_id
	LEFT JOIN positions p ON p.id = u.position_id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.Salary, &u.JoinDate, &u.DepartmentID, &u.PositionID,
		&u.CasualLeavesTaken, &u.SickLeavesTaken, &u.RemainingLeaves,
		&u.OAuthProvider, &u.OAuthProviderID,
		&u.CreatedAt, &u.UpdatedAt,
		&u.DepartmentName, &u.PositionTitle,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}
	newUser.ID = id.String()

	query := `
		INSERT INTO users (
			id, email, full_name, password_hash, role,
			salary, join_date, department_id, position_id,
			casual_leaves_taken, sick_leaves_taken, remaining_leaves,
			oauth_provider, oauth_provider_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Email,
		newUser.FullName,
		newUser.PasswordHash,
		newUser.Role,
		newUser.Salary,
		newUser.JoinDate,
		newUser.DepartmentID,
		newUser.PositionID,
		newUser.CasualLeavesTaken,
		newUser.SickLeavesTaken,
		newUser.RemainingLeaves,
		newUser.OAuthProvider,
		newUser.OAuthProviderID,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` WHERE u.id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` WHERE u.email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` ORDER BY u.full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET full_name = $2, salary = $3, department_id = $4, position_id = $5,
			role = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, u.ID, u.FullName, u.Salary, u.DepartmentID, u.PositionID, u.Role)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ApplyLeaveDays implements user.UserRepository. The GREATEST guard keeps the
// remaining balance from going negative if caps were loosened after approval.
func (r *userRepository) ApplyLeaveDays(ctx context.Context, userID string, leaveType string, days int) error {
	q := GetQuerier(ctx, r.db)

	var counterColumn string
	switch leaveType {
	case "casual":
		counterColumn = "casual_leaves_taken"
	case "sick":
		counterColumn = "sick_leaves_taken"
	default:
		return fmt.Errorf("unknown leave type %q", leaveType)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s = %s + $2,
			remaining_leaves = GREATEST(remaining_leaves - $2, 0),
			updated_at = NOW()
		WHERE id = $1
	`, counterColumn, counterColumn)

	tag, err := q.Exec(ctx, query, userID, days)
	if err != nil {
		return fmt.Errorf("failed to apply leave days: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ClearDepartment implements user.UserRepository.
func (r *userRepository) ClearDepartment(ctx context.Context, departmentID string) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `UPDATE users SET department_id = NULL, updated_at = NOW() WHERE department_id = $1`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to clear department reference: %w", err)
	}
	return nil
}

// ClearPosition implements user.UserRepository.
func (r *userRepository) ClearPosition(ctx context.Context, positionID string) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `UPDATE users SET position_id = NULL, updated_at = NOW() WHERE position_id = $1`, positionID)
	if err != nil {
		return fmt.Errorf("failed to clear position reference: %w", err)
	}
	return nil
}

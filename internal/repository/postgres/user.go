package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (
			id, username, email, first_name, last_name, phone,
			password_hash, is_active, is_superuser, date_joined
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	user.ID = uuid.New()
	user.DateJoined = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.PasswordHash,
		user.IsActive,
		user.IsSuperuser,
		user.DateJoined,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT * FROM users WHERE id = $1`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", err)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM users WHERE username = $1`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", err)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// List folds the per-user pet and appointment counts into one grouped query
// instead of issuing two counting queries per row.
func (r *userRepository) List(ctx context.Context, search string) ([]*model.UserWithCounts, error) {
	query := `
		SELECT u.*,
			   (SELECT COUNT(*) FROM pets p WHERE p.owner_id = u.id) AS pets_count,
			   (SELECT COUNT(*) FROM appointments a WHERE a.user_id = u.id) AS appointments_count
		FROM users u
		WHERE u.is_superuser = FALSE
	`
	args := []interface{}{}

	if search != "" {
		query += `
			AND (u.username ILIKE $1 OR u.email ILIKE $1
				OR u.first_name ILIKE $1 OR u.last_name ILIKE $1)
		`
		args = append(args, "%"+search+"%")
	}

	query += " ORDER BY u.date_joined DESC"

	var users []*model.UserWithCounts
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) CountNonSuperusers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE is_superuser = FALSE`)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) CountJoinedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM users WHERE is_superuser = FALSE AND date_joined >= $1`, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count new users: %w", err)
	}
	return count, nil
}

func (r *userRepository) TopByAppointments(ctx context.Context, limit int) ([]*model.UserAppointmentCount, error) {
	query := `
		SELECT u.id, u.username, u.email, COUNT(a.id) AS appointments_count
		FROM users u
		LEFT JOIN appointments a ON a.user_id = u.id
		WHERE u.is_superuser = FALSE
		GROUP BY u.id, u.username, u.email
		ORDER BY appointments_count DESC
		LIMIT $1
	`
	var top []*model.UserAppointmentCount
	if err := r.db.SelectContext(ctx, &top, query, limit); err != nil {
		return nil, fmt.Errorf("failed to rank users by appointments: %w", err)
	}
	return top, nil
}

func (r *userRepository) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE users SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`

	var active bool
	if err := r.db.GetContext(ctx, &active, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperrors.NotFound("user", err)
		}
		return false, fmt.Errorf("failed to toggle user: %w", err)
	}
	return active, nil
}

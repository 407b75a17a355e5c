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

const appointmentDetailColumns = `
	a.id, a.user_id, a.pet_id, a.service, a.date, a.time, a.notes, a.created_at,
	u.username, u.email, p.name AS pet_name, p.pet_type
`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, user_id, pet_id, service, date, time, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	appointment.ID = uuid.New()
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.UserID,
		appointment.PetID,
		appointment.Service,
		appointment.Date,
		appointment.Time,
		appointment.Notes,
		appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1`

	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment", nil)
	}
	return nil
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE user_id = $1 ORDER BY date ASC, time ASC`

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter model.AppointmentFilter) ([]*model.AppointmentWithDetails, error) {
	query := `
		SELECT ` + appointmentDetailColumns + `
		FROM appointments a
		JOIN users u ON u.id = a.user_id
		JOIN pets p ON p.id = a.pet_id
		WHERE 1 = 1
	`
	args := []interface{}{}
	argCount := 1

	today := model.DateOnly(filter.Today)
	switch filter.Status {
	case model.AppointmentFilterToday:
		query += fmt.Sprintf(" AND a.date = $%d", argCount)
		args = append(args, today)
		argCount++
	case model.AppointmentFilterUpcoming:
		query += fmt.Sprintf(" AND a.date >= $%d", argCount)
		args = append(args, today)
		argCount++
	case model.AppointmentFilterPast:
		query += fmt.Sprintf(" AND a.date < $%d", argCount)
		args = append(args, today)
		argCount++
	}

	if filter.Date != nil {
		query += fmt.Sprintf(" AND a.date = $%d", argCount)
		args = append(args, model.DateOnly(*filter.Date))
		argCount++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(
			" AND (u.username ILIKE $%d OR u.email ILIKE $%d OR p.name ILIKE $%d)",
			argCount, argCount, argCount,
		)
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	query += " ORDER BY a.date DESC, a.time DESC"

	var appointments []*model.AppointmentWithDetails
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Latest(ctx context.Context, limit int) ([]*model.AppointmentWithDetails, error) {
	query := `
		SELECT ` + appointmentDetailColumns + `
		FROM appointments a
		JOIN users u ON u.id = a.user_id
		JOIN pets p ON p.id = a.pet_id
		ORDER BY a.created_at DESC
		LIMIT $1
	`
	var appointments []*model.AppointmentWithDetails
	if err := r.db.SelectContext(ctx, &appointments, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list latest appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM appointments`); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

func (r *appointmentRepository) CountOnDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM appointments WHERE date = $1`, model.DateOnly(date))
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments on date: %w", err)
	}
	return count, nil
}

func (r *appointmentRepository) CountFromDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM appointments WHERE date >= $1`, model.DateOnly(date))
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments from date: %w", err)
	}
	return count, nil
}

func (r *appointmentRepository) CountInPeriod(ctx context.Context, start, end time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM appointments WHERE date >= $1 AND date <= $2`,
		model.DateOnly(start), model.DateOnly(end))
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments in period: %w", err)
	}
	return count, nil
}

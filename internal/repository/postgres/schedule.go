package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
)

// List orders rows by the fixed weekday sequence rather than alphabetically.
func (r *scheduleRepository) List(ctx context.Context) ([]*model.ClinicSchedule, error) {
	query := `
		SELECT * FROM clinic_schedules
		ORDER BY CASE day_of_week
			WHEN 'monday' THEN 1
			WHEN 'tuesday' THEN 2
			WHEN 'wednesday' THEN 3
			WHEN 'thursday' THEN 4
			WHEN 'friday' THEN 5
			WHEN 'saturday' THEN 6
			WHEN 'sunday' THEN 7
		END
	`
	var schedules []*model.ClinicSchedule
	if err := r.db.SelectContext(ctx, &schedules, query); err != nil {
		return nil, fmt.Errorf("failed to list clinic schedules: %w", err)
	}
	return schedules, nil
}

// Upsert keys on day_of_week, which carries a unique constraint.
func (r *scheduleRepository) Upsert(ctx context.Context, schedule *model.ClinicSchedule) error {
	query := `
		INSERT INTO clinic_schedules (id, day_of_week, is_open, opening_time, closing_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (day_of_week) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			notes = EXCLUDED.notes
	`
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}

	_, err := r.db.ExecContext(ctx, query,
		schedule.ID,
		schedule.DayOfWeek,
		schedule.IsOpen,
		schedule.OpeningTime,
		schedule.ClosingTime,
		schedule.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert clinic schedule: %w", err)
	}
	return nil
}

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

func (r *veterinarianRepository) Create(ctx context.Context, vet *model.Veterinarian) error {
	query := `
		INSERT INTO veterinarians (
			id, name, specialty, license_number, email, phone, years_experience,
			bio, available_days, work_start, work_end, photo_key, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	vet.ID = uuid.New()
	vet.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		vet.ID,
		vet.Name,
		vet.Specialty,
		vet.LicenseNumber,
		vet.Email,
		vet.Phone,
		vet.YearsExperience,
		vet.Bio,
		vet.AvailableDays,
		vet.WorkStart,
		vet.WorkEnd,
		vet.PhotoKey,
		vet.IsActive,
		vet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create veterinarian: %w", err)
	}
	return nil
}

func (r *veterinarianRepository) List(ctx context.Context, filter model.VeterinarianFilter) ([]*model.Veterinarian, error) {
	query := `SELECT * FROM veterinarians WHERE 1 = 1`
	args := []interface{}{}
	argCount := 1

	if filter.Specialty != "" {
		query += fmt.Sprintf(" AND specialty = $%d", argCount)
		args = append(args, filter.Specialty)
		argCount++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(
			" AND (name ILIKE $%d OR email ILIKE $%d OR license_number ILIKE $%d)",
			argCount, argCount, argCount,
		)
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	query += " ORDER BY name ASC"

	var vets []*model.Veterinarian
	if err := r.db.SelectContext(ctx, &vets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list veterinarians: %w", err)
	}
	return vets, nil
}

func (r *veterinarianRepository) ListActive(ctx context.Context) ([]*model.Veterinarian, error) {
	query := `SELECT * FROM veterinarians WHERE is_active = TRUE ORDER BY name ASC`

	var vets []*model.Veterinarian
	if err := r.db.SelectContext(ctx, &vets, query); err != nil {
		return nil, fmt.Errorf("failed to list active veterinarians: %w", err)
	}
	return vets, nil
}

func (r *veterinarianRepository) LatestActive(ctx context.Context, limit int) ([]*model.Veterinarian, error) {
	query := `SELECT * FROM veterinarians WHERE is_active = TRUE ORDER BY created_at DESC LIMIT $1`

	var vets []*model.Veterinarian
	if err := r.db.SelectContext(ctx, &vets, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list latest veterinarians: %w", err)
	}
	return vets, nil
}

func (r *veterinarianRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM veterinarians WHERE is_active = TRUE`)
	if err != nil {
		return 0, fmt.Errorf("failed to count veterinarians: %w", err)
	}
	return count, nil
}

func (r *veterinarianRepository) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE veterinarians SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`

	var active bool
	if err := r.db.GetContext(ctx, &active, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperrors.NotFound("veterinarian", err)
		}
		return false, fmt.Errorf("failed to toggle veterinarian: %w", err)
	}
	return active, nil
}

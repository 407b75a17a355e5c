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

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	query := `
		INSERT INTO services (id, name, description, duration, price, icon, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	service.ID = uuid.New()
	service.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Duration,
		service.Price,
		service.Icon,
		service.IsActive,
		service.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *serviceRepository) List(ctx context.Context, search string) ([]*model.Service, error) {
	query := `SELECT * FROM services`
	args := []interface{}{}

	if search != "" {
		query += ` WHERE name ILIKE $1 OR description ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	query += " ORDER BY name ASC"

	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]*model.Service, error) {
	query := `SELECT * FROM services WHERE is_active = TRUE ORDER BY name ASC`

	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list active services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) LatestActive(ctx context.Context, limit int) ([]*model.Service, error) {
	query := `SELECT * FROM services WHERE is_active = TRUE ORDER BY created_at DESC LIMIT $1`

	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list latest services: %w", err)
	}
	return services, nil
}

// ActiveWithUsage reports a constant usage count of 1 per service. The
// legacy metric counted service rows rather than appointments per service;
// it is kept as-is so report output stays comparable.
func (r *serviceRepository) ActiveWithUsage(ctx context.Context, limit int) ([]*model.ServiceUsage, error) {
	query := `
		SELECT *, 1 AS usage_count
		FROM services
		WHERE is_active = TRUE
		LIMIT $1
	`
	var services []*model.ServiceUsage
	if err := r.db.SelectContext(ctx, &services, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list service usage: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE services SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`

	var active bool
	if err := r.db.GetContext(ctx, &active, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperrors.NotFound("service", err)
		}
		return false, fmt.Errorf("failed to toggle service: %w", err)
	}
	return active, nil
}

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

func (r *documentRepository) Create(ctx context.Context, doc *model.Document) error {
	query := `
		INSERT INTO documents (
			id, title, description, category, file_key, file_size,
			icon, uploader_id, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	doc.ID = uuid.New()
	doc.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		doc.ID,
		doc.Title,
		doc.Description,
		doc.Category,
		doc.FileKey,
		doc.FileSize,
		doc.Icon,
		doc.UploaderID,
		doc.IsActive,
		doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *documentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	query := `SELECT * FROM documents WHERE id = $1`

	var doc model.Document
	if err := r.db.GetContext(ctx, &doc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("document", err)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

func (r *documentRepository) List(ctx context.Context) ([]*model.Document, error) {
	query := `SELECT * FROM documents ORDER BY created_at DESC`

	var docs []*model.Document
	if err := r.db.SelectContext(ctx, &docs, query); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("document", nil)
	}
	return nil
}

func (r *documentRepository) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE documents SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`

	var active bool
	if err := r.db.GetContext(ctx, &active, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperrors.NotFound("document", err)
		}
		return false, fmt.Errorf("failed to toggle document: %w", err)
	}
	return active, nil
}

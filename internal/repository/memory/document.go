package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

type documentRepo struct {
	store *Store
}

func (r *documentRepo) Create(ctx context.Context, doc *model.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	r.store.documents[doc.ID] = *doc
	return nil
}

func (r *documentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	doc, ok := r.store.documents[id]
	if !ok {
		return nil, apperrors.NotFound("document", nil)
	}
	return &doc, nil
}

func (r *documentRepo) List(ctx context.Context) ([]*model.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Document, 0, len(r.store.documents))
	for _, doc := range r.store.documents {
		d := doc
		out = append(out, &d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.documents[id]; !ok {
		return apperrors.NotFound("document", nil)
	}
	delete(r.store.documents, id)
	return nil
}

func (r *documentRepo) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, ok := r.store.documents[id]
	if !ok {
		return false, apperrors.NotFound("document", nil)
	}
	doc.IsActive = !doc.IsActive
	r.store.documents[id] = doc
	return doc.IsActive, nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

type petRepo struct {
	store *Store
}

func (r *petRepo) Create(ctx context.Context, pet *model.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if pet.ID == uuid.Nil {
		pet.ID = uuid.New()
	}
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = time.Now()
		pet.UpdatedAt = pet.CreatedAt
	}
	r.store.pets[pet.ID] = *pet
	return nil
}

func (r *petRepo) Get(ctx context.Context, id uuid.UUID) (*model.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	pet, ok := r.store.pets[id]
	if !ok {
		return nil, apperrors.NotFound("pet", nil)
	}
	return &pet, nil
}

func (r *petRepo) Update(ctx context.Context, pet *model.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pets[pet.ID]; !ok {
		return apperrors.NotFound("pet", nil)
	}
	pet.UpdatedAt = time.Now()
	r.store.pets[pet.ID] = *pet
	return nil
}

// Delete cascades to the pet's appointments, matching the FK behavior.
func (r *petRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pets[id]; !ok {
		return apperrors.NotFound("pet", nil)
	}
	delete(r.store.pets, id)
	for aptID, apt := range r.store.appointments {
		if apt.PetID == id {
			delete(r.store.appointments, aptID)
		}
	}
	return nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Pet, 0)
	for _, pet := range r.store.pets {
		if pet.OwnerID == ownerID {
			p := pet
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *petRepo) List(ctx context.Context, filter model.PetFilter) ([]*model.PetWithOwner, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.PetWithOwner, 0)
	for _, pet := range r.store.pets {
		if filter.PetType != "" && pet.PetType != filter.PetType {
			continue
		}
		owner := r.store.users[pet.OwnerID]
		if filter.Search != "" &&
			!containsFold(pet.Name, filter.Search) &&
			!containsFold(owner.Username, filter.Search) &&
			!containsFold(pet.Breed, filter.Search) {
			continue
		}
		out = append(out, &model.PetWithOwner{Pet: pet, OwnerUsername: owner.Username})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *petRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.pets), nil
}

func (r *petRepo) CountOfType(ctx context.Context, petType model.PetType) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, pet := range r.store.pets {
		if pet.PetType == petType {
			count++
		}
	}
	return count, nil
}

func (r *petRepo) CountByType(ctx context.Context) ([]model.PetTypeCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	byType := make(map[model.PetType]int)
	for _, pet := range r.store.pets {
		byType[pet.PetType]++
	}

	out := make([]model.PetTypeCount, 0, len(byType))
	for petType, count := range byType {
		out = append(out, model.PetTypeCount{PetType: petType, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PetType < out[j].PetType
	})
	return out, nil
}

func (r *petRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, pet := range r.store.pets {
		if !pet.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

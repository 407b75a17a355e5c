package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

type serviceRepo struct {
	store *Store
}

func (r *serviceRepo) Create(ctx context.Context, service *model.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now()
	}
	r.store.services[service.ID] = *service
	return nil
}

func (r *serviceRepo) List(ctx context.Context, search string) ([]*model.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Service, 0)
	for _, svc := range r.store.services {
		if search != "" &&
			!containsFold(svc.Name, search) &&
			!containsFold(svc.Description, search) {
			continue
		}
		s := svc
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *serviceRepo) ListActive(ctx context.Context) ([]*model.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Service, 0)
	for _, svc := range r.store.services {
		if svc.IsActive {
			s := svc
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *serviceRepo) LatestActive(ctx context.Context, limit int) ([]*model.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Service, 0)
	for _, svc := range r.store.services {
		if svc.IsActive {
			s := svc
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *serviceRepo) ActiveWithUsage(ctx context.Context, limit int) ([]*model.ServiceUsage, error) {
	active, err := r.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.ServiceUsage, 0, len(active))
	for _, svc := range active {
		out = append(out, &model.ServiceUsage{Service: *svc, UsageCount: 1})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *serviceRepo) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	svc, ok := r.store.services[id]
	if !ok {
		return false, apperrors.NotFound("service", nil)
	}
	svc.IsActive = !svc.IsActive
	r.store.services[id] = svc
	return svc.IsActive, nil
}

type vetRepo struct {
	store *Store
}

func (r *vetRepo) Create(ctx context.Context, vet *model.Veterinarian) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if vet.ID == uuid.Nil {
		vet.ID = uuid.New()
	}
	if vet.CreatedAt.IsZero() {
		vet.CreatedAt = time.Now()
	}
	r.store.vets[vet.ID] = *vet
	return nil
}

func (r *vetRepo) List(ctx context.Context, filter model.VeterinarianFilter) ([]*model.Veterinarian, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Veterinarian, 0)
	for _, vet := range r.store.vets {
		if filter.Specialty != "" && vet.Specialty != filter.Specialty {
			continue
		}
		if filter.Search != "" &&
			!containsFold(vet.Name, filter.Search) &&
			!containsFold(vet.Email, filter.Search) &&
			!containsFold(vet.LicenseNumber, filter.Search) {
			continue
		}
		v := vet
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *vetRepo) ListActive(ctx context.Context) ([]*model.Veterinarian, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Veterinarian, 0)
	for _, vet := range r.store.vets {
		if vet.IsActive {
			v := vet
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *vetRepo) LatestActive(ctx context.Context, limit int) ([]*model.Veterinarian, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Veterinarian, 0)
	for _, vet := range r.store.vets {
		if vet.IsActive {
			v := vet
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *vetRepo) CountActive(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, vet := range r.store.vets {
		if vet.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *vetRepo) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vet, ok := r.store.vets[id]
	if !ok {
		return false, apperrors.NotFound("veterinarian", nil)
	}
	vet.IsActive = !vet.IsActive
	r.store.vets[id] = vet
	return vet.IsActive, nil
}

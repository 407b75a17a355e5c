package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now()
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, apperrors.NotFound("user", nil)
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.NotFound("user", nil)
}

func (r *userRepo) List(ctx context.Context, search string) ([]*model.UserWithCounts, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.UserWithCounts, 0)
	for _, user := range r.store.users {
		if user.IsSuperuser {
			continue
		}
		if search != "" &&
			!containsFold(user.Username, search) &&
			!containsFold(user.Email, search) &&
			!containsFold(user.FirstName, search) &&
			!containsFold(user.LastName, search) {
			continue
		}

		uc := &model.UserWithCounts{User: user}
		for _, pet := range r.store.pets {
			if pet.OwnerID == user.ID {
				uc.PetsCount++
			}
		}
		for _, apt := range r.store.appointments {
			if apt.UserID == user.ID {
				uc.AppointmentsCount++
			}
		}
		out = append(out, uc)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DateJoined.After(out[j].DateJoined)
	})
	return out, nil
}

func (r *userRepo) CountNonSuperusers(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, user := range r.store.users {
		if !user.IsSuperuser {
			count++
		}
	}
	return count, nil
}

func (r *userRepo) CountJoinedSince(ctx context.Context, since time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, user := range r.store.users {
		if !user.IsSuperuser && !user.DateJoined.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *userRepo) TopByAppointments(ctx context.Context, limit int) ([]*model.UserAppointmentCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.UserAppointmentCount, 0)
	for _, user := range r.store.users {
		if user.IsSuperuser {
			continue
		}
		entry := &model.UserAppointmentCount{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		}
		for _, apt := range r.store.appointments {
			if apt.UserID == user.ID {
				entry.AppointmentsCount++
			}
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentsCount != out[j].AppointmentsCount {
			return out[i].AppointmentsCount > out[j].AppointmentsCount
		}
		return out[i].Username < out[j].Username
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *userRepo) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return false, apperrors.NotFound("user", nil)
	}
	user.IsActive = !user.IsActive
	r.store.users[id] = user
	return user.IsActive, nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

type appointmentRepo struct {
	store *Store
}

func (r *appointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	appointment.Date = model.DateOnly(appointment.Date)
	r.store.appointments[appointment.ID] = *appointment
	return nil
}

func (r *appointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	apt, ok := r.store.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return &apt, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.appointments[id]; !ok {
		return apperrors.NotFound("appointment", nil)
	}
	delete(r.store.appointments, id)
	return nil
}

func (r *appointmentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Appointment, 0)
	for _, apt := range r.store.appointments {
		if apt.UserID == userID {
			a := apt
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *appointmentRepo) List(ctx context.Context, filter model.AppointmentFilter) ([]*model.AppointmentWithDetails, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	today := model.DateOnly(filter.Today)
	out := make([]*model.AppointmentWithDetails, 0)
	for _, apt := range r.store.appointments {
		switch filter.Status {
		case model.AppointmentFilterToday:
			if !apt.Date.Equal(today) {
				continue
			}
		case model.AppointmentFilterUpcoming:
			if apt.Date.Before(today) {
				continue
			}
		case model.AppointmentFilterPast:
			if !apt.Date.Before(today) {
				continue
			}
		}

		if filter.Date != nil && !apt.Date.Equal(model.DateOnly(*filter.Date)) {
			continue
		}

		user := r.store.users[apt.UserID]
		pet := r.store.pets[apt.PetID]

		if filter.Search != "" &&
			!containsFold(user.Username, filter.Search) &&
			!containsFold(user.Email, filter.Search) &&
			!containsFold(pet.Name, filter.Search) {
			continue
		}

		out = append(out, &model.AppointmentWithDetails{
			Appointment: apt,
			Username:    user.Username,
			Email:       user.Email,
			PetName:     pet.Name,
			PetType:     pet.PetType,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}

func (r *appointmentRepo) Latest(ctx context.Context, limit int) ([]*model.AppointmentWithDetails, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.AppointmentWithDetails, 0)
	for _, apt := range r.store.appointments {
		user := r.store.users[apt.UserID]
		pet := r.store.pets[apt.PetID]
		out = append(out, &model.AppointmentWithDetails{
			Appointment: apt,
			Username:    user.Username,
			Email:       user.Email,
			PetName:     pet.Name,
			PetType:     pet.PetType,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *appointmentRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.appointments), nil
}

func (r *appointmentRepo) CountOnDate(ctx context.Context, date time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day := model.DateOnly(date)
	count := 0
	for _, apt := range r.store.appointments {
		if apt.Date.Equal(day) {
			count++
		}
	}
	return count, nil
}

func (r *appointmentRepo) CountFromDate(ctx context.Context, date time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day := model.DateOnly(date)
	count := 0
	for _, apt := range r.store.appointments {
		if !apt.Date.Before(day) {
			count++
		}
	}
	return count, nil
}

func (r *appointmentRepo) CountInPeriod(ctx context.Context, start, end time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	from := model.DateOnly(start)
	to := model.DateOnly(end)
	count := 0
	for _, apt := range r.store.appointments {
		if !apt.Date.Before(from) && !apt.Date.After(to) {
			count++
		}
	}
	return count, nil
}

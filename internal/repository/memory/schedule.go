package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
)

type scheduleRepo struct {
	store *Store
}

func weekdayRank(day string) int {
	for i, d := range model.WeekdayOrder {
		if d == day {
			return i
		}
	}
	return len(model.WeekdayOrder)
}

func (r *scheduleRepo) List(ctx context.Context) ([]*model.ClinicSchedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.ClinicSchedule, 0, len(r.store.schedules))
	for _, sched := range r.store.schedules {
		s := sched
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool {
		return weekdayRank(out[i].DayOfWeek) < weekdayRank(out[j].DayOfWeek)
	})
	return out, nil
}

func (r *scheduleRepo) Upsert(ctx context.Context, schedule *model.ClinicSchedule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, existing := range r.store.schedules {
		if existing.DayOfWeek == schedule.DayOfWeek {
			schedule.ID = id
			r.store.schedules[id] = *schedule
			return nil
		}
	}

	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}
	r.store.schedules[schedule.ID] = *schedule
	return nil
}

package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewService(store.Services(), store.Veterinarians(), store.Schedules()), store
}

func TestListActiveServices(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Services().Create(ctx, &model.Service{Name: "Vaccination", Duration: 20, IsActive: true}))
	require.NoError(t, store.Services().Create(ctx, &model.Service{Name: "Checkup", Duration: 30, IsActive: true}))
	require.NoError(t, store.Services().Create(ctx, &model.Service{Name: "Surgery", Duration: 120, IsActive: false}))

	services, err := svc.ListActiveServices(ctx)
	require.NoError(t, err)

	require.Len(t, services, 2, "inactive services are hidden from the public catalog")
	assert.Equal(t, "Checkup", services[0].Name)
	assert.Equal(t, "Vaccination", services[1].Name)
}

func TestListActiveVeterinarians(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Veterinarians().Create(ctx, &model.Veterinarian{Name: "Dr. Vega", Specialty: model.SpecialtyGeneral, IsActive: true}))
	require.NoError(t, store.Veterinarians().Create(ctx, &model.Veterinarian{Name: "Dr. Ruiz", Specialty: model.SpecialtySurgery, IsActive: false}))

	vets, err := svc.ListActiveVeterinarians(ctx)
	require.NoError(t, err)

	require.Len(t, vets, 1)
	assert.Equal(t, "Dr. Vega", vets[0].Name)
}

func TestListClinicScheduleOrder(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// seed out of order; listing must come back Monday through Sunday
	for _, day := range []string{"sunday", "wednesday", "monday", "friday"} {
		require.NoError(t, store.Schedules().Upsert(ctx, &model.ClinicSchedule{
			DayOfWeek: day,
			IsOpen:    day != "sunday",
		}))
	}

	schedules, err := svc.ListClinicSchedule(ctx)
	require.NoError(t, err)

	require.Len(t, schedules, 4)
	assert.Equal(t, "monday", schedules[0].DayOfWeek)
	assert.Equal(t, "wednesday", schedules[1].DayOfWeek)
	assert.Equal(t, "friday", schedules[2].DayOfWeek)
	assert.Equal(t, "sunday", schedules[3].DayOfWeek)
	assert.False(t, schedules[3].IsOpen, "closed days are still listed")
}

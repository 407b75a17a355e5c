package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository/memory"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(store.Pets(), store.Appointments())
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc, store
}

func seedUserWithPet(t *testing.T, store *memory.Store, username string, petName string) (*model.User, *model.Pet) {
	t.Helper()
	ctx := context.Background()

	user := &model.User{Username: username, Email: username + "@example.com", IsActive: true}
	require.NoError(t, store.Users().Create(ctx, user))

	pet := &model.Pet{OwnerID: user.ID, Name: petName, PetType: model.PetTypeDog, Weight: 12}
	require.NoError(t, store.Pets().Create(ctx, pet))

	return user, pet
}

func TestCreateAppointment(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	alice, max := seedUserWithPet(t, store, "alice", "Max")

	created, err := svc.CreateAppointment(ctx, alice.ID, &model.CreateAppointmentRequest{
		PetID:   max.ID,
		Service: model.ServiceCheckup,
		Date:    "2025-06-20",
		Time:    "10:30",
		Notes:   "first visit",
	})
	require.NoError(t, err)

	assert.Equal(t, alice.ID, created.UserID)
	assert.Equal(t, max.ID, created.PetID)
	assert.Equal(t, model.ServiceCheckup, created.Service)
	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), created.Date)
	assert.Equal(t, "10:30", created.Time)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), created.CreatedAt,
		"creation is stamped with the service clock")
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	alice, max := seedUserWithPet(t, store, "alice", "Max")

	cases := []struct {
		name string
		req  model.CreateAppointmentRequest
	}{
		{"unknown service", model.CreateAppointmentRequest{PetID: max.ID, Service: "massage", Date: "2025-06-20", Time: "10:30"}},
		{"bad date", model.CreateAppointmentRequest{PetID: max.ID, Service: model.ServiceCheckup, Date: "20/06/2025", Time: "10:30"}},
		{"bad time", model.CreateAppointmentRequest{PetID: max.ID, Service: model.ServiceCheckup, Date: "2025-06-20", Time: "10.30"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateAppointment(ctx, alice.ID, &tc.req)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreateAppointmentForeignPet(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	alice, _ := seedUserWithPet(t, store, "alice", "Max")
	_, luna := seedUserWithPet(t, store, "bob", "Luna")

	_, err := svc.CreateAppointment(ctx, alice.ID, &model.CreateAppointmentRequest{
		PetID:   luna.ID,
		Service: model.ServiceCheckup,
		Date:    "2025-06-20",
		Time:    "10:30",
	})
	assert.True(t, apperrors.IsNotFound(err), "booking a foreign pet must look like a missing pet")
}

func TestListUserAppointmentsOrder(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	alice, max := seedUserWithPet(t, store, "alice", "Max")
	bob, luna := seedUserWithPet(t, store, "bob", "Luna")

	slots := []struct{ date, time string }{
		{"2025-06-22", "09:00"},
		{"2025-06-20", "16:00"},
		{"2025-06-20", "08:00"},
	}
	for _, s := range slots {
		_, err := svc.CreateAppointment(ctx, alice.ID, &model.CreateAppointmentRequest{
			PetID: max.ID, Service: model.ServiceCheckup, Date: s.date, Time: s.time,
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateAppointment(ctx, bob.ID, &model.CreateAppointmentRequest{
		PetID: luna.ID, Service: model.ServiceDental, Date: "2025-06-19", Time: "12:00",
	})
	require.NoError(t, err)

	list, err := svc.ListUserAppointments(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "08:00", list[0].Time)
	assert.Equal(t, "16:00", list[1].Time)
	assert.Equal(t, time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), list[2].Date)
}

func TestDeleteAppointmentOwnership(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	alice, max := seedUserWithPet(t, store, "alice", "Max")
	bob, _ := seedUserWithPet(t, store, "bob", "Luna")

	created, err := svc.CreateAppointment(ctx, alice.ID, &model.CreateAppointmentRequest{
		PetID: max.ID, Service: model.ServiceCheckup, Date: "2025-06-20", Time: "10:30",
	})
	require.NoError(t, err)

	err = svc.DeleteAppointment(ctx, bob.ID, created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, svc.DeleteAppointment(ctx, alice.ID, created.ID))

	list, err := svc.ListUserAppointments(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

package admin

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository/memory"
	"github.com/vetify/booking-api/pkg/blob"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

var testToday = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

type fakeBlobStore struct {
	stored  int
	deleted []string
}

func (f *fakeBlobStore) Store(ctx context.Context, r io.Reader, hint, filename string) (*blob.FileReference, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.stored++
	return &blob.FileReference{
		Key:  fmt.Sprintf("%s/%d-%s", hint, f.stored, filename),
		Size: int64(len(content)),
	}, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeBlobStore) PresignURL(ctx context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func newTestService(t *testing.T) (*Service, *memory.Store, *fakeBlobStore) {
	t.Helper()
	store := memory.NewStore()
	blobs := &fakeBlobStore{}
	svc := NewService(
		store.Users(),
		store.Pets(),
		store.Appointments(),
		store.Services(),
		store.Veterinarians(),
		store.Schedules(),
		store.Documents(),
		blobs,
	)
	svc.now = func() time.Time { return testToday }
	return svc, store, blobs
}

func seedUser(t *testing.T, store *memory.Store, username string, superuser bool) *model.User {
	t.Helper()
	user := &model.User{
		Username:    username,
		Email:       username + "@example.com",
		IsActive:    true,
		IsSuperuser: superuser,
		DateJoined:  testToday.AddDate(0, 0, -10),
	}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

func seedPet(t *testing.T, store *memory.Store, owner *model.User, name string, petType model.PetType) *model.Pet {
	t.Helper()
	pet := &model.Pet{OwnerID: owner.ID, Name: name, PetType: petType, Weight: 10}
	require.NoError(t, store.Pets().Create(context.Background(), pet))
	return pet
}

func seedAppointment(t *testing.T, store *memory.Store, user *model.User, pet *model.Pet, date time.Time) *model.Appointment {
	t.Helper()
	apt := &model.Appointment{
		UserID:  user.ID,
		PetID:   pet.ID,
		Service: model.ServiceCheckup,
		Date:    date,
		Time:    "10:00",
	}
	require.NoError(t, store.Appointments().Create(context.Background(), apt))
	return apt
}

func TestDashboardStats(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	admin := seedUser(t, store, "admin", true)
	alice := seedUser(t, store, "alice", false)
	bob := seedUser(t, store, "bob", false)
	_ = admin

	max := seedPet(t, store, alice, "Max", model.PetTypeDog)
	luna := seedPet(t, store, bob, "Luna", model.PetTypeCat)
	seedPet(t, store, bob, "Kiwi", model.PetTypeOther)

	// two today, one yesterday, one upcoming, one far past
	seedAppointment(t, store, alice, max, testToday)
	seedAppointment(t, store, alice, max, testToday)
	seedAppointment(t, store, bob, luna, testToday.AddDate(0, 0, -1))
	seedAppointment(t, store, bob, luna, testToday.AddDate(0, 0, 3))
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -20))

	require.NoError(t, store.Veterinarians().Create(ctx, &model.Veterinarian{Name: "Dr. Vega", Specialty: model.SpecialtyGeneral, IsActive: true}))
	require.NoError(t, store.Veterinarians().Create(ctx, &model.Veterinarian{Name: "Dr. Off", Specialty: model.SpecialtyGeneral, IsActive: false}))

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalAppointments)
	assert.Equal(t, 2, stats.TotalUsers, "superusers stay out of the user count")
	assert.Equal(t, 3, stats.TotalPets)
	assert.Equal(t, 1, stats.TotalVets)
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, 3, stats.PendingAppointments, "today and later count as pending")
}

func TestDashboardDailySeries(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice", false)
	max := seedPet(t, store, alice, "Max", model.PetTypeDog)

	seedAppointment(t, store, alice, max, testToday)
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -6))
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -6))
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -7)) // outside the window

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.AppointmentsByDay, 7, "series always has seven points")
	assert.Equal(t, "09/06", stats.AppointmentsByDay[0].Date)
	assert.Equal(t, "15/06", stats.AppointmentsByDay[6].Date)
	assert.Equal(t, 2, stats.AppointmentsByDay[0].Count)
	assert.Equal(t, 1, stats.AppointmentsByDay[6].Count)
	for i := 1; i < 6; i++ {
		assert.Equal(t, 0, stats.AppointmentsByDay[i].Count, "empty days are zero-filled, not skipped")
	}
}

func TestListPetsGlobalTypeCounts(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice", false)
	seedPet(t, store, alice, "Max", model.PetTypeDog)
	seedPet(t, store, alice, "Rex", model.PetTypeDog)
	seedPet(t, store, alice, "Luna", model.PetTypeCat)
	seedPet(t, store, alice, "Kiwi", model.PetTypeOther)

	listing, err := svc.ListPets(ctx, model.PetFilter{PetType: model.PetTypeCat})
	require.NoError(t, err)

	assert.Len(t, listing.Pets, 1)
	assert.Equal(t, 1, listing.TotalCount)
	assert.Equal(t, 2, listing.TotalDogs, "type totals ignore the active filter")
	assert.Equal(t, 1, listing.TotalCats)
	assert.Equal(t, 1, listing.TotalOthers)
}

func TestListUsersExcludesSuperusers(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	seedUser(t, store, "admin", true)
	alice := seedUser(t, store, "alice", false)
	max := seedPet(t, store, alice, "Max", model.PetTypeDog)
	seedAppointment(t, store, alice, max, testToday)
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, 1))

	users, err := svc.ListUsers(ctx, "")
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, 1, users[0].PetsCount)
	assert.Equal(t, 2, users[0].AppointmentsCount)
}

func TestToggleInvolution(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, store, "alice", false)

	active, err := svc.ToggleUserActive(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = svc.ToggleUserActive(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, active, "toggling twice restores the original state")
}

func TestListAppointmentsStatusFilters(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice", false)
	max := seedPet(t, store, alice, "Max", model.PetTypeDog)

	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -2))
	seedAppointment(t, store, alice, max, testToday)
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, 2))

	past, err := svc.ListAppointments(ctx, model.AppointmentFilter{Status: model.AppointmentFilterPast})
	require.NoError(t, err)
	assert.Len(t, past, 1)

	today, err := svc.ListAppointments(ctx, model.AppointmentFilter{Status: model.AppointmentFilterToday})
	require.NoError(t, err)
	assert.Len(t, today, 1)

	upcoming, err := svc.ListAppointments(ctx, model.AppointmentFilter{Status: model.AppointmentFilterUpcoming})
	require.NoError(t, err)
	assert.Len(t, upcoming, 2, "upcoming includes today")

	all, err := svc.ListAppointments(ctx, model.AppointmentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].Date.After(all[2].Date), "admin listing is newest first")
}

func TestReports(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice", false)
	bob := seedUser(t, store, "bob", false)
	max := seedPet(t, store, alice, "Max", model.PetTypeDog)
	luna := seedPet(t, store, bob, "Luna", model.PetTypeCat)

	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -5))
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -10))
	seedAppointment(t, store, bob, luna, testToday.AddDate(0, 0, -40)) // outside 30-day window

	require.NoError(t, store.Services().Create(ctx, &model.Service{Name: "Checkup", Duration: 30, IsActive: true}))
	require.NoError(t, store.Services().Create(ctx, &model.Service{Name: "Surgery", Duration: 120, IsActive: false}))

	stats, err := svc.Reports(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, 30, stats.Period, "period defaults to 30 days")
	assert.Equal(t, 2, stats.TotalAppointments)
	assert.Equal(t, 2, stats.NewUsers)
	assert.Equal(t, 2, stats.NewPets)

	require.Len(t, stats.AppointmentsByMonth, 6)
	assert.Equal(t, "January", stats.AppointmentsByMonth[0].Month)
	assert.Equal(t, "June", stats.AppointmentsByMonth[5].Month)
	assert.Equal(t, 2, stats.AppointmentsByMonth[5].Count)
	assert.Equal(t, 1, stats.AppointmentsByMonth[4].Count)

	require.Len(t, stats.TopUsers, 2)
	assert.Equal(t, "alice", stats.TopUsers[0].Username)
	assert.Equal(t, 2, stats.TopUsers[0].AppointmentsCount)

	require.Len(t, stats.ServiceStats, 1, "only active services are reported")
	assert.Equal(t, 1, stats.ServiceStats[0].UsageCount)
}

func TestReportsCustomPeriod(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice", false)
	max := seedPet(t, store, alice, "Max", model.PetTypeDog)
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -5))
	seedAppointment(t, store, alice, max, testToday.AddDate(0, 0, -10))

	stats, err := svc.Reports(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.Period)
	assert.Equal(t, 1, stats.TotalAppointments)
}

func TestDeletePetCascades(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice", false)
	max := seedPet(t, store, alice, "Max", model.PetTypeDog)
	apt := seedAppointment(t, store, alice, max, testToday)

	require.NoError(t, svc.DeletePet(ctx, max.ID))

	_, err := store.Appointments().Get(ctx, apt.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateSchedule(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	_ = store

	require.NoError(t, svc.UpdateSchedule(ctx, &model.ClinicSchedule{
		DayOfWeek: "monday", IsOpen: true, OpeningTime: "09:00", ClosingTime: "18:00",
	}))
	require.NoError(t, svc.UpdateSchedule(ctx, &model.ClinicSchedule{
		DayOfWeek: "sunday", IsOpen: false,
	}))
	// updating the same day replaces the row instead of adding one
	require.NoError(t, svc.UpdateSchedule(ctx, &model.ClinicSchedule{
		DayOfWeek: "monday", IsOpen: true, OpeningTime: "08:00", ClosingTime: "17:00",
	}))

	overview, err := svc.ListSchedules(ctx)
	require.NoError(t, err)

	require.Len(t, overview.Schedules, 2)
	assert.Equal(t, 1, overview.OpenDays)
	assert.Equal(t, "monday", overview.Schedules[0].DayOfWeek)
	assert.Equal(t, "08:00", overview.Schedules[0].OpeningTime)
}

func TestDocumentLifecycle(t *testing.T) {
	svc, store, blobs := newTestService(t)
	ctx := context.Background()
	admin := seedUser(t, store, "admin", true)

	doc, err := svc.UploadDocument(ctx, admin.ID, &model.CreateDocumentRequest{
		Title:    "Consent form",
		Category: model.DocumentConsent,
	}, strings.NewReader("pdf-bytes"), "consent.pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.FileKey)
	assert.Equal(t, int64(9), doc.FileSize)
	require.NotNil(t, doc.UploaderID)
	assert.Equal(t, admin.ID, *doc.UploaderID)
	assert.True(t, doc.IsActive)

	url, err := svc.DocumentURL(ctx, doc.ID)
	require.NoError(t, err)
	assert.Contains(t, url, doc.FileKey)

	active, err := svc.ToggleDocumentActive(ctx, doc.ID)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, svc.DeleteDocument(ctx, doc.ID))
	assert.Equal(t, []string{doc.FileKey}, blobs.deleted)

	docs, err := svc.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

package pet

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository/memory"
	"github.com/vetify/booking-api/pkg/blob"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

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
	return NewService(store.Pets(), blobs), store, blobs
}

func seedOwner(t *testing.T, store *memory.Store, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", IsActive: true}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

func validRequest() *model.CreatePetRequest {
	return &model.CreatePetRequest{
		Name:    "Max",
		PetType: model.PetTypeDog,
		Breed:   "Beagle",
		Age:     3,
		Weight:  12.5,
	}
}

func TestCreatePetDefaults(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	owner := seedOwner(t, store, "alice")

	created, err := svc.Create(ctx, owner.ID, validRequest())
	require.NoError(t, err)

	assert.Equal(t, owner.ID, created.OwnerID)
	assert.Equal(t, model.VaccinationUpdated, created.VaccinationStatus)
	assert.True(t, created.FriendlyWithPeople)
	assert.True(t, created.FriendlyWithAnimals)
	assert.False(t, created.NervousAtVet)
	assert.False(t, created.SpecialCare)
}

func TestCreatePetOtherTypeCleared(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	owner := seedOwner(t, store, "alice")

	req := validRequest()
	req.OtherType = "ferret"
	created, err := svc.Create(ctx, owner.ID, req)
	require.NoError(t, err)
	assert.Empty(t, created.OtherType, "other_type only applies to pets of type other")

	req = validRequest()
	req.PetType = model.PetTypeOther
	req.OtherType = "ferret"
	created, err = svc.Create(ctx, owner.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "ferret", created.OtherType)
}

func TestCreatePetValidation(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	owner := seedOwner(t, store, "alice")

	req := validRequest()
	req.Age = -1
	_, err := svc.Create(ctx, owner.ID, req)
	assert.True(t, apperrors.IsValidation(err))

	req = validRequest()
	req.Weight = 0
	_, err = svc.Create(ctx, owner.ID, req)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPetOwnershipScoping(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	alice := seedOwner(t, store, "alice")
	bob := seedOwner(t, store, "bob")

	created, err := svc.Create(ctx, alice.ID, validRequest())
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob.ID, created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Update(ctx, bob.ID, created.ID, validRequest())
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.Delete(ctx, bob.ID, created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	got, err := svc.Get(ctx, alice.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdatePet(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	owner := seedOwner(t, store, "alice")

	created, err := svc.Create(ctx, owner.ID, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Name = "Maximus"
	nervous := true
	req.NervousAtVet = &nervous

	updated, err := svc.Update(ctx, owner.ID, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Maximus", updated.Name)
	assert.True(t, updated.NervousAtVet)
}

func TestDeletePetCascadesAppointments(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	owner := seedOwner(t, store, "alice")

	created, err := svc.Create(ctx, owner.ID, validRequest())
	require.NoError(t, err)

	apt := &model.Appointment{UserID: owner.ID, PetID: created.ID, Service: model.ServiceCheckup}
	require.NoError(t, store.Appointments().Create(ctx, apt))

	require.NoError(t, svc.Delete(ctx, owner.ID, created.ID))

	_, err = store.Appointments().Get(ctx, apt.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUploadPhoto(t *testing.T) {
	svc, store, blobs := newTestService(t)
	ctx := context.Background()
	owner := seedOwner(t, store, "alice")

	created, err := svc.Create(ctx, owner.ID, validRequest())
	require.NoError(t, err)

	updated, err := svc.UploadPhoto(ctx, owner.ID, created.ID, strings.NewReader("image-bytes"), "max.jpg")
	require.NoError(t, err)
	assert.NotEmpty(t, updated.PhotoKey)
	assert.Equal(t, 1, blobs.stored)

	stored, err := svc.Get(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.PhotoKey, stored.PhotoKey)
}

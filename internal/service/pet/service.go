// Package pet manages the user's own pets, including photo storage.
package pet

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository"
	"github.com/vetify/booking-api/pkg/blob"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

type Service struct {
	pets  repository.PetRepository
	blobs blob.Store
}

func NewService(pets repository.PetRepository, blobs blob.Store) *Service {
	return &Service{pets: pets, blobs: blobs}
}

// applyRequest copies the request onto the pet. OtherType is only
// meaningful for pets of type "other" and is cleared for any other type;
// a blank OtherType is never a validation failure for dogs and cats.
func applyRequest(pet *model.Pet, req *model.CreatePetRequest) {
	pet.Name = req.Name
	pet.PetType = req.PetType
	pet.OtherType = req.OtherType
	if pet.PetType != model.PetTypeOther {
		pet.OtherType = ""
	}
	pet.Breed = req.Breed
	pet.Color = req.Color
	pet.Age = req.Age
	pet.Weight = req.Weight
	pet.VaccinationStatus = req.VaccinationStatus
	if pet.VaccinationStatus == "" {
		pet.VaccinationStatus = model.VaccinationUpdated
	}
	pet.Allergies = req.Allergies
	pet.FriendlyWithPeople = boolOr(req.FriendlyWithPeople, true)
	pet.FriendlyWithAnimals = boolOr(req.FriendlyWithAnimals, true)
	pet.NervousAtVet = boolOr(req.NervousAtVet, false)
	pet.SpecialCare = boolOr(req.SpecialCare, false)
	pet.EmergencyName = req.EmergencyName
	pet.EmergencyPhone = req.EmergencyPhone
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func validate(req *model.CreatePetRequest) error {
	if req.Age < 0 {
		return apperrors.Validation("age must not be negative", nil)
	}
	if req.Weight <= 0 {
		return apperrors.Validation("weight must be positive", nil)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req *model.CreatePetRequest) (*model.Pet, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	pet := &model.Pet{OwnerID: ownerID}
	applyRequest(pet, req)

	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *Service) Update(ctx context.Context, ownerID, petID uuid.UUID, req *model.CreatePetRequest) (*model.Pet, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	pet, err := s.getOwned(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	applyRequest(pet, req)
	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *Service) Get(ctx context.Context, ownerID, petID uuid.UUID) (*model.Pet, error) {
	return s.getOwned(ctx, ownerID, petID)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*model.Pet, error) {
	return s.pets.ListByOwner(ctx, ownerID)
}

// Delete removes the pet and, by cascade, its appointments.
func (s *Service) Delete(ctx context.Context, ownerID, petID uuid.UUID) error {
	if _, err := s.getOwned(ctx, ownerID, petID); err != nil {
		return err
	}
	return s.pets.Delete(ctx, petID)
}

// UploadPhoto stores the image and records its key on the pet.
func (s *Service) UploadPhoto(ctx context.Context, ownerID, petID uuid.UUID, r io.Reader, filename string) (*model.Pet, error) {
	pet, err := s.getOwned(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	ref, err := s.blobs.Store(ctx, r, "pets", filename)
	if err != nil {
		return nil, err
	}

	pet.PhotoKey = ref.Key
	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *Service) getOwned(ctx context.Context, ownerID, petID uuid.UUID) (*model.Pet, error) {
	pet, err := s.pets.Get(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != ownerID {
		return nil, apperrors.NotFound("pet", nil)
	}
	return pet, nil
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type PetType string

const (
	PetTypeDog   PetType = "dog"
	PetTypeCat   PetType = "cat"
	PetTypeOther PetType = "other"
)

type VaccinationStatus string

const (
	VaccinationUpdated VaccinationStatus = "updated"
	VaccinationPending VaccinationStatus = "pending"
	VaccinationNone    VaccinationStatus = "none"
)

// Pet belongs to exactly one owner. Deleting the owner or the pet cascades
// to its appointments.
type Pet struct {
	ID                  uuid.UUID         `db:"id" json:"id"`
	OwnerID             uuid.UUID         `db:"owner_id" json:"owner_id"`
	Name                string            `db:"name" json:"name"`
	PetType             PetType           `db:"pet_type" json:"pet_type"`
	OtherType           string            `db:"other_type" json:"other_type,omitempty"`
	Breed               string            `db:"breed" json:"breed"`
	Color               string            `db:"color" json:"color"`
	Age                 int               `db:"age" json:"age"`
	Weight              float64           `db:"weight" json:"weight"`
	VaccinationStatus   VaccinationStatus `db:"vaccination_status" json:"vaccination_status"`
	Allergies           string            `db:"allergies" json:"allergies"`
	FriendlyWithPeople  bool              `db:"friendly_with_people" json:"friendly_with_people"`
	FriendlyWithAnimals bool              `db:"friendly_with_animals" json:"friendly_with_animals"`
	NervousAtVet        bool              `db:"nervous_at_vet" json:"nervous_at_vet"`
	SpecialCare         bool              `db:"special_care" json:"special_care"`
	EmergencyName       string            `db:"emergency_contact_name" json:"emergency_contact_name"`
	EmergencyPhone      string            `db:"emergency_contact_phone" json:"emergency_contact_phone"`
	PhotoKey            string            `db:"photo_key" json:"photo_key,omitempty"`
	CreatedAt           time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time         `db:"updated_at" json:"updated_at"`
}

// PetWithOwner joins the owner's username for admin listings.
type PetWithOwner struct {
	Pet
	OwnerUsername string `db:"owner_username" json:"owner_username"`
}

// PetTypeCount is one bucket of the pets-by-type dashboard breakdown.
type PetTypeCount struct {
	PetType PetType `db:"pet_type" json:"pet_type"`
	Count   int     `db:"count" json:"count"`
}

type CreatePetRequest struct {
	Name                string            `json:"name" binding:"required,max=100"`
	PetType             PetType           `json:"pet_type" binding:"required,oneof=dog cat other"`
	OtherType           string            `json:"other_type" binding:"max=50"`
	Breed               string            `json:"breed" binding:"max=100"`
	Color               string            `json:"color" binding:"max=50"`
	Age                 int               `json:"age" binding:"min=0"`
	Weight              float64           `json:"weight" binding:"required,gt=0"`
	VaccinationStatus   VaccinationStatus `json:"vaccination_status" binding:"omitempty,oneof=updated pending none"`
	Allergies           string            `json:"allergies"`
	FriendlyWithPeople  *bool             `json:"friendly_with_people"`
	FriendlyWithAnimals *bool             `json:"friendly_with_animals"`
	NervousAtVet        *bool             `json:"nervous_at_vet"`
	SpecialCare         *bool             `json:"special_care"`
	EmergencyName       string            `json:"emergency_contact_name" binding:"max=200"`
	EmergencyPhone      string            `json:"emergency_contact_phone" binding:"max=20"`
}

// PetFilter narrows the admin pet listing.
type PetFilter struct {
	PetType PetType
	Search  string
}

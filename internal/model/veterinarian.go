package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lib/pq"
)

type Specialty string

const (
	SpecialtyGeneral     Specialty = "general"
	SpecialtySurgery     Specialty = "surgery"
	SpecialtyDermatology Specialty = "dermatology"
	SpecialtyDentistry   Specialty = "dentistry"
	SpecialtyCardiology  Specialty = "cardiology"
	SpecialtyExotic      Specialty = "exotic"
)

// ValidSpecialty reports whether s is one of the recognized specialties.
func ValidSpecialty(s Specialty) bool {
	switch s {
	case SpecialtyGeneral, SpecialtySurgery, SpecialtyDermatology,
		SpecialtyDentistry, SpecialtyCardiology, SpecialtyExotic:
		return true
	}
	return false
}

type Veterinarian struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	Name            string         `db:"name" json:"name"`
	Specialty       Specialty      `db:"specialty" json:"specialty"`
	LicenseNumber   string         `db:"license_number" json:"license_number"`
	Email           string         `db:"email" json:"email"`
	Phone           string         `db:"phone" json:"phone"`
	YearsExperience int            `db:"years_experience" json:"years_experience"`
	Bio             string         `db:"bio" json:"bio"`
	AvailableDays   pq.StringArray `db:"available_days" json:"available_days"`
	WorkStart       string         `db:"work_start" json:"work_start"`
	WorkEnd         string         `db:"work_end" json:"work_end"`
	PhotoKey        string         `db:"photo_key" json:"photo_key,omitempty"`
	IsActive        bool           `db:"is_active" json:"is_active"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// VeterinarianFilter narrows the admin veterinarian listing.
type VeterinarianFilter struct {
	Specialty Specialty
	Search    string
}

type CreateVeterinarianRequest struct {
	Name            string    `json:"name" binding:"required,max=100"`
	Specialty       Specialty `json:"specialty" binding:"required,oneof=general surgery dermatology dentistry cardiology exotic"`
	LicenseNumber   string    `json:"license_number" binding:"required,max=50"`
	Email           string    `json:"email" binding:"omitempty,email"`
	Phone           string    `json:"phone" binding:"max=20"`
	YearsExperience int       `json:"years_experience" binding:"min=0"`
	Bio             string    `json:"bio"`
	AvailableDays   []string  `json:"available_days" binding:"dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	WorkStart       string    `json:"work_start"`
	WorkEnd         string    `json:"work_end"`
}

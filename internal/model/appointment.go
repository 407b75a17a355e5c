package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCode identifies the booked service on an appointment. The catalog
// in the services table carries pricing and descriptions; the appointment
// row only stores the code.
type ServiceCode string

const (
	ServiceCheckup     ServiceCode = "checkup"
	ServiceVaccination ServiceCode = "vaccination"
	ServiceDental      ServiceCode = "dental"
	ServiceGrooming    ServiceCode = "grooming"
	ServiceSurgery     ServiceCode = "surgery"
	ServiceEmergency   ServiceCode = "emergency"
)

// ValidServiceCode reports whether code is one of the bookable services.
func ValidServiceCode(code ServiceCode) bool {
	switch code {
	case ServiceCheckup, ServiceVaccination, ServiceDental,
		ServiceGrooming, ServiceSurgery, ServiceEmergency:
		return true
	}
	return false
}

// Appointment references the booking user and one of their pets. The
// pet-must-belong-to-user rule is enforced at creation, not by the schema.
// Appointments are never updated after creation; rescheduling is book+delete.
type Appointment struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	UserID    uuid.UUID   `db:"user_id" json:"user_id"`
	PetID     uuid.UUID   `db:"pet_id" json:"pet_id"`
	Service   ServiceCode `db:"service" json:"service"`
	Date      time.Time   `db:"date" json:"date"`
	Time      string      `db:"time" json:"time"`
	Notes     string      `db:"notes" json:"notes"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// AppointmentWithDetails joins owner and pet columns for admin listings.
type AppointmentWithDetails struct {
	Appointment
	Username string  `db:"username" json:"username"`
	Email    string  `db:"email" json:"email"`
	PetName  string  `db:"pet_name" json:"pet_name"`
	PetType  PetType `db:"pet_type" json:"pet_type"`
}

type CreateAppointmentRequest struct {
	PetID   uuid.UUID   `json:"pet_id" binding:"required"`
	Service ServiceCode `json:"service" binding:"required"`
	Date    string      `json:"date" binding:"required"`
	Time    string      `json:"time" binding:"required,hhmm"`
	Notes   string      `json:"notes"`
}

// AppointmentStatusFilter selects a date window relative to today.
type AppointmentStatusFilter string

const (
	AppointmentFilterAll      AppointmentStatusFilter = "all"
	AppointmentFilterToday    AppointmentStatusFilter = "today"
	AppointmentFilterUpcoming AppointmentStatusFilter = "upcoming"
	AppointmentFilterPast     AppointmentStatusFilter = "past"
)

// AppointmentFilter narrows the admin appointment listing. Search matches
// owner username, owner email or pet name, case-insensitively.
type AppointmentFilter struct {
	Status AppointmentStatusFilter
	Date   *time.Time
	Search string
	Today  time.Time
}

// Package booking creates and lists appointments scoped to the
// authenticated user's own pets.
package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

type Service struct {
	pets         repository.PetRepository
	appointments repository.AppointmentRepository
	now          func() time.Time
}

func NewService(pets repository.PetRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{
		pets:         pets,
		appointments: appointments,
		now:          time.Now,
	}
}

// CreateAppointment books a slot for one of the user's own pets. A pet id
// that does not resolve to a pet owned by the user is reported as not
// found, never as forbidden, so the response does not leak whether the pet
// exists. No double-booking check is made: concurrent bookings for the
// same slot are all accepted.
func (s *Service) CreateAppointment(ctx context.Context, userID uuid.UUID, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if !model.ValidServiceCode(req.Service) {
		return nil, apperrors.Validation("invalid service", nil)
	}

	date, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.Validation("invalid date format, expected YYYY-MM-DD", err)
	}

	if _, err := time.Parse(model.TimeLayout, req.Time); err != nil {
		return nil, apperrors.Validation("invalid time format, expected HH:MM", err)
	}

	pet, err := s.pets.Get(ctx, req.PetID)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != userID {
		return nil, apperrors.NotFound("pet", nil)
	}

	appointment := &model.Appointment{
		UserID:    userID,
		PetID:     pet.ID,
		Service:   req.Service,
		Date:      model.DateOnly(date),
		Time:      req.Time,
		Notes:     req.Notes,
		CreatedAt: s.now(),
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// DeleteAppointment removes one of the user's own appointments. There is
// no soft delete and no audit trail.
func (s *Service) DeleteAppointment(ctx context.Context, userID, appointmentID uuid.UUID) error {
	appointment, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.UserID != userID {
		return apperrors.NotFound("appointment", nil)
	}
	return s.appointments.Delete(ctx, appointmentID)
}

// ListUserAppointments returns the user's appointments ascending by
// (date, time), recomputed on every call.
func (s *Service) ListUserAppointments(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	return s.appointments.ListByUser(ctx, userID)
}

// Package memory provides map-backed implementations of the repository
// interfaces. They mirror the postgres semantics, including cascade
// deletes, and back the service tests and local development mode.
package memory

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository"
)

type Store struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]model.User
	pets         map[uuid.UUID]model.Pet
	appointments map[uuid.UUID]model.Appointment
	services     map[uuid.UUID]model.Service
	vets         map[uuid.UUID]model.Veterinarian
	schedules    map[uuid.UUID]model.ClinicSchedule
	documents    map[uuid.UUID]model.Document
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]model.User),
		pets:         make(map[uuid.UUID]model.Pet),
		appointments: make(map[uuid.UUID]model.Appointment),
		services:     make(map[uuid.UUID]model.Service),
		vets:         make(map[uuid.UUID]model.Veterinarian),
		schedules:    make(map[uuid.UUID]model.ClinicSchedule),
		documents:    make(map[uuid.UUID]model.Document),
	}
}

func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

func (s *Store) Pets() repository.PetRepository { return &petRepo{s} }

func (s *Store) Appointments() repository.AppointmentRepository { return &appointmentRepo{s} }

func (s *Store) Services() repository.ServiceRepository { return &serviceRepo{s} }

func (s *Store) Veterinarians() repository.VeterinarianRepository { return &vetRepo{s} }

func (s *Store) Schedules() repository.ScheduleRepository { return &scheduleRepo{s} }

func (s *Store) Documents() repository.DocumentRepository { return &documentRepo{s} }

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

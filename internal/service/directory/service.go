// Package directory exposes the public clinic catalog: active services,
// active veterinarians and the weekly opening schedule.
package directory

import (
	"context"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository"
)

type Service struct {
	services  repository.ServiceRepository
	vets      repository.VeterinarianRepository
	schedules repository.ScheduleRepository
}

func NewService(services repository.ServiceRepository, vets repository.VeterinarianRepository, schedules repository.ScheduleRepository) *Service {
	return &Service{services: services, vets: vets, schedules: schedules}
}

func (s *Service) ListActiveServices(ctx context.Context) ([]*model.Service, error) {
	return s.services.ListActive(ctx)
}

func (s *Service) ListActiveVeterinarians(ctx context.Context) ([]*model.Veterinarian, error) {
	return s.vets.ListActive(ctx)
}

// ListClinicSchedule returns all seven weekday rows, Monday first, closed
// days included.
func (s *Service) ListClinicSchedule(ctx context.Context) ([]*model.ClinicSchedule, error) {
	return s.schedules.List(ctx)
}

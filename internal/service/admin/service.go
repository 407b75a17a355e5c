// Package admin implements the superuser dashboard: KPIs, filtered
// listings, reports and catalog management. Authorization is enforced by
// the router gate, not here.
package admin

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository"
	"github.com/vetify/booking-api/pkg/blob"
)

const (
	dashboardDays        = 7
	reportMonths         = 6
	defaultReportPeriod  = 30
	topServicesLimit     = 5
	latestAppointmentsN  = 10
	activeVetsLimit      = 5
	topUsersLimit        = 5
	serviceUsageLimit    = 10
	approxDaysPerMonth   = 30
	dashboardDateLabel   = "02/01"
	reportMonthLabel     = "January"
)

type Service struct {
	users        repository.UserRepository
	pets         repository.PetRepository
	appointments repository.AppointmentRepository
	services     repository.ServiceRepository
	vets         repository.VeterinarianRepository
	schedules    repository.ScheduleRepository
	documents    repository.DocumentRepository
	blobs        blob.Store
	now          func() time.Time
}

func NewService(
	users repository.UserRepository,
	pets repository.PetRepository,
	appointments repository.AppointmentRepository,
	services repository.ServiceRepository,
	vets repository.VeterinarianRepository,
	schedules repository.ScheduleRepository,
	documents repository.DocumentRepository,
	blobs blob.Store,
) *Service {
	return &Service{
		users:        users,
		pets:         pets,
		appointments: appointments,
		services:     services,
		vets:         vets,
		schedules:    schedules,
		documents:    documents,
		blobs:        blobs,
		now:          time.Now,
	}
}

// DashboardStats gathers the dashboard KPIs. Each figure is an
// independent query; the daily series always has exactly seven points,
// oldest first, with zero-count days present rather than absent.
func (s *Service) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	today := model.DateOnly(s.now())

	stats := &model.DashboardStats{}
	var err error

	if stats.TotalAppointments, err = s.appointments.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.users.CountNonSuperusers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPets, err = s.pets.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalVets, err = s.vets.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.TodayAppointments, err = s.appointments.CountOnDate(ctx, today); err != nil {
		return nil, err
	}
	if stats.PendingAppointments, err = s.appointments.CountFromDate(ctx, today); err != nil {
		return nil, err
	}

	stats.AppointmentsByDay = make([]model.DayCount, 0, dashboardDays)
	for i := dashboardDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count, err := s.appointments.CountOnDate(ctx, day)
		if err != nil {
			return nil, err
		}
		stats.AppointmentsByDay = append(stats.AppointmentsByDay, model.DayCount{
			Date:  day.Format(dashboardDateLabel),
			Count: count,
		})
	}

	if stats.PetsByType, err = s.pets.CountByType(ctx); err != nil {
		return nil, err
	}
	if stats.TopServices, err = s.services.LatestActive(ctx, topServicesLimit); err != nil {
		return nil, err
	}
	if stats.LatestAppointments, err = s.appointments.Latest(ctx, latestAppointmentsN); err != nil {
		return nil, err
	}
	if stats.ActiveVets, err = s.vets.LatestActive(ctx, activeVetsLimit); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Service) ListAppointments(ctx context.Context, filter model.AppointmentFilter) ([]*model.AppointmentWithDetails, error) {
	if filter.Status == "" {
		filter.Status = model.AppointmentFilterAll
	}
	filter.Today = model.DateOnly(s.now())
	return s.appointments.List(ctx, filter)
}

func (s *Service) ListUsers(ctx context.Context, search string) ([]*model.UserWithCounts, error) {
	return s.users.List(ctx, search)
}

// ListPets applies the type filter and search to the listing while the
// per-type totals stay global, whatever the filter.
func (s *Service) ListPets(ctx context.Context, filter model.PetFilter) (*model.PetListing, error) {
	pets, err := s.pets.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	listing := &model.PetListing{Pets: pets, TotalCount: len(pets)}
	if listing.TotalDogs, err = s.pets.CountOfType(ctx, model.PetTypeDog); err != nil {
		return nil, err
	}
	if listing.TotalCats, err = s.pets.CountOfType(ctx, model.PetTypeCat); err != nil {
		return nil, err
	}
	if listing.TotalOthers, err = s.pets.CountOfType(ctx, model.PetTypeOther); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *Service) ListVeterinarians(ctx context.Context, filter model.VeterinarianFilter) (*model.VeterinarianListing, error) {
	vets, err := s.vets.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	listing := &model.VeterinarianListing{Veterinarians: vets, TotalCount: len(vets)}
	for _, vet := range vets {
		if vet.IsActive {
			listing.ActiveCount++
		}
	}
	return listing, nil
}

func (s *Service) ListServices(ctx context.Context, search string) (*model.ServiceListing, error) {
	services, err := s.services.List(ctx, search)
	if err != nil {
		return nil, err
	}

	listing := &model.ServiceListing{Services: services, TotalCount: len(services)}
	for _, svc := range services {
		if svc.IsActive {
			listing.ActiveCount++
		}
	}
	return listing, nil
}

func (s *Service) ListSchedules(ctx context.Context) (*model.ScheduleOverview, error) {
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &model.ScheduleOverview{Schedules: schedules}
	for _, sched := range schedules {
		if sched.IsOpen {
			overview.OpenDays++
		}
	}
	return overview, nil
}

// Reports aggregates activity over a trailing period of days. The monthly
// series steps back 30 days per bucket and truncates to the first of the
// landed month; that drifts from true calendar months over time and is
// kept as-is so historical report values stay comparable.
func (s *Service) Reports(ctx context.Context, periodDays int) (*model.ReportStats, error) {
	if periodDays <= 0 {
		periodDays = defaultReportPeriod
	}

	endDate := model.DateOnly(s.now())
	startDate := endDate.AddDate(0, 0, -periodDays)

	stats := &model.ReportStats{
		Period:    periodDays,
		StartDate: startDate,
		EndDate:   endDate,
	}
	var err error

	if stats.TotalAppointments, err = s.appointments.CountInPeriod(ctx, startDate, endDate); err != nil {
		return nil, err
	}
	if stats.NewUsers, err = s.users.CountJoinedSince(ctx, startDate); err != nil {
		return nil, err
	}
	if stats.NewPets, err = s.pets.CountCreatedSince(ctx, startDate); err != nil {
		return nil, err
	}

	stats.AppointmentsByMonth = make([]model.MonthCount, 0, reportMonths)
	for i := reportMonths - 1; i >= 0; i-- {
		monthDate := endDate.AddDate(0, 0, -approxDaysPerMonth*i)
		monthStart := time.Date(monthDate.Year(), monthDate.Month(), 1, 0, 0, 0, 0, monthDate.Location())

		var monthEnd time.Time
		if monthDate.Month() == time.December {
			monthEnd = time.Date(monthDate.Year()+1, time.January, 1, 0, 0, 0, 0, monthDate.Location())
		} else {
			monthEnd = time.Date(monthDate.Year(), monthDate.Month()+1, 1, 0, 0, 0, 0, monthDate.Location())
		}

		count, err := s.appointments.CountInPeriod(ctx, monthStart, monthEnd.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
		stats.AppointmentsByMonth = append(stats.AppointmentsByMonth, model.MonthCount{
			Month: monthDate.Format(reportMonthLabel),
			Count: count,
		})
	}

	if stats.TopUsers, err = s.users.TopByAppointments(ctx, topUsersLimit); err != nil {
		return nil, err
	}
	if stats.ServiceStats, err = s.services.ActiveWithUsage(ctx, serviceUsageLimit); err != nil {
		return nil, err
	}

	return stats, nil
}

// Toggle operations flip the persisted flag and return the new value.
// They are involutive and race with last-write-wins semantics; no locking
// is taken.

func (s *Service) ToggleUserActive(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.users.ToggleActive(ctx, id)
}

func (s *Service) ToggleVetActive(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.vets.ToggleActive(ctx, id)
}

func (s *Service) ToggleServiceActive(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.services.ToggleActive(ctx, id)
}

func (s *Service) ToggleDocumentActive(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.documents.ToggleActive(ctx, id)
}

// DeleteAppointment removes any appointment, regardless of owner.
func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

// DeletePet removes any pet; its appointments go with it.
func (s *Service) DeletePet(ctx context.Context, id uuid.UUID) error {
	return s.pets.Delete(ctx, id)
}

func (s *Service) CreateService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	svc := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) CreateVeterinarian(ctx context.Context, req *model.CreateVeterinarianRequest) (*model.Veterinarian, error) {
	vet := &model.Veterinarian{
		Name:            req.Name,
		Specialty:       req.Specialty,
		LicenseNumber:   req.LicenseNumber,
		Email:           req.Email,
		Phone:           req.Phone,
		YearsExperience: req.YearsExperience,
		Bio:             req.Bio,
		AvailableDays:   pq.StringArray(req.AvailableDays),
		WorkStart:       req.WorkStart,
		WorkEnd:         req.WorkEnd,
		IsActive:        true,
	}
	if err := s.vets.Create(ctx, vet); err != nil {
		return nil, err
	}
	return vet, nil
}

func (s *Service) UpdateSchedule(ctx context.Context, schedule *model.ClinicSchedule) error {
	return s.schedules.Upsert(ctx, schedule)
}

// UploadDocument stores the file and records its reference. The uploader
// is kept as a weak reference; deleting that user later nulls it out.
func (s *Service) UploadDocument(ctx context.Context, uploaderID uuid.UUID, req *model.CreateDocumentRequest, r io.Reader, filename string) (*model.Document, error) {
	ref, err := s.blobs.Store(ctx, r, "documents", filename)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		FileKey:     ref.Key,
		FileSize:    ref.Size,
		Icon:        req.Icon,
		UploaderID:  &uploaderID,
		IsActive:    true,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) ListDocuments(ctx context.Context) ([]*model.Document, error) {
	return s.documents.List(ctx)
}

// DocumentURL returns a short-lived download link for the stored file.
func (s *Service) DocumentURL(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.documents.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.blobs.PresignURL(ctx, doc.FileKey)
}

// DeleteDocument removes the row and then the stored blob. A blob that
// fails to delete is left orphaned rather than failing the request.
func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	doc, err := s.documents.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.blobs.Delete(ctx, doc.FileKey)
	return nil
}

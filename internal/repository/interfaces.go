package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// List returns non-superusers, newest first, annotated with pet and
	// appointment counts. Search matches username, email, first or last name.
	List(ctx context.Context, search string) ([]*model.UserWithCounts, error)
	CountNonSuperusers(ctx context.Context) (int, error)
	CountJoinedSince(ctx context.Context, since time.Time) (int, error)
	TopByAppointments(ctx context.Context, limit int) ([]*model.UserAppointmentCount, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
}

type PetRepository interface {
	Create(ctx context.Context, pet *model.Pet) error
	Get(ctx context.Context, id uuid.UUID) (*model.Pet, error)
	Update(ctx context.Context, pet *model.Pet) error
	// Delete removes the pet and, by cascade, its appointments.
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Pet, error)
	List(ctx context.Context, filter model.PetFilter) ([]*model.PetWithOwner, error)
	Count(ctx context.Context) (int, error)
	CountOfType(ctx context.Context, petType model.PetType) (int, error)
	CountByType(ctx context.Context) ([]model.PetTypeCount, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByUser returns the user's appointments ascending by (date, time).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error)
	// List returns filtered appointments descending by (date, time).
	List(ctx context.Context, filter model.AppointmentFilter) ([]*model.AppointmentWithDetails, error)
	Latest(ctx context.Context, limit int) ([]*model.AppointmentWithDetails, error)
	Count(ctx context.Context) (int, error)
	CountOnDate(ctx context.Context, date time.Time) (int, error)
	CountFromDate(ctx context.Context, date time.Time) (int, error)
	// CountInPeriod counts appointments with start <= date <= end.
	CountInPeriod(ctx context.Context, start, end time.Time) (int, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	// List returns all services ordered by name; search matches name or
	// description.
	List(ctx context.Context, search string) ([]*model.Service, error)
	// ListActive returns active services ordered by name.
	ListActive(ctx context.Context) ([]*model.Service, error)
	// LatestActive returns the most recently registered active services.
	LatestActive(ctx context.Context, limit int) ([]*model.Service, error)
	// ActiveWithUsage returns active services with the legacy usage figure.
	ActiveWithUsage(ctx context.Context, limit int) ([]*model.ServiceUsage, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
}

type VeterinarianRepository interface {
	Create(ctx context.Context, vet *model.Veterinarian) error
	// List returns veterinarians ordered by name; search matches name,
	// email or license number.
	List(ctx context.Context, filter model.VeterinarianFilter) ([]*model.Veterinarian, error)
	ListActive(ctx context.Context) ([]*model.Veterinarian, error)
	LatestActive(ctx context.Context, limit int) ([]*model.Veterinarian, error)
	CountActive(ctx context.Context) (int, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
}

type ScheduleRepository interface {
	// List returns all seven rows in fixed Monday-to-Sunday order.
	List(ctx context.Context) ([]*model.ClinicSchedule, error)
	Upsert(ctx context.Context, schedule *model.ClinicSchedule) error
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	Get(ctx context.Context, id uuid.UUID) (*model.Document, error)
	List(ctx context.Context) ([]*model.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
}

package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/vetify/booking-api/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

type petRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

type serviceRepository struct {
	db *sqlx.DB
}

type veterinarianRepository struct {
	db *sqlx.DB
}

type scheduleRepository struct {
	db *sqlx.DB
}

type documentRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func NewPetRepository(db *sqlx.DB) repository.PetRepository {
	return &petRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func NewVeterinarianRepository(db *sqlx.DB) repository.VeterinarianRepository {
	return &veterinarianRepository{db: db}
}

func NewScheduleRepository(db *sqlx.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func NewDocumentRepository(db *sqlx.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

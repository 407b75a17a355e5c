package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record behind every session. Superusers are the
// clinic administrators; they never show up in admin user listings.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	IsSuperuser  bool      `db:"is_superuser" json:"is_superuser"`
	DateJoined   time.Time `db:"date_joined" json:"date_joined"`
}

// UserWithCounts annotates a user row with its pet and appointment counts
// for the admin user listing.
type UserWithCounts struct {
	User
	PetsCount         int `db:"pets_count" json:"pets_count"`
	AppointmentsCount int `db:"appointments_count" json:"appointments_count"`
}

// UserAppointmentCount ranks a user by booked appointments in reports.
type UserAppointmentCount struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Username          string    `db:"username" json:"username"`
	Email             string    `db:"email" json:"email"`
	AppointmentsCount int       `db:"appointments_count" json:"appointments_count"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

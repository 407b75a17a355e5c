package model

import "time"

// DayCount is one point of the trailing seven-day appointment series.
// Date is formatted dd/mm to match the dashboard chart labels.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// MonthCount is one point of the trailing six-month appointment series.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DashboardStats is the admin dashboard payload.
type DashboardStats struct {
	TotalAppointments   int                       `json:"total_appointments"`
	TotalUsers          int                       `json:"total_users"`
	TotalPets           int                       `json:"total_pets"`
	TotalVets           int                       `json:"total_vets"`
	TodayAppointments   int                       `json:"today_appointments"`
	PendingAppointments int                       `json:"pending_appointments"`
	AppointmentsByDay   []DayCount                `json:"appointments_by_day"`
	PetsByType          []PetTypeCount            `json:"pets_by_type"`
	TopServices         []*Service                `json:"top_services"`
	LatestAppointments  []*AppointmentWithDetails `json:"latest_appointments"`
	ActiveVets          []*Veterinarian           `json:"active_vets"`
}

// ReportStats is the reports page payload for a trailing period of days.
type ReportStats struct {
	Period              int                     `json:"period"`
	StartDate           time.Time               `json:"start_date"`
	EndDate             time.Time               `json:"end_date"`
	TotalAppointments   int                     `json:"total_appointments"`
	NewUsers            int                     `json:"new_users"`
	NewPets             int                     `json:"new_pets"`
	AppointmentsByMonth []MonthCount            `json:"appointments_by_month"`
	TopUsers            []*UserAppointmentCount `json:"top_users"`
	ServiceStats        []*ServiceUsage         `json:"service_stats"`
}

// PetListing is the admin pets page payload. The type totals are always
// global, independent of the active filter.
type PetListing struct {
	Pets        []*PetWithOwner `json:"pets"`
	TotalCount  int             `json:"total_count"`
	TotalDogs   int             `json:"total_dogs"`
	TotalCats   int             `json:"total_cats"`
	TotalOthers int             `json:"total_others"`
}

// VeterinarianListing is the admin veterinarians page payload.
type VeterinarianListing struct {
	Veterinarians []*Veterinarian `json:"veterinarians"`
	TotalCount    int             `json:"total_count"`
	ActiveCount   int             `json:"active_count"`
}

// ServiceListing is the admin services page payload.
type ServiceListing struct {
	Services    []*Service `json:"services"`
	TotalCount  int        `json:"total_count"`
	ActiveCount int        `json:"active_count"`
}

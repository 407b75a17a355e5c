package model

import "github.com/google/uuid"

// Weekday tokens stored on clinic schedule rows, one row per day.
var WeekdayOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ClinicSchedule holds opening hours for one weekday. The directory always
// returns all seven rows, closed days included.
type ClinicSchedule struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DayOfWeek   string    `db:"day_of_week" json:"day_of_week"`
	IsOpen      bool      `db:"is_open" json:"is_open"`
	OpeningTime string    `db:"opening_time" json:"opening_time"`
	ClosingTime string    `db:"closing_time" json:"closing_time"`
	Notes       string    `db:"notes" json:"notes"`
}

// ScheduleOverview is the admin schedules page payload.
type ScheduleOverview struct {
	Schedules []*ClinicSchedule `json:"schedules"`
	OpenDays  int               `json:"open_days"`
}

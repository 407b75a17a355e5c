package model

import "time"

const (
	// DateLayout is the wire format for appointment dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for appointment times.
	TimeLayout = "15:04"
)

// DateOnly truncates t to midnight in its own location. Appointment dates
// and report boundaries are always compared at day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

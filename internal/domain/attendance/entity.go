package attendance

import (
	"time"
)

// EventKind marks an event as the start or end of a work interval.
type EventKind string

const (
	KindCheckIn  EventKind = "CHECK_IN"
	KindCheckOut EventKind = "CHECK_OUT"
)

// Status is the derived classification of a day.
// PRESENT, LATE and HALF_DAY are produced by the classifier; ABSENT and
// ON_LEAVE are assigned by the absent-marking job and the leave module.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusAbsent  Status = "ABSENT"
	StatusOnLeave Status = "ON_LEAVE"
)

// Event is one immutable check-in or check-out observation.
type Event struct {
	ID         string
	EmployeeID string
	Kind       EventKind
	Timestamp  time.Time // stored UTC, business rules evaluate in the reference timezone
	Latitude   float64
	Longitude  float64
	CreatedAt  time.Time
}

// DaySummary is the recomputed aggregate for one employee on one day.
// It is derived state: every recompute replaces the stored row keyed by
// (employee_id, date).
type DaySummary struct {
	EmployeeID      string
	Date            time.Time // midnight of the day in the reference timezone
	WorkMinutes     int
	BreakMinutes    int
	OvertimeMinutes int
	FirstCheckIn    *time.Time
	LastCheckOut    *time.Time
	EventCount      int
	CheckedIn       bool // an open check-in existed at recompute time; WorkMinutes is live
	Status          Status
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
}

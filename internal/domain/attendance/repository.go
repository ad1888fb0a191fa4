package attendance

import (
	"context"
	"time"
)

// EventRepository is the append-only store for attendance events.
// Events are never updated: corrections happen by recomputing summaries
// from the full event list.
type EventRepository interface {
	// Append records a new event
	Append(ctx context.Context, event Event) (Event, error)

	// ListByEmployeeAndRange returns all events for one employee with
	// timestamps in [from, to), ordered ascending
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)

	// LastKind returns the kind of the employee's most recent event in
	// [from, to), used to reject double check-ins before they are stored
	LastKind(ctx context.Context, employeeID string, from, to time.Time) (*EventKind, error)

	// EmployeeIDsWithEvents returns the distinct employees having at least
	// one event in [from, to)
	EmployeeIDsWithEvents(ctx context.Context, from, to time.Time) ([]string, error)
}

// SummaryRepository persists derived day summaries with replace semantics.
type SummaryRepository interface {
	// Upsert replaces the summary for (employee_id, date)
	Upsert(ctx context.Context, summary DaySummary) error

	// GetByEmployeeAndDate retrieves one summary
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (DaySummary, error)

	// List retrieves summaries with filters and pagination, newest first
	List(ctx context.Context, filter SummaryFilter) ([]DaySummary, int64, error)

	// SetStatus overwrites the status for (employee_id, date), creating the
	// row if absent; used by the leave module and the absent-marking job
	SetStatus(ctx context.Context, employeeID string, date time.Time, status Status) error
}

package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records a geofence-gated check-in event and returns the
	// refreshed day summary
	CheckIn(ctx context.Context, req CheckRequest) (CheckResponse, error)

	// CheckOut records a geofence-gated check-out event
	CheckOut(ctx context.Context, req CheckRequest) (CheckResponse, error)

	// GetMyDay returns the authenticated employee's live summary for a day;
	// an open check-in accrues work time up to now
	GetMyDay(ctx context.Context, date time.Time) (DaySummaryResponse, error)

	// GetMyEvents returns the authenticated employee's raw events for a day
	GetMyEvents(ctx context.Context, date time.Time) (ListEventResponse, error)

	// ListSummaries retrieves stored day summaries (admin)
	ListSummaries(ctx context.Context, filter SummaryFilter) (ListSummaryResponse, error)

	// RecomputeDay rebuilds and stores the summary for one employee/day
	// from the complete event list (admin, also used by the cron jobs)
	RecomputeDay(ctx context.Context, employeeID string, date time.Time) (DaySummaryResponse, error)
}

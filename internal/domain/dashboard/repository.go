package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// CountByStatus returns per-status summary counts for one day
	CountByStatus(ctx context.Context, date time.Time) (map[string]int64, error)

	// CountCheckedIn returns how many summaries for the day are currently open
	CountCheckedIn(ctx context.Context, date time.Time) (int64, error)

	// CountActiveEmployees returns the active-employee headcount
	CountActiveEmployees(ctx context.Context) (int64, error)
}

package dashboard

import (
	"context"
)

type DashboardService interface {
	// GetTodayOverview returns today's headcounts in the reference timezone
	GetTodayOverview(ctx context.Context) (TodayOverview, error)
}

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/attendance"
	"github.com/attendease/attendease-backend-go/internal/domain/dashboard"
	"github.com/attendease/attendease-backend-go/internal/domain/settings"
)

type DashboardServiceImpl struct {
	repo        dashboard.DashboardRepository
	settingsSvc settings.SettingsService
}

func NewDashboardService(repo dashboard.DashboardRepository, settingsSvc settings.SettingsService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo:        repo,
		settingsSvc: settingsSvc,
	}
}

// GetTodayOverview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTodayOverview(ctx context.Context) (dashboard.TodayOverview, error) {
	policy, err := s.settingsSvc.GetWorkPolicy(ctx)
	if err != nil {
		return dashboard.TodayOverview{}, fmt.Errorf("failed to load work policy: %w", err)
	}

	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		return dashboard.TodayOverview{}, fmt.Errorf("invalid reference timezone %q: %w", policy.Timezone, err)
	}

	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	counts, err := s.repo.CountByStatus(ctx, today)
	if err != nil {
		return dashboard.TodayOverview{}, err
	}

	checkedIn, err := s.repo.CountCheckedIn(ctx, today)
	if err != nil {
		return dashboard.TodayOverview{}, err
	}

	active, err := s.repo.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.TodayOverview{}, err
	}

	return dashboard.TodayOverview{
		Date:         today.Format("2006-01-02"),
		TotalActive:  active,
		Present:      counts[string(attendance.StatusPresent)],
		Late:         counts[string(attendance.StatusLate)],
		HalfDay:      counts[string(attendance.StatusHalfDay)],
		Absent:       counts[string(attendance.StatusAbsent)],
		OnLeave:      counts[string(attendance.StatusOnLeave)],
		CheckedInNow: checkedIn,
	}, nil
}

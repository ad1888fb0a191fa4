package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/attendance"
	"github.com/attendease/attendease-backend-go/internal/domain/employee"
	"github.com/attendease/attendease-backend-go/internal/domain/leave"
	"github.com/attendease/attendease-backend-go/internal/domain/settings"
)

// AttendanceJobs holds the nightly maintenance jobs: finalizing the
// previous day's summaries and marking employees with no activity absent.
type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	eventRepo     attendance.EventRepository
	summaryRepo   attendance.SummaryRepository
	employeeRepo  employee.EmployeeRepository
	leaveRepo     leave.LeaveRepository
	settingsSvc   settings.SettingsService
}

func NewAttendanceJobs(
	attendanceSvc attendance.AttendanceService,
	eventRepo attendance.EventRepository,
	summaryRepo attendance.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	settingsSvc settings.SettingsService,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		eventRepo:     eventRepo,
		summaryRepo:   summaryRepo,
		employeeRepo:  employeeRepo,
		leaveRepo:     leaveRepo,
		settingsSvc:   settingsSvc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("finalize_previous_day", 1*time.Hour, j.FinalizePreviousDay)
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// previousDay resolves the reference timezone and returns yesterday's
// local midnight plus whether we are currently in the first hour after
// midnight, which is when the nightly jobs should do their work.
func (j *AttendanceJobs) previousDay(ctx context.Context) (time.Time, *time.Location, bool, error) {
	policy, err := j.settingsSvc.GetWorkPolicy(ctx)
	if err != nil {
		return time.Time{}, nil, false, fmt.Errorf("failed to load work policy: %w", err)
	}

	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		return time.Time{}, nil, false, fmt.Errorf("invalid reference timezone %q: %w", policy.Timezone, err)
	}

	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return today.Add(-24 * time.Hour), loc, now.Hour() == 0, nil
}

// FinalizePreviousDay recomputes and stores the summary for every employee
// who produced events yesterday. A check-in left open at midnight stops
// accruing at the end of its day, so the stored totals are final.
func (j *AttendanceJobs) FinalizePreviousDay(ctx context.Context) error {
	day, _, shouldRun, err := j.previousDay(ctx)
	if err != nil {
		return err
	}
	// Only run in the first hour after local midnight
	if !shouldRun {
		return nil
	}

	slog.Info("Cron: Starting previous-day finalization job", "date", day.Format("2006-01-02"))

	employeeIDs, err := j.eventRepo.EmployeeIDsWithEvents(ctx, day, day.Add(24*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to list employees with events: %w", err)
	}

	finalized := 0
	for _, id := range employeeIDs {
		if _, err := j.attendanceSvc.RecomputeDay(ctx, id, day); err != nil {
			slog.Error("Cron: Failed to finalize day summary",
				"employee_id", id,
				"date", day.Format("2006-01-02"),
				"error", err)
			continue
		}
		finalized++
	}

	slog.Info("Cron: Finalized previous-day summaries", "count", finalized)
	return nil
}

// MarkAbsentEmployees marks active employees with no events yesterday as
// absent, or on leave when an approved leave covers the day.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	day, _, shouldRun, err := j.previousDay(ctx)
	if err != nil {
		return err
	}
	if !shouldRun {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job", "date", day.Format("2006-01-02"))

	activeIDs, err := j.employeeRepo.ListActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	presentIDs, err := j.eventRepo.EmployeeIDsWithEvents(ctx, day, day.Add(24*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to list employees with events: %w", err)
	}

	present := make(map[string]struct{}, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = struct{}{}
	}

	marked := 0
	for _, id := range activeIDs {
		if _, ok := present[id]; ok {
			continue
		}

		status := attendance.StatusAbsent
		onLeave, err := j.leaveRepo.IsOnLeave(ctx, id, day)
		if err != nil {
			slog.Error("Cron: Failed to check leave coverage", "employee_id", id, "error", err)
		} else if onLeave {
			status = attendance.StatusOnLeave
		}

		if err := j.summaryRepo.SetStatus(ctx, id, day, status); err != nil {
			slog.Error("Cron: Failed to mark employee status",
				"employee_id", id,
				"date", day.Format("2006-01-02"),
				"status", status,
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked inactive employees", "count", marked)
	return nil
}

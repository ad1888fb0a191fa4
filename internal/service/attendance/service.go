package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/attendance"
	"github.com/attendease/attendease-backend-go/internal/domain/employee"
	"github.com/attendease/attendease-backend-go/internal/domain/geofence"
	"github.com/attendease/attendease-backend-go/internal/domain/leave"
	"github.com/attendease/attendease-backend-go/internal/domain/settings"
	"github.com/attendease/attendease-backend-go/internal/pkg/email"
	"github.com/attendease/attendease-backend-go/internal/pkg/sse"
	geofencesvc "github.com/attendease/attendease-backend-go/internal/service/geofence"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	events      attendance.EventRepository
	summaries   attendance.SummaryRepository
	fences      geofence.GeofenceRepository
	employees   employee.EmployeeRepository
	leaves      leave.LeaveRepository
	settingsSvc settings.SettingsService
	hub         *sse.Hub
	emailSvc    email.EmailService
}

func NewAttendanceService(
	events attendance.EventRepository,
	summaries attendance.SummaryRepository,
	fences geofence.GeofenceRepository,
	employees employee.EmployeeRepository,
	leaves leave.LeaveRepository,
	settingsSvc settings.SettingsService,
	hub *sse.Hub,
	emailSvc email.EmailService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		events:      events,
		summaries:   summaries,
		fences:      fences,
		employees:   employees,
		leaves:      leaves,
		settingsSvc: settingsSvc,
		hub:         hub,
		emailSvc:    emailSvc,
	}
}

// employeeIDFromContext extracts the employee identity from the JWT claims.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", attendance.ErrUnauthorized
	}
	return employeeID, nil
}

// dayWindow returns [midnight, midnight+24h) of t's day in the reference
// timezone. Every event query and summary row uses this window, so a day is
// the same set of events no matter when it is recomputed.
func dayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

func (a *AttendanceServiceImpl) policy(ctx context.Context) (Policy, error) {
	wp, err := a.settingsSvc.GetWorkPolicy(ctx)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to load work policy: %w", err)
	}
	return PolicyFromSettings(wp)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.CheckResponse, error) {
	return a.check(ctx, req, attendance.KindCheckIn)
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.CheckResponse, error) {
	return a.check(ctx, req, attendance.KindCheckOut)
}

func (a *AttendanceServiceImpl) check(ctx context.Context, req attendance.CheckRequest, kind attendance.EventKind) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}
	nowUTC := time.Now().UTC()

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	emp, err := a.employees.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	if !emp.Active {
		return attendance.CheckResponse{}, employee.ErrEmployeeInactive
	}

	policy, err := a.policy(ctx)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	fences, err := a.fences.ListActive(ctx)
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to list geofences: %w", err)
	}

	admission := geofencesvc.Admit(req.Latitude, req.Longitude, fences)
	if !admission.Allowed {
		return attendance.CheckResponse{}, attendance.ErrOutsideGeofence
	}

	dayStart, dayEnd := dayWindow(nowUTC, policy.Location)

	// Reject impossible transitions before anything is stored
	lastKind, err := a.events.LastKind(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	switch kind {
	case attendance.KindCheckIn:
		if lastKind != nil && *lastKind == attendance.KindCheckIn {
			return attendance.CheckResponse{}, attendance.ErrAlreadyCheckedIn
		}
	case attendance.KindCheckOut:
		if lastKind == nil || *lastKind == attendance.KindCheckOut {
			return attendance.CheckResponse{}, attendance.ErrNotCheckedIn
		}
	}

	event, err := a.events.Append(ctx, attendance.Event{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Kind:       kind,
		Timestamp:  nowUTC,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	summary, err := a.recompute(ctx, employeeID, dayStart, policy, nowUTC)
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	summary.EmployeeName = &emp.FullName
	summary.EmployeeCode = &emp.EmployeeCode

	if err := a.summaries.Upsert(ctx, summary); err != nil {
		return attendance.CheckResponse{}, err
	}

	a.publishSummary(summary)

	// First check-in of a late day triggers the notice email
	if kind == attendance.KindCheckIn && summary.EventCount == 1 && summary.Status == attendance.StatusLate {
		a.sendLateNotice(emp, summary, policy)
	}

	return attendance.CheckResponse{
		Event:                 toEventResponse(event),
		NearestDistanceMeters: admission.NearestDistanceMeters,
		Summary:               toSummaryResponse(summary),
	}, nil
}

// recompute rebuilds the summary for the day starting at dayStart from the
// full event list. asOf bounds live accrual; callers pass the current time
// for today and the end of the day for past days.
func (a *AttendanceServiceImpl) recompute(ctx context.Context, employeeID string, dayStart time.Time, policy Policy, asOf time.Time) (attendance.DaySummary, error) {
	dayEnd := dayStart.Add(24 * time.Hour)

	events, err := a.events.ListByEmployeeAndRange(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.DaySummary{}, err
	}

	if len(events) == 0 {
		status := attendance.StatusAbsent
		onLeave, err := a.leaves.IsOnLeave(ctx, employeeID, dayStart)
		if err != nil {
			return attendance.DaySummary{}, err
		}
		if onLeave {
			status = attendance.StatusOnLeave
		}
		return attendance.DaySummary{
			EmployeeID: employeeID,
			Date:       dayStart,
			Status:     status,
		}, nil
	}

	totals := Reconstruct(events, asOf)
	status, overtime := Classify(totals.WorkMinutes, totals.FirstCheckIn, policy)

	return attendance.DaySummary{
		EmployeeID:      employeeID,
		Date:            dayStart,
		WorkMinutes:     totals.WorkMinutes,
		BreakMinutes:    totals.BreakMinutes,
		OvertimeMinutes: overtime,
		FirstCheckIn:    totals.FirstCheckIn,
		LastCheckOut:    totals.LastCheckOut,
		EventCount:      len(events),
		CheckedIn:       totals.OpenCheckIn,
		Status:          status,
	}, nil
}

// GetMyDay implements attendance.AttendanceService. The summary is computed
// live and not stored: an open check-in keeps accruing between calls, and
// persisting every read would churn the summaries table for nothing.
func (a *AttendanceServiceImpl) GetMyDay(ctx context.Context, date time.Time) (attendance.DaySummaryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.DaySummaryResponse{}, err
	}

	policy, err := a.policy(ctx)
	if err != nil {
		return attendance.DaySummaryResponse{}, err
	}

	nowUTC := time.Now().UTC()
	dayStart, dayEnd := dayWindow(date, policy.Location)

	// Past days never accrue beyond their own end
	asOf := nowUTC
	if dayEnd.Before(asOf) {
		asOf = dayEnd
	}

	summary, err := a.recompute(ctx, employeeID, dayStart, policy, asOf)
	if err != nil {
		return attendance.DaySummaryResponse{}, err
	}

	return toSummaryResponse(summary), nil
}

// GetMyEvents implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyEvents(ctx context.Context, date time.Time) (attendance.ListEventResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListEventResponse{}, err
	}

	policy, err := a.policy(ctx)
	if err != nil {
		return attendance.ListEventResponse{}, err
	}

	dayStart, dayEnd := dayWindow(date, policy.Location)

	events, err := a.events.ListByEmployeeAndRange(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.ListEventResponse{}, err
	}

	resp := attendance.ListEventResponse{
		Date:   dayStart.Format("2006-01-02"),
		Events: make([]attendance.EventResponse, 0, len(events)),
	}
	for _, ev := range events {
		resp.Events = append(resp.Events, toEventResponse(ev))
	}
	return resp, nil
}

// ListSummaries implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListSummaries(ctx context.Context, filter attendance.SummaryFilter) (attendance.ListSummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListSummaryResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	summaries, total, err := a.summaries.List(ctx, filter)
	if err != nil {
		return attendance.ListSummaryResponse{}, err
	}

	resp := attendance.ListSummaryResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Summaries:  make([]attendance.DaySummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		resp.Summaries = append(resp.Summaries, toSummaryResponse(s))
	}
	return resp, nil
}

// RecomputeDay implements attendance.AttendanceService. Recomputing a closed
// day is idempotent: the same events always produce the same stored row.
func (a *AttendanceServiceImpl) RecomputeDay(ctx context.Context, employeeID string, date time.Time) (attendance.DaySummaryResponse, error) {
	emp, err := a.employees.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.DaySummaryResponse{}, err
	}

	policy, err := a.policy(ctx)
	if err != nil {
		return attendance.DaySummaryResponse{}, err
	}

	nowUTC := time.Now().UTC()
	dayStart, dayEnd := dayWindow(date, policy.Location)

	asOf := nowUTC
	if dayEnd.Before(asOf) {
		asOf = dayEnd
	}

	summary, err := a.recompute(ctx, employeeID, dayStart, policy, asOf)
	if err != nil {
		return attendance.DaySummaryResponse{}, err
	}
	summary.EmployeeName = &emp.FullName
	summary.EmployeeCode = &emp.EmployeeCode

	if err := a.summaries.Upsert(ctx, summary); err != nil {
		return attendance.DaySummaryResponse{}, err
	}

	a.publishSummary(summary)

	return toSummaryResponse(summary), nil
}

func (a *AttendanceServiceImpl) publishSummary(summary attendance.DaySummary) {
	if a.hub == nil {
		return
	}
	payload := toSummaryResponse(summary)
	a.hub.Publish(summary.EmployeeID, sse.Event{
		UserID: summary.EmployeeID,
		Event:  "summary_updated",
		Data:   payload,
	})
	a.hub.Broadcast(sse.Event{
		Event: "dashboard_updated",
		Data:  payload,
	})
}

func (a *AttendanceServiceImpl) sendLateNotice(emp employee.Employee, summary attendance.DaySummary, policy Policy) {
	if a.emailSvc == nil || summary.FirstCheckIn == nil {
		return
	}

	date := summary.Date.Format("2006-01-02")
	firstCheckIn := summary.FirstCheckIn.In(policy.Location).Format("15:04")
	threshold := fmt.Sprintf("%02d:%02d", policy.LateThresholdMinutes/60, policy.LateThresholdMinutes%60)

	go func() {
		if err := a.emailSvc.SendLateNotice(emp.Email, emp.FullName, date, firstCheckIn, threshold); err != nil {
			slog.Error("Failed to send late notice", "employee_id", emp.ID, "error", err)
		}
	}()
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func toEventResponse(ev attendance.Event) attendance.EventResponse {
	return attendance.EventResponse{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		Kind:       string(ev.Kind),
		Timestamp:  ev.Timestamp.UTC().Format(time.RFC3339),
		Latitude:   ev.Latitude,
		Longitude:  ev.Longitude,
	}
}

func toSummaryResponse(s attendance.DaySummary) attendance.DaySummaryResponse {
	return attendance.DaySummaryResponse{
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		EmployeeCode:    s.EmployeeCode,
		Date:            s.Date.Format("2006-01-02"),
		WorkMinutes:     s.WorkMinutes,
		BreakMinutes:    s.BreakMinutes,
		OvertimeMinutes: s.OvertimeMinutes,
		FirstCheckIn:    timePtrToString(s.FirstCheckIn),
		LastCheckOut:    timePtrToString(s.LastCheckOut),
		EventCount:      s.EventCount,
		CheckedIn:       s.CheckedIn,
		Status:          string(s.Status),
	}
}

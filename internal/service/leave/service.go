package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/attendance"
	"github.com/attendease/attendease-backend-go/internal/domain/leave"
	"github.com/attendease/attendease-backend-go/internal/domain/settings"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leaves      leave.LeaveRepository
	summaries   attendance.SummaryRepository
	settingsSvc settings.SettingsService
}

func NewLeaveService(
	leaves leave.LeaveRepository,
	summaries attendance.SummaryRepository,
	settingsSvc settings.SettingsService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaves:      leaves,
		summaries:   summaries,
		settingsSvc: settingsSvc,
	}
}

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

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", attendance.ErrUnauthorized
	}
	return userID, nil
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	loc, err := s.location(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartDate, loc)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, loc)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("invalid end date: %w", err)
	}

	overlap, err := s.leaves.HasOverlap(ctx, employeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlap {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaves.Create(ctx, leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.RequestPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(created), nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return s.List(ctx, filter)
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.leaves.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	resp := leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Leaves:     make([]leave.LeaveResponse, 0, len(requests)),
	}
	for _, req := range requests {
		resp.Leaves = append(resp.Leaves, toLeaveResponse(req))
	}
	return resp, nil
}

// Approve implements leave.LeaveService. Every day the leave covers gets its
// summary status set to ON_LEAVE so reports and the dashboard agree with the
// decision immediately.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	req, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if req.Status != leave.RequestPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	deciderID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	now := time.Now().UTC()
	req.Status = leave.RequestApproved
	req.DecidedBy = &deciderID
	req.DecidedAt = &now

	if err := s.leaves.Update(ctx, req); err != nil {
		return leave.LeaveResponse{}, err
	}

	for day := req.StartDate; !day.After(req.EndDate); day = day.Add(24 * time.Hour) {
		if err := s.summaries.SetStatus(ctx, req.EmployeeID, day, attendance.StatusOnLeave); err != nil {
			slog.Error("Failed to mark leave day",
				"leave_request_id", req.ID,
				"employee_id", req.EmployeeID,
				"date", day.Format("2006-01-02"),
				"error", err)
		}
	}

	return toLeaveResponse(req), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, rejectReq leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := rejectReq.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	req, err := s.leaves.GetByID(ctx, rejectReq.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if req.Status != leave.RequestPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	deciderID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	now := time.Now().UTC()
	req.Status = leave.RequestRejected
	req.DecidedBy = &deciderID
	req.DecidedAt = &now
	req.RejectionReason = &rejectReq.Reason

	if err := s.leaves.Update(ctx, req); err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(req), nil
}

func (s *LeaveServiceImpl) location(ctx context.Context) (*time.Location, error) {
	policy, err := s.settingsSvc.GetWorkPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load work policy: %w", err)
	}
	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reference timezone %q: %w", policy.Timezone, err)
	}
	return loc, nil
}

func toLeaveResponse(r leave.LeaveRequest) leave.LeaveResponse {
	var decidedAt *string
	if r.DecidedAt != nil {
		formatted := r.DecidedAt.UTC().Format(time.RFC3339)
		decidedAt = &formatted
	}

	return leave.LeaveResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Reason:          r.Reason,
		Status:          string(r.Status),
		DecidedBy:       r.DecidedBy,
		DecidedAt:       decidedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

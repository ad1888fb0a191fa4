package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
	Update(ctx context.Context, req LeaveRequest) error
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	// IsOnLeave reports whether an approved leave covers the given day
	IsOnLeave(ctx context.Context, employeeID string, day time.Time) (bool, error)
}

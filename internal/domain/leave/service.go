package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests. Approving a
// request marks every covered day summary ON_LEAVE.
type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetMyLeaves(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)
}

package leave

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	StartDate       time.Time // inclusive, days in the reference timezone
	EndDate         time.Time // inclusive
	Reason          string
	Status          RequestStatus
	DecidedBy       *string
	DecidedAt       *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeName *string
}

package attendance

import "errors"

var (
	// Check-in/out errors
	ErrOutsideGeofence  = errors.New("you are outside every allowed check-in area")
	ErrAlreadyCheckedIn = errors.New("you are already checked in")
	ErrNotCheckedIn     = errors.New("you have not checked in yet")

	// General errors
	ErrEventNotFound   = errors.New("attendance event not found")
	ErrSummaryNotFound = errors.New("day summary not found")
	ErrUnauthorized    = errors.New("unauthorized to access this attendance record")
)

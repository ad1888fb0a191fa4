package attendance

import (
	"github.com/attendease/attendease-backend-go/internal/pkg/validator"
)

// CheckRequest is the payload for both check-in and check-out.
type CheckRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"`
	Timestamp  string  `json:"timestamp"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// CheckResponse is returned from check-in/check-out: the recorded event, the
// distance to the nearest geofence and the refreshed summary for the day.
type CheckResponse struct {
	Event                 EventResponse      `json:"event"`
	NearestDistanceMeters int                `json:"nearest_distance_meters"`
	Summary               DaySummaryResponse `json:"summary"`
}

type DaySummaryResponse struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	EmployeeCode    *string `json:"employee_code,omitempty"`
	Date            string  `json:"date"`
	WorkMinutes     int     `json:"work_minutes"`
	BreakMinutes    int     `json:"break_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
	FirstCheckIn    *string `json:"first_check_in,omitempty"`
	LastCheckOut    *string `json:"last_check_out,omitempty"`
	EventCount      int     `json:"event_count"`
	CheckedIn       bool    `json:"checked_in"`
	Status          string  `json:"status"`
}

type SummaryFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // "YYYY-MM-DD"
	EndDate    *string `json:"end_date,omitempty"`
	Status     *string `json:"status,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}
	if f.Status != nil && *f.Status != "" {
		allowed := []string{
			string(StatusPresent), string(StatusLate), string(StatusHalfDay),
			string(StatusAbsent), string(StatusOnLeave),
		}
		if !validator.IsInSlice(*f.Status, allowed) {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListSummaryResponse struct {
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	Summaries  []DaySummaryResponse `json:"summaries"`
}

type ListEventResponse struct {
	Date   string          `json:"date"`
	Events []EventResponse `json:"events"`
}

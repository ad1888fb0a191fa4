package settings

import (
	"github.com/attendease/attendease-backend-go/internal/pkg/validator"
)

type UpdateWorkPolicyRequest struct {
	StandardWorkMinutes *int    `json:"standard_work_minutes,omitempty"`
	LateThreshold       *string `json:"late_threshold,omitempty"`
	HalfDayBelowMinutes *int    `json:"half_day_below_minutes,omitempty"`
	DefaultRadiusMeters *int    `json:"default_radius_meters,omitempty"`
}

func (r *UpdateWorkPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StandardWorkMinutes != nil && *r.StandardWorkMinutes <= 0 {
		errs = append(errs, validator.ValidationError{Field: "standard_work_minutes", Message: "standard_work_minutes must be positive"})
	}
	if r.LateThreshold != nil && !validator.IsValidClock(*r.LateThreshold) {
		errs = append(errs, validator.ValidationError{Field: "late_threshold", Message: "late_threshold must be HH:mm"})
	}
	if r.HalfDayBelowMinutes != nil && *r.HalfDayBelowMinutes <= 0 {
		errs = append(errs, validator.ValidationError{Field: "half_day_below_minutes", Message: "half_day_below_minutes must be positive"})
	}
	if r.DefaultRadiusMeters != nil && *r.DefaultRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{Field: "default_radius_meters", Message: "default_radius_meters must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmailSettingsRequest struct {
	Host     *string `json:"host,omitempty"`
	Port     *int    `json:"port,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	From     *string `json:"from,omitempty"`
	Enabled  *bool   `json:"enabled,omitempty"`
}

func (r *UpdateEmailSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Port != nil && (*r.Port <= 0 || *r.Port > 65535) {
		errs = append(errs, validator.ValidationError{Field: "port", Message: "port must be between 1 and 65535"})
	}
	if r.From != nil && !validator.IsValidEmail(*r.From) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkPolicyResponse struct {
	StandardWorkMinutes int    `json:"standard_work_minutes"`
	LateThreshold       string `json:"late_threshold"`
	HalfDayBelowMinutes int    `json:"half_day_below_minutes"`
	DefaultRadiusMeters int    `json:"default_radius_meters"`
	Timezone            string `json:"timezone"`
}

// EmailSettingsResponse omits the SMTP password.
type EmailSettingsResponse struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	From     string `json:"from"`
	Enabled  bool   `json:"enabled"`
}

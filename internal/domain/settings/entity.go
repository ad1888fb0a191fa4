package settings

import "time"

// WorkPolicy is the runtime-tunable attendance policy. Config supplies the
// defaults; administrators override through the settings endpoints.
type WorkPolicy struct {
	StandardWorkMinutes int    // full working day, overtime accrues above this
	LateThreshold       string // "HH:mm" wall clock in the reference timezone
	HalfDayBelowMinutes int    // worked minutes strictly below this are HALF_DAY
	DefaultRadiusMeters int    // applied when a geofence omits its radius
	Timezone            string // IANA name of the reference timezone
	UpdatedAt           time.Time
}

// EmailSettings holds admin-managed SMTP delivery settings.
type EmailSettings struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Enabled   bool
	UpdatedAt time.Time
}

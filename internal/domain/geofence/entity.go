package geofence

import "time"

// GeoFence is a circular admission boundary for check-in/out actions.
type GeoFence struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdmissionResult is the outcome of checking a point against the active
// fence set. NearestDistanceMeters is reported regardless of the outcome
// so clients can tell users how far away the nearest site is.
type AdmissionResult struct {
	Allowed               bool `json:"allowed"`
	NearestDistanceMeters int  `json:"nearest_distance_meters"`
}

package geofence

import "errors"

var (
	ErrGeofenceNotFound = errors.New("geofence not found")
	ErrNameExists       = errors.New("a geofence with this name already exists")
)

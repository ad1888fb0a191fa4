package geofence

import (
	"math"

	"github.com/attendease/attendease-backend-go/internal/domain/geofence"
	"github.com/attendease/attendease-backend-go/internal/pkg/utils"
)

// Admit decides whether a point may check in/out against the given fence
// set. Being inside any single fence suffices. With no fences configured the
// system runs open admission: allowed, distance zero. The caller is
// responsible for passing only active fences.
func Admit(latitude, longitude float64, fences []geofence.GeoFence) geofence.AdmissionResult {
	if len(fences) == 0 {
		return geofence.AdmissionResult{Allowed: true, NearestDistanceMeters: 0}
	}

	allowed := false
	nearest := math.Inf(1)

	for _, fence := range fences {
		distance := utils.HaversineDistance(latitude, longitude, fence.Latitude, fence.Longitude)
		if distance <= float64(fence.RadiusMeters) {
			allowed = true
		}
		if distance < nearest {
			nearest = distance
		}
	}

	return geofence.AdmissionResult{
		Allowed:               allowed,
		NearestDistanceMeters: int(math.Round(nearest)),
	}
}

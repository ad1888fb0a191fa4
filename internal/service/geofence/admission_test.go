package geofence

import (
	"testing"

	"github.com/attendease/attendease-backend-go/internal/domain/geofence"
	"github.com/stretchr/testify/assert"
)

// Office at Bengaluru city center; ~150m and ~5km reference points derived
// from the haversine distance on the 6371 km sphere.
const (
	officeLat = 12.97160
	officeLng = 77.59460
)

func fence(radius int) geofence.GeoFence {
	return geofence.GeoFence{
		ID:           "fence-1",
		Name:         "HQ",
		Latitude:     officeLat,
		Longitude:    officeLng,
		RadiusMeters: radius,
		Active:       true,
	}
}

func TestAdmitNoFencesIsOpenAdmission(t *testing.T) {
	result := Admit(officeLat, officeLng, nil)

	assert.True(t, result.Allowed)
	assert.Equal(t, 0, result.NearestDistanceMeters)
}

func TestAdmitAtFenceCenter(t *testing.T) {
	result := Admit(officeLat, officeLng, []geofence.GeoFence{fence(200)})

	assert.True(t, result.Allowed)
	assert.Equal(t, 0, result.NearestDistanceMeters)
}

func TestAdmitInsideFence(t *testing.T) {
	// ~150m north of the center (0.00135 degrees of latitude).
	result := Admit(officeLat+0.00135, officeLng, []geofence.GeoFence{fence(200)})

	assert.True(t, result.Allowed)
	assert.InDelta(t, 150, result.NearestDistanceMeters, 2)
}

func TestAdmitFarOutsideFence(t *testing.T) {
	// ~5km north of the center (0.04497 degrees of latitude).
	result := Admit(officeLat+0.04497, officeLng, []geofence.GeoFence{fence(200)})

	assert.False(t, result.Allowed)
	assert.InDelta(t, 5000, result.NearestDistanceMeters, 5)
}

func TestAdmitAnyFenceSuffices(t *testing.T) {
	far := fence(200)
	near := geofence.GeoFence{
		ID:           "fence-2",
		Name:         "Branch",
		Latitude:     officeLat + 0.04497, // ~5km away from HQ
		Longitude:    officeLng,
		RadiusMeters: 100,
		Active:       true,
	}

	// Standing at the branch: outside HQ, inside the branch.
	result := Admit(near.Latitude, near.Longitude, []geofence.GeoFence{far, near})

	assert.True(t, result.Allowed)
	assert.Equal(t, 0, result.NearestDistanceMeters)
}

func TestAdmitReportsNearestEvenWhenDenied(t *testing.T) {
	hq := fence(200)
	branch := geofence.GeoFence{
		ID:           "fence-2",
		Name:         "Branch",
		Latitude:     officeLat + 0.08994, // ~10km away
		Longitude:    officeLng,
		RadiusMeters: 100,
		Active:       true,
	}

	// ~5km from HQ, ~5km from the branch; denied by both, nearest reported.
	result := Admit(officeLat+0.04497, officeLng, []geofence.GeoFence{hq, branch})

	assert.False(t, result.Allowed)
	assert.InDelta(t, 5000, result.NearestDistanceMeters, 10)
}

func TestAdmitBoundaryIsInclusive(t *testing.T) {
	// ~100m from the center of a 100m fence: on-the-line counts as inside.
	result := Admit(officeLat+0.0009, officeLng, []geofence.GeoFence{fence(101)})

	assert.True(t, result.Allowed)
}

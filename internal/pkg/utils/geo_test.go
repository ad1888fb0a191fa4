package utils

import (
	"math"
	"testing"
)

func TestHaversineDistanceZero(t *testing.T) {
	d := HaversineDistance(12.9716, 77.5946, 12.9716, 77.5946)
	if d != 0 {
		t.Errorf("distance between identical points = %f, want 0", d)
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	// Bengaluru -> Mumbai
	d1 := HaversineDistance(12.9716, 77.5946, 19.0760, 72.8777)
	d2 := HaversineDistance(19.0760, 72.8777, 12.9716, 77.5946)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestHaversineDistanceKnown(t *testing.T) {
	// Bengaluru -> Mumbai is roughly 845 km great-circle.
	d := HaversineDistance(12.9716, 77.5946, 19.0760, 72.8777)
	if d < 830000 || d > 860000 {
		t.Errorf("Bengaluru-Mumbai distance = %f m, want ~845 km", d)
	}
}

func TestHaversineDistanceShortRange(t *testing.T) {
	// One degree of latitude is ~111.19 km on the 6371 km sphere.
	d := HaversineDistance(0, 0, 1, 0)
	if math.Abs(d-111194.9) > 100 {
		t.Errorf("one-degree latitude distance = %f m, want ~111195 m", d)
	}
}

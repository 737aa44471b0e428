package farmer

import (
	"math"
	"testing"
)

func TestDistanceKmIdentity(t *testing.T) {
	if d := DistanceKm(-1.2921, 36.8219, -1.2921, 36.8219); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := DistanceKm(-1.2921, 36.8219, -4.0435, 39.6682)
	b := DistanceKm(-4.0435, 39.6682, -1.2921, 36.8219)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("asymmetric: %f vs %f", a, b)
	}
}

func TestDistanceKmKnownValue(t *testing.T) {
	// Nairobi to Mombasa is roughly 440 km great-circle.
	d := DistanceKm(-1.2921, 36.8219, -4.0435, 39.6682)
	if d < 430 || d > 450 {
		t.Errorf("Nairobi-Mombasa = %f km, want ~440", d)
	}
}

func TestDistanceKmShortRange(t *testing.T) {
	// Two points ~1.11 km apart along a meridian (0.01 degrees latitude).
	d := DistanceKm(0, 0, 0.01, 0)
	if d < 1.0 || d > 1.2 {
		t.Errorf("0.01 deg latitude = %f km, want ~1.11", d)
	}
}

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(1.3521, 103.8198, 1.3521, 103.8198))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := DistanceKm(1.3521, 103.8198, 1.2966, 103.7764)
	d2 := DistanceKm(1.2966, 103.7764, 1.3521, 103.8198)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Singapore to Kuala Lumpur, roughly 316 km.
	d := DistanceKm(1.3521, 103.8198, 3.1390, 101.6869)
	assert.InDelta(t, 316, d, 5)
}

func TestWithinSingapore(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"central Singapore", 1.30, 103.85, true},
		{"New York", 40.7, -74.0, false},
		{"just north of bounds", 1.49, 103.85, false},
		{"western edge", 1.30, 103.6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinSingapore(tt.lat, tt.lon))
		})
	}
}

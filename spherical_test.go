package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-gamemath/internal/testutil"
)

func TestCartesianToSpherical_Axes(t *testing.T) {
	tests := []struct {
		name            string
		x, y, z         float64
		rho, phi, theta float64
	}{
		{"X axis", 1, 0, 0, 1, 0, 0},
		{"Y axis", 0, 2, 0, 2, HalfPi, 0},
		{"Z axis", 0, 0, 3, 3, 0, HalfPi},
		{"Negative X", -1, 0, 0, 1, 0, Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rho, phi, theta := CartesianToSpherical(tt.x, tt.y, tt.z)
			assert.InDelta(t, tt.rho, rho, testutil.DefaultTolerance)
			assert.InDelta(t, tt.phi, phi, testutil.DefaultTolerance)
			assert.InDelta(t, tt.theta, theta, testutil.DefaultTolerance)
		})
	}
}

func TestSpherical_RoundTrip(t *testing.T) {
	points := [][3]float64{
		{1, 2, 3},
		{-4, 0.5, 2},
		{0.25, -7, -1},
		{10, 10, -10},
	}

	for _, p := range points {
		rho, phi, theta := CartesianToSpherical(p[0], p[1], p[2])
		x, y, z := SphericalToCartesian(rho, phi, theta)
		testutil.AssertTriple(t, p, [3]float64{x, y, z}, 1e-12)
	}
}

func TestCartesianToSpherical_Origin(t *testing.T) {
	rho, phi, _ := CartesianToSpherical(0.0, 0.0, 0.0)
	assert.Equal(t, 0.0, rho)
	assert.True(t, math.IsNaN(phi), "phi at the origin is 0/0")
}

func TestSphericalToCartesian_Float32(t *testing.T) {
	x, y, z := SphericalToCartesian(float32(2), float32(0), float32(HalfPi))
	assert.InDelta(t, 0, x, testutil.Float32Tolerance)
	assert.InDelta(t, 0, y, testutil.Float32Tolerance)
	assert.InDelta(t, 2, z, testutil.Float32Tolerance)
}

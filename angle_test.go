package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-gamemath/internal/testutil"
)

func TestRadiansDegrees(t *testing.T) {
	assert.InDelta(t, Pi, Radians(180.0), testutil.DefaultTolerance)
	assert.InDelta(t, 90.0, Degrees(HalfPi), testutil.DefaultTolerance)
	assert.InDelta(t, -QuarterPi, Radians(-45.0), testutil.DefaultTolerance)
	assert.InDelta(t, float32(HalfPi), Radians(float32(90)), testutil.Float32Tolerance)

	assert.Equal(t, Radians(33.0), Rad(33.0))
	assert.Equal(t, Degrees(1.2), Deg(1.2))
}

func TestRadiansDegrees_RoundTrip(t *testing.T) {
	for d := -720.0; d <= 720.0; d += 15 {
		assert.InDelta(t, d, Degrees(Radians(d)), 1e-9, "degrees=%v", d)
	}
}

func TestConstants(t *testing.T) {
	assert.InDelta(t, math.Pi, Pi, 1e-15)
	assert.InDelta(t, math.E, E, 1e-15)
	assert.Equal(t, TwoPi, Tau)
	assert.InDelta(t, Deg2Rad*Rad2Deg, 1.0, 1e-15)
	assert.Equal(t, "GameMath 1.0.0", NameVersion)
}

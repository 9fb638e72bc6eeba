package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxMin(t *testing.T) {
	assert.Equal(t, 3, Max(1, 3, 2))
	assert.Equal(t, 1, Min(4, 2, 8, 1))
	assert.Equal(t, 2.5, Max(2.5, 1.0))
	assert.Equal(t, -7.0, Min(2.5, -7.0))
	assert.Equal(t, "c", Max("a", "c", "b"))
}

// TestMaxMin_TiesKeepFirst distinguishes equal values by the sign of zero.
func TestMaxMin_TiesKeepFirst(t *testing.T) {
	negZero := math.Copysign(0, -1)

	assert.False(t, math.Signbit(Max(0.0, negZero)))
	assert.True(t, math.Signbit(Max(negZero, 0.0)))
	assert.False(t, math.Signbit(Min(0.0, negZero, negZero)))
	assert.True(t, math.Signbit(Min(negZero, 0.0)))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float64
		want      float64
	}{
		{"Above", 5, 0, 3, 3},
		{"Below", -1, 0, 3, 0},
		{"Inside", 2, 0, 3, 2},
		{"On lower edge", 0, 0, 3, 0},
		{"Inverted range above", 5, 4, 1, 1},
		{"Inverted range below", 0, 4, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.x, tt.lo, tt.hi))
		})
	}
}

func TestClamp_Idempotent(t *testing.T) {
	for i := -50; i <= 50; i++ {
		x := float64(i) / 10
		once := Clamp(x, -1.5, 2.0)
		assert.Equal(t, once, Clamp(once, -1.5, 2.0), "x=%v", x)
	}
}

func TestParity(t *testing.T) {
	assert.True(t, Even(4))
	assert.False(t, Even(5))
	assert.True(t, Odd(3))
	assert.True(t, IsEven(-2))
	assert.True(t, IsOdd(-3))
	assert.True(t, IsEven(uint16(0)))
	assert.True(t, Odd(int64(1)<<40+1))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-2.5))
	assert.Equal(t, 0.0, Sign(0.0))
	assert.Equal(t, 1, Sign(7))
	assert.Equal(t, int8(-1), Sign(int8(-128)))
}

func TestCloseEnough(t *testing.T) {
	assert.True(t, CloseEnough(1.0, 1.0+1e-7))
	assert.True(t, CloseEnough(0.0, Epsilon), "tolerance is inclusive")
	assert.False(t, CloseEnough(1.0, 1.00001))
	assert.True(t, CloseEnough(float32(0.1), float32(0.1000001)))
}

func TestInBounds(t *testing.T) {
	assert.False(t, InBounds(1.0, 1.5, 0.5), "bounds are exclusive")
	assert.True(t, InBounds(1.0, 1.4, 0.5))
	assert.True(t, InBounds(10, 12, 3))
	assert.False(t, InBounds(-10, 12, 3))
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		x    int
		want bool
	}{
		{64, true},
		{0, false},
		{63, false},
		{1, true},
		{2, true},
		{-8, false},
		{1 << 30, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPowerOfTwo(tt.x), "IsPowerOfTwo(%d)", tt.x)
	}

	assert.True(t, IsPowerOfTwo(uint32(1)<<31))
	assert.False(t, IsPowerOfTwo(uint32(math.MaxUint32)))
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger(3.0))
	assert.True(t, IsInteger(3.0000001))
	assert.True(t, IsInteger(-12.0))
	assert.False(t, IsInteger(3.5))
	assert.True(t, HasDecimals(3.5))
	assert.False(t, HasDecimals(8.0))

	// Comparison is against the truncated value, not the nearest integer.
	assert.False(t, IsInteger(2.9999999))
}

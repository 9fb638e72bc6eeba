package easing

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-gamemath/internal/testutil"
)

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 31)
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "linear")
	assert.Contains(t, names, "in-out-bounce")
}

func TestByName(t *testing.T) {
	fn, ok := ByName("in-out-quad")
	require.True(t, ok)
	assert.Equal(t, InOutQuad(0.3), fn(0.3))

	fn, ok = ByName(" IN_OUT_QUAD ")
	require.True(t, ok)
	assert.Equal(t, InOutQuad(0.3), fn(0.3))

	_, ok = ByName("in-out-wobble")
	assert.False(t, ok)
}

func TestReverse(t *testing.T) {
	outQuad := Reverse(InQuad[float64])
	outCubic := Reverse(InCubic[float64])

	for _, x := range testutil.Grid(32) {
		assert.InDelta(t, OutQuad(x), outQuad(x), testutil.DefaultTolerance)
		assert.InDelta(t, OutCubic(x), outCubic(x), testutil.DefaultTolerance)
	}

	assert.Equal(t, OutBounce(0.4), Reverse(InBounce[float64])(0.4))
}

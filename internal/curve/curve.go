// Package curve samples easing curves into lookup tables and reports their
// shape statistics.
package curve

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-gamemath"
	"github.com/tphakala/go-gamemath/internal/simdops"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// ErrTooFewSteps is returned when a table would have fewer than two samples.
var ErrTooFewSteps = errors.New("curve needs at least one step")

// Table holds a curve sampled at evenly spaced times covering [0, 1].
type Table struct {
	Times  []float64
	Values []float64
}

// Stats summarizes the shape of a sampled curve.
type Stats struct {
	Min float64
	Max float64

	// Mean is the average of the samples.
	Mean float64

	// Area is the trapezoidal integral over [0, 1]. Linear gives 0.5; curves
	// that reach their target early give more.
	Area float64

	// Overshoot is how far the curve leaves [0, 1], or 0 if it stays inside.
	Overshoot float64

	// Monotonic is true when no sample is lower than its predecessor.
	Monotonic bool
}

// Sample evaluates fn at steps+1 evenly spaced times from 0 to 1.
func Sample(fn func(float64) float64, steps int) (*Table, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSteps, steps)
	}

	times := floats.Span(make([]float64, steps+1), 0, 1)
	values := make([]float64, len(times))
	for i, t := range times {
		values[i] = fn(t)
	}

	return &Table{Times: times, Values: values}, nil
}

// Steps returns the number of intervals in the table.
func (t *Table) Steps() int {
	return len(t.Values) - 1
}

// At returns the curve value at time x by linear interpolation between the
// neighbouring samples. x is clamped to [0, 1].
func (t *Table) At(x float64) float64 {
	steps := t.Steps()
	pos := gamemath.Clamp(x, 0, 1) * float64(steps)
	i := int(pos)
	if i >= steps {
		return t.Values[steps]
	}
	return gamemath.Lerp(t.Values[i], t.Values[i+1], gamemath.Fract(pos))
}

// Scale maps the sampled progress into [from, to].
func (t *Table) Scale(from, to float64) []float64 {
	dst := make([]float64, len(t.Values))
	simdops.Affine(dst, t.Values, to-from, from)
	return dst
}

// Stats computes the shape statistics of the table.
func (t *Table) Stats() Stats {
	s := Stats{
		Min:       floats.Min(t.Values),
		Max:       floats.Max(t.Values),
		Mean:      simdops.Mean(t.Values),
		Area:      integrate.Trapezoidal(t.Times, t.Values),
		Monotonic: true,
	}
	s.Overshoot = gamemath.Max(0, -s.Min, s.Max-1)

	for i := 1; i < len(t.Values); i++ {
		if t.Values[i] < t.Values[i-1] {
			s.Monotonic = false
			break
		}
	}

	return s
}

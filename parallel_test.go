package gamemath_test

import (
	"sync"
	"testing"

	"github.com/tphakala/go-gamemath"
	"github.com/tphakala/go-gamemath/color"
	"github.com/tphakala/go-gamemath/easing"
)

// evaluate runs a fixed mix of helpers over inputs.
func evaluate(inputs []float64) []float64 {
	out := make([]float64, 0, len(inputs)*4)
	for _, x := range inputs {
		h, s, l := color.RGBToHSL(x, 1-x, gamemath.Fract(x*3))
		out = append(out,
			easing.InOutElastic(x),
			gamemath.Smoothstep(0, 1, x)+gamemath.Round(x*10),
			h+s+l,
			color.Grayscale(x, x/2, 1-x),
		)
	}
	return out
}

// TestConcurrentEvaluation checks that helpers called from many goroutines
// produce the same results as a sequential run.
func TestConcurrentEvaluation(t *testing.T) {
	const (
		workers = 8
		samples = 2000
	)

	inputs := make([]float64, samples)
	for i := range inputs {
		inputs[i] = float64(i) / samples
	}
	want := evaluate(inputs)

	results := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Go(func() {
			results[w] = evaluate(inputs)
		})
	}
	wg.Wait()

	for w, got := range results {
		if len(got) != len(want) {
			t.Fatalf("worker %d: length mismatch: got %d, want %d", w, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("worker %d: value %d differs: got %v, want %v", w, i, got[i], want[i])
			}
		}
	}
}

package gamemath_test

import (
	"testing"

	"github.com/tphakala/go-gamemath"
	"github.com/tphakala/go-gamemath/easing"
)

// BenchmarkEaseSequential benchmarks one goroutine stepping many tweens.
func BenchmarkEaseSequential(b *testing.B) {
	const tweens = 1024
	b.ReportAllocs()
	for b.Loop() {
		var acc float64
		for i := range tweens {
			acc += easing.OutBounce(float64(i) / tweens)
		}
		_ = acc
	}
}

// BenchmarkEaseParallel benchmarks the same work spread over GOMAXPROCS.
func BenchmarkEaseParallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		var i int
		var acc float64
		for pb.Next() {
			acc += easing.OutBounce(gamemath.Fract(float64(i) / 1024))
			i++
		}
		_ = acc
	})
}

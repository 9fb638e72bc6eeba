package easing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween adapts fn to gween's (t, begin, change, duration) convention so the
// curves here can drive gween tweens and sequences.
func Tween(fn Func) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return b + c*float32(fn(float64(t)/float64(d)))
	}
}

// NewTween creates a gween tween from begin to end over duration seconds,
// shaped by fn. The returned tween is advanced with its Update method and is
// not safe for concurrent use.
func NewTween(begin, end, duration float32, fn Func) *gween.Tween {
	return gween.New(begin, end, duration, Tween(fn))
}

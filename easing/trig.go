package easing

import (
	"math"

	"github.com/tphakala/go-gamemath"
)

func cos[T gamemath.Float](x T) T  { return T(math.Cos(float64(x))) }
func sin[T gamemath.Float](x T) T  { return T(math.Sin(float64(x))) }
func sqrt[T gamemath.Float](x T) T { return T(math.Sqrt(float64(x))) }
func pow2[T gamemath.Float](x T) T { return T(math.Pow(2, float64(x))) }

// InSine follows a quarter cosine wave.
func InSine[T gamemath.Float](t T) T {
	return -cos(t*halfPi) + 1
}

// OutSine follows a quarter sine wave.
func OutSine[T gamemath.Float](t T) T {
	return sin(t * halfPi)
}

// InOutSine follows half a cosine wave.
func InOutSine[T gamemath.Float](t T) T {
	return -half * (cos(gamemath.Pi*t) - 1)
}

// InExpo starts almost flat and grows as 2^(10(t-1)).
// Times within 1e-4 of zero return exactly 0.
func InExpo[T gamemath.Float](t T) T {
	if near(t, 0) {
		return 0
	}
	return pow2(expoRate * (t - 1))
}

// OutExpo approaches 1 as 1 - 2^(-10t).
// Times within 1e-4 of one return exactly 1.
func OutExpo[T gamemath.Float](t T) T {
	if near(t, 1) {
		return 1
	}
	return -pow2(-expoRate*t) + 1
}

// InOutExpo joins InExpo and OutExpo at the midpoint, snapping both ends.
func InOutExpo[T gamemath.Float](t T) T {
	if near(t, 0) {
		return 0
	}
	if near(t, 1) {
		return 1
	}
	t *= inOutMul
	if t < 1 {
		return half * pow2(expoRate*(t-1))
	}
	t--
	return half * (-pow2(-expoRate*t) + 2)
}

// InCirc follows a quarter circle, starting slow.
func InCirc[T gamemath.Float](t T) T {
	return -(sqrt(1-t*t) - 1)
}

// OutCirc follows a quarter circle, ending slow.
func OutCirc[T gamemath.Float](t T) T {
	return sqrt(1 - (t-1)*(t-1))
}

// InOutCirc joins InCirc and OutCirc at the midpoint.
func InOutCirc[T gamemath.Float](t T) T {
	t *= inOutMul
	if t < 1 {
		return -half * (sqrt(1-t*t) - 1)
	}
	t -= 2
	return half * (sqrt(1-t*t) + 1)
}

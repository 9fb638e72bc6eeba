package gamemath

import "math"

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x > 0 {
		return x
	}
	return -x
}

// Floor rounds x toward negative infinity.
//
// The value is truncated toward zero first and then adjusted by one when x is
// negative and not already integral. Integer inputs are returned unchanged.
// Truncation goes through int64, so float inputs beyond the int64 range do
// not produce meaningful results.
func Floor[T Number](x T) T {
	i := T(int64(x))
	if x < 0 && x != i {
		return i - 1
	}
	return i
}

// Ceil rounds x toward positive infinity using the same truncate-and-adjust
// scheme as Floor.
func Ceil[T Number](x T) T {
	i := T(int64(x))
	if x >= 0 && x != i {
		return i + 1
	}
	return i
}

// Round returns Ceil(x) when the truncated remainder of x is at least one
// half and Floor(x) otherwise.
//
// The remainder is measured from the truncated value, so every negative
// non-integral input rounds down: Round(-1.2) is -2 and Round(-1.5) is -2.
func Round[T Number](x T) T {
	if halfDivisor*(x-T(int64(x))) >= 1 {
		return Ceil(x)
	}
	return Floor(x)
}

// Nearest rounds n to the nearest multiple of x.
func Nearest[T Number](n, x T) T {
	return Round(n/x) * x
}

// NearestFocus rounds n to the nearest multiple of x. It is equivalent to
// Nearest.
func NearestFocus[T Number](n, x T) T {
	return Nearest(n, x)
}

// NearestCeil rounds n up to a multiple of x.
func NearestCeil[T Number](n, x T) T {
	return Ceil(n/x) * x
}

// NearestFloor rounds n down to a multiple of x.
func NearestFloor[T Number](n, x T) T {
	return Floor(n/x) * x
}

// Fract returns the fractional part of x, x - Floor(x).
func Fract[T Float](x T) T {
	return x - Floor(x)
}

// Root returns the n-th root of x computed as x^(1/n).
//
// Negative x with an even n yields NaN, as math.Pow does. Prefer math.Sqrt
// and math.Cbrt for the square and cube roots.
func Root[T Float](x, n T) T {
	return T(math.Pow(float64(x), 1.0/float64(n)))
}

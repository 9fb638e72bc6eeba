package gamemath

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Max returns the largest argument. When values compare equal the first one
// is kept.
func Max[T cmp.Ordered](a, b T, rest ...T) T {
	m := larger(a, b)
	for _, v := range rest {
		m = larger(m, v)
	}
	return m
}

// Min returns the smallest argument. When values compare equal the first one
// is kept.
func Min[T cmp.Ordered](a, b T, rest ...T) T {
	m := smaller(a, b)
	for _, v := range rest {
		m = smaller(m, v)
	}
	return m
}

func larger[T cmp.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

func smaller[T cmp.Ordered](a, b T) T {
	if a > b {
		return b
	}
	return a
}

// Clamp limits x to [lo, hi]. The upper bound is tested first, so when
// lo > hi any x above hi yields hi. Callers must keep lo <= hi.
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	if x > hi {
		return hi
	}
	if lo > x {
		return lo
	}
	return x
}

// Even reports whether x is divisible by two.
func Even[T constraints.Integer](x T) bool {
	return x%halfDivisor == 0
}

// Odd reports whether x is not divisible by two.
func Odd[T constraints.Integer](x T) bool {
	return !Even(x)
}

// IsEven is an alias for Even.
func IsEven[T constraints.Integer](x T) bool {
	return Even(x)
}

// IsOdd is an alias for Odd.
func IsOdd[T constraints.Integer](x T) bool {
	return Odd(x)
}

// Sign returns 1 for positive x, -1 for negative x and 0 otherwise.
func Sign[T Real](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// CloseEnough reports whether a and b differ by at most Epsilon.
func CloseEnough[T Float](a, b T) bool {
	return Abs(a-b) <= T(Epsilon)
}

// InBounds reports whether a and b differ by strictly less than bounds.
func InBounds[T Real](a, b, bounds T) bool {
	return Abs(a-b) < bounds
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo[T constraints.Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// IsInteger reports whether value is within Epsilon of its truncation.
func IsInteger[T Float](value T) bool {
	return CloseEnough(T(int64(value)), value)
}

// HasDecimals reports whether value has a fractional part beyond Epsilon.
func HasDecimals[T Float](value T) bool {
	return !IsInteger(value)
}

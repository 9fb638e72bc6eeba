package easing

import "github.com/tphakala/go-gamemath"

// Linear returns t unchanged.
func Linear[T gamemath.Float](t T) T {
	return t
}

// InQuad accelerates from zero velocity: t².
func InQuad[T gamemath.Float](t T) T {
	return t * t
}

// OutQuad decelerates to zero velocity.
func OutQuad[T gamemath.Float](t T) T {
	return -((t-1)*(t-1) - 1)
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad[T gamemath.Float](t T) T {
	t *= inOutMul
	if t < 1 {
		return half * t * t
	}
	t -= 2
	return -half * (t*t - 2)
}

// InCubic accelerates from zero velocity: t³.
func InCubic[T gamemath.Float](t T) T {
	return t * t * t
}

// OutCubic decelerates to zero velocity.
func OutCubic[T gamemath.Float](t T) T {
	return (t-1)*(t-1)*(t-1) + 1
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic[T gamemath.Float](t T) T {
	t /= half
	if t < 1 {
		return half * t * t * t
	}
	return half * ((t-2)*(t-2)*(t-2) + 2)
}

// InQuart accelerates from zero velocity: t⁴.
func InQuart[T gamemath.Float](t T) T {
	return t * t * t * t
}

// OutQuart decelerates to zero velocity.
func OutQuart[T gamemath.Float](t T) T {
	return -((t-1)*(t-1)*(t-1)*(t-1) - 1)
}

// InOutQuart accelerates until halfway, then decelerates.
func InOutQuart[T gamemath.Float](t T) T {
	t *= inOutMul
	if t < 1 {
		return half * t * t * t * t
	}
	t -= 2
	return -half * (t*t*t*t - 2)
}

// InQuint accelerates from zero velocity: t⁵.
func InQuint[T gamemath.Float](t T) T {
	return t * t * t * t * t
}

// OutQuint decelerates to zero velocity.
func OutQuint[T gamemath.Float](t T) T {
	return (t-1)*(t-1)*(t-1)*(t-1)*(t-1) + 1
}

// InOutQuint accelerates until halfway, then decelerates.
func InOutQuint[T gamemath.Float](t T) T {
	t *= inOutMul
	if t < 1 {
		return half * t * t * t * t * t
	}
	return half * ((t-2)*(t-2)*(t-2)*(t-2)*(t-2) + 2)
}

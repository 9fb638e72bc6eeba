package easing

import "github.com/tphakala/go-gamemath"

// InBack pulls back below zero before accelerating to 1.
func InBack[T gamemath.Float](t T) T {
	return t * t * (backOvershootEdge*t - backOvershoot)
}

// OutBack overshoots past 1 before settling.
func OutBack[T gamemath.Float](t T) T {
	t--
	return t*t*(backOvershootEdge*t+backOvershoot) + 1
}

// InOutBack pulls back at the start and overshoots at the end, using a
// stronger overshoot than InBack and OutBack.
func InOutBack[T gamemath.Float](t T) T {
	s := T(backOvershoot * backInOutScale)
	t *= inOutMul
	if t < 1 {
		return half * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return half * (t*t*((s+1)*t+s) + 2)
}

// InElastic oscillates with growing amplitude before snapping to 1.
func InElastic[T gamemath.Float](t T) T {
	return sin(elasticFrequency*t) * pow2(expoRate*(t-1))
}

// OutElastic snaps toward 1 and oscillates with decaying amplitude.
func OutElastic[T gamemath.Float](t T) T {
	return sin(-elasticFrequency*(t+1))*pow2(-expoRate*t) + 1
}

// InOutElastic joins InElastic and OutElastic at the midpoint.
func InOutElastic[T gamemath.Float](t T) T {
	if t < half {
		return half * sin(elasticFrequency*(2*t)) * pow2(expoRate*((2*t)-1))
	}
	return half * (sin(-elasticFrequency*((2*t-1)+1))*pow2(-expoRate*(2*t-1)) + 2)
}

// InBounce is the piecewise parabola of a ball dropped onto the floor: the
// first segment rises from 0 and three smaller bounces settle at 1.
func InBounce[T gamemath.Float](t T) T {
	switch {
	case t < bounceEdge1:
		return bounceScale * t * t
	case t < bounceEdge2:
		t -= bounceShift1
		return bounceScale*t*t + bounceLift1
	case t < bounceEdge3:
		t -= bounceShift2
		return bounceScale*t*t + bounceLift2
	default:
		t -= bounceShift3
		return bounceScale*t*t + bounceLift3
	}
}

// OutBounce mirrors InBounce in both time and progress: 1 - InBounce(1-t).
func OutBounce[T gamemath.Float](t T) T {
	return 1 - InBounce(1-t)
}

// InOutBounce plays OutBounce over the first half and InBounce over the
// second.
func InOutBounce[T gamemath.Float](t T) T {
	if t < half {
		return half * OutBounce(t*2)
	}
	return half*InBounce(t*2-1) + half
}

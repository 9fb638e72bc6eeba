package easing

import "github.com/tphakala/go-gamemath"

// boundaryEpsilon is the half-width of the open interval the Expo family uses
// to snap t to 0 or 1. It is deliberately looser than gamemath.Epsilon.
const boundaryEpsilon = 1e-4

// Shared curve constants
const (
	halfPi   = gamemath.Pi / 2
	half     = 0.5
	inOutMul = 2 // Time rescale for InOut variants

	// Back overshoot amount and its InOut scaling
	backOvershoot     = 1.70158
	backOvershootEdge = backOvershoot + 1
	backInOutScale    = 1.525

	// Elastic oscillation frequency and exponential decay
	elasticFrequency = 13 * halfPi
	expoRate         = 10

	// Bounce segment boundaries and parabola height, in units of 1/2.75
	bounceDivisor = 2.75
	bounceScale   = 7.5625
	bounceEdge1   = 1 / bounceDivisor
	bounceEdge2   = 2 / bounceDivisor
	bounceEdge3   = 2.5 / bounceDivisor
	bounceShift1  = 1.5 / bounceDivisor
	bounceShift2  = 2.25 / bounceDivisor
	bounceShift3  = 2.625 / bounceDivisor
	bounceLift1   = 0.75
	bounceLift2   = 0.9375
	bounceLift3   = 0.984375
)

// near reports whether x lies in the open interval (y-ε, y+ε) with
// ε = boundaryEpsilon.
func near[T gamemath.Float](x, y T) bool {
	return y-boundaryEpsilon < x && x < y+boundaryEpsilon
}

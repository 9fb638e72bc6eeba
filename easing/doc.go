// Package easing provides closed-form easing curves for animation timing.
//
// Every curve maps a normalized time t in [0, 1] to eased progress. Curves
// start at 0 and end at 1; the Back and Elastic families overshoot in
// between. Inputs are not validated: values outside [0, 1] extrapolate the
// formula.
//
// # Families
//
// Linear has a single identity form. Quad, Cubic, Quart, Quint, Sine, Expo,
// Circ, Back, Elastic and Bounce each provide In, Out and InOut variants.
// InOut variants rescale time to [0, 2], apply the In shape to the first half
// and the Out shape to the second, each contributing half of the range.
//
// The Bounce family is built from one piecewise curve: OutBounce is
// 1 - InBounce(1 - t) and InOutBounce joins the two at t = 0.5.
//
// # Generic and registry forms
//
// The curves are generic over float32 and float64:
//
//	p := easing.InOutCubic(0.25)          // float64
//	q := easing.OutBack(float32(0.75))    // float32
//
// [ByName] looks up a float64 [Func] by its kebab-case name, and [Tween]
// adapts a Func to the github.com/tanema/gween easing convention.
package easing

// Package gamemath provides small generic numeric helpers for games and
// animation code.
//
// All functions are pure and safe for concurrent use. They are generic over
// the Go numeric types through the Number, Real and Float constraints, so the same
// helper serves float32 render code and float64 simulation code.
//
// # Features
//
//   - Angle conversion between degrees and radians
//   - Floor, Ceil and Round by truncate-and-adjust, and rounding to a multiple
//   - Clamp, variadic Max and Min, parity and sign predicates
//   - Lerp, Map, Normalize, Smoothstep and bilinear interpolation
//   - Critically damped smoothing for cameras and followers (SmoothDamp)
//   - Cartesian and spherical coordinate conversion
//
// Easing curves live in the easing subpackage and packed RGBA, HSL and HCV
// conversions in the color subpackage.
//
// # Quick Start
//
//	x := gamemath.Lerp(0.0, 320.0, easing.OutBack(t))
//	x = gamemath.Clamp(x, 0, 320)
//	cam, vel = gamemath.SmoothDamp(cam, x, vel, dt)
//
// # Rounding
//
// Floor, Ceil and Round truncate through int64 and adjust by one. Round
// compares the truncated remainder with one half, so negative non-integral
// values always round down:
//
//	gamemath.Round(2.5)  // 3
//	gamemath.Round(-1.2) // -2
//
// Use math.Round when symmetric rounding is needed.
//
// # Precision
//
// Float inputs outside the int64 range do not round meaningfully. Epsilon
// comparisons (CloseEnough, IsInteger) use a fixed absolute tolerance of
// Epsilon.
package gamemath

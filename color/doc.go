// Package color converts between packed ARGB integers, separate channels,
// grayscale luminance and the HSL/HCV color models.
//
// Packed colors use the layout 0xAARRGGBB. The HSL and HCV conversions work
// on normalized channels in [0, 1] and never report errors: achromatic
// inputs are handled by a 1e-10 guard in the divisors, and anything else
// propagates as IEEE-754 NaN or infinity.
package color

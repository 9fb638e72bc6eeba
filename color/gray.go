package color

import "github.com/tphakala/go-gamemath"

// Grayscale returns the BT.709 luminance of a color. The weights favor green
// and discount blue to match the eye's sensitivity. Channels may use any
// range; the result is in the same range.
func Grayscale[T gamemath.Float](r, g, b T) T {
	// Conversions keep each product rounded so the sum does not depend on
	// whether the platform fuses multiply-add.
	return T(r*LumaRed) + T(g*LumaGreen) + T(b*LumaBlue)
}

// GrayscaleInt returns the luminance of 8-bit channels. The channels are
// normalized to [0, 1], weighted in float64, scaled back to [0, 255] and
// truncated, so (5, 5, 5) yields 4.
func GrayscaleInt(r, g, b int) int {
	l := Grayscale(float64(r)/channelMax, float64(g)/channelMax, float64(b)/channelMax)
	return int(l * channelMax)
}

package color

import "github.com/tphakala/go-gamemath"

// HueToRGB returns the fully saturated color for hue in [0, 1]. Each
// channel is a triangular wave of the hue clamped to [0, 1].
func HueToRGB[T gamemath.Float](hue T) (r, g, b T) {
	h := hue * hueSextants
	r = gamemath.Abs(h-hueCenter) - 1
	g = hueWaveHeight - gamemath.Abs(h-hueGreenPeak)
	b = hueWaveHeight - gamemath.Abs(h-hueBluePeak)
	return gamemath.Clamp(r, 0, 1), gamemath.Clamp(g, 0, 1), gamemath.Clamp(b, 0, 1)
}

// HSLToRGB converts hue, saturation and lightness in [0, 1] to RGB in
// [0, 1].
func HSLToRGB[T gamemath.Float](h, s, l T) (r, g, b T) {
	r, g, b = HueToRGB(h)
	c := (1 - gamemath.Abs(2*l-1)) * s
	return (r-half)*c + l, (g-half)*c + l, (b-half)*c + l
}

// RGBToHSL converts RGB in [0, 1] to hue, saturation and lightness in
// [0, 1]. Saturation of black and white is 0.
func RGBToHSL[T gamemath.Float](r, g, b T) (h, s, l T) {
	h, c, v := RGBToHCV(r, g, b)
	l = v - c*half
	s = c / (1 - gamemath.Abs(l*2-1) + hcvEpsilon)
	return h, s, l
}

// RGBToHCV converts RGB in [0, 1] to hue, chroma and value.
//
// The dominant channel is found with two conditional swaps rather than six
// explicit cases. The first orders green and blue and picks the matching
// sector offset; the second compares red against the larger of the two.
// Hue of an achromatic color is 0.
func RGBToHCV[T gamemath.Float](r, g, b T) (h, c, v T) {
	var x, y, z, w T
	if g < b {
		x, y, z, w = b, g, sectorWrap, sectorBlue
	} else {
		x, y, z, w = g, b, sectorRed, sectorGreen
	}

	var x2, y2, z2, w2 T
	if r < x {
		x2, y2, z2, w2 = x, y, w, r
	} else {
		x2, y2, z2, w2 = r, y, z, x
	}

	c = x2 - gamemath.Min(w2, y2)
	h = gamemath.Abs((w2-y2)/(hueSextants*c+hcvEpsilon) + z2)
	return h, c, x2
}

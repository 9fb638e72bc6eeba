package color

// Channel layout of a packed 0xAARRGGBB color
const (
	channelMask = 0xFF
	alphaShift  = 24
	redShift    = 16
	greenShift  = 8

	// OpaqueAlpha is the alpha used by RGBToInt.
	OpaqueAlpha = 255

	channelMax = 255.0
)

// ITU-R BT.709 luminance weights
const (
	LumaRed   = 0.2126
	LumaGreen = 0.7152
	LumaBlue  = 0.0722
)

// hcvEpsilon keeps the hue and saturation divisors away from zero for
// achromatic colors.
const hcvEpsilon = 1e-10

// Hue sector offsets used by RGBToHCV
const (
	sectorRed     = 0.0
	sectorWrap    = -1.0
	sectorBlue    = 2.0 / 3.0
	sectorGreen   = -1.0 / 3.0
	hueSextants   = 6.0
	hueCenter     = 3.0
	hueGreenPeak  = 2.0
	hueBluePeak   = 4.0
	hueWaveHeight = 2.0
	half          = 0.5
)

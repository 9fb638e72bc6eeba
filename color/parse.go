package color

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex color")

// Hex string lengths accepted by ParseHex
const (
	hexShortRGB  = 3
	hexShortRGBA = 4
	hexRGB       = 6
	hexRGBA      = 8

	nibbleBits   = 4
	nibbleRepeat = 17 // 0xF * 17 = 0xFF
)

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#', into a packed 0xAARRGGBB color. Forms without alpha are
// opaque.
func ParseHex(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	digits := make([]int, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q has non-hex digit %q", ErrInvalidHex, s, hex[i])
		}
		digits[i] = d
	}

	pair := func(i int) int { return digits[i]<<nibbleBits | digits[i+1] }

	switch len(hex) {
	case hexShortRGB:
		return RGBToInt(digits[0]*nibbleRepeat, digits[1]*nibbleRepeat, digits[2]*nibbleRepeat), nil
	case hexShortRGBA:
		return RGBAToInt(digits[0]*nibbleRepeat, digits[1]*nibbleRepeat,
			digits[2]*nibbleRepeat, digits[3]*nibbleRepeat), nil
	case hexRGB:
		return RGBToInt(pair(0), pair(2), pair(4)), nil
	case hexRGBA:
		return RGBAToInt(pair(0), pair(2), pair(4), pair(6)), nil
	default:
		return 0, fmt.Errorf("%w: %q has %d digits", ErrInvalidHex, s, len(hex))
	}
}

func hexDigit(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Hex formats a packed color as "#RRGGBBAA".
func Hex(packed uint32) string {
	c := IntToRGB(packed)
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Named returns the packed color for an SVG 1.1 color keyword such as
// "cornflowerblue". Lookup ignores case.
func Named(name string) (uint32, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, false
	}
	return RGBAToInt(int(c.R), int(c.G), int(c.B), int(c.A)), true
}

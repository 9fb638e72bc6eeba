package color

import "fmt"

// Channels holds the unpacked components of a packed color, each in
// [0, 255].
type Channels struct {
	R, G, B, A int
}

// IntToRGB unpacks a 0xAARRGGBB color. All four channels are populated;
// callers that need only some of them ignore the rest.
func IntToRGB(packed uint32) Channels {
	return Channels{
		A: int(packed>>alphaShift) & channelMask,
		R: int(packed>>redShift) & channelMask,
		G: int(packed>>greenShift) & channelMask,
		B: int(packed) & channelMask,
	}
}

// RGBToInt packs an opaque color. Each channel is masked to its low 8 bits.
func RGBToInt(r, g, b int) uint32 {
	return RGBAToInt(r, g, b, OpaqueAlpha)
}

// RGBAToInt packs four channels into 0xAARRGGBB. Each channel is masked to
// its low 8 bits.
func RGBAToInt(r, g, b, a int) uint32 {
	return uint32(a&channelMask)<<alphaShift |
		uint32(r&channelMask)<<redShift |
		uint32(g&channelMask)<<greenShift |
		uint32(b&channelMask)
}

// Packed returns c packed as 0xAARRGGBB.
func (c Channels) Packed() uint32 {
	return RGBAToInt(c.R, c.G, c.B, c.A)
}

// String formats c as rgba(r, g, b, a).
func (c Channels) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

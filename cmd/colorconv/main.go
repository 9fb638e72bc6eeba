// Command colorconv prints a color in every representation the color
// package supports.
//
// Usage:
//
//	colorconv '#ff8000'
//	colorconv 0xFF336699 cornflowerblue
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tphakala/go-gamemath/color"
)

const channelMax = 255.0

var errUnrecognizedColor = errors.New("unrecognized color")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s color [color...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A color is #hex (3, 4, 6 or 8 digits), a packed integer such as 0xFF336699, or an SVG name.\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return fmt.Errorf("no colors given")
	}

	for i, arg := range flag.Args() {
		packed, err := parseColor(arg)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		describe(os.Stdout, arg, packed)
	}
	return nil
}

// parseColor accepts an SVG color name, a '#'-prefixed hex string or a
// packed integer in any base strconv understands. Bare hex digits such as
// "ff8000" are tried as hex last.
func parseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if packed, ok := color.Named(s); ok {
		return packed, nil
	}
	if strings.HasPrefix(s, "#") {
		return color.ParseHex(s)
	}
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(v), nil
	}
	if packed, err := color.ParseHex(s); err == nil {
		return packed, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnrecognizedColor, s)
}

// describe writes the packed, channel, grayscale, HSL and HCV forms of packed.
func describe(w io.Writer, label string, packed uint32) {
	c := color.IntToRGB(packed)
	r, g, b := float64(c.R)/channelMax, float64(c.G)/channelMax, float64(c.B)/channelMax
	h, s, l := color.RGBToHSL(r, g, b)
	hh, cc, vv := color.RGBToHCV(r, g, b)

	fmt.Fprintf(w, "%s\n", label)
	fmt.Fprintf(w, "  packed:    0x%08X (%d)\n", packed, packed)
	fmt.Fprintf(w, "  hex:       %s\n", color.Hex(packed))
	fmt.Fprintf(w, "  channels:  %s\n", c)
	fmt.Fprintf(w, "  grayscale: %d\n", color.GrayscaleInt(c.R, c.G, c.B))
	fmt.Fprintf(w, "  hsl:       %.4f %.4f %.4f\n", h, s, l)
	fmt.Fprintf(w, "  hcv:       %.4f %.4f %.4f\n", hh, cc, vv)
}

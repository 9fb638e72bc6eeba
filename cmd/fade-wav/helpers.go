package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-gamemath"
	"github.com/tphakala/go-gamemath/easing"
	"github.com/tphakala/go-gamemath/internal/curve"
)

var (
	errUnknownCurve        = errors.New("unknown curve")
	errUnsupportedBitDepth = errors.New("unsupported bit depth")
)

// wavInput holds a fully decoded PCM file.
type wavInput struct {
	buffer   *audio.IntBuffer
	rate     int
	channels int
	bitDepth int
}

// readWAV decodes the whole PCM payload of the file at path.
func readWAV(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	bitDepth := int(decoder.BitDepth)
	if _, _, err := sampleLimits(bitDepth); err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode PCM data: %w", err)
	}

	format := decoder.Format()
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			format.SampleRate, format.NumChannels, bitDepth, buf.NumFrames())
	}

	return &wavInput{
		buffer:   buf,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
	}, nil
}

// writeWAV encodes buf as PCM at the given bit depth.
func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return f.Close()
}

// sampleLimits returns the signed integer range of a PCM bit depth.
func sampleLimits(bitDepth int) (lo, hi int, err error) {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		hi = 1<<(bitDepth-1) - 1
		return -hi - 1, hi, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d-bit (want 16, 24 or 32)", errUnsupportedBitDepth, bitDepth)
	}
}

// envelope is a gain curve built from a fade-in and a fade-out table.
type envelope struct {
	fadeIn    *curve.Table
	fadeOut   *curve.Table
	inFrames  int
	outFrames int
}

// newEnvelope samples the named curves. A zero frame count disables that
// side of the fade.
func newEnvelope(inCurve, outCurve string, inFrames, outFrames int) (*envelope, error) {
	in, err := sampleCurve(inCurve)
	if err != nil {
		return nil, err
	}
	out, err := sampleCurve(outCurve)
	if err != nil {
		return nil, err
	}
	return &envelope{
		fadeIn:    in,
		fadeOut:   out,
		inFrames:  max(inFrames, 0),
		outFrames: max(outFrames, 0),
	}, nil
}

func sampleCurve(name string) (*curve.Table, error) {
	fn, ok := easing.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownCurve, name)
	}
	return curve.Sample(fn, envelopeSteps)
}

// gain returns the multiplier for frame out of total frames. The fade-in
// rises along its curve from 0, the fade-out falls to 0 along its curve, and
// the two multiply where they overlap.
func (e *envelope) gain(frame, total int) float64 {
	g := 1.0
	if frame < e.inFrames {
		g *= e.fadeIn.At(float64(frame) / float64(e.inFrames))
	}
	if start := total - e.outFrames; frame >= start && e.outFrames > 0 {
		g *= 1 - e.fadeOut.At(float64(frame-start+1)/float64(e.outFrames))
	}
	return g
}

// applyFade scales every frame of buf by the envelope in place and clamps
// the results to the bit-depth range. Curves that overshoot can push samples
// past full scale.
func applyFade(buf *audio.IntBuffer, env *envelope, bitDepth int) (clipped int, err error) {
	lo, hi, err := sampleLimits(bitDepth)
	if err != nil {
		return 0, err
	}

	channels := buf.Format.NumChannels
	frames := buf.NumFrames()
	for frame := range frames {
		g := env.gain(frame, frames)
		if g == 1 {
			continue
		}
		for ch := range channels {
			i := frame*channels + ch
			v := int(math.Round(float64(buf.Data[i]) * g))
			if v < lo || v > hi {
				clipped++
			}
			buf.Data[i] = gamemath.Clamp(v, lo, hi)
		}
	}
	return clipped, nil
}

// Command fade-wav applies easing-shaped fade-in and fade-out envelopes to a
// PCM WAV file.
//
// Usage:
//
//	fade-wav -fade-in 0.25 -fade-out 2 input.wav output.wav
//	fade-wav -in out-expo -out in-out-sine -v input.wav output.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inCurve := flag.String("in", defaultFadeInCurve, "Fade-in curve name")
	outCurve := flag.String("out", defaultFadeOutCurve, "Fade-out curve name")
	fadeIn := flag.Float64("fade-in", defaultFadeSeconds, "Fade-in length in seconds (0 disables)")
	fadeOut := flag.Float64("fade-out", defaultFadeSeconds, "Fade-out length in seconds (0 disables)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	inputPath, outputPath := args[0], args[1]

	input, err := readWAV(inputPath, *verbose)
	if err != nil {
		return err
	}

	inFrames := int(*fadeIn * float64(input.rate))
	outFrames := int(*fadeOut * float64(input.rate))
	env, err := newEnvelope(*inCurve, *outCurve, inFrames, outFrames)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Fade in: %s over %d frames", *inCurve, inFrames)
		log.Printf("Fade out: %s over %d frames", *outCurve, outFrames)
	}

	clipped, err := applyFade(input.buffer, env, input.bitDepth)
	if err != nil {
		return err
	}
	if clipped > 0 {
		log.Printf("Warning: %d samples clipped by envelope overshoot", clipped)
	}

	if err := writeWAV(outputPath, input.buffer, input.bitDepth); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Wrote %s", outputPath)
	}
	return nil
}

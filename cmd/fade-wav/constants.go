package main

// Default command-line flag values
const (
	defaultFadeInCurve  = "out-quad"
	defaultFadeOutCurve = "in-quad"
	defaultFadeSeconds  = 0.5
	minRequiredArgs     = 2
)

// Envelope lookup
const (
	envelopeSteps = 1024 // Intervals in each sampled fade curve
)

// Supported PCM formats
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	wavFormatPCM    = 1
)

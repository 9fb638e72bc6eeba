package main

// Default command-line flag values
const (
	defaultCurve = "in-out-quad"
	defaultSteps = 10
)

// Table layout
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
	tabPadChar  = ' '
)

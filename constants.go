package gamemath

// Library identification
const (
	Name    = "GameMath"
	Version = "1.0.0"

	// NameVersion is Name and Version joined for banners and logs.
	NameVersion = Name + " " + Version
)

// Angle constants. Pi is fixed to the same 17 significant digits for every
// element type so float32 and float64 callers see consistent results.
const (
	Pi        = 3.1415926535897932
	TwoPi     = Pi * 2.0
	Tau       = Pi * 2.0
	PiSquared = Pi * Pi
	HalfPi    = Pi / 2.0
	ThirdPi   = Pi / 3.0
	QuarterPi = Pi / 4.0

	Deg2Rad = Pi / 180.0
	Rad2Deg = 180.0 / Pi
)

// Numeric constants
const (
	// Epsilon is the tolerance used by CloseEnough and IsInteger.
	Epsilon = 1e-6

	// E is Euler's number.
	E = 2.7182818284590452

	// DefaultSpringiness is the spring constant used by SmoothDamp.
	DefaultSpringiness = 5.0
)

// Rounding and interpolation helpers
const (
	halfDivisor    = 2   // Division by 2 (round-half threshold, midpoint tests)
	degreesPerHalf = 180 // Degrees in a half turn
	hermiteA       = 3.0 // Cubic Hermite t²(3 - 2t) coefficients
	hermiteB       = 2.0
	dampingFactor  = 2.0 // Critical damping: 2·√k
)

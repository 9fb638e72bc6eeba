package gamemath

// Radians converts an angle in degrees to radians.
func Radians[T Float](degrees T) T {
	return degrees * T(Pi) / degreesPerHalf
}

// Degrees converts an angle in radians to degrees.
func Degrees[T Float](radians T) T {
	return radians * degreesPerHalf / T(Pi)
}

// Rad is shorthand for Radians.
func Rad[T Float](degrees T) T {
	return Radians(degrees)
}

// Deg is shorthand for Degrees.
func Deg[T Float](radians T) T {
	return Degrees(radians)
}

package gamemath

import "math"

// Lerp interpolates linearly between from and to.
//
// The (1-t)·from + t·to form is used because it returns exactly to at t = 1.
func Lerp[T Float](from, to, t T) T {
	return (1-t)*from + t*to
}

// Map re-ranges value from [min1, max1] to [min2, max2].
// A zero-width source range divides by zero.
func Map[T Float](value, min1, max1, min2, max2 T) T {
	return min2 + (max2-min2)*((value-min1)/(max1-min1))
}

// Normalize returns the position of value within [from, to], the inverse of
// Lerp. A zero-width range divides by zero.
func Normalize[T Float](from, to, value T) T {
	return (value - from) / (to - from)
}

// Smoothstep performs cubic Hermite interpolation between edge0 and edge1,
// matching the GLSL built-in of the same name.
func Smoothstep[T Float](edge0, edge1, x T) T {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (hermiteA - hermiteB*t)
}

// Bilerp interpolates bilinearly across a unit square. p00, p10, p01 and p11
// are the corner values at (0,0), (1,0), (0,1) and (1,1); u and v are the
// fractional coordinates.
func Bilerp[T Float](p00, p10, p01, p11, u, v T) T {
	return p00*((1-u)*(1-v)) +
		p10*(u*(1-v)) +
		p01*(v*(1-u)) +
		p11*(u*v)
}

// SmoothDamp advances a critically damped spring by one time step using
// DefaultSpringiness. It returns the new position and velocity.
func SmoothDamp[T Float](current, target, velocity, timeStep T) (position, newVelocity T) {
	return SmoothDampWith(current, target, velocity, timeStep, DefaultSpringiness)
}

// SmoothDampWith advances a critically damped spring by one explicit Euler
// step:
//
//	force    = (target - current)·k - velocity·2·√k
//	velocity = velocity + force·timeStep
//	position = current + velocity·timeStep
func SmoothDampWith[T Float](current, target, velocity, timeStep, springiness T) (position, newVelocity T) {
	springForce := (target - current) * springiness
	dampingForce := -velocity * dampingFactor * T(math.Sqrt(float64(springiness)))
	force := springForce + dampingForce

	newVelocity = velocity + force*timeStep
	return current + newVelocity*timeStep, newVelocity
}

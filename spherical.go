package gamemath

import "math"

// CartesianToSpherical converts a point to spherical coordinates. All angles
// are in radians:
//
//   - rho is the distance from the origin O to the point P
//   - phi is the angle between OP and the XZ plane
//   - theta is the angle between the X axis and OP projected onto the XZ plane
//
// The origin has no direction, so phi is NaN when rho is zero.
func CartesianToSpherical[T Float](x, y, z T) (rho, phi, theta T) {
	rho = T(math.Sqrt(float64(x*x + y*y + z*z)))
	phi = T(math.Asin(float64(y / rho)))
	theta = T(math.Atan2(float64(z), float64(x)))
	return rho, phi, theta
}

// SphericalToCartesian is the inverse of CartesianToSpherical.
func SphericalToCartesian[T Float](rho, phi, theta T) (x, y, z T) {
	r := float64(rho)
	x = T(r * math.Cos(float64(phi)) * math.Cos(float64(theta)))
	y = T(r * math.Sin(float64(phi)))
	z = T(r * math.Cos(float64(phi)) * math.Sin(float64(theta)))
	return x, y, z
}

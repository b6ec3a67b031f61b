package linalg

import "math"

// alignX returns the sine and cosine of the rotation about X that brings the
// direction (_, y, z) into the XZ plane with a non-negative z. A direction
// already on the X axis needs no alignment.
func alignX(y, z float64) (s, c, d float64) {
	d = math.Sqrt(y*y + z*z)
	if d == 0 {
		return 0, 1, 0
	}
	return y / d, z / d, d
}

// aboutAlignedAxis rotates by (sinT, cosT) about the axis described by the
// alignment angles: Rx^-1 * Ry * Rz * Ry^-1 * Rx. The inverse helpers are
// built directly from the negated sine.
func aboutAlignedAxis(sx, cx, sy, cy, sinT, cosT float64) Mat4 {
	rx := rotX(sx, cx)
	rxi := rotX(-sx, cx)
	ry := rotY(sy, cy)
	ryi := rotY(-sy, cy)
	rz := rotZ(sinT, cosT)
	return rxi.Mul(ry).Mul(rz).Mul(ryi).Mul(rx)
}

// RotationAboutAxis returns a right-handed rotation by angle (radians) about
// axis through the origin. Only the xyz part of axis is used. A zero-length
// axis yields the identity.
func RotationAboutAxis(axis Vec4, angle float64) Mat4 {
	n := norm3(axis)
	if n == 0 {
		return Identity()
	}
	ax, ay, az := axis[0]/n, axis[1]/n, axis[2]/n

	sx, cx, d := alignX(ay, az)
	s, c := math.Sincos(angle)
	return aboutAlignedAxis(sx, cx, ax, d, s, c)
}

// RotationBetween returns the rotation about the origin taking the direction
// of a onto the direction of b. Only the xyz parts are used.
//
// When a and b are parallel or antiparallel their cross product vanishes and
// the identity is returned in both cases, so an antiparallel pair is NOT
// rotated by 180 degrees.
func RotationBetween(a, b Vec4) Mat4 {
	u := a.Cross(b)

	magu := norm3(u)
	if magu == 0 {
		return Identity()
	}
	maga := norm3(a)
	magb := norm3(b)
	magab := maga * magb

	sx, cx, d := alignX(u[1], u[2])
	sy := u[0] / magu
	cy := d / magu

	// |a x b| = |a||b| sin(theta) for theta in [0, pi]
	cosT := dot3(a, b) / magab
	sinT := magu / magab

	return aboutAlignedAxis(sx, cx, sy, cy, sinT, cosT)
}

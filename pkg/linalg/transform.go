package linalg

import "math"

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix translating by (dx, dy, dz).
func Translation(dx, dy, dz float64) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{dx, dy, dz, 1},
	}
}

// Scale returns a diagonal scale matrix.
func Scale(sx, sy, sz float64) Mat4 {
	return Mat4{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation about the X axis.
// angle is in radians.
func RotationX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return rotX(s, c)
}

// RotationY returns a rotation about the Y axis.
// angle is in radians.
func RotationY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return rotY(s, c)
}

// RotationZ returns a rotation about the Z axis.
// angle is in radians.
func RotationZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return rotZ(s, c)
}

func rotX(s, c float64) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func rotY(s, c float64) Mat4 {
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func rotZ(s, c float64) Mat4 {
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

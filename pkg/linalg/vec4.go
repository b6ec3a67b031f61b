// Package linalg provides homogeneous 4-component vectors and 4x4 matrices
// for 3D transforms. All values are immutable: every operation returns a new
// value and never modifies its receiver or arguments.
package linalg

import (
	"fmt"
	"math"
	"strings"
)

// Vec4 is a homogeneous vector (x, y, z, w).
// w=1 denotes a point, w=0 a direction.
type Vec4 [4]float64

// NewVec4 returns the vector (x, y, z, w).
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// FromPoints returns dest - source with w forced to 1.
func FromPoints(source, dest Vec4) Vec4 {
	return Vec4{dest[0] - source[0], dest[1] - source[1], dest[2] - source[2], 1}
}

// X returns the x component.
func (v Vec4) X() float64 { return v[0] }

// Y returns the y component.
func (v Vec4) Y() float64 { return v[1] }

// Z returns the z component.
func (v Vec4) Z() float64 { return v[2] }

// W returns the w component.
func (v Vec4) W() float64 { return v[3] }

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Scale returns v * s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Magnitude returns the Euclidean norm over all four components.
func (v Vec4) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize divides every component by the magnitude.
// A zero vector yields NaN components; callers must check first.
func (v Vec4) Normalize() Vec4 {
	m := v.Magnitude()
	return Vec4{v[0] / m, v[1] / m, v[2] / m, v[3] / m}
}

// Dot returns the sum of pairwise products over all four components.
func (v Vec4) Dot(other Vec4) float64 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// Cross returns the 3D cross product of the xyz parts. The result is a
// direction (w=0).
func (v Vec4) Cross(other Vec4) Vec4 {
	return Vec4{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
		0,
	}
}

// AngleTo returns the angle in radians between v and other, using the full
// 4-component dot product and magnitudes. A non-zero w (two points, say)
// perturbs the result; zero w first for a pure 3D angle.
func (v Vec4) AngleTo(other Vec4) float64 {
	return math.Acos(v.Dot(other) / (v.Magnitude() * other.Magnitude()))
}

// String formats the vector as "[ x y z w ]" with four decimals.
func (v Vec4) String() string {
	var b strings.Builder
	b.WriteString("[")
	for _, c := range v {
		fmt.Fprintf(&b, " %.4f", c)
	}
	b.WriteString(" ]")
	return b.String()
}

// dot3 and norm3 ignore w.
func dot3(a, b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm3(v Vec4) float64 {
	return math.Sqrt(dot3(v, v))
}

// Package shapes tessellates the solids shown by the viewer into triangle
// lists of homogeneous points (w=1), wound counter-clockwise when seen from
// outside.
package shapes

import (
	"math"

	"github.com/Faultbox/globe/pkg/linalg"
)

func point(x, y, z float64) linalg.Vec4 {
	return linalg.NewVec4(x, y, z, 1)
}

// Cube returns an axis-aligned cube centred at (x, y, z) with side l.
func Cube(x, y, z, l float64) []linalg.Vec4 {
	h := 0.5 * l
	p := func(dx, dy, dz float64) linalg.Vec4 {
		return point(x+dx*h, y+dy*h, z+dz*h)
	}

	return []linalg.Vec4{
		// top
		p(-1, 1, 1), p(1, 1, -1), p(-1, 1, -1),
		p(-1, 1, 1), p(1, 1, 1), p(1, 1, -1),
		// bottom
		p(-1, -1, -1), p(1, -1, -1), p(-1, -1, 1),
		p(1, -1, -1), p(1, -1, 1), p(-1, -1, 1),
		// left
		p(-1, -1, 1), p(-1, 1, 1), p(-1, 1, -1),
		p(-1, 1, -1), p(-1, -1, -1), p(-1, -1, 1),
		// right
		p(1, 1, -1), p(1, 1, 1), p(1, -1, 1),
		p(1, -1, 1), p(1, -1, -1), p(1, 1, -1),
		// near
		p(1, 1, 1), p(-1, 1, 1), p(-1, -1, 1),
		p(-1, -1, 1), p(1, -1, 1), p(1, 1, 1),
		// far
		p(-1, -1, -1), p(-1, 1, -1), p(1, 1, -1),
		p(1, 1, -1), p(1, -1, -1), p(-1, -1, -1),
	}
}

// Cone returns a cone whose base is centred at (x, y, z) with radius r and
// apex h above it. s is the number of segments around the base.
func Cone(x, y, z, r, h float64, s int) []linalg.Vec4 {
	verts := make([]linalg.Vec4, 0, 6*s)
	inc := 2 * math.Pi / float64(s)
	apex := point(x, y+h, z)
	center := point(x, y, z)

	for i := 0; i < s; i++ {
		t := float64(i) * inc
		base1 := point(x+math.Cos(t)*r, y, z+math.Sin(t)*r)
		base2 := point(x+math.Cos(t+inc)*r, y, z+math.Sin(t+inc)*r)

		verts = append(verts,
			base1, apex, base2, // side
			base2, center, base1, // base
		)
	}
	return verts
}

// Cylinder returns a capped cylinder whose base is centred at (x, y, z).
func Cylinder(x, y, z, r, h float64, s int) []linalg.Vec4 {
	verts := make([]linalg.Vec4, 0, 12*s)
	inc := 2 * math.Pi / float64(s)
	bottom := point(x, y, z)
	top := point(x, y+h, z)

	for i := 0; i < s; i++ {
		t := float64(i) * inc
		c1, s1 := math.Cos(t)*r, math.Sin(t)*r
		c2, s2 := math.Cos(t+inc)*r, math.Sin(t+inc)*r

		base1 := point(x+c1, y, z+s1)
		base2 := point(x+c2, y, z+s2)
		top1 := point(x+c1, y+h, z+s1)
		top2 := point(x+c2, y+h, z+s2)

		verts = append(verts,
			base1, top1, base2,
			top1, top2, base2,
			base2, bottom, base1,
			top1, top, top2,
		)
	}
	return verts
}

// Sphere returns a sphere centred at (x, y, z) with radius r.
// The polar sweep runs a full turn, so every band is emitted twice.
func Sphere(x, y, z, r float64, s int) []linalg.Vec4 {
	verts := make([]linalg.Vec4, 0, 6*s*s)
	inc := 2 * math.Pi / float64(s)

	for i := 0; i < s; i++ {
		phi := -math.Pi + float64(i)*inc
		sinp, cosp := math.Sincos(phi)
		sinpi, cospi := math.Sincos(phi + inc)

		for j := 0; j < s; j++ {
			t := float64(j) * inc
			sint, cost := math.Sincos(t)
			sinti, costi := math.Sincos(t + inc)

			base1 := point(x+r*sinp*cost, y+r*cosp, z+r*sinp*sint)
			base2 := point(x+r*sinp*costi, y+r*cosp, z+r*sinp*sinti)
			top1 := point(x+r*sinpi*cost, y+r*cospi, z+r*sinpi*sint)
			top2 := point(x+r*sinpi*costi, y+r*cospi, z+r*sinpi*sinti)

			verts = append(verts,
				base2, top1, base1,
				base2, top2, top1,
			)
		}
	}
	return verts
}

// Torus returns a torus centred at (x, y, z) lying in the XZ plane. ri is the
// distance from the centre to the tube centre, ro the tube radius.
func Torus(x, y, z, ri, ro float64, s int) []linalg.Vec4 {
	verts := make([]linalg.Vec4, 0, 6*s*s)
	inc := 2 * math.Pi / float64(s)

	for i := 0; i < s; i++ {
		t := float64(i) * inc
		sint, cost := math.Sincos(t)
		sinti, costi := math.Sincos(t + inc)

		for j := 0; j < s; j++ {
			phi := float64(j) * inc
			sinp, cosp := math.Sincos(phi)
			sinpi, cospi := math.Sincos(phi + inc)

			a1 := point(x+(ri+ro*cosp)*cost, y+ro*sinp, z+(ri+ro*cosp)*sint)
			b1 := point(x+(ri+ro*cospi)*cost, y+ro*sinpi, z+(ri+ro*cospi)*sint)
			a2 := point(x+(ri+ro*cosp)*costi, y+ro*sinp, z+(ri+ro*cosp)*sinti)
			b2 := point(x+(ri+ro*cospi)*costi, y+ro*sinpi, z+(ri+ro*cospi)*sinti)

			verts = append(verts,
				b2, a2, a1,
				b2, a1, b1,
			)
		}
	}
	return verts
}

package shapes

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Faultbox/globe/pkg/linalg"
)

// outward reports whether every triangle's normal points away from center.
func outward(verts []linalg.Vec4, center linalg.Vec4) bool {
	for i := 0; i+2 < len(verts); i += 3 {
		a, b, c := verts[i], verts[i+1], verts[i+2]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		// n has w=0, so the w of the offset does not count
		if n.Dot(linalg.FromPoints(center, centroid)) <= 0 {
			return false
		}
	}
	return true
}

func allPoints(t *testing.T, verts []linalg.Vec4) {
	t.Helper()
	for i, v := range verts {
		if v.W() != 1 {
			t.Fatalf("vertex %d = %v, want w=1", i, v)
		}
	}
}

func TestVertexCounts(t *testing.T) {
	tests := []struct {
		name  string
		verts []linalg.Vec4
		want  int
	}{
		{"cube", Cube(0, 0, 0, 1), 36},
		{"cone", Cone(0, -0.5, 0, 0.5, 1, 22), 6 * 22},
		{"cylinder", Cylinder(0, -0.5, 0, 0.5, 1, 22), 12 * 22},
		{"sphere", Sphere(0, 0, 0, 1, 22), 6 * 22 * 22},
		{"torus", Torus(0, 0, 0, 0.7, 0.3, 11), 6 * 11 * 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.verts) != tt.want {
				t.Errorf("len = %d, want %d", len(tt.verts), tt.want)
			}
			if len(tt.verts)%3 != 0 {
				t.Errorf("len %d is not a whole number of triangles", len(tt.verts))
			}
			allPoints(t, tt.verts)
		})
	}
}

func TestWinding(t *testing.T) {
	tests := []struct {
		name   string
		verts  []linalg.Vec4
		center linalg.Vec4
	}{
		{"cube", Cube(0, 0, 0, 1), linalg.NewVec4(0, 0, 0, 1)},
		{"offset cube", Cube(3, -2, 1, 2), linalg.NewVec4(3, -2, 1, 1)},
		{"cone", Cone(0, -0.5, 0, 0.5, 1, 22), linalg.NewVec4(0, -0.25, 0, 1)},
		{"cylinder", Cylinder(0, -0.5, 0, 0.5, 1, 22), linalg.NewVec4(0, 0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !outward(tt.verts, tt.center) {
				t.Error("found a triangle facing inward")
			}
		})
	}
}

func TestCubeBounds(t *testing.T) {
	for _, v := range Cube(1, 2, 3, 4) {
		if math.Abs(v.X()-1) != 2 || math.Abs(v.Y()-2) != 2 || math.Abs(v.Z()-3) != 2 {
			t.Fatalf("vertex %v is not a corner of the cube", v)
		}
	}
}

func TestSphereRadius(t *testing.T) {
	center := linalg.NewVec4(1, 2, 3, 1)
	for _, v := range Sphere(1, 2, 3, 2, 12) {
		d := linalg.FromPoints(center, v)
		if r := math.Sqrt(d.X()*d.X() + d.Y()*d.Y() + d.Z()*d.Z()); math.Abs(r-2) > 1e-12 {
			t.Fatalf("vertex %v at distance %v, want 2", v, r)
		}
	}
}

func TestTorusTube(t *testing.T) {
	const ri, ro = 0.7, 0.3
	for _, v := range Torus(0, 0, 0, ri, ro, 11) {
		ring := math.Hypot(v.X(), v.Z()) - ri
		if d := math.Hypot(ring, v.Y()); math.Abs(d-ro) > 1e-12 {
			t.Fatalf("vertex %v at distance %v from the tube centre, want %v", v, d, ro)
		}
	}
}

func TestColors(t *testing.T) {
	colors := Colors(10, rand.New(rand.NewSource(1)))
	if len(colors) != 30 {
		t.Fatalf("len = %d, want 30", len(colors))
	}
	for i := 0; i < len(colors); i += 3 {
		c := colors[i]
		if colors[i+1] != c || colors[i+2] != c {
			t.Errorf("triangle %d has mixed colours", i/3)
		}
		if c.X() < 0.7 || c.X() > 1 || c.Y() < 0.8 || c.Y() > 1 || c.Z() < 0.5 || c.Z() > 1 || c.W() != 1 {
			t.Errorf("colour %v out of range", c)
		}
	}
}

func TestCatalog(t *testing.T) {
	c := NewCatalog(22, 11, rand.New(rand.NewSource(1)))

	if len(c.Colors) != len(c.Positions) {
		t.Errorf("colours = %d, positions = %d", len(c.Colors), len(c.Positions))
	}

	next := 0
	for k := KindCube; k <= KindTorus; k++ {
		r := c.Range(k)
		if r.First != next {
			t.Errorf("%v starts at %d, want %d", k, r.First, next)
		}
		if r.Count == 0 {
			t.Errorf("%v is empty", k)
		}
		next += r.Count
	}
	if next != len(c.Positions) {
		t.Errorf("ranges cover %d vertices, want %d", next, len(c.Positions))
	}

	torus := Torus(0, 0, 0, 0.7, 0.3, 11)
	r := c.Range(KindTorus)
	for i := range torus {
		if c.Positions[r.First+i] != torus[i] {
			t.Fatalf("torus vertex %d differs", i)
		}
	}
}

func TestKindFromName(t *testing.T) {
	for k := KindCube; k <= KindTorus; k++ {
		got, err := KindFromName(k.String())
		if err != nil || got != k {
			t.Errorf("KindFromName(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if _, err := KindFromName("teapot"); err == nil {
		t.Error("expected error for unknown shape")
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("String() = %q, want Kind(9)", got)
	}
}

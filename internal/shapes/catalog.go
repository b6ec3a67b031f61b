package shapes

import (
	"fmt"
	"math/rand"

	"github.com/Faultbox/globe/pkg/linalg"
)

// Kind identifies one of the solids in a Catalog.
type Kind int

const (
	KindCube Kind = iota
	KindCone
	KindCylinder
	KindSphere
	KindTorus

	kindCount
)

var kindNames = [kindCount]string{"cube", "cone", "cylinder", "sphere", "torus"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindFromName parses a solid name as used in configuration.
func KindFromName(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Range is a contiguous run of vertices in a shared buffer.
type Range struct {
	First int
	Count int
}

// Catalog holds every solid in one vertex sequence, in Kind order, together
// with a matching colour per vertex.
type Catalog struct {
	Positions []linalg.Vec4
	Colors    []linalg.Vec4
	ranges    [kindCount]Range
}

// NewCatalog tessellates all solids. segments controls the round solids and
// torusSegments the torus.
func NewCatalog(segments, torusSegments int, rng *rand.Rand) *Catalog {
	parts := [kindCount][]linalg.Vec4{
		KindCube:     Cube(0, 0, 0, 1),
		KindCone:     Cone(0, -0.5, 0, 0.5, 1, segments),
		KindCylinder: Cylinder(0, -0.5, 0, 0.5, 1, segments),
		KindSphere:   Sphere(0, 0, 0, 1, segments),
		KindTorus:    Torus(0, 0, 0, 0.7, 0.3, torusSegments),
	}

	c := &Catalog{}
	for k, verts := range parts {
		c.ranges[k] = Range{First: len(c.Positions), Count: len(verts)}
		c.Positions = append(c.Positions, verts...)
	}
	c.Colors = Colors(len(c.Positions)/3, rng)
	return c
}

// Range returns the vertex range of k.
func (c *Catalog) Range(k Kind) Range {
	return c.ranges[k]
}

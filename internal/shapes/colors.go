package shapes

import (
	"math/rand"

	"github.com/Faultbox/globe/pkg/linalg"
)

// Colors returns one random pastel colour per triangle, repeated for each of
// its three vertices.
func Colors(triangles int, rng *rand.Rand) []linalg.Vec4 {
	colors := make([]linalg.Vec4, 0, 3*triangles)
	for i := 0; i < triangles; i++ {
		c := linalg.NewVec4(
			rng.Float64()*0.3+0.7,
			rng.Float64()*0.2+0.8,
			rng.Float64()*0.5+0.5,
			1,
		)
		colors = append(colors, c, c, c)
	}
	return colors
}

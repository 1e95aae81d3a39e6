package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CirclePoints returns count points evenly spaced on an XY-plane circle of
// the given radius, starting at +X and running counter-clockwise. The
// scenarios use it both to lay the replicas out and to drive the orbiting
// camera.
func CirclePoints(count int, radius float64) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, 0, count)
	for i := 0; i < count; i++ {
		a := float64(i) / float64(count) * 2 * math.Pi
		out = append(out, mgl32.Vec2{
			float32(radius * math.Cos(a)),
			float32(radius * math.Sin(a)),
		})
	}
	return out
}

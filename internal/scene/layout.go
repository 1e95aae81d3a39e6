package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"spherebench/internal/mesh"
)

// RingLayout returns count placements evenly spaced on an XY-plane circle
// at height z, the arrangement every replication scenario uses.
func RingLayout(count int, radius float64, z float32) []mgl32.Vec3 {
	pts := mesh.CirclePoints(count, radius)
	out := make([]mgl32.Vec3, 0, count)
	for _, p := range pts {
		out = append(out, mgl32.Vec3{p[0], p[1], z})
	}
	return out
}

package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis convention used by both output forms: Z is up, the polar angle runs
// from 0 at the +Z pole to pi at the -Z pole, and the azimuth starts along
// +X increasing toward +Y. The sphere is centered at the origin so every
// normal is simply the normalized position.

// ringAngle maps a normalized ring fraction in [0,1] to a polar angle in
// [0, pi]; 0 is the top pole, 1 the bottom pole.
func ringAngle(fraction float64) float64 {
	return fraction * math.Pi
}

// pointOnSphere returns the surface point for the given polar and azimuth
// angles. Degenerate at the poles, where every azimuth maps to the same
// point; GenerateSphere emits exactly one vertex per pole instead of one
// per azimuth sample.
func pointOnSphere(radius, polar, azimuth float64) mgl32.Vec3 {
	sp := math.Sin(polar)
	return mgl32.Vec3{
		float32(radius * sp * math.Cos(azimuth)),
		float32(radius * sp * math.Sin(azimuth)),
		float32(radius * math.Cos(polar)),
	}
}

// GenerateSphere produces the buffer-form UV sphere for the given
// parameters. It is a pure function: same params, same mesh, no retained
// state.
//
// With effective counts S (segments) and R (rings) the mesh has
// 2 + (R-1)*S vertices and 2*S*(R-1) triangles, wound counter-clockwise
// as seen from outside so back-face culling keeps the outside visible.
func GenerateSphere(p SphereParams) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	segments := p.EffectiveSegments()
	rings := p.EffectiveRings()

	m := &Mesh{
		Vertices:  make([]Vertex, 0, p.ExpectedVertexCount()),
		Triangles: make([]Triangle, 0, p.ExpectedTriangleCount()),
	}

	// Top pole, then R-1 interior rings top to bottom, then bottom pole.
	m.Vertices = append(m.Vertices, Vertex{
		Position: mgl32.Vec3{0, 0, float32(p.Radius)},
		Normal:   mgl32.Vec3{0, 0, 1},
		UV:       mgl32.Vec2{0, 0},
	})
	for ring := 1; ring < rings; ring++ {
		polar := ringAngle(float64(ring) / float64(rings))
		v := float32(polar / math.Pi)
		for seg := 0; seg < segments; seg++ {
			azimuth := float64(seg) / float64(segments) * 2 * math.Pi
			pos := pointOnSphere(p.Radius, polar, azimuth)
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   pos.Mul(1 / float32(p.Radius)),
				UV:       mgl32.Vec2{float32(azimuth / (2 * math.Pi)), v},
			})
		}
	}
	bottom := uint32(p.ExpectedVertexCount() - 1)
	m.Vertices = append(m.Vertices, Vertex{
		Position: mgl32.Vec3{0, 0, float32(-p.Radius)},
		Normal:   mgl32.Vec3{0, 0, -1},
		UV:       mgl32.Vec2{0, 1},
	})

	// Interior ring vertex index: rings are numbered 1..R-1, offset by the
	// top pole at index 0.
	at := func(ring, seg int) uint32 {
		return uint32(1 + (ring-1)*segments + seg%segments)
	}

	// Top fan.
	for seg := 0; seg < segments; seg++ {
		m.Triangles = append(m.Triangles, Triangle{0, at(1, seg), at(1, seg+1)})
	}

	// Quad bands between adjacent interior rings, split along a consistent
	// diagonal (upper-left to lower-right).
	for ring := 1; ring < rings-1; ring++ {
		for seg := 0; seg < segments; seg++ {
			a0 := at(ring, seg)
			a1 := at(ring, seg+1)
			b0 := at(ring+1, seg)
			b1 := at(ring+1, seg+1)
			m.Triangles = append(m.Triangles,
				Triangle{a0, b0, b1},
				Triangle{a0, b1, a1},
			)
		}
	}

	// Bottom fan; reversed order keeps the winding outward.
	for seg := 0; seg < segments; seg++ {
		m.Triangles = append(m.Triangles, Triangle{bottom, at(rings-1, seg+1), at(rings-1, seg)})
	}

	return m, nil
}

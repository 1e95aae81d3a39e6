package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single point on the sphere surface. For a sphere centered at
// the origin the normal is the normalized position, but both are stored so
// the renderer and the document writer consume the same layout.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Triangle holds indices into the vertex slice, wound counter-clockwise as
// seen from outside the sphere.
type Triangle [3]uint32

// Mesh is the buffer-form output of the generator: a vertex slice plus a
// triangulation over it. The generator returns a fresh Mesh per call and
// keeps no reference to it.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Triangles) }

// Interleaved flattens the vertices into the position/normal/uv float32
// stream the renderer uploads: 8 floats per vertex.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*8)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	return out
}

// Indices flattens the triangle list into the index stream for the element
// buffer.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}

// Package egg builds, writes and parses the subset of the egg scene
// description format used for the portable sphere models: a coordinate
// system entry plus one named group holding a vertex pool and a polygon
// per triangle. The document form and the buffer form in internal/mesh
// always encode the same geometry because documents are assembled from a
// generated mesh rather than re-deriving it.
package egg

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"spherebench/internal/mesh"
)

// CoordinateSystem recorded in every document; matches the Z-up convention
// of the mesh generator.
const CoordinateSystem = "Z-Up"

// Vertex is one entry of the document's vertex pool.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Polygon references three vertex pool entries forming a triangle, in the
// same outward winding as the buffer form.
type Polygon struct {
	Refs [3]uint32
}

// Document is the portable form of a mesh: a named group with a vertex
// pool and a polygon list.
type Document struct {
	Name     string
	Vertices []Vertex
	Polygons []Polygon
}

// FromMesh assembles a document from a buffer-form mesh. The mesh is
// copied; the document does not alias it.
func FromMesh(m *mesh.Mesh, name string) *Document {
	d := &Document{
		Name:     name,
		Vertices: make([]Vertex, 0, m.VertexCount()),
		Polygons: make([]Polygon, 0, m.TriangleCount()),
	}
	for _, v := range m.Vertices {
		d.Vertices = append(d.Vertices, Vertex{Position: v.Position, Normal: v.Normal, UV: v.UV})
	}
	for _, t := range m.Triangles {
		d.Polygons = append(d.Polygons, Polygon{Refs: t})
	}
	return d
}

// BuildSphereDocument generates a UV sphere and returns it in document
// form. Geometrically identical to mesh.GenerateSphere for the same
// parameters by construction.
func BuildSphereDocument(p mesh.SphereParams, name string) (*Document, error) {
	m, err := mesh.GenerateSphere(p)
	if err != nil {
		return nil, err
	}
	return FromMesh(m, name), nil
}

// Mesh converts the document back to buffer form, validating polygon
// references on the way.
func (d *Document) Mesh() (*mesh.Mesh, error) {
	m := &mesh.Mesh{
		Vertices:  make([]mesh.Vertex, 0, len(d.Vertices)),
		Triangles: make([]mesh.Triangle, 0, len(d.Polygons)),
	}
	for _, v := range d.Vertices {
		m.Vertices = append(m.Vertices, mesh.Vertex{Position: v.Position, Normal: v.Normal, UV: v.UV})
	}
	n := uint32(len(d.Vertices))
	for i, poly := range d.Polygons {
		for _, ref := range poly.Refs {
			if ref >= n {
				return nil, fmt.Errorf("polygon %d references vertex %d, pool has %d", i, ref, n)
			}
		}
		m.Triangles = append(m.Triangles, mesh.Triangle(poly.Refs))
	}
	return m, nil
}

package egg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spherebench/internal/mesh"
)

func TestDocumentMatchesBufferForm(t *testing.T) {
	p := mesh.SphereParams{Radius: 2, Segments: 16, Rings: 8, Multiplier: 1}

	m, err := mesh.GenerateSphere(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := BuildSphereDocument(p, "uv_sphere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(d.Vertices) != m.VertexCount() {
		t.Errorf("document has %d vertices, buffer form %d", len(d.Vertices), m.VertexCount())
	}
	if len(d.Polygons) != m.TriangleCount() {
		t.Errorf("document has %d polygons, buffer form %d", len(d.Polygons), m.TriangleCount())
	}
	for i := range d.Vertices {
		if d.Vertices[i].Position != m.Vertices[i].Position {
			t.Fatalf("vertex %d position differs between forms", i)
		}
	}
	for i := range d.Polygons {
		if d.Polygons[i].Refs != [3]uint32(m.Triangles[i]) {
			t.Fatalf("polygon %d indices differ between forms", i)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := mesh.SphereParams{Radius: 1.5, Segments: 8, Rings: 4, Multiplier: 1}
	d, err := BuildSphereDocument(p, "uv_sphere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Name != d.Name {
		t.Errorf("group name %q, want %q", got.Name, d.Name)
	}
	if len(got.Vertices) != len(d.Vertices) || len(got.Polygons) != len(d.Polygons) {
		t.Fatalf("decoded %d vertices / %d polygons, want %d / %d",
			len(got.Vertices), len(got.Polygons), len(d.Vertices), len(d.Polygons))
	}
	for i := range d.Vertices {
		if got.Vertices[i] != d.Vertices[i] {
			t.Fatalf("vertex %d changed in round trip: %v vs %v", i, got.Vertices[i], d.Vertices[i])
		}
	}
	for i := range d.Polygons {
		if got.Polygons[i] != d.Polygons[i] {
			t.Fatalf("polygon %d changed in round trip", i)
		}
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	p := mesh.SphereParams{Radius: 1, Segments: 6, Rings: 3, Multiplier: 1}
	d, err := BuildSphereDocument(p, "uv_sphere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "uv_sphere.egg")
	if err := d.WriteFile(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	m, err := got.Mesh()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if m.VertexCount() != p.ExpectedVertexCount() || m.TriangleCount() != p.ExpectedTriangleCount() {
		t.Errorf("loaded mesh has %d vertices / %d triangles, want %d / %d",
			m.VertexCount(), m.TriangleCount(), p.ExpectedVertexCount(), p.ExpectedTriangleCount())
	}
}

func TestWriteFileLeavesNoPartialOutput(t *testing.T) {
	d, err := BuildSphereDocument(mesh.DefaultSphereParams(), "uv_sphere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "missing-dir", "uv_sphere.egg")
	if err := d.WriteFile(path); err == nil {
		t.Fatal("expected write into missing directory to fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed write left something at %s", path)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no group", "<CoordinateSystem> { Z-Up }"},
		{"unterminated group", "<Group> g { <VertexPool> g { } "},
		{"bad coordinate system", "<CoordinateSystem> { Y-Up }\n<Group> g { <VertexPool> g { } }"},
		{"missing pool", "<Group> g { }"},
		{"bad vertex number", "<Group> g { <VertexPool> g { <Vertex> 0 { 1 x 0 } } }"},
		{"sparse vertex index", "<Group> g { <VertexPool> g { <Vertex> 4 { 0 0 0 } } }"},
		{"quad polygon", "<Group> g { <VertexPool> g { <Vertex> 0 { 0 0 0 } } <Polygon> { <VertexRef> { 0 0 0 0 <Ref> { g } } } }"},
		{"out of range ref", "<Group> g { <VertexPool> g { <Vertex> 0 { 0 0 0 } } <Polygon> { <VertexRef> { 0 0 7 <Ref> { g } } } }"},
		{"unknown pool ref", "<Group> g { <VertexPool> g { <Vertex> 0 { 0 0 0 } } <Polygon> { <VertexRef> { 0 0 0 <Ref> { other } } } }"},
	}
	for _, tc := range cases {
		if _, err := Decode(strings.NewReader(tc.input)); err == nil {
			t.Errorf("%s: expected a decode error", tc.name)
		}
	}
}

func TestDecodeSkipsUnknownEntries(t *testing.T) {
	input := `
// exported sphere
<CoordinateSystem> { Z-Up }
<Comment> { generated for a memory test }
<Group> ball {
  <VertexPool> ball {
    <Vertex> 0 { 0 0 1 <Normal> { 0 0 1 } <UV> { 0 0 } }
    <Vertex> 1 { 1 0 0 }
    <Vertex> 2 { 0 1 0 }
  }
  <Polygon> { <VertexRef> { 0 1 2 <Ref> { ball } } }
}
`
	d, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(d.Vertices) != 3 || len(d.Polygons) != 1 {
		t.Errorf("got %d vertices / %d polygons, want 3 / 1", len(d.Vertices), len(d.Polygons))
	}
}

func TestLoaderSharesCachedModels(t *testing.T) {
	d, err := BuildSphereDocument(mesh.DefaultSphereParams(), "uv_sphere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "uv_sphere.egg")
	if err := d.WriteFile(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loader := NewLoader()
	first, err := loader.LoadModel(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	second, err := loader.LoadModel(path)
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if first != second {
		t.Error("cached loads should return the same document")
	}
	if loader.CachedCount() != 1 {
		t.Errorf("expected 1 cached document, got %d", loader.CachedCount())
	}

	uncached, err := loader.LoadModelUncached(path)
	if err != nil {
		t.Fatalf("uncached load failed: %v", err)
	}
	if uncached == first {
		t.Error("uncached load should return an independent document")
	}
}

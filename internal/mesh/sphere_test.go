package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSphereCountsMatchFormulas(t *testing.T) {
	cases := []struct {
		name      string
		params    SphereParams
		wantVerts int
		wantTris  int
	}{
		{"default", SphereParams{Radius: 1, Segments: 16, Rings: 8, Multiplier: 1}, 114, 224},
		{"minimal", SphereParams{Radius: 1, Segments: 3, Rings: 2, Multiplier: 1}, 5, 6},
		{"multiplied", SphereParams{Radius: 1, Segments: 16, Rings: 8, Multiplier: 2}, 482, 960},
	}

	for _, tc := range cases {
		m, err := GenerateSphere(tc.params)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if m.VertexCount() != tc.wantVerts {
			t.Errorf("%s: expected %d vertices, got %d", tc.name, tc.wantVerts, m.VertexCount())
		}
		if m.TriangleCount() != tc.wantTris {
			t.Errorf("%s: expected %d triangles, got %d", tc.name, tc.wantTris, m.TriangleCount())
		}
		if m.VertexCount() != tc.params.ExpectedVertexCount() {
			t.Errorf("%s: ExpectedVertexCount disagrees with generator", tc.name)
		}
		if m.TriangleCount() != tc.params.ExpectedTriangleCount() {
			t.Errorf("%s: ExpectedTriangleCount disagrees with generator", tc.name)
		}
	}
}

func TestStressParamsReachTargetFaceCount(t *testing.T) {
	// The memory scenarios use the 16x8 sphere at multiplier 10, which has
	// to land in the tens of thousands of triangles for the RAM differences
	// to be visible in a task manager.
	p := SphereParams{Radius: 5, Segments: 16, Rings: 8, Multiplier: 10}
	if n := p.ExpectedTriangleCount(); n != 25280 {
		t.Errorf("expected 25280 triangles at multiplier 10, got %d", n)
	}
	m, err := GenerateSphere(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TriangleCount() != 25280 {
		t.Errorf("generator produced %d triangles, expected 25280", m.TriangleCount())
	}
}

func TestVerticesLieOnSphere(t *testing.T) {
	const radius = 2.5
	m, err := GenerateSphere(SphereParams{Radius: radius, Segments: 12, Rings: 6, Multiplier: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range m.Vertices {
		if d := math.Abs(float64(v.Position.Len()) - radius); d > 1e-4 {
			t.Errorf("vertex %d at distance %v from origin, expected %v", i, v.Position.Len(), radius)
		}
	}
}

func TestNormalsAreNormalizedPositions(t *testing.T) {
	m, err := GenerateSphere(SphereParams{Radius: 3, Segments: 8, Rings: 4, Multiplier: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range m.Vertices {
		if d := math.Abs(float64(v.Normal.Len()) - 1); d > 1e-5 {
			t.Errorf("vertex %d normal has length %v", i, v.Normal.Len())
		}
		want := v.Position.Normalize()
		if v.Normal.Sub(want).Len() > 1e-5 {
			t.Errorf("vertex %d normal %v differs from normalized position %v", i, v.Normal, want)
		}
	}
}

func TestSinglePoleVertices(t *testing.T) {
	m, err := GenerateSphere(SphereParams{Radius: 1, Segments: 8, Rings: 4, Multiplier: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, bottom := 0, 0
	for _, v := range m.Vertices {
		switch {
		case v.Position.Sub(mgl32.Vec3{0, 0, 1}).Len() < 1e-6:
			top++
		case v.Position.Sub(mgl32.Vec3{0, 0, -1}).Len() < 1e-6:
			bottom++
		}
	}
	if top != 1 || bottom != 1 {
		t.Errorf("expected exactly one vertex per pole, got %d top and %d bottom", top, bottom)
	}
}

func TestTriangleWindingIsOutward(t *testing.T) {
	m, err := GenerateSphere(SphereParams{Radius: 1, Segments: 16, Rings: 8, Multiplier: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tri := range m.Triangles {
		a := m.Vertices[tri[0]].Position
		b := m.Vertices[tri[1]].Position
		c := m.Vertices[tri[2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		if n.Dot(centroid) <= 0 {
			t.Errorf("triangle %d %v is wound inward", i, tri)
		}
	}
}

func TestTriangleIndicesInRange(t *testing.T) {
	m, err := GenerateSphere(SphereParams{Radius: 1, Segments: 5, Rings: 3, Multiplier: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := uint32(m.VertexCount())
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx >= n {
				t.Errorf("triangle %d references vertex %d, only %d exist", i, idx, n)
			}
		}
	}
}

func TestInvalidParams(t *testing.T) {
	cases := []struct {
		name   string
		params SphereParams
	}{
		{"zero radius", SphereParams{Radius: 0, Segments: 16, Rings: 8, Multiplier: 1}},
		{"negative radius", SphereParams{Radius: -1, Segments: 16, Rings: 8, Multiplier: 1}},
		{"two segments", SphereParams{Radius: 1, Segments: 2, Rings: 8, Multiplier: 1}},
		{"one ring", SphereParams{Radius: 1, Segments: 16, Rings: 1, Multiplier: 1}},
		{"zero multiplier", SphereParams{Radius: 1, Segments: 16, Rings: 8, Multiplier: 0}},
	}
	for _, tc := range cases {
		if _, err := GenerateSphere(tc.params); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter, got %v", tc.name, err)
		}
	}
}

func TestInterleavedLayout(t *testing.T) {
	m, err := GenerateSphere(SphereParams{Radius: 1, Segments: 4, Rings: 2, Multiplier: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := m.Interleaved()
	if len(data) != m.VertexCount()*8 {
		t.Fatalf("expected %d floats, got %d", m.VertexCount()*8, len(data))
	}
	// First vertex is the top pole: position (0,0,1), normal (0,0,1), uv (0,0).
	want := []float32{0, 0, 1, 0, 0, 1, 0, 0}
	for i, v := range want {
		if data[i] != v {
			t.Errorf("interleaved[%d] = %v, want %v", i, data[i], v)
		}
	}
	if idx := m.Indices(); len(idx) != m.TriangleCount()*3 {
		t.Errorf("expected %d indices, got %d", m.TriangleCount()*3, len(idx))
	}
}

func TestCirclePoints(t *testing.T) {
	pts := CirclePoints(4, 2)
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	for i, p := range pts {
		r := math.Hypot(float64(p[0]), float64(p[1]))
		if math.Abs(r-2) > 1e-5 {
			t.Errorf("point %d at radius %v, expected 2", i, r)
		}
	}
	if pts[0].Sub(mgl32.Vec2{2, 0}).Len() > 1e-5 {
		t.Errorf("first point should start at +X, got %v", pts[0])
	}
	if pts[1].Sub(mgl32.Vec2{0, 2}).Len() > 1e-5 {
		t.Errorf("second point should be at +Y, got %v", pts[1])
	}
}

func BenchmarkGenerateSphereStress(b *testing.B) {
	p := SphereParams{Radius: 5, Segments: 16, Rings: 8, Multiplier: 10}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := GenerateSphere(p); err != nil {
			b.Fatal(err)
		}
	}
}

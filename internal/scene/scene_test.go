package scene

import (
	"math"
	"testing"
)

// GL-backed attachment paths need a live context and are exercised by the
// scenarios themselves; these tests cover the bookkeeping.

func TestNumChildrenCountsPlainNodes(t *testing.T) {
	g := NewGroup("spheres")
	g.nodes = append(g.nodes, &Node{Name: "a"}, &Node{Name: "b"}, &Node{Name: "c"})
	if got := g.NumChildren(); got != 3 {
		t.Errorf("expected 3 children, got %d", got)
	}
}

func TestNodeReplicasDefaultsToOne(t *testing.T) {
	n := &Node{}
	if n.Replicas() != 1 {
		t.Errorf("plain node should count as one replica, got %d", n.Replicas())
	}
}

func TestRingLayout(t *testing.T) {
	const (
		count  = 250
		radius = 750.0
		z      = 0.1
	)
	pts := RingLayout(count, radius, z)
	if len(pts) != count {
		t.Fatalf("expected %d placements, got %d", count, len(pts))
	}
	for i, p := range pts {
		r := math.Hypot(float64(p[0]), float64(p[1]))
		if math.Abs(r-radius) > 1e-2 {
			t.Errorf("placement %d at radius %v, expected %v", i, r, radius)
		}
		if p[2] != z {
			t.Errorf("placement %d at height %v, expected %v", i, p[2], z)
		}
	}
}

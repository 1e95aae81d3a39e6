// Package scene is the minimal scene graph the scenarios attach their
// drawables to: one named group of nodes, where a node is either a single
// placed mesh buffer or an instanced set of placements. The replication
// strategies (independent copies, shared geometry, instancing) are all
// expressed through what the nodes reference.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"spherebench/internal/graphics"
	"spherebench/internal/mesh"
)

// Node is one attachment in the group: a drawable plus its placement and
// appearance.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Color    mgl32.Vec4
	// Wire adds a white wireframe pass over the filled surface.
	Wire bool

	buffer    *graphics.MeshBuffer
	instanced *graphics.InstancedMesh

	// ownsBuffer marks buffers this node must dispose; shared buffers are
	// disposed by the group once.
	ownsBuffer bool
}

// Replicas returns how many placements this node represents.
func (n *Node) Replicas() int {
	if n.instanced != nil {
		return n.instanced.Count()
	}
	return 1
}

// Group is the scene graph attachment point.
type Group struct {
	Name  string
	nodes []*Node

	// Buffers shared between nodes, disposed once with the group.
	shared []*graphics.MeshBuffer
}

// NewGroup creates an empty named group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Nodes returns the attached nodes.
func (g *Group) Nodes() []*Node { return g.nodes }

// NumChildren counts attached placements, instanced ones included,
// matching what the scenario logs after assembly.
func (g *Group) NumChildren() int {
	total := 0
	for _, n := range g.nodes {
		total += n.Replicas()
	}
	return total
}

// AttachMesh uploads m into a fresh buffer owned by the new node. Used
// for independent-copy replication: every call costs its own GPU memory.
func (g *Group) AttachMesh(name string, m *mesh.Mesh, pos mgl32.Vec3, color mgl32.Vec4, wire bool) *Node {
	n := &Node{
		Name:       name,
		Position:   pos,
		Color:      color,
		Wire:       wire,
		buffer:     graphics.UploadMesh(m),
		ownsBuffer: true,
	}
	g.nodes = append(g.nodes, n)
	return n
}

// ShareMesh uploads m once and returns the buffer for use with
// AttachShared. The group disposes it.
func (g *Group) ShareMesh(m *mesh.Mesh) *graphics.MeshBuffer {
	buf := graphics.UploadMesh(m)
	g.shared = append(g.shared, buf)
	return buf
}

// AttachShared adds a node drawing an already-uploaded buffer. Used for
// shared-geometry replication: many nodes, one copy of the mesh.
func (g *Group) AttachShared(name string, buf *graphics.MeshBuffer, pos mgl32.Vec3, color mgl32.Vec4, wire bool) *Node {
	n := &Node{Name: name, Position: pos, Color: color, Wire: wire, buffer: buf}
	g.nodes = append(g.nodes, n)
	return n
}

// AttachInstanced adds a single node that draws buf once per offset in
// one instanced call.
func (g *Group) AttachInstanced(name string, buf *graphics.MeshBuffer, offsets []mgl32.Vec3, color mgl32.Vec4, wire bool) *Node {
	n := &Node{
		Name:      name,
		Color:     color,
		Wire:      wire,
		instanced: graphics.NewInstancedMesh(buf, offsets),
	}
	g.nodes = append(g.nodes, n)
	return n
}

// Dispose releases every GPU resource the group reached.
func (g *Group) Dispose() {
	for _, n := range g.nodes {
		if n.instanced != nil {
			n.instanced.Dispose()
		}
		if n.ownsBuffer && n.buffer != nil {
			n.buffer.Dispose()
		}
	}
	for _, buf := range g.shared {
		buf.Dispose()
	}
	g.nodes = nil
	g.shared = nil
}

package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"spherebench/internal/graphics"
)

var wireColor = mgl32.Vec4{1, 1, 1, 1}

// Render draws the group with the mesh shader: a filled pass per node,
// then a wireframe pass over the nodes that ask for it. Polygon offset
// pushes the fill back so the lines stay visible.
func (g *Group) Render(shader *graphics.Shader, view, proj mgl32.Mat4) {
	shader.Use()
	shader.SetMatrix4("view", &view[0])
	shader.SetMatrix4("proj", &proj[0])

	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)
	for _, n := range g.nodes {
		g.drawNode(shader, n, n.Color)
	}
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	for _, n := range g.nodes {
		if n.Wire {
			g.drawNode(shader, n, wireColor)
		}
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (g *Group) drawNode(shader *graphics.Shader, n *Node, color mgl32.Vec4) {
	model := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	shader.SetMatrix4("model", &model[0])
	shader.SetVector4("color", color[0], color[1], color[2], color[3])
	if n.instanced != nil {
		n.instanced.Draw()
	} else {
		n.buffer.Draw()
	}
}

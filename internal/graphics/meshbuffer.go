package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"spherebench/internal/mesh"
)

// Vertex layout shared by the mesh shaders: position(3) normal(3) uv(2),
// 32 bytes per vertex.
const vertexStride = 8 * 4

// MeshBuffer is an uploaded mesh: one VAO over a vertex buffer and an
// element buffer. It is the drawable a scene node attaches to the scene
// graph.
type MeshBuffer struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// CPU-side counts kept for scenario captions.
	VertexCount   int
	TriangleCount int
}

// UploadMesh copies the mesh into GPU buffers. The mesh itself is not
// retained; the caller may discard or reuse it.
func UploadMesh(m *mesh.Mesh) *MeshBuffer {
	data := m.Interleaved()
	indices := m.Indices()

	b := &MeshBuffer{
		indexCount:    int32(len(indices)),
		VertexCount:   m.VertexCount(),
		TriangleCount: m.TriangleCount(),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return b
}

// Draw issues a plain indexed draw.
func (b *MeshBuffer) Draw() {
	gl.BindVertexArray(b.vao)
	// Instance offset attribute is not an array here; pin it to zero.
	gl.VertexAttrib3f(3, 0, 0, 0)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Dispose releases the GPU buffers.
func (b *MeshBuffer) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}

// InstancedMesh draws one MeshBuffer at many fixed offsets in a single
// call. It builds its own VAO over the shared vertex/element buffers plus
// a per-instance offset buffer, so the underlying MeshBuffer stays usable
// for plain draws.
type InstancedMesh struct {
	buffer    *MeshBuffer
	vao       uint32
	offsetVBO uint32
	count     int32
}

// NewInstancedMesh creates an instanced view over buf with one replica
// per offset.
func NewInstancedMesh(buf *MeshBuffer, offsets []mgl32.Vec3) *InstancedMesh {
	im := &InstancedMesh{buffer: buf, count: int32(len(offsets))}

	flat := make([]float32, 0, len(offsets)*3)
	for _, o := range offsets {
		flat = append(flat, o[0], o[1], o[2])
	}

	gl.GenVertexArrays(1, &im.vao)
	gl.BindVertexArray(im.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)

	gl.GenBuffers(1, &im.offsetVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, im.offsetVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*4, gl.Ptr(flat), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, 3*4, 0)
	gl.VertexAttribDivisor(3, 1)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)

	gl.BindVertexArray(0)
	return im
}

// Count returns the number of replicas drawn per call.
func (im *InstancedMesh) Count() int { return int(im.count) }

// Buffer returns the shared underlying mesh buffer.
func (im *InstancedMesh) Buffer() *MeshBuffer { return im.buffer }

// Draw renders all instances.
func (im *InstancedMesh) Draw() {
	gl.BindVertexArray(im.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, im.buffer.indexCount, gl.UNSIGNED_INT, nil, im.count)
	gl.BindVertexArray(0)
}

// Dispose releases the instanced VAO and offset buffer but not the shared
// mesh buffer.
func (im *InstancedMesh) Dispose() {
	if im.vao != 0 {
		gl.DeleteVertexArrays(1, &im.vao)
		im.vao = 0
	}
	if im.offsetVBO != 0 {
		gl.DeleteBuffers(1, &im.offsetVBO)
		im.offsetVBO = 0
	}
}

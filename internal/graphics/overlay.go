package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Overlay renders caption lines at the bottom center of the window, the
// way the scenarios describe themselves on screen. Text is rasterized on
// the CPU with the fixed 7x13 bitmap face into a single-channel atlas and
// drawn as one textured quad, so no font file has to ship with the
// binary.
type Overlay struct {
	shader *Shader
	vao    uint32
	vbo    uint32
	tex    uint32

	texW  int
	texH  int
	scale float32
}

// NewOverlay compiles the overlay shader and allocates the quad and
// texture objects.
func NewOverlay() (*Overlay, error) {
	shader, err := NewShader(OverlayVertexShader, OverlayFragmentShader)
	if err != nil {
		return nil, err
	}

	o := &Overlay{shader: shader, scale: 2}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	// 6 vertices, 4 floats each; rewritten per draw
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &o.tex)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return o, nil
}

// SetLines rasterizes the caption lines, centered per line, and uploads
// the atlas.
func (o *Overlay) SetLines(lines []string) {
	face := basicfont.Face7x13
	lineH := face.Height + 2

	w := 1
	for _, line := range lines {
		if lw := font.MeasureString(face, line).Ceil(); lw > w {
			w = lw
		}
	}
	h := lineH * len(lines)
	if h < 1 {
		h = 1
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for i, line := range lines {
		lw := font.MeasureString(face, line).Ceil()
		d.Dot = fixed.P((w-lw)/2, i*lineH+face.Ascent)
		d.DrawString(line)
	}

	o.texW, o.texH = w, h
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Draw paints the caption quad over the scene.
func (o *Overlay) Draw(screenW, screenH int) {
	if o.texW == 0 {
		return
	}

	qw := float32(o.texW) * o.scale
	qh := float32(o.texH) * o.scale
	x0 := (float32(screenW) - qw) / 2
	y0 := float32(12) // margin above the bottom edge
	x1 := x0 + qw
	y1 := y0 + qh

	// Image rows are top-down, screen Y grows up, so V flips.
	verts := []float32{
		x0, y1, 0, 0,
		x0, y0, 0, 1,
		x1, y0, 1, 1,
		x0, y1, 0, 0,
		x1, y0, 1, 1,
		x1, y1, 1, 0,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	proj := mgl32.Ortho2D(0, float32(screenW), 0, float32(screenH))
	o.shader.SetMatrix4("proj", &proj[0])
	o.shader.SetVector4("textColor", 1, 1, 1, 1)
	o.shader.SetInt("atlas", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose releases the GL objects.
func (o *Overlay) Dispose() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.tex != 0 {
		gl.DeleteTextures(1, &o.tex)
		o.tex = 0
	}
	if o.shader != nil {
		o.shader.Dispose()
	}
}

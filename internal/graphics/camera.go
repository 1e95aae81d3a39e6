package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"spherebench/internal/mesh"
)

// Camera handles the projection matrix
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    10000.0,
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

// Orbit drives the scenario camera: it cycles through points on a
// horizontal circle while sweeping up and down between two heights,
// always looking at a fixed target. One step per frame.
type Orbit struct {
	ring   []mgl32.Vec2
	sweep  []float32
	target mgl32.Vec3
	i, j   int
}

// NewOrbit builds an orbit on a circle of the given radius with the given
// number of ring points, sweeping between lowest and highest over zSteps
// positions each way.
func NewOrbit(ringPoints int, radius float64, lowest, highest float32, zSteps int, target mgl32.Vec3) *Orbit {
	if ringPoints < 1 {
		ringPoints = 1
	}
	if zSteps < 1 {
		zSteps = 1
	}
	sweep := make([]float32, 0, zSteps*2)
	for k := 0; k < zSteps; k++ {
		sweep = append(sweep, lowest+(highest-lowest)*float32(k)/float32(zSteps))
	}
	for k := zSteps; k > 0; k-- {
		sweep = append(sweep, lowest+(highest-lowest)*float32(k)/float32(zSteps))
	}
	return &Orbit{
		ring:   mesh.CirclePoints(ringPoints, radius),
		sweep:  sweep,
		target: target,
	}
}

// Eye returns the current camera position.
func (o *Orbit) Eye() mgl32.Vec3 {
	xy := o.ring[o.i]
	return mgl32.Vec3{xy[0], xy[1], o.sweep[o.j]}
}

// Advance steps the orbit and returns the view matrix for the new frame.
func (o *Orbit) Advance() mgl32.Mat4 {
	o.i = (o.i + 1) % len(o.ring)
	o.j = (o.j + 1) % len(o.sweep)
	return mgl32.LookAtV(o.Eye(), o.target, mgl32.Vec3{0, 0, 1})
}

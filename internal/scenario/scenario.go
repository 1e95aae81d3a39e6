// Package scenario assembles and runs the five memory scenarios. All of
// them show the same logical UV sphere; what changes is how the 250
// replicas come to exist: independent copies from a loaded file (A),
// instancing a loaded file (A1), nodes sharing one generated mesh (B),
// or instancing one generated mesh (B1). X is the procgen playground.
// The interesting numbers are read off the OS task manager while a
// scenario runs.
package scenario

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"spherebench/internal/config"
	"spherebench/internal/graphics"
	"spherebench/internal/mesh"
)

// Stress sphere used by every replication scenario: the 16x8 base sphere
// at multiplier 10, dense enough for the per-strategy RAM differences to
// stand out.
const (
	stressRadius     = 5.0
	stressMultiplier = 10

	// Egg file the loading scenarios read; generated on demand.
	eggFileName = "uv_sphere.egg"

	// Replicas sit just above the ground plane.
	placementZ = 0.1
)

var (
	sphereBlue = mgl32.Vec4{0, 0, 1, 1}
	plainWhite = mgl32.Vec4{1, 1, 1, 1}
)

func stressParams() mesh.SphereParams {
	return mesh.SphereParams{
		Radius:     stressRadius,
		Segments:   16,
		Rings:      8,
		Multiplier: stressMultiplier,
	}
}

// placementRadius is the circle the replicas stand on.
func placementRadius() float64 {
	return float64(config.ReplicaCount) * 3
}

// replicaOrbit circles the camera just outside the replica ring, sweeping
// vertically across the sphere heights.
func replicaOrbit() *graphics.Orbit {
	r := placementRadius()
	return graphics.NewOrbit(
		int(r)*20,
		r+20,
		-stressRadius,
		stressRadius*2,
		150,
		mgl32.Vec3{0, 0, stressRadius},
	)
}

// Run executes the selected scenario; it returns once the user closes the
// window.
func Run(cfg config.Run) error {
	switch cfg.Scenario {
	case "A":
		return runA(cfg)
	case "A1":
		return runA1(cfg)
	case "B":
		return runB(cfg)
	case "B1":
		return runB1(cfg)
	case "X":
		return runX(cfg)
	default:
		return fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}
}

package scenario

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"spherebench/internal/app"
	"spherebench/internal/config"
	"spherebench/internal/egg"
	"spherebench/internal/graphics"
	"spherebench/internal/mesh"
	"spherebench/internal/scene"
)

// eggPath forces the .egg suffix on the user-supplied output path.
func eggPath(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".egg"
}

// runX is the procgen playground: one sphere built from the user's
// parameters, a white diameter-1 sphere beside it for scale, and an
// optional egg file export of the generated geometry.
func runX(cfg config.Run) error {
	window, err := app.CreateWindow("spherebench - scenario X")
	if err != nil {
		return err
	}

	m, err := mesh.GenerateSphere(cfg.Sphere)
	if err != nil {
		return err
	}

	captions := []string{
		"Scenario X: UV sphere from user arguments (generated mesh)",
		"(plus white sphere of diameter 1, for comparison)",
		fmt.Sprintf("radius=%v segments=%d rings=%d; vertices=%d tris=%d",
			cfg.Sphere.Radius,
			cfg.Sphere.EffectiveSegments(),
			cfg.Sphere.EffectiveRings(),
			m.VertexCount(),
			m.TriangleCount(),
		),
	}

	if cfg.Filename != "" {
		path := eggPath(cfg.Filename)
		if err := egg.FromMesh(m, "uv_sphere").WriteFile(path); err != nil {
			return err
		}
		log.Printf("saved egg file to %s", path)
		captions = append(captions, fmt.Sprintf("filename=%s", path))
	}

	group := scene.NewGroup("playground")
	group.AttachMesh("uv_sphere", m, mgl32.Vec3{0, 0, 0.001}, sphereBlue, true)

	comparison, err := mesh.GenerateSphere(mesh.SphereParams{
		Radius: 0.5, Segments: 16, Rings: 8, Multiplier: 1,
	})
	if err != nil {
		return err
	}
	group.AttachMesh("small_uv_sphere", comparison,
		mgl32.Vec3{float32(cfg.Sphere.Radius) + 1, 0, float32(cfg.Sphere.Radius)},
		plainWhite, false)

	// Camera orbit scaled to the sphere size.
	r := math.Ceil(cfg.Sphere.Radius)
	orbit := graphics.NewOrbit(
		360,
		cfg.Sphere.Radius*4,
		float32(-2*r),
		float32(4*r),
		150,
		mgl32.Vec3{0, 0, float32(cfg.Sphere.Radius)},
	)

	a, err := app.New(window, group, orbit, captions)
	if err != nil {
		group.Dispose()
		return err
	}
	defer a.Dispose()

	a.Run()
	return nil
}

package scenario

import (
	"spherebench/internal/app"
	"spherebench/internal/config"
	"spherebench/internal/mesh"
	"spherebench/internal/scene"
)

// runB1 generates the sphere once and replicates it via instancing, the
// cheapest strategy on both CPU and GPU.
func runB1(cfg config.Run) error {
	window, err := app.CreateWindow("spherebench - scenario B1")
	if err != nil {
		return err
	}

	m, err := mesh.GenerateSphere(stressParams())
	if err != nil {
		return err
	}

	group := scene.NewGroup("sphere_group")
	buf := group.ShareMesh(m)
	group.AttachInstanced("uv_sphere",
		buf,
		scene.RingLayout(config.ReplicaCount, placementRadius(), placementZ),
		sphereBlue,
		true,
	)

	a, err := app.New(window, group, replicaOrbit(), []string{
		"Scenario B1: generated mesh replicated via instancing",
	})
	if err != nil {
		group.Dispose()
		return err
	}
	defer a.Dispose()

	a.Run()
	return nil
}

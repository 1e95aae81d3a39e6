package scenario

import (
	"spherebench/internal/app"
	"spherebench/internal/config"
	"spherebench/internal/egg"
	"spherebench/internal/scene"
)

// runA1 loads the egg model once and replicates it via instancing: one
// parsed document, one GPU upload, one draw call for all placements.
func runA1(cfg config.Run) error {
	if err := ensureEggFile(); err != nil {
		return err
	}

	window, err := app.CreateWindow("spherebench - scenario A1")
	if err != nil {
		return err
	}

	doc, err := egg.NewLoader().LoadModel(eggFileName)
	if err != nil {
		return err
	}
	m, err := doc.Mesh()
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
		"Scenario A1: loaded egg model replicated via instancing",
	})
	if err != nil {
		group.Dispose()
		return err
	}
	defer a.Dispose()

	a.Run()
	return nil
}

package scenario

import (
	"fmt"

	"spherebench/internal/app"
	"spherebench/internal/config"
	"spherebench/internal/mesh"
	"spherebench/internal/scene"
)

// runB generates the sphere once and shares the single uploaded mesh
// among 250 nodes: many scene-graph children, one copy of the geometry.
func runB(cfg config.Run) error {
	window, err := app.CreateWindow("spherebench - scenario B")
	if err != nil {
		return err
	}

	m, err := mesh.GenerateSphere(stressParams())
	if err != nil {
		return err
	}

	group := scene.NewGroup("sphere_group")
	buf := group.ShareMesh(m)
	for i, pos := range scene.RingLayout(config.ReplicaCount, placementRadius(), placementZ) {
		group.AttachShared(fmt.Sprintf("node_name_%03d", i), buf, pos, sphereBlue, true)
	}

	a, err := app.New(window, group, replicaOrbit(), []string{
		"Scenario B: generated mesh shared among multiple nodes",
	})
	if err != nil {
		group.Dispose()
		return err
	}
	defer a.Dispose()

	a.Run()
	return nil
}

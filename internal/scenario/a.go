package scenario

import (
	"fmt"
	"log"
	"os"

	"spherebench/internal/app"
	"spherebench/internal/config"
	"spherebench/internal/egg"
	"spherebench/internal/scene"
)

// ensureEggFile generates the stress sphere's egg file next to the
// binary when it is missing, so the loading scenarios always have
// something to load.
func ensureEggFile() error {
	if _, err := os.Stat(eggFileName); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	log.Printf("%s not found, generating it", eggFileName)
	doc, err := egg.BuildSphereDocument(stressParams(), "uv_sphere")
	if err != nil {
		return err
	}
	return doc.WriteFile(eggFileName)
}

// runA loads the egg model once per replica through the cached loader.
// The parsed document is pooled, but every replica converts it to its own
// buffer-form copy with its own GPU upload, the most expensive strategy.
func runA(cfg config.Run) error {
	if err := ensureEggFile(); err != nil {
		return err
	}

	window, err := app.CreateWindow("spherebench - scenario A")
	if err != nil {
		return err
	}

	group := scene.NewGroup("sphere_group")
	loader := egg.NewLoader()

	for i, pos := range scene.RingLayout(config.ReplicaCount, placementRadius(), placementZ) {
		doc, err := loader.LoadModel(eggFileName)
		if err != nil {
			return err
		}
		m, err := doc.Mesh()
		if err != nil {
			return err
		}
		group.AttachMesh(fmt.Sprintf("node_name_%03d", i), m, pos, sphereBlue, true)
	}
	log.Printf("model pool holds %d document(s)", loader.CachedCount())

	a, err := app.New(window, group, replicaOrbit(), []string{
		"Scenario A: loaded egg model copied into every node",
	})
	if err != nil {
		group.Dispose()
		return err
	}
	defer a.Dispose()

	a.Run()
	return nil
}

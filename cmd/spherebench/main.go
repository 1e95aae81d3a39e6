// spherebench runs memory usage scenarios for procedurally generated UV
// spheres. Pick a scenario, watch the process in the OS task manager, and
// compare how the replication strategies behave. Scenario X is a
// playground where the sphere parameters come from the flags and the
// result can be saved as an egg file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"spherebench/internal/config"
	"spherebench/internal/memstat"
	"spherebench/internal/mesh"
	"spherebench/internal/scenario"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	scenarioFlag := flag.String("scenario", "X",
		fmt.Sprintf("scenario to execute (one of %s); the flags below only apply to scenario X",
			strings.Join(config.ValidScenarios, ", ")))
	radius := flag.Float64("radius", 1.0, "sphere radius (positive number)")
	segments := flag.Int("segments", 16, "number of vertical segments (integer >= 3)")
	rings := flag.Int("rings", 8, "number of horizontal rings (integer >= 2)")
	multiplier := flag.Int("multiplier", 1, "multiplies segments and rings (integer >= 1)")
	filename := flag.String("filename", "", "if not empty, saves an egg file in that location")
	statsAddr := flag.String("statsaddr", "", "if not empty, serve live memory stats on this address (e.g. localhost:8080)")
	flag.Parse()

	cfg := config.Run{
		Scenario: *scenarioFlag,
		Sphere: mesh.SphereParams{
			Radius:     *radius,
			Segments:   *segments,
			Rings:      *rings,
			Multiplier: *multiplier,
		},
		Filename:  *filename,
		StatsAddr: *statsAddr,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		flag.Usage()
		os.Exit(2)
	}

	defer closer.Close()

	if err := glfw.Init(); err != nil {
		closer.Fatalln("could not initialize glfw:", err)
	}
	closer.Bind(func() {
		glfw.Terminate()
	})

	if cfg.StatsAddr != "" {
		memstat.NewServer(cfg.StatsAddr, time.Second).Start()
	}

	log.Printf("Running scenario %s", cfg.Scenario)
	if err := scenario.Run(cfg); err != nil {
		closer.Fatalln("scenario failed:", err)
	}
}

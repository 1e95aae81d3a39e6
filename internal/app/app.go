// Package app owns the window and the frame loop shared by every
// scenario: orbit the camera, draw the sphere group, paint the caption
// overlay, log memory, pace the frames. Escape closes the window.
package app

import (
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"spherebench/internal/config"
	"spherebench/internal/graphics"
	"spherebench/internal/memstat"
	"spherebench/internal/profiling"
	"spherebench/internal/scene"
)

// memLogInterval paces the periodic memory line on stdout.
const memLogInterval = 5 * time.Second

// App drives one scenario's render loop.
type App struct {
	window  *glfw.Window
	camera  *graphics.Camera
	orbit   *graphics.Orbit
	group   *scene.Group
	shader  *graphics.Shader
	overlay *graphics.Overlay

	reporter *memstat.Reporter
	limiter  *FPSLimiter

	captions []string
	lastLine string
	lastLog  time.Time
}

// New wires a scenario's assembled scene to the frame loop. The window
// must already have a current GL context.
func New(window *glfw.Window, group *scene.Group, orbit *graphics.Orbit, captions []string) (*App, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	shader, err := graphics.NewShader(graphics.MeshVertexShader, graphics.MeshFragmentShader)
	if err != nil {
		return nil, err
	}

	overlay, err := graphics.NewOverlay()
	if err != nil {
		shader.Dispose()
		return nil, err
	}

	a := &App{
		window:   window,
		camera:   graphics.NewCamera(config.WindowWidth, config.WindowHeight),
		orbit:    orbit,
		group:    group,
		shader:   shader,
		overlay:  overlay,
		reporter: memstat.NewReporter(time.Second),
		limiter:  NewFPSLimiter(),
		captions: captions,
	}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		a.camera.SetViewport(width, height)
	})

	return a, nil
}

// Run executes the frame loop until the window closes.
func (a *App) Run() {
	log.Printf("%s: %d children attached", a.group.Name, a.group.NumChildren())
	a.lastLog = time.Now()

	for !a.window.ShouldClose() {
		profiling.ResetFrame()

		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		view := a.orbit.Advance()
		proj := a.camera.GetProjectionMatrix()

		gl.ClearColor(0.05, 0.05, 0.08, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		func() { defer profiling.Track("scene.Render")(); a.group.Render(a.shader, view, proj) }()

		sample := a.reporter.Current()
		if line := sample.String(); line != a.lastLine {
			a.lastLine = line
			a.overlay.SetLines(append(a.captions, line))
		}
		w, h := a.window.GetFramebufferSize()
		func() { defer profiling.Track("overlay.Draw")(); a.overlay.Draw(w, h) }()

		func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

		if time.Since(a.lastLog) >= memLogInterval {
			a.lastLog = time.Now()
			log.Print(sample.String())
			if top := profiling.TopN(3); top != "" {
				log.Printf("frame: %s", top)
			}
		}

		a.limiter.Wait()
	}
}

// Dispose releases the loop's GL resources and the scene group.
func (a *App) Dispose() {
	a.group.Dispose()
	a.overlay.Dispose()
	a.shader.Dispose()
}

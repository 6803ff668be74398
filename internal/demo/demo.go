// Package demo assembles the orbit camera showcase: a reference grid, world
// axes, a rotating lit cube, and an interactive horizontal clipping plane, all
// viewed through an orbiting camera driven by mouse and keyboard input.
package demo

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/kestrel3d/kestrel/common"
	"github.com/kestrel3d/kestrel/engine"
	"github.com/kestrel3d/kestrel/engine/camera"
	"github.com/kestrel3d/kestrel/engine/input"
	"github.com/kestrel3d/kestrel/engine/mesh"
	"github.com/kestrel3d/kestrel/engine/renderer"
	"github.com/kestrel3d/kestrel/engine/renderer/pipeline"
	"github.com/kestrel3d/kestrel/engine/scene"
	"github.com/kestrel3d/kestrel/engine/window"
)

// Config carries the command-line configuration for the demo.
type Config struct {
	Width    int
	Height   int
	Title    string
	VSync    bool
	MSAA     int
	FPSCap   float64
	Software bool
	TickRate float64
	Profile  bool
}

// DefaultConfig returns the demo configuration used when no flags are set.
func DefaultConfig() Config {
	return Config{
		Width:    1280,
		Height:   720,
		Title:    "Kestrel - Orbit Camera",
		VSync:    true,
		MSAA:     4,
		TickRate: 60,
	}
}

// clipStep is the height change applied per bracket key press.
const clipStep = 0.1

// Run builds the demo scene and blocks until the window closes.
//
// Parameters:
//   - cfg: the demo configuration
//
// Returns:
//   - error: error if the configuration is invalid
func Run(cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("demo: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	msaa, err := msaaSampleCount(cfg.MSAA)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(
		engine.WithProfiling(cfg.Profile),
		engine.WithTickRate(cfg.TickRate),
		engine.WithRenderFrameLimit(cfg.FPSCap),
		engine.WithWindow(window.NewWindow(
			window.WithTitle(cfg.Title),
			window.WithWidth(cfg.Width),
			window.WithHeight(cfg.Height),
		)),
	)

	presentMode := renderer.PresentModeVSync
	if !cfg.VSync {
		presentMode = renderer.PresentModeUncapped
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		eng.Window(),
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
		renderer.WithForceSoftwareRenderer(cfg.Software),
		renderer.WithClearColor(wgpu.Color{R: 0.08, G: 0.10, B: 0.14, A: 1.0}),
	)

	ctrl := camera.NewOrbitController()
	cam := camera.NewCamera(
		camera.WithFov(float32(45.0*math.Pi/180.0)),
		camera.WithAspect(float32(eng.Window().Width())/float32(eng.Window().Height())),
		camera.WithNear(0.1),
		camera.WithFar(100),
		camera.WithController(ctrl),
	)

	lineShaders, litShaders, planeShaders := buildShaders()

	sc := scene.NewScene("orbit_demo", cam, r, litShaders.vert, litShaders.frag,
		scene.WithActive(true),
		scene.WithClipPlane(false, 0.75),
		scene.WithClipHeightBounds(-2, 2),
		scene.WithLightDirection(-0.5, -1, -0.3),
		scene.WithAmbientStrength(0.2),
	)

	// Reference grid and world axes share the unlit line pipeline.
	gridVerts, gridIdx := mesh.BuildGrid(10, 1)
	grid := mesh.NewMesh(
		mesh.WithName("grid"),
		mesh.WithGeometry(gridVerts, gridIdx),
		mesh.WithPipelineKey(pipelineKeyLine),
	)
	sc.Add(grid, lineShaders.vert, lineShaders.frag,
		pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
	)

	axesVerts, axesIdx := mesh.BuildAxes(2.5)
	axes := mesh.NewMesh(
		mesh.WithName("axes"),
		mesh.WithGeometry(axesVerts, axesIdx),
		mesh.WithPipelineKey(pipelineKeyLine),
	)
	sc.Add(axes, lineShaders.vert, lineShaders.frag)

	// The lit cube rotates about Y and is the only mesh the clip plane cuts.
	cubeVerts, cubeIdx := mesh.BuildCube(1, [4]float32{0.85, 0.35, 0.25, 1})
	cube := mesh.NewMesh(
		mesh.WithName("cube"),
		mesh.WithGeometry(cubeVerts, cubeIdx),
		mesh.WithPipelineKey(pipelineKeyLit),
		mesh.WithPosition(0, 0.5, 0),
		mesh.WithRotationSpeed(0, 0.8, 0),
	)
	sc.Add(cube, litShaders.vert, litShaders.frag,
		pipeline.WithCullMode(wgpu.CullModeBack),
	)

	// Translucent quad visualizing the clip plane. Added last so it blends over
	// the opaque geometry; depth writes stay off to keep the cube visible below.
	planeVerts, planeIdx := mesh.BuildPlaneQuad(3, [4]float32{0.25, 0.55, 0.95, 0.3})
	planeQuad := mesh.NewMesh(
		mesh.WithName("clip_plane"),
		mesh.WithGeometry(planeVerts, planeIdx),
		mesh.WithPipelineKey(pipelineKeyPlane),
		mesh.WithPosition(0, sc.ClipHeight(), 0),
		mesh.WithEnabled(false),
	)
	sc.Add(planeQuad, planeShaders.vert, planeShaders.frag,
		pipeline.WithBlendEnabled(true),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithCullMode(wgpu.CullModeNone),
	)

	eng.AddScene(0, sc)

	dispatcher := input.NewDispatcher(ctrl)
	dispatcher.Attach(eng.Window())
	setupKeys(eng, ctrl, sc, grid, axes, planeQuad)

	printBanner(cfg.Title)

	log.Printf("starting %s (%dx%d, msaa %dx)", cfg.Title, cfg.Width, cfg.Height, cfg.MSAA)
	eng.Run()
	return nil
}

// keyTracker records which keys are currently held. Key callbacks fire on the
// window's message pump thread while the tick callback reads on the engine's
// tick goroutine, so access is mutex-guarded.
type keyTracker struct {
	mu   *sync.Mutex
	held map[uint32]bool
}

func newKeyTracker() *keyTracker {
	return &keyTracker{
		mu:   &sync.Mutex{},
		held: make(map[uint32]bool),
	}
}

func (k *keyTracker) set(keyCode uint32, down bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[keyCode] = down
}

func (k *keyTracker) down(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[keyCode]
}

// setupKeys wires keyboard controls: clip plane toggling and height adjustment,
// grid/axes visibility, camera focus and reset, held-key panning, and quit.
func setupKeys(
	eng engine.Engine,
	ctrl camera.OrbitController,
	sc scene.Scene,
	grid, axes, planeQuad mesh.Mesh,
) {
	keys := newKeyTracker()

	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		keys.set(keyCode, true)

		switch keyCode {
		case common.KeyC:
			if sc.ToggleClipPlane() {
				fmt.Printf("[Clip] enabled at height %.2f\n", sc.ClipHeight())
			} else {
				fmt.Println("[Clip] disabled")
			}
		case common.KeyLeftBracket:
			fmt.Printf("[Clip] height %.2f\n", sc.AdjustClipHeight(-clipStep))
		case common.KeyRightBracket:
			fmt.Printf("[Clip] height %.2f\n", sc.AdjustClipHeight(clipStep))
		case common.KeyG:
			grid.SetEnabled(!grid.Enabled())
		case common.KeyX:
			axes.SetEnabled(!axes.Enabled())
		case common.KeyF:
			ctrl.FocusOn(0, 0.5, 0, 3, 0.6)
		case common.KeyR:
			ctrl.Reset()
		case common.KeyEsc:
			eng.Quit()
		}
	})

	eng.Window().SetKeyUpCallback(func(keyCode uint32) {
		keys.set(keyCode, false)
	})

	eng.SetTickCallback(func(dt float32) {
		// Keyboard panning uses synthetic pointer deltas so held keys move the
		// target at a steady on-screen rate regardless of zoom level.
		const panRate = 300 // synthetic pixels per second
		step := panRate * dt
		if keys.down(common.KeyW) {
			ctrl.Pan(0, step)
		}
		if keys.down(common.KeyS) {
			ctrl.Pan(0, -step)
		}
		if keys.down(common.KeyA) {
			ctrl.Pan(step, 0)
		}
		if keys.down(common.KeyD) {
			ctrl.Pan(-step, 0)
		}
		if keys.down(common.KeyQ) {
			ctrl.PanForward(step)
		}
		if keys.down(common.KeyE) {
			ctrl.PanForward(-step)
		}

		// Keep the indicator quad tracking the clip plane.
		planeQuad.SetEnabled(sc.ClipPlaneEnabled())
		planeQuad.SetPosition(0, sc.ClipHeight(), 0)
	})
}

// msaaSampleCount validates the configured MSAA sample count.
func msaaSampleCount(samples int) (renderer.MSAASampleCount, error) {
	switch samples {
	case 0, 1:
		return renderer.MSAAOff, nil
	case 4:
		return renderer.MSAA4x, nil
	case 8:
		return renderer.MSAA8x, nil
	case 16:
		return renderer.MSAA16x, nil
	default:
		return 0, fmt.Errorf("demo: unsupported msaa sample count %d (use 1, 4, 8, or 16)", samples)
	}
}

func printBanner(title string) {
	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Printf("║  %-52s║\n", title)
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Left-drag:  Orbit       Right-drag: Pan             ║")
	fmt.Println("║  Scroll:     Zoom        WASD:       Pan             ║")
	fmt.Println("║  Q/E:        Dolly in/out                            ║")
	fmt.Println("║  C:          Toggle clip plane                       ║")
	fmt.Println("║  [ / ]:      Lower/raise clip plane                  ║")
	fmt.Println("║  F:          Focus cube  R: Reset camera             ║")
	fmt.Println("║  G:          Toggle grid X: Toggle axes              ║")
	fmt.Println("║  Esc:        Quit                                    ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")
}

package input

import (
	"sync"

	"github.com/kestrel3d/kestrel/engine/camera"
	"github.com/kestrel3d/kestrel/engine/window"
)

// Mode identifies the dispatcher's current pointer interaction state.
type Mode int

const (
	// ModeIdle means no drag is in progress; pointer movement is ignored.
	ModeIdle Mode = iota
	// ModeOrbiting means a left-button drag is rotating the camera.
	ModeOrbiting
	// ModePanning means a right-button drag is translating the target.
	ModePanning
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeOrbiting:
		return "orbiting"
	case ModePanning:
		return "panning"
	default:
		return "idle"
	}
}

// Dispatcher routes raw pointer events to an OrbitController through an
// explicit drag state machine. Orbiting and panning are mutually exclusive:
// a drag of one kind must end before the other can begin. The pointer
// position is captured at drag start so the first motion event after a press
// produces a near-zero delta instead of a jump.
//
// The Begin/End/Move/Scroll methods are the raw machine; Attach wires them to
// a Window's callbacks. The controller reference is injected at construction,
// no package-level state is involved.
type Dispatcher interface {
	// Mode returns the current interaction state.
	//
	// Returns:
	//   - Mode: ModeIdle, ModeOrbiting, or ModePanning
	Mode() Mode

	// BeginOrbit starts an orbit drag at the given pointer position.
	// Ignored unless the dispatcher is idle.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	BeginOrbit(x, y int32)

	// EndOrbit ends an orbit drag. Ignored unless currently orbiting.
	EndOrbit()

	// BeginPan starts a pan drag at the given pointer position.
	// Ignored unless the dispatcher is idle.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	BeginPan(x, y int32)

	// EndPan ends a pan drag. Ignored unless currently panning.
	EndPan()

	// Move feeds a pointer position. While orbiting the delta rotates the
	// camera (dragging up tilts up); while panning it translates the target
	// so the scene follows the cursor. Ignored while idle.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	Move(x, y int32)

	// Scroll feeds a scroll wheel delta to the controller's zoom.
	//
	// Parameters:
	//   - delta: signed scroll amount (positive = zoom in)
	Scroll(delta float32)

	// Attach registers the dispatcher on a window's mouse callbacks:
	// left drag orbits, right drag pans, scroll zooms.
	//
	// Parameters:
	//   - w: the window to receive events from
	Attach(w window.Window)
}

type dispatcherImpl struct {
	mu *sync.Mutex

	controller camera.OrbitController

	mode         Mode
	lastX, lastY int32
}

var _ Dispatcher = &dispatcherImpl{}

// NewDispatcher creates a Dispatcher bound to the given controller.
// Panics if the controller is nil.
//
// Parameters:
//   - controller: the orbit controller to drive
//
// Returns:
//   - Dispatcher: the newly created dispatcher, in ModeIdle
func NewDispatcher(controller camera.OrbitController) Dispatcher {
	if controller == nil {
		panic("input: dispatcher requires a controller")
	}
	return &dispatcherImpl{
		mu:         &sync.Mutex{},
		controller: controller,
		mode:       ModeIdle,
	}
}

func (d *dispatcherImpl) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

func (d *dispatcherImpl) BeginOrbit(x, y int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != ModeIdle {
		return
	}
	d.mode = ModeOrbiting
	d.lastX = x
	d.lastY = y
}

func (d *dispatcherImpl) EndOrbit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != ModeOrbiting {
		return
	}
	d.mode = ModeIdle
}

func (d *dispatcherImpl) BeginPan(x, y int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != ModeIdle {
		return
	}
	d.mode = ModePanning
	d.lastX = x
	d.lastY = y
}

func (d *dispatcherImpl) EndPan() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != ModePanning {
		return
	}
	d.mode = ModeIdle
}

func (d *dispatcherImpl) Move(x, y int32) {
	d.mu.Lock()
	mode := d.mode
	if mode == ModeIdle {
		d.mu.Unlock()
		return
	}
	dx := float32(x - d.lastX)
	dy := float32(y - d.lastY)
	d.lastX = x
	d.lastY = y
	d.mu.Unlock()

	// Screen y grows downward; orbiting flips it so dragging up tilts up.
	// Panning keeps raw deltas so the scene tracks the cursor.
	switch mode {
	case ModeOrbiting:
		d.controller.Orbit(dx, -dy)
	case ModePanning:
		d.controller.Pan(dx, dy)
	}
}

func (d *dispatcherImpl) Scroll(delta float32) {
	d.controller.Zoom(delta)
}

func (d *dispatcherImpl) Attach(w window.Window) {
	w.SetLeftMouseDownCallback(d.BeginOrbit)
	w.SetLeftMouseUpCallback(func(x, y int32) { d.EndOrbit() })
	w.SetRightMouseDownCallback(d.BeginPan)
	w.SetRightMouseUpCallback(func(x, y int32) { d.EndPan() })
	w.SetMouseMoveCallback(d.Move)
	w.SetScrollCallback(d.Scroll)
}

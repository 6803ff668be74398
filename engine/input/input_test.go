package input

import (
	"math"
	"testing"

	"github.com/kestrel3d/kestrel/engine/camera"
)

func newDispatcher(t *testing.T) (Dispatcher, camera.OrbitController) {
	t.Helper()
	ctrl := camera.NewOrbitController()
	return NewDispatcher(ctrl), ctrl
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeIdle, "idle"},
		{ModeOrbiting, "orbiting"},
		{ModePanning, "panning"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestNewDispatcherRequiresController(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewDispatcher(nil) did not panic")
		}
	}()
	NewDispatcher(nil)
}

func TestDragTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(d Dispatcher)
		want Mode
	}{
		{"starts idle", func(d Dispatcher) {}, ModeIdle},
		{"left press orbits", func(d Dispatcher) { d.BeginOrbit(10, 10) }, ModeOrbiting},
		{"right press pans", func(d Dispatcher) { d.BeginPan(10, 10) }, ModePanning},
		{"orbit then release", func(d Dispatcher) {
			d.BeginOrbit(10, 10)
			d.EndOrbit()
		}, ModeIdle},
		{"pan then release", func(d Dispatcher) {
			d.BeginPan(10, 10)
			d.EndPan()
		}, ModeIdle},
		{"pan press during orbit ignored", func(d Dispatcher) {
			d.BeginOrbit(10, 10)
			d.BeginPan(20, 20)
		}, ModeOrbiting},
		{"orbit press during pan ignored", func(d Dispatcher) {
			d.BeginPan(10, 10)
			d.BeginOrbit(20, 20)
		}, ModePanning},
		{"pan release during orbit ignored", func(d Dispatcher) {
			d.BeginOrbit(10, 10)
			d.EndPan()
		}, ModeOrbiting},
		{"orbit release during pan ignored", func(d Dispatcher) {
			d.BeginPan(10, 10)
			d.EndOrbit()
		}, ModePanning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newDispatcher(t)
			tt.run(d)
			if got := d.Mode(); got != tt.want {
				t.Errorf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstMoveAfterPressIsZeroDelta(t *testing.T) {
	d, ctrl := newDispatcher(t)
	yaw, pitch := ctrl.Yaw(), ctrl.Pitch()

	// The press position seeds the last-known pointer position, so a move to
	// the same spot must not rotate the camera.
	d.BeginOrbit(400, 300)
	d.Move(400, 300)

	if got := ctrl.Yaw(); got != yaw {
		t.Errorf("yaw after zero-delta move = %v, want %v", got, yaw)
	}
	if got := ctrl.Pitch(); got != pitch {
		t.Errorf("pitch after zero-delta move = %v, want %v", got, pitch)
	}
}

func TestMoveWhileIdleIgnored(t *testing.T) {
	d, ctrl := newDispatcher(t)
	yaw := ctrl.Yaw()
	tx, ty, tz := ctrl.Target()

	d.Move(100, 100)
	d.Move(500, 500)

	if got := ctrl.Yaw(); got != yaw {
		t.Errorf("yaw changed by idle move: %v != %v", got, yaw)
	}
	gx, gy, gz := ctrl.Target()
	if gx != tx || gy != ty || gz != tz {
		t.Error("target changed by idle move")
	}
}

func TestOrbitDragRotates(t *testing.T) {
	d, ctrl := newDispatcher(t)
	yaw, pitch := ctrl.Yaw(), ctrl.Pitch()

	d.BeginOrbit(100, 100)
	d.Move(150, 80) // drag right and up

	if got := ctrl.Yaw(); got <= yaw {
		t.Errorf("yaw after rightward drag = %v, want > %v", got, yaw)
	}
	if got := ctrl.Pitch(); got <= pitch {
		t.Errorf("pitch after upward drag = %v, want > %v", got, pitch)
	}
}

func TestOrbitDeltaIsIncremental(t *testing.T) {
	d, ctrl := newDispatcher(t)
	start := ctrl.Yaw()

	d.BeginOrbit(0, 0)
	d.Move(10, 0)
	d.Move(20, 0)
	d.Move(30, 0)

	// Three moves of 10px each: total 30px of drag, not 10+20+30.
	want := start + 30*ctrl.OrbitSpeed()
	if got := ctrl.Yaw(); math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("yaw after incremental drags = %v, want %v", got, want)
	}
}

func TestPanDragTranslatesTarget(t *testing.T) {
	d, ctrl := newDispatcher(t)
	tx, ty, tz := ctrl.Target()
	yaw, pitch := ctrl.Yaw(), ctrl.Pitch()

	d.BeginPan(100, 100)
	d.Move(160, 140)

	gx, gy, gz := ctrl.Target()
	if gx == tx && gy == ty && gz == tz {
		t.Error("target unchanged after pan drag")
	}
	if got := ctrl.Yaw(); got != yaw {
		t.Errorf("yaw changed by pan drag: %v != %v", got, yaw)
	}
	if got := ctrl.Pitch(); got != pitch {
		t.Errorf("pitch changed by pan drag: %v != %v", got, pitch)
	}
}

func TestReleaseStopsTracking(t *testing.T) {
	d, ctrl := newDispatcher(t)

	d.BeginOrbit(100, 100)
	d.Move(110, 100)
	d.EndOrbit()
	yaw := ctrl.Yaw()

	d.Move(500, 500)
	if got := ctrl.Yaw(); got != yaw {
		t.Errorf("yaw changed after release: %v != %v", got, yaw)
	}
}

func TestScrollZooms(t *testing.T) {
	d, ctrl := newDispatcher(t)
	before := ctrl.Distance()

	d.Scroll(1)
	if got := ctrl.Distance(); got >= before {
		t.Errorf("distance after Scroll(1) = %v, want < %v", got, before)
	}

	// Scroll works in any mode, including mid-drag.
	d.BeginOrbit(0, 0)
	mid := ctrl.Distance()
	d.Scroll(-1)
	if got := ctrl.Distance(); got <= mid {
		t.Errorf("distance after Scroll(-1) while orbiting = %v, want > %v", got, mid)
	}
}

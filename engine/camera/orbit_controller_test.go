package camera

import (
	"math"
	"testing"

	"github.com/kestrel3d/kestrel/common"
)

const epsilon = 1e-3

func nearly(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func distanceFromTarget(oc OrbitController) float32 {
	px, py, pz := oc.Position()
	tx, ty, tz := oc.Target()
	dx := float64(px - tx)
	dy := float64(py - ty)
	dz := float64(pz - tz)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

func TestDefaultPose(t *testing.T) {
	oc := NewOrbitController()

	if got := oc.Distance(); !nearly(got, 5) {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := oc.Yaw(); !nearly(got, common.Radians(45)) {
		t.Errorf("Yaw() = %v, want %v", got, common.Radians(45))
	}
	if got := oc.Pitch(); !nearly(got, common.Radians(-25)) {
		t.Errorf("Pitch() = %v, want %v", got, common.Radians(-25))
	}
	if got := oc.MinDistance(); got != 0.5 {
		t.Errorf("MinDistance() = %v, want 0.5", got)
	}
	if got := oc.MaxDistance(); got != 100 {
		t.Errorf("MaxDistance() = %v, want 100", got)
	}
}

func TestPositionSphericalFormula(t *testing.T) {
	// target=(0,0,0), distance=5, yaw=45 deg, pitch=-25 deg:
	// x = z = 5*cos(25 deg)*cos(45 deg), y = -5*sin(25 deg).
	oc := NewOrbitController(
		WithTarget(0, 0, 0),
		WithDistance(5),
		WithYaw(common.Radians(45)),
		WithPitch(common.Radians(-25)),
	)

	x, y, z := oc.Position()
	if !nearly(x, 3.2043) || !nearly(y, -2.1131) || !nearly(z, 3.2043) {
		t.Errorf("Position() = (%v, %v, %v), want ≈ (3.2043, -2.1131, 3.2043)", x, y, z)
	}
}

func TestPositionStaysOnSphere(t *testing.T) {
	oc := NewOrbitController(WithTarget(1, 2, 3), WithDistance(7))

	moves := []func(){
		func() { oc.Orbit(120, -45) },
		func() { oc.Orbit(-300, 80) },
		func() { oc.Pan(50, -20) },
		func() { oc.Orbit(13, 13) },
		func() { oc.Pan(-50, 20) },
	}
	for i, move := range moves {
		move()
		if got := distanceFromTarget(oc); !nearly(got, oc.Distance()) {
			t.Errorf("after move %d: |position-target| = %v, want %v", i, got, oc.Distance())
		}
	}
}

func TestOrbit(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy    float32
		wantYaw   float32
		wantPitch float32
	}{
		{"horizontal drag", 100, 0, common.Radians(45) + 100*0.01, common.Radians(-25)},
		{"vertical drag", 0, 50, common.Radians(45), common.Radians(-25) + 50*0.01},
		{"diagonal drag", -30, 10, common.Radians(45) - 30*0.01, common.Radians(-25) + 10*0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oc := NewOrbitController()
			oc.Orbit(tt.dx, tt.dy)
			if got := oc.Yaw(); !nearly(got, tt.wantYaw) {
				t.Errorf("Orbit(%v, %v) yaw = %v, want %v", tt.dx, tt.dy, got, tt.wantYaw)
			}
			if got := oc.Pitch(); !nearly(got, tt.wantPitch) {
				t.Errorf("Orbit(%v, %v) pitch = %v, want %v", tt.dx, tt.dy, got, tt.wantPitch)
			}
		})
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	oc := NewOrbitController(WithPitch(common.Radians(89)))

	// A huge upward drag must stop exactly at the limit.
	oc.Orbit(0, 1000)
	if got, limit := oc.Pitch(), oc.PitchLimit(); !nearly(got, limit) {
		t.Errorf("pitch after Orbit(0, 1000) = %v, want clamp at %v", got, limit)
	}

	oc.Orbit(0, -1e7)
	if got, limit := oc.Pitch(), oc.PitchLimit(); !nearly(got, -limit) {
		t.Errorf("pitch after Orbit(0, -1e7) = %v, want clamp at %v", got, -limit)
	}
}

func TestYawUnbounded(t *testing.T) {
	oc := NewOrbitController(WithYaw(0))

	// Many full revolutions; yaw accumulates without wrapping.
	for i := 0; i < 100; i++ {
		oc.Orbit(float32(2*math.Pi/0.01), 0)
	}
	want := float32(100 * 2 * math.Pi)
	if got := oc.Yaw(); math.Abs(float64(got-want)) > 0.1 {
		t.Errorf("yaw after 100 revolutions = %v, want ≈ %v (no wrapping)", got, want)
	}
}

func TestZoom(t *testing.T) {
	tests := []struct {
		name  string
		delta float32
		want  float32
	}{
		{"zoom in one step", 1, 5 * 0.9},
		{"zoom out one step", -1, 5 / 0.9},
		{"zoom in three steps", 3, 5 * 0.9 * 0.9 * 0.9},
		{"zero is a no-op", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oc := NewOrbitController()
			oc.Zoom(tt.delta)
			if got := oc.Distance(); !nearly(got, tt.want) {
				t.Errorf("Zoom(%v) distance = %v, want %v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestZoomClampsDistance(t *testing.T) {
	oc := NewOrbitController(WithDistance(0.5))

	oc.Zoom(10)
	if got := oc.Distance(); got != 0.5 {
		t.Errorf("distance after Zoom(10) at minimum = %v, want 0.5", got)
	}

	oc.Zoom(-1e6)
	if got := oc.Distance(); got != 100 {
		t.Errorf("distance after huge zoom out = %v, want clamp at 100", got)
	}
}

func TestZoomInverseRestoresDistance(t *testing.T) {
	oc := NewOrbitController()
	before := oc.Distance()

	oc.Zoom(2.5)
	oc.Zoom(-2.5)
	if got := oc.Distance(); !nearly(got, before) {
		t.Errorf("distance after Zoom(2.5); Zoom(-2.5) = %v, want %v", got, before)
	}
}

func TestPanInverseRestoresTarget(t *testing.T) {
	oc := NewOrbitController(WithTarget(1, -2, 3))

	oc.Pan(40, -25)
	oc.Pan(-40, 25)
	x, y, z := oc.Target()
	if !nearly(x, 1) || !nearly(y, -2) || !nearly(z, 3) {
		t.Errorf("target after inverse pans = (%v, %v, %v), want (1, -2, 3)", x, y, z)
	}
}

func TestPanPreservesAngles(t *testing.T) {
	oc := NewOrbitController()
	yaw, pitch, dist := oc.Yaw(), oc.Pitch(), oc.Distance()

	oc.Pan(100, 60)
	if got := oc.Yaw(); got != yaw {
		t.Errorf("yaw after Pan = %v, want %v", got, yaw)
	}
	if got := oc.Pitch(); got != pitch {
		t.Errorf("pitch after Pan = %v, want %v", got, pitch)
	}
	if got := oc.Distance(); got != dist {
		t.Errorf("distance after Pan = %v, want %v", got, dist)
	}
}

func TestPanScalesWithDistance(t *testing.T) {
	near := NewOrbitController(WithDistance(2))
	far := NewOrbitController(WithDistance(20))

	near.Pan(100, 0)
	far.Pan(100, 0)

	nx, _, nz := near.Target()
	fx, _, fz := far.Target()
	nearLen := math.Sqrt(float64(nx*nx + nz*nz))
	farLen := math.Sqrt(float64(fx*fx + fz*fz))
	if math.Abs(farLen/nearLen-10) > 1e-3 {
		t.Errorf("pan offset ratio at 10x distance = %v, want 10", farLen/nearLen)
	}
}

func TestNoOpMutators(t *testing.T) {
	oc := NewOrbitController()
	yaw, pitch, dist := oc.Yaw(), oc.Pitch(), oc.Distance()
	tx, ty, tz := oc.Target()

	oc.Orbit(0, 0)
	oc.Pan(0, 0)
	oc.Zoom(0)

	if got := oc.Yaw(); got != yaw {
		t.Errorf("yaw changed by no-op mutators: %v != %v", got, yaw)
	}
	if got := oc.Pitch(); got != pitch {
		t.Errorf("pitch changed by no-op mutators: %v != %v", got, pitch)
	}
	if got := oc.Distance(); got != dist {
		t.Errorf("distance changed by no-op mutators: %v != %v", got, dist)
	}
	gx, gy, gz := oc.Target()
	if gx != tx || gy != ty || gz != tz {
		t.Errorf("target changed by no-op mutators: (%v,%v,%v) != (%v,%v,%v)", gx, gy, gz, tx, ty, tz)
	}
}

func TestNonFiniteDeltasIgnored(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	oc := NewOrbitController()
	yaw, pitch, dist := oc.Yaw(), oc.Pitch(), oc.Distance()
	tx, ty, tz := oc.Target()

	oc.Orbit(nan, 5)
	oc.Orbit(5, inf)
	oc.Zoom(nan)
	oc.Zoom(inf)
	oc.Pan(nan, nan)
	oc.SetDistance(nan)
	oc.SetYaw(inf)
	oc.SetPitch(nan)

	if got := oc.Yaw(); got != yaw {
		t.Errorf("yaw changed by non-finite input: %v != %v", got, yaw)
	}
	if got := oc.Pitch(); got != pitch {
		t.Errorf("pitch changed by non-finite input: %v != %v", got, pitch)
	}
	if got := oc.Distance(); got != dist {
		t.Errorf("distance changed by non-finite input: %v != %v", got, dist)
	}
	gx, gy, gz := oc.Target()
	if gx != tx || gy != ty || gz != tz {
		t.Errorf("target changed by non-finite input")
	}
}

func TestSettersClamp(t *testing.T) {
	oc := NewOrbitController()

	oc.SetDistance(1000)
	if got := oc.Distance(); got != 100 {
		t.Errorf("SetDistance(1000) = %v, want 100", got)
	}
	oc.SetDistance(0.01)
	if got := oc.Distance(); got != 0.5 {
		t.Errorf("SetDistance(0.01) = %v, want 0.5", got)
	}

	oc.SetPitch(common.Radians(200))
	if got, limit := oc.Pitch(), oc.PitchLimit(); !nearly(got, limit) {
		t.Errorf("SetPitch(200deg) = %v, want clamp at %v", got, limit)
	}
}

func TestConstructionClamps(t *testing.T) {
	oc := NewOrbitController(
		WithDistance(0.001),
		WithPitch(common.Radians(170)),
	)

	if got := oc.Distance(); got != 0.5 {
		t.Errorf("constructed distance = %v, want clamp at 0.5", got)
	}
	if got, limit := oc.Pitch(), oc.PitchLimit(); !nearly(got, limit) {
		t.Errorf("constructed pitch = %v, want clamp at %v", got, limit)
	}
}

func TestFocusOnConverges(t *testing.T) {
	oc := NewOrbitController()
	oc.FocusOn(2, 1, -3, 8, 0.5)

	// Advance well past the transition duration.
	for i := 0; i < 60; i++ {
		oc.Update(1.0 / 60.0)
	}

	x, y, z := oc.Target()
	if !nearly(x, 2) || !nearly(y, 1) || !nearly(z, -3) {
		t.Errorf("target after focus = (%v, %v, %v), want (2, 1, -3)", x, y, z)
	}
	if got := oc.Distance(); !nearly(got, 8) {
		t.Errorf("distance after focus = %v, want 8", got)
	}
}

func TestFocusOnZeroDurationSnaps(t *testing.T) {
	oc := NewOrbitController()
	oc.FocusOn(4, 0, 4, 2, 0)

	x, y, z := oc.Target()
	if !nearly(x, 4) || !nearly(y, 0) || !nearly(z, 4) {
		t.Errorf("target after instant focus = (%v, %v, %v), want (4, 0, 4)", x, y, z)
	}
	if got := oc.Distance(); !nearly(got, 2) {
		t.Errorf("distance after instant focus = %v, want 2", got)
	}
}

func TestManualInputCancelsFocus(t *testing.T) {
	oc := NewOrbitController()
	oc.FocusOn(10, 10, 10, 50, 1.0)
	oc.Update(0.1)

	// Manual orbiting cancels the fly-to; further updates must not move the target.
	oc.Orbit(5, 5)
	tx, ty, tz := oc.Target()
	dist := oc.Distance()

	for i := 0; i < 30; i++ {
		oc.Update(1.0 / 30.0)
	}
	gx, gy, gz := oc.Target()
	if gx != tx || gy != ty || gz != tz {
		t.Errorf("target drifted after cancelled focus: (%v,%v,%v) != (%v,%v,%v)", gx, gy, gz, tx, ty, tz)
	}
	if got := oc.Distance(); got != dist {
		t.Errorf("distance drifted after cancelled focus: %v != %v", got, dist)
	}
}

func TestReset(t *testing.T) {
	oc := NewOrbitController(
		WithTarget(1, 2, 3),
		WithDistance(12),
		WithYaw(0.4),
		WithPitch(-0.2),
	)

	oc.Orbit(500, 300)
	oc.Zoom(-4)
	oc.Pan(80, -60)
	oc.Reset()

	x, y, z := oc.Target()
	if !nearly(x, 1) || !nearly(y, 2) || !nearly(z, 3) {
		t.Errorf("target after Reset = (%v, %v, %v), want (1, 2, 3)", x, y, z)
	}
	if got := oc.Distance(); !nearly(got, 12) {
		t.Errorf("distance after Reset = %v, want 12", got)
	}
	if got := oc.Yaw(); !nearly(got, 0.4) {
		t.Errorf("yaw after Reset = %v, want 0.4", got)
	}
	if got := oc.Pitch(); !nearly(got, -0.2) {
		t.Errorf("pitch after Reset = %v, want -0.2", got)
	}
}

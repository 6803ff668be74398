package camera

import (
	"sync"
	"testing"

	"github.com/kestrel3d/kestrel/common"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()

	if got := c.Fov(); !nearly(got, common.Radians(45)) {
		t.Errorf("Fov() = %v, want %v", got, common.Radians(45))
	}
	if got := c.Aspect(); got != 1 {
		t.Errorf("Aspect() = %v, want 1", got)
	}
	if got := c.Near(); !nearly(got, 0.1) {
		t.Errorf("Near() = %v, want 0.1", got)
	}
	if got := c.Far(); got != 100 {
		t.Errorf("Far() = %v, want 100", got)
	}
	x, y, z := c.Up()
	if x != 0 || y != 1 || z != 0 {
		t.Errorf("Up() = (%v, %v, %v), want (0, 1, 0)", x, y, z)
	}
	if c.Controller() != nil {
		t.Error("Controller() = non-nil, want nil before attach")
	}
}

func TestCameraViewMatrixMatchesController(t *testing.T) {
	ctrl := NewOrbitController()
	c := NewCamera(WithController(ctrl))

	px, py, pz := ctrl.Position()
	tx, ty, tz := ctrl.Target()

	var want [16]float32
	common.LookAt(want[:], px, py, pz, tx, ty, tz, 0, 1, 0)

	got := c.ViewMatrix()
	for i := range want {
		if !nearly(got[i], want[i]) {
			t.Errorf("ViewMatrix()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCameraViewMatrixCentersTarget(t *testing.T) {
	ctrl := NewOrbitController(WithTarget(2, 0, -1), WithDistance(6))
	c := NewCamera(WithController(ctrl))

	// The target must land on the view-space -Z axis, distance units away.
	view := c.ViewMatrix()
	tx, ty, tz := ctrl.Target()
	x := view[0]*tx + view[4]*ty + view[8]*tz + view[12]
	y := view[1]*tx + view[5]*ty + view[9]*tz + view[13]
	z := view[2]*tx + view[6]*ty + view[10]*tz + view[14]
	if !nearly(x, 0) || !nearly(y, 0) || !nearly(z, -6) {
		t.Errorf("target in view space = (%v, %v, %v), want (0, 0, -6)", x, y, z)
	}
}

func TestCameraUpdateTracksController(t *testing.T) {
	ctrl := NewOrbitController()
	c := NewCamera(WithController(ctrl))

	before := c.ViewMatrix()
	ctrl.Orbit(200, -100)
	c.Update()
	after := c.ViewMatrix()

	same := true
	for i := range before {
		if before[i] != after[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("ViewMatrix() unchanged after controller orbit + Update()")
	}
}

func TestCameraViewProjection(t *testing.T) {
	ctrl := NewOrbitController()
	c := NewCamera(WithController(ctrl), WithAspect(16.0/9.0))

	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	var want [16]float32
	common.Mul4(want[:], proj[:], view[:])

	got := c.ViewProjectionMatrix()
	for i := range want {
		if !nearly(got[i], want[i]) {
			t.Errorf("ViewProjectionMatrix()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCameraInverseProjection(t *testing.T) {
	ctrl := NewOrbitController()
	c := NewCamera(WithController(ctrl), WithAspect(1.5))

	proj := c.ProjectionMatrix()
	inv := c.InverseProjectionMatrix()

	var out [16]float32
	common.Mul4(out[:], proj[:], inv[:])
	var id [16]float32
	common.Identity(id[:])
	for i := range id {
		if !nearly(out[i], id[i]) {
			t.Errorf("proj * invProj [%d] = %v, want %v", i, out[i], id[i])
		}
	}
}

func TestCameraSetAspect(t *testing.T) {
	ctrl := NewOrbitController()
	c := NewCamera(WithController(ctrl))

	c.SetAspect(2)
	proj := c.ProjectionMatrix()
	if !nearly(proj[0]*2, proj[5]) {
		t.Errorf("projection aspect mismatch: out[0]=%v, out[5]=%v", proj[0], proj[5])
	}
}

func TestGPUCameraUniform(t *testing.T) {
	u := &GPUCameraUniform{
		CameraPosition: [3]float32{1, 2, 3},
	}
	common.Identity(u.ViewProj[:])

	if got := u.Size(); got != 80 {
		t.Errorf("Size() = %d, want 80", got)
	}
	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("Marshal() length = %d, want 80", len(buf))
	}
	// Spot-check the first matrix element and the position block.
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0x80 || buf[3] != 0x3f {
		t.Errorf("Marshal()[0:4] = % x, want float32(1) little-endian", buf[0:4])
	}
	if buf[64] != 0 || buf[65] != 0 || buf[66] != 0x80 || buf[67] != 0x3f {
		t.Errorf("Marshal()[64:68] = % x, want float32(1) little-endian", buf[64:68])
	}
}

func TestNewCameraProviderNamesUnique(t *testing.T) {
	const n = 16
	labels := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			labels <- NewCamera().BindGroupProvider().Label()
		}()
	}
	wg.Wait()
	close(labels)

	seen := make(map[string]bool, n)
	for label := range labels {
		if seen[label] {
			t.Fatalf("duplicate provider label %q", label)
		}
		seen[label] = true
	}
}

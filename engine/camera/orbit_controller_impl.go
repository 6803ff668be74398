package camera

import (
	"math"
	"sync"

	"github.com/kestrel3d/kestrel/common"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// orbitPose captures a full camera pose so Reset can restore the construction
// state.
type orbitPose struct {
	target   [3]float32
	distance float32
	yaw      float32
	pitch    float32
}

// focusTween holds the per-component tweens of an in-flight FocusOn
// transition. All four tweens share the same duration and easing.
type focusTween struct {
	targetX  *gween.Tween
	targetY  *gween.Tween
	targetZ  *gween.Tween
	distance *gween.Tween
}

// orbitControllerImpl is the single implementation of OrbitController.
// Orbit and zoom mutate the spherical coordinates; pan translates the target
// along the camera's local axes, carrying the whole orbit sphere with it. The
// world-space position is cached and recomputed after every mutation.
type orbitControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32

	// Spherical coordinates (offset from target)
	distance float32
	yaw      float32 // Horizontal angle around Y axis, unbounded
	pitch    float32 // Vertical angle from horizontal plane

	// Constraints
	minDistance float32
	maxDistance float32
	pitchLimit  float32

	// Sensitivity settings
	orbitSpeed float32
	panSpeed   float32
	zoomSpeed  float32

	// Construction pose for Reset
	home orbitPose

	// In-flight FocusOn transition, nil when idle
	focus *focusTween
}

// Compile-time interface compliance check
var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates a new orbit controller with the default demo pose:
// orbiting the origin at distance 5, yaw 45 degrees, pitch -25 degrees.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		mu:     &sync.Mutex{},
		target: [3]float32{0, 0, 0},

		distance: 5.0,
		yaw:      common.Radians(45),
		pitch:    common.Radians(-25),

		minDistance: 0.5,
		maxDistance: 100.0,
		pitchLimit:  common.Radians(89),

		orbitSpeed: 0.01,
		panSpeed:   0.002,
		zoomSpeed:  0.9,
	}

	for _, option := range options {
		option(oc)
	}

	oc.distance = common.Clamp(oc.distance, oc.minDistance, oc.maxDistance)
	oc.pitch = common.Clamp(oc.pitch, -oc.pitchLimit, oc.pitchLimit)
	oc.home = orbitPose{
		target:   oc.target,
		distance: oc.distance,
		yaw:      oc.yaw,
		pitch:    oc.pitch,
	}

	oc.updatePosition()
	return oc
}

// --- internal helpers ---

// finite reports whether every value is a usable real number.
func finite(values ...float32) bool {
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// updatePosition recomputes the camera position from spherical coordinates.
// Must be called whenever distance, yaw, pitch, or target changes.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) updatePosition() {
	cosPitch := float32(math.Cos(float64(oc.pitch)))
	sinPitch := float32(math.Sin(float64(oc.pitch)))
	cosYaw := float32(math.Cos(float64(oc.yaw)))
	sinYaw := float32(math.Sin(float64(oc.yaw)))

	oc.position[0] = oc.target[0] + oc.distance*cosPitch*cosYaw
	oc.position[1] = oc.target[1] + oc.distance*sinPitch
	oc.position[2] = oc.target[2] + oc.distance*cosPitch*sinYaw
}

// localAxes computes the camera's local coordinate axes consistent with the
// LookAt matrix. Returns right (rx,ry,rz), up (ux,uy,uz), and forward
// (fx,fy,fz) vectors. If position and target coincide, all returned components
// are zero.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) localAxes() (rx, ry, rz, ux, uy, uz, fx, fy, fz float32) {
	// backward = normalize(position - target), matching LookAt's z-axis
	bx := oc.position[0] - oc.target[0]
	by := oc.position[1] - oc.target[1]
	bz := oc.position[2] - oc.target[2]
	bLen := float32(math.Sqrt(float64(bx*bx + by*by + bz*bz)))
	if bLen < 1e-8 {
		return
	}
	bx /= bLen
	by /= bLen
	bz /= bLen

	// right = normalize(cross(worldUp, backward)) where worldUp = (0, 1, 0)
	// cross((0,1,0), (bx,by,bz)) = (bz, 0, -bx)
	rx = bz
	rz = -bx
	rLen := float32(math.Sqrt(float64(rx*rx + rz*rz)))
	if rLen < 1e-8 {
		return
	}
	rx /= rLen
	rz /= rLen

	// up = cross(backward, right), matching LookAt's y-axis
	ux = by*rz - bz*ry
	uy = bz*rx - bx*rz
	uz = bx*ry - by*rx

	// forward = -backward
	fx = -bx
	fy = -by
	fz = -bz
	return
}

// cancelFocus drops any in-flight focus transition; manual input always wins.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) cancelFocus() {
	oc.focus = nil
}

// --- pointer-delta mutators ---

func (oc *orbitControllerImpl) Orbit(dx, dy float32) {
	if !finite(dx, dy) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if dx == 0 && dy == 0 {
		return
	}
	oc.cancelFocus()
	oc.yaw += dx * oc.orbitSpeed
	oc.pitch = common.Clamp(oc.pitch+dy*oc.orbitSpeed, -oc.pitchLimit, oc.pitchLimit)
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Zoom(delta float32) {
	if !finite(delta) || delta == 0 {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.cancelFocus()
	oc.distance *= float32(math.Pow(float64(oc.zoomSpeed), float64(delta)))
	oc.distance = common.Clamp(oc.distance, oc.minDistance, oc.maxDistance)
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Pan(dx, dy float32) {
	if !finite(dx, dy) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if dx == 0 && dy == 0 {
		return
	}
	oc.cancelFocus()

	rx, _, rz, ux, uy, uz, _, _, _ := oc.localAxes()
	scale := oc.distance * oc.panSpeed

	oc.target[0] += -dx*scale*rx + dy*scale*ux
	oc.target[1] += dy * scale * uy
	oc.target[2] += -dx*scale*rz + dy*scale*uz
	oc.updatePosition()
}

func (oc *orbitControllerImpl) PanForward(delta float32) {
	if !finite(delta) || delta == 0 {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.cancelFocus()

	_, _, _, _, _, _, fx, fy, fz := oc.localAxes()
	offset := delta * oc.distance * oc.panSpeed

	oc.target[0] += fx * offset
	oc.target[1] += fy * offset
	oc.target[2] += fz * offset
	oc.updatePosition()
}

// --- accessors ---

func (oc *orbitControllerImpl) Position() (x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.position[0], oc.position[1], oc.position[2]
}

func (oc *orbitControllerImpl) Target() (x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target[0], oc.target[1], oc.target[2]
}

func (oc *orbitControllerImpl) SetTarget(x, y, z float32) {
	if !finite(x, y, z) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.cancelFocus()
	oc.target[0] = x
	oc.target[1] = y
	oc.target[2] = z
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Distance() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.distance
}

func (oc *orbitControllerImpl) SetDistance(distance float32) {
	if !finite(distance) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.cancelFocus()
	oc.distance = common.Clamp(distance, oc.minDistance, oc.maxDistance)
	oc.updatePosition()
}

func (oc *orbitControllerImpl) MinDistance() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.minDistance
}

func (oc *orbitControllerImpl) MaxDistance() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.maxDistance
}

func (oc *orbitControllerImpl) Yaw() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.yaw
}

func (oc *orbitControllerImpl) SetYaw(yaw float32) {
	if !finite(yaw) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.cancelFocus()
	oc.yaw = yaw
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Pitch() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.pitch
}

func (oc *orbitControllerImpl) SetPitch(pitch float32) {
	if !finite(pitch) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.cancelFocus()
	oc.pitch = common.Clamp(pitch, -oc.pitchLimit, oc.pitchLimit)
	oc.updatePosition()
}

func (oc *orbitControllerImpl) PitchLimit() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.pitchLimit
}

func (oc *orbitControllerImpl) OrbitSpeed() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.orbitSpeed
}

func (oc *orbitControllerImpl) PanSpeed() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.panSpeed
}

func (oc *orbitControllerImpl) ZoomSpeed() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.zoomSpeed
}

// --- focus transition ---

func (oc *orbitControllerImpl) FocusOn(x, y, z, distance, duration float32) {
	if !finite(x, y, z, distance, duration) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()

	distance = common.Clamp(distance, oc.minDistance, oc.maxDistance)
	if duration <= 0 {
		oc.cancelFocus()
		oc.target = [3]float32{x, y, z}
		oc.distance = distance
		oc.updatePosition()
		return
	}

	oc.focus = &focusTween{
		targetX:  gween.New(oc.target[0], x, duration, ease.OutQuad),
		targetY:  gween.New(oc.target[1], y, duration, ease.OutQuad),
		targetZ:  gween.New(oc.target[2], z, duration, ease.OutQuad),
		distance: gween.New(oc.distance, distance, duration, ease.OutQuad),
	}
}

func (oc *orbitControllerImpl) Update(dt float32) {
	if !finite(dt) || dt <= 0 {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if oc.focus == nil {
		return
	}

	var done bool
	oc.target[0], _ = oc.focus.targetX.Update(dt)
	oc.target[1], _ = oc.focus.targetY.Update(dt)
	oc.target[2], _ = oc.focus.targetZ.Update(dt)
	oc.distance, done = oc.focus.distance.Update(dt)
	oc.distance = common.Clamp(oc.distance, oc.minDistance, oc.maxDistance)
	if done {
		oc.focus = nil
	}
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Reset() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.cancelFocus()
	oc.target = oc.home.target
	oc.distance = oc.home.distance
	oc.yaw = oc.home.yaw
	oc.pitch = oc.home.pitch
	oc.updatePosition()
}

package camera

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithTarget sets the initial look-at/pivot point.
//
// Parameters:
//   - x: X coordinate of the target
//   - y: Y coordinate of the target
//   - z: Z coordinate of the target
//
// Returns:
//   - OrbitControllerOption: functional option to set the target position
func WithTarget(x, y, z float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.target[0] = x
		oc.target[1] = y
		oc.target[2] = z
	}
}

// WithDistance sets the initial orbit distance from the target.
// The value is clamped to the distance bounds once all options are applied.
//
// Parameters:
//   - distance: distance from the orbit target
//
// Returns:
//   - OrbitControllerOption: functional option to set the distance
func WithDistance(distance float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.distance = distance
	}
}

// WithYaw sets the initial horizontal angle around the Y axis.
//
// Parameters:
//   - yaw: horizontal angle in radians (0 = +X axis)
//
// Returns:
//   - OrbitControllerOption: functional option to set the yaw
func WithYaw(yaw float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.yaw = yaw
	}
}

// WithPitch sets the initial vertical angle from the horizontal plane.
// The value is clamped to the pitch limit once all options are applied.
//
// Parameters:
//   - pitch: vertical angle in radians (0 = horizontal, negative looks up at the target)
//
// Returns:
//   - OrbitControllerOption: functional option to set the pitch
func WithPitch(pitch float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.pitch = pitch
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance.
//
// Parameters:
//   - min: minimum zoom distance (must be > 0 so the view never degenerates)
//   - max: maximum zoom distance
//
// Returns:
//   - OrbitControllerOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minDistance = min
		oc.maxDistance = max
	}
}

// WithPitchLimit sets the maximum pitch magnitude.
//
// Parameters:
//   - limit: pitch bound in radians, strictly less than pi/2 (prevents flipping over the poles)
//
// Returns:
//   - OrbitControllerOption: functional option to set the pitch limit
func WithPitchLimit(limit float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.pitchLimit = limit
	}
}

// WithOrbitSpeed sets the pointer-to-radians orbit sensitivity.
//
// Parameters:
//   - speed: radians per pixel of drag
//
// Returns:
//   - OrbitControllerOption: functional option to set orbit speed
func WithOrbitSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.orbitSpeed = speed
	}
}

// WithPanSpeed sets the pan sensitivity multiplier.
//
// Parameters:
//   - speed: multiplier for pan input (scaled further by distance)
//
// Returns:
//   - OrbitControllerOption: functional option to set pan speed
func WithPanSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.panSpeed = speed
	}
}

// WithZoomSpeed sets the per-scroll-unit multiplicative zoom factor.
//
// Parameters:
//   - speed: zoom factor, configured < 1 so positive scroll zooms in
//
// Returns:
//   - OrbitControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.zoomSpeed = speed
	}
}

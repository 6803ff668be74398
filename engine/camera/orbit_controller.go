package camera

// OrbitController defines the interface for the orbit camera model.
// Controllers own positional state (target, distance, yaw, pitch). Camera reads
// from the controller and computes view/projection matrices. Pose is mutated by
// pointer-style deltas (Orbit/Pan/Zoom) or set directly through the accessors;
// the derived world-space position always sits exactly distance units from the
// target.
type OrbitController interface {
	// Orbit rotates the camera around the target from pointer movement deltas.
	// Positive dx increases yaw (orbits clockwise seen from above); positive dy
	// increases pitch (tilts up). Pitch is clamped to [-PitchLimit, +PitchLimit].
	// Non-finite deltas are ignored.
	//
	// Parameters:
	//   - dx: horizontal pointer delta in pixels
	//   - dy: vertical pointer delta in pixels
	Orbit(dx, dy float32)

	// Zoom adjusts the orbit distance multiplicatively from scroll input.
	// Positive delta zooms in (distance *= ZoomSpeed^delta with ZoomSpeed < 1);
	// negative delta zooms out. The result is clamped to
	// [MinDistance, MaxDistance]. A zero or non-finite delta is ignored.
	//
	// Parameters:
	//   - delta: signed scroll amount
	Zoom(delta float32)

	// Pan translates the target along the camera's local right and up axes.
	// The translation is scaled by distance so on-screen drag speed stays
	// roughly constant at any zoom level. Positive dx drags the scene right
	// (target moves left); positive dy drags it down (target moves up).
	// Non-finite deltas are ignored.
	//
	// Parameters:
	//   - dx: horizontal pointer delta in pixels
	//   - dy: vertical pointer delta in pixels
	Pan(dx, dy float32)

	// PanForward translates the target along the camera's forward axis (dolly).
	// Positive delta moves toward the camera's look direction.
	//
	// Parameters:
	//   - delta: pan amount scaled by distance and PanSpeed
	PanForward(delta float32)

	// Position returns the camera's world-space position derived from
	// (target, distance, yaw, pitch).
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at/pivot point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at/pivot point and recomputes position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Distance returns the current orbit distance from the target.
	//
	// Returns:
	//   - float32: current distance
	Distance() float32

	// SetDistance sets the orbit distance directly, clamped to
	// [MinDistance, MaxDistance].
	//
	// Parameters:
	//   - distance: new distance from target
	SetDistance(distance float32)

	// MinDistance returns the minimum allowed orbit distance.
	//
	// Returns:
	//   - float32: minimum zoom distance
	MinDistance() float32

	// MaxDistance returns the maximum allowed orbit distance.
	//
	// Returns:
	//   - float32: maximum zoom distance
	MaxDistance() float32

	// Yaw returns the current horizontal angle around the Y axis.
	// Yaw is unbounded; it is never wrapped or normalized.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// SetYaw sets the horizontal angle directly and recomputes position.
	//
	// Parameters:
	//   - yaw: new horizontal angle in radians
	SetYaw(yaw float32)

	// Pitch returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// SetPitch sets the vertical angle directly, clamped to
	// [-PitchLimit, +PitchLimit].
	//
	// Parameters:
	//   - pitch: new vertical angle in radians
	SetPitch(pitch float32)

	// PitchLimit returns the maximum magnitude the pitch may reach, strictly
	// less than 90 degrees so the view basis never degenerates at the poles.
	//
	// Returns:
	//   - float32: pitch limit in radians
	PitchLimit() float32

	// OrbitSpeed returns the pointer-to-radians orbit sensitivity.
	//
	// Returns:
	//   - float32: radians per pixel of drag
	OrbitSpeed() float32

	// PanSpeed returns the pan sensitivity (scaled further by distance).
	//
	// Returns:
	//   - float32: multiplier for pan input
	PanSpeed() float32

	// ZoomSpeed returns the per-scroll-unit multiplicative zoom factor.
	//
	// Returns:
	//   - float32: zoom factor (< 1 means positive scroll zooms in)
	ZoomSpeed() float32

	// FocusOn starts an eased fly-to of the target and distance over the given
	// duration. The transition is advanced by Update and is cancelled by any
	// manual pose mutation (Orbit, Zoom, Pan, or a direct setter).
	//
	// Parameters:
	//   - x, y, z: world-space point to center on
	//   - distance: orbit distance to arrive at (clamped to bounds)
	//   - duration: transition time in seconds
	FocusOn(x, y, z, distance, duration float32)

	// Update advances any in-flight focus transition.
	// Should be called once per frame (typically in the tick callback).
	// A no-op when no transition is active.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous update
	Update(dt float32)

	// Reset restores the pose the controller was constructed with and cancels
	// any in-flight focus transition.
	Reset()
}

package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithPrepWorkers sets the number of worker goroutines used during the parallel
// CPU prep phase of PrepareFrame. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput with many animated meshes; lower values
// reduce scheduling overhead for simple scenes.
//
// Parameters:
//   - n: the number of prep workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPrepWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.prepWorkers = n
	}
}

// WithClipPlane sets the initial clipping plane state. The plane is horizontal
// with a +Y normal at the given world height; fragments above it are discarded
// by shaders that honor the plane when enabled.
//
// Parameters:
//   - enabled: whether clipping starts active
//   - height: the initial plane height in world units
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClipPlane(enabled bool, height float32) SceneBuilderOption {
	return func(s *scene) {
		s.clipEnabled = enabled
		s.clipHeight = height
	}
}

// WithClipHeightBounds sets the range the clipping plane height is clamped to.
// Default is [-3, 3].
//
// Parameters:
//   - minHeight: the lowest allowed plane height
//   - maxHeight: the highest allowed plane height
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClipHeightBounds(minHeight, maxHeight float32) SceneBuilderOption {
	return func(s *scene) {
		if minHeight > maxHeight {
			minHeight, maxHeight = maxHeight, minHeight
		}
		s.clipHeightMin = minHeight
		s.clipHeightMax = maxHeight
	}
}

// WithLightDirection sets the direction the scene's directional light travels.
// The direction is normalized before upload. Default is (-0.5, -1, -0.3).
//
// Parameters:
//   - x, y, z: the light direction components
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLightDirection(x, y, z float32) SceneBuilderOption {
	return func(s *scene) {
		s.lightDirection = [3]float32{x, y, z}
	}
}

// WithLightColor sets the directional light's RGB color. Default is white.
//
// Parameters:
//   - r, g, b: the light color components
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLightColor(r, g, b float32) SceneBuilderOption {
	return func(s *scene) {
		s.lightColor = [3]float32{r, g, b}
	}
}

// WithAmbientStrength sets the scene's ambient light contribution.
// Default is 0.15.
//
// Parameters:
//   - strength: the ambient strength in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbientStrength(strength float32) SceneBuilderOption {
	return func(s *scene) {
		s.ambientStrength = strength
	}
}

package mesh

// MeshBuilderOption is a functional option for configuring a Mesh.
type MeshBuilderOption func(*meshImpl)

// WithName sets the mesh's display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - MeshBuilderOption: functional option to set the name
func WithName(name string) MeshBuilderOption {
	return func(m *meshImpl) {
		m.name = name
	}
}

// WithGeometry serializes and attaches vertex/index data to the mesh.
//
// Parameters:
//   - vertices: the vertex data
//   - indices: the index data (uint32, triangle or line list per the pipeline)
//
// Returns:
//   - MeshBuilderOption: functional option to set the geometry
func WithGeometry(vertices []GPUVertex, indices []uint32) MeshBuilderOption {
	return func(m *meshImpl) {
		m.vertexData = MarshalVertices(vertices)
		m.indexData = MarshalIndices(indices)
		m.indexCount = len(indices)
	}
}

// WithPipelineKey sets the render pipeline key this mesh draws with.
//
// Parameters:
//   - key: the pipeline key
//
// Returns:
//   - MeshBuilderOption: functional option to set the pipeline key
func WithPipelineKey(key string) MeshBuilderOption {
	return func(m *meshImpl) {
		m.pipelineKey = key
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - MeshBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) MeshBuilderOption {
	return func(m *meshImpl) {
		m.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial Euler rotation in radians.
//
// Parameters:
//   - rx, ry, rz: rotation angles
//
// Returns:
//   - MeshBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) MeshBuilderOption {
	return func(m *meshImpl) {
		m.rotation = [3]float32{rx, ry, rz}
	}
}

// WithRotationSpeed sets the continuous spin rate in radians per second.
//
// Parameters:
//   - rx, ry, rz: rotation speed per axis
//
// Returns:
//   - MeshBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(rx, ry, rz float32) MeshBuilderOption {
	return func(m *meshImpl) {
		m.rotationSpeed = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the per-axis scale factors.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - MeshBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) MeshBuilderOption {
	return func(m *meshImpl) {
		m.scale = [3]float32{sx, sy, sz}
	}
}

// WithEnabled sets whether the mesh starts enabled for rendering.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - MeshBuilderOption: functional option to set the enabled flag
func WithEnabled(enabled bool) MeshBuilderOption {
	return func(m *meshImpl) {
		m.enabled.Store(enabled)
	}
}

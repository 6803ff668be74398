package mesh

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/kestrel3d/kestrel/common"
	"github.com/kestrel3d/kestrel/engine/renderer/bind_group_provider"
)

// meshCount is an atomic counter used to generate unique bind group provider names for each mesh instance.
var meshCount atomic.Uint64

type meshImpl struct {
	mu *sync.Mutex

	id      uint64
	name    string
	enabled atomic.Bool

	vertexData []byte
	indexData  []byte
	indexCount int

	pipelineKey string
	provider    bind_group_provider.BindGroupProvider

	position      [3]float32
	rotation      [3]float32
	rotationSpeed [3]float32
	scale         [3]float32
}

// Mesh defines the interface for a static scene mesh: serialized geometry, a
// transform, and the GPU resources needed to draw it. Meshes are registered
// with a Scene, which owns buffer initialization and per-frame uniform writes.
type Mesh interface {
	// ID returns the mesh's scene-assigned identifier.
	//
	// Returns:
	//   - uint64: the mesh ID
	ID() uint64

	// SetID sets the mesh's identifier. Called by the scene on registration.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the mesh's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this mesh is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the mesh is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// VertexData returns the serialized vertex buffer contents.
	//
	// Returns:
	//   - []byte: vertex data ready for GPU upload
	VertexData() []byte

	// IndexData returns the serialized index buffer contents.
	//
	// Returns:
	//   - []byte: index data ready for GPU upload
	IndexData() []byte

	// IndexCount returns the number of indices to draw.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// PipelineKey returns the render pipeline key this mesh draws with.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// SetPipelineKey sets the render pipeline key.
	//
	// Parameters:
	//   - key: the pipeline key
	SetPipelineKey(key string)

	// Provider returns the mesh's bind group provider holding its vertex/index
	// buffers and per-mesh uniform.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider
	Provider() bind_group_provider.BindGroupProvider

	// Position returns the mesh's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// SetPosition sets the mesh's world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// Rotation returns the mesh's Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// SetRotation sets the mesh's Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// RotationSpeed returns the continuous spin rate in radians per second.
	//
	// Returns:
	//   - rx, ry, rz: rotation speed per axis
	RotationSpeed() (rx, ry, rz float32)

	// SetRotationSpeed sets the continuous spin rate in radians per second.
	//
	// Parameters:
	//   - rx, ry, rz: rotation speed per axis
	SetRotationSpeed(rx, ry, rz float32)

	// Scale returns the mesh's per-axis scale factors.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// SetScale sets the mesh's per-axis scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// Advance integrates the rotation speed over dt seconds, spinning the mesh.
	// A no-op for meshes with zero rotation speed.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Advance(dt float32)

	// ModelMatrix builds the mesh's current 4x4 model-to-world matrix.
	//
	// Parameters:
	//   - out: destination slice (must be at least 16 elements, column-major)
	ModelMatrix(out []float32)
}

var _ Mesh = &meshImpl{}

// NewMesh creates a new Mesh configured with the given options.
//
// Parameters:
//   - options: functional options to configure the mesh
//
// Returns:
//   - Mesh: the newly created mesh
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &meshImpl{
		mu:    &sync.Mutex{},
		scale: [3]float32{1, 1, 1},
		provider: bind_group_provider.NewBindGroupProvider(
			// Add first so concurrent constructions never mint the same name.
			"mesh_" + strconv.FormatUint(meshCount.Add(1)-1, 10),
		),
	}
	m.enabled.Store(true)
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *meshImpl) ID() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

func (m *meshImpl) SetID(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = id
}

func (m *meshImpl) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name
}

func (m *meshImpl) Enabled() bool {
	return m.enabled.Load()
}

func (m *meshImpl) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

func (m *meshImpl) VertexData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vertexData
}

func (m *meshImpl) IndexData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexData
}

func (m *meshImpl) IndexCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexCount
}

func (m *meshImpl) PipelineKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pipelineKey
}

func (m *meshImpl) SetPipelineKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pipelineKey = key
}

func (m *meshImpl) Provider() bind_group_provider.BindGroupProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.provider
}

func (m *meshImpl) Position() (x, y, z float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position[0], m.position[1], m.position[2]
}

func (m *meshImpl) SetPosition(x, y, z float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = [3]float32{x, y, z}
}

func (m *meshImpl) Rotation() (rx, ry, rz float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotation[0], m.rotation[1], m.rotation[2]
}

func (m *meshImpl) SetRotation(rx, ry, rz float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rotation = [3]float32{rx, ry, rz}
}

func (m *meshImpl) RotationSpeed() (rx, ry, rz float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotationSpeed[0], m.rotationSpeed[1], m.rotationSpeed[2]
}

func (m *meshImpl) SetRotationSpeed(rx, ry, rz float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rotationSpeed = [3]float32{rx, ry, rz}
}

func (m *meshImpl) Scale() (sx, sy, sz float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scale[0], m.scale[1], m.scale[2]
}

func (m *meshImpl) SetScale(sx, sy, sz float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scale = [3]float32{sx, sy, sz}
}

func (m *meshImpl) Advance(dt float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rotation[0] += m.rotationSpeed[0] * dt
	m.rotation[1] += m.rotationSpeed[1] * dt
	m.rotation[2] += m.rotationSpeed[2] * dt
}

func (m *meshImpl) ModelMatrix(out []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	common.BuildModelMatrix(out,
		m.position[0], m.position[1], m.position[2],
		m.rotation[0], m.rotation[1], m.rotation[2],
		m.scale[0], m.scale[1], m.scale[2],
	)
}

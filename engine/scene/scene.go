package scene

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/kestrel3d/kestrel/common"
	"github.com/kestrel3d/kestrel/engine/camera"
	"github.com/kestrel3d/kestrel/engine/mesh"
	"github.com/kestrel3d/kestrel/engine/renderer"
	"github.com/kestrel3d/kestrel/engine/renderer/bind_group_provider"
	"github.com/kestrel3d/kestrel/engine/renderer/pipeline"
	"github.com/kestrel3d/kestrel/engine/renderer/shader"
)

// Bind group indices shared by every pipeline in a scene. All shaders used with
// a scene must declare these groups with identical layouts so bind groups can
// be set uniformly per draw call regardless of which pipeline is bound.
const (
	// CameraBindGroupIndex is the bind group slot holding the camera uniform.
	CameraBindGroupIndex = 0

	// MeshBindGroupIndex is the bind group slot holding the per-mesh model uniform.
	MeshBindGroupIndex = 1

	// SceneBindGroupIndex is the bind group slot holding the scene uniform
	// (directional light and clip plane).
	SceneBindGroupIndex = 2
)

// Scene manages a registry of Meshes with a Camera and Renderer for rendering,
// plus the per-scene lighting and clip plane state uploaded each frame through
// the scene uniform. Meshes draw in the order they were added, so translucent
// geometry should be added last.
// Scenes can be hot-swapped via the Active flag to switch between different views.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// Count returns the number of meshes in the scene's registry.
	//
	// Returns:
	//   - int: count of registered meshes
	Count() int

	// Add adds a Mesh to the scene. The scene's Renderer must be attached and
	// the mesh must carry geometry. Add registers the mesh's render pipeline if
	// its key is not already cached, uploads the vertex and index buffers, and
	// initializes the mesh's bind group from the vertex shader's per-mesh
	// layout. Assigns the mesh an ID if it does not have one.
	//
	// Panics if the scene has no Renderer, the mesh has no geometry, or GPU
	// resource creation fails.
	//
	// Parameters:
	//   - m: the Mesh to add
	//   - vertexShader: the vertex shader for this mesh's render pipeline
	//   - fragmentShader: the fragment shader for this mesh's render pipeline
	//   - pipelineOpts: optional pipeline builder options (topology, blending, etc.)
	//
	// Returns:
	//   - uint64: the assigned mesh ID
	Add(m mesh.Mesh, vertexShader, fragmentShader shader.Shader, pipelineOpts ...pipeline.PipelineBuilderOption) uint64

	// Get retrieves a Mesh by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the mesh's unique ID
	//
	// Returns:
	//   - mesh.Mesh: the mesh or nil
	Get(id uint64) mesh.Mesh

	// Remove removes a Mesh from the registry by ID and drops it from the draw
	// order. Does not release GPU resources.
	//
	// Parameters:
	//   - id: the mesh's unique ID
	Remove(id uint64)

	// Clear removes all meshes from the scene.
	// Does not release GPU resources.
	Clear()

	// ClipPlaneEnabled returns whether the clipping plane is currently active.
	//
	// Returns:
	//   - bool: true if clipping is enabled
	ClipPlaneEnabled() bool

	// SetClipPlaneEnabled enables or disables the clipping plane.
	//
	// Parameters:
	//   - enabled: true to enable clipping
	SetClipPlaneEnabled(enabled bool)

	// ToggleClipPlane flips the clipping plane's enabled state.
	//
	// Returns:
	//   - bool: the new enabled state
	ToggleClipPlane() bool

	// ClipHeight returns the world Y height of the horizontal clipping plane.
	//
	// Returns:
	//   - float32: the plane height in world units
	ClipHeight() float32

	// SetClipHeight sets the world Y height of the horizontal clipping plane,
	// clamped to the scene's configured bounds.
	//
	// Parameters:
	//   - height: the new plane height
	SetClipHeight(height float32)

	// AdjustClipHeight moves the clipping plane by delta world units, clamped
	// to the scene's configured bounds.
	//
	// Parameters:
	//   - delta: the height change to apply
	//
	// Returns:
	//   - float32: the resulting plane height
	AdjustClipHeight(delta float32) float32

	// LightDirection returns the direction the scene's directional light travels.
	//
	// Returns:
	//   - x, y, z: the light direction components
	LightDirection() (x, y, z float32)

	// SetLightDirection sets the direction the scene's directional light
	// travels. The direction is normalized before upload.
	//
	// Parameters:
	//   - x, y, z: the light direction components
	SetLightDirection(x, y, z float32)

	// LightColor returns the directional light's RGB color.
	//
	// Returns:
	//   - [3]float32: the light color
	LightColor() [3]float32

	// SetLightColor sets the directional light's RGB color.
	//
	// Parameters:
	//   - color: the light color
	SetLightColor(color [3]float32)

	// AmbientStrength returns the scene's ambient light contribution.
	//
	// Returns:
	//   - float32: the ambient strength in [0, 1]
	AmbientStrength() float32

	// SetAmbientStrength sets the scene's ambient light contribution.
	//
	// Parameters:
	//   - strength: the ambient strength in [0, 1]
	SetAmbientStrength(strength float32)

	// SceneBindGroupProvider returns the bind group provider holding the scene
	// uniform GPU resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the scene uniform provider
	SceneBindGroupProvider() bind_group_provider.BindGroupProvider

	// PrepareFrame advances the camera controller and every enabled mesh by
	// deltaTime, rebuilds their GPU uniforms, and uploads all staged buffer
	// writes in a single coalesced submission. Must be called once per frame
	// before BeginFrame on the renderer.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	PrepareFrame(deltaTime float32)

	// DrawCalls issues one draw call per enabled mesh in insertion order.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if a draw call fails
	DrawCalls() error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry  map[uint64]mesh.Mesh
	drawOrder []uint64 // mesh IDs in insertion order
	nextID    uint64

	cam camera.Camera
	r   renderer.Renderer

	sceneBGP bind_group_provider.BindGroupProvider

	// Clip plane state. The plane is horizontal with a +Y normal; fragments
	// above clipHeight are discarded by shaders that honor the plane.
	clipEnabled   bool
	clipHeight    float32
	clipHeightMin float32
	clipHeightMax float32

	// Directional light state.
	lightDirection  [3]float32
	lightColor      [3]float32
	ambientStrength float32

	// Pre-allocated slices reused each frame to avoid per-frame allocations.
	writePool          []bind_group_provider.BufferWrite       // coalesced buffer write staging
	drawBindGroupsPool []bind_group_provider.BindGroupProvider // bind group slice for DrawCalls

	// prepPool manages a bounded set of reusable goroutines for the parallel
	// CPU prep phase of PrepareFrame. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	prepPool    worker.DynamicWorkerPool
	prepWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera, renderer, and the shader
// pair whose bind group layouts seed the camera and scene uniforms. All four
// are required and NewScene panics if any of them is nil. The vertex shader's
// camera group layout initializes the camera's BindGroupProvider on the GPU;
// the fragment shader's scene group layout initializes the scene uniform
// provider.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - vertexShader: a vertex shader declaring the camera uniform layout at CameraBindGroupIndex (must not be nil)
//   - fragmentShader: a fragment shader declaring the scene uniform layout at SceneBindGroupIndex (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, vertexShader, fragmentShader shader.Shader, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if vertexShader == nil {
		panic("scene: NewScene requires a non-nil vertex shader for camera uniform init")
	}
	if fragmentShader == nil {
		panic("scene: NewScene requires a non-nil fragment shader for scene uniform init")
	}

	s := &scene{
		mu:              &sync.RWMutex{},
		name:            name,
		active:          false,
		cam:             cam,
		r:               r,
		registry:        make(map[uint64]mesh.Mesh),
		nextID:          1,
		prepWorkers:     max(runtime.NumCPU()-1, 1),
		clipHeight:      0,
		clipHeightMin:   -3,
		clipHeightMax:   3,
		lightDirection:  [3]float32{-0.5, -1, -0.3},
		lightColor:      [3]float32{1, 1, 1},
		ambientStrength: 0.15,
	}

	for _, option := range options {
		option(s)
	}
	s.clipHeight = common.Clamp(s.clipHeight, s.clipHeightMin, s.clipHeightMax)

	// Pool init happens after options so WithPrepWorkers can override the
	// default. Queue size of 256 accommodates typical mesh counts with headroom.
	s.prepPool = worker.NewDynamicWorkerPool(s.prepWorkers, 256, 1*time.Second)

	if bgp := cam.BindGroupProvider(); bgp != nil {
		if err := r.InitBindGroup(bgp, vertexShader.BindGroupLayoutDescriptor(CameraBindGroupIndex), nil, nil); err != nil {
			panic(fmt.Sprintf("scene: failed to init camera bind group: %v", err))
		}
	}

	s.sceneBGP = bind_group_provider.NewBindGroupProvider(name + "_scene")
	if err := r.InitBindGroup(s.sceneBGP, fragmentShader.BindGroupLayoutDescriptor(SceneBindGroupIndex), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init scene bind group: %v", err))
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(m mesh.Mesh, vertexShader, fragmentShader shader.Shader, pipelineOpts ...pipeline.PipelineBuilderOption) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		panic("scene: cannot Add without a Renderer attached")
	}
	if len(m.VertexData()) == 0 || m.IndexCount() == 0 {
		panic(fmt.Sprintf("scene: cannot Add mesh %q without geometry", m.Name()))
	}

	if m.ID() == 0 {
		m.SetID(s.nextID)
		s.nextID++
	}

	// Register the render pipeline if this key has not been seen yet.
	if s.r.Pipeline(m.PipelineKey()) == nil {
		p := pipeline.NewPipeline(m.PipelineKey(),
			append([]pipeline.PipelineBuilderOption{
				pipeline.WithVertexShader(vertexShader),
				pipeline.WithFragmentShader(fragmentShader),
			}, pipelineOpts...)...,
		)
		if err := s.r.RegisterPipelines(p); err != nil {
			panic(fmt.Sprintf("scene: failed to register pipeline %q: %v", m.PipelineKey(), err))
		}
	}

	if err := s.r.InitMeshBuffers(m.Provider(), m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		panic(fmt.Sprintf("scene: failed to init mesh buffers for %q: %v", m.Name(), err))
	}
	if err := s.r.InitBindGroup(m.Provider(), vertexShader.BindGroupLayoutDescriptor(MeshBindGroupIndex), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init mesh bind group for %q: %v", m.Name(), err))
	}

	s.registry[m.ID()] = m
	s.drawOrder = append(s.drawOrder, m.ID())

	return m.ID()
}

func (s *scene) Get(id uint64) mesh.Mesh {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registry[id]; !exists {
		return
	}
	delete(s.registry, id)
	for i, ordered := range s.drawOrder {
		if ordered == id {
			s.drawOrder = append(s.drawOrder[:i], s.drawOrder[i+1:]...)
			break
		}
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry = make(map[uint64]mesh.Mesh)
	s.drawOrder = s.drawOrder[:0]
}

func (s *scene) ClipPlaneEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clipEnabled
}

func (s *scene) SetClipPlaneEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipEnabled = enabled
}

func (s *scene) ToggleClipPlane() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipEnabled = !s.clipEnabled
	return s.clipEnabled
}

func (s *scene) ClipHeight() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clipHeight
}

func (s *scene) SetClipHeight(height float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipHeight = common.Clamp(height, s.clipHeightMin, s.clipHeightMax)
}

func (s *scene) AdjustClipHeight(delta float32) float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipHeight = common.Clamp(s.clipHeight+delta, s.clipHeightMin, s.clipHeightMax)
	return s.clipHeight
}

func (s *scene) LightDirection() (x, y, z float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightDirection[0], s.lightDirection[1], s.lightDirection[2]
}

func (s *scene) SetLightDirection(x, y, z float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lightDirection = [3]float32{x, y, z}
}

func (s *scene) LightColor() [3]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightColor
}

func (s *scene) SetLightColor(color [3]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lightColor = color
}

func (s *scene) AmbientStrength() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientStrength
}

func (s *scene) SetAmbientStrength(strength float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientStrength = strength
}

func (s *scene) SceneBindGroupProvider() bind_group_provider.BindGroupProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sceneBGP
}

// meshWrite pairs a mesh with its marshaled uniform for the frame.
type meshWrite struct {
	m    mesh.Mesh
	data []byte
}

func (s *scene) PrepareFrame(deltaTime float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil || s.cam == nil {
		return
	}

	// Advance any in-flight focus animation, then refresh the camera matrices.
	if ctrl := s.cam.Controller(); ctrl != nil {
		ctrl.Update(deltaTime)
	}
	s.cam.Update()

	// Phase 1: parallel CPU prep — each enabled mesh's transform advance and
	// uniform marshal goes to the prep pool. A WaitGroup provides per-frame
	// barrier sync since pool.Wait() blocks until workers idle-exit, which is
	// unsuitable for frame-rate workloads.
	prepped := make([]meshWrite, 0, len(s.drawOrder))
	for _, id := range s.drawOrder {
		m := s.registry[id]
		if m == nil || !m.Enabled() {
			continue
		}
		prepped = append(prepped, meshWrite{m: m})
	}

	var wg sync.WaitGroup
	for i := range prepped {
		wg.Add(1)
		idx := i
		s.prepPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()

				m := prepped[idx].m
				m.Advance(deltaTime)
				var u mesh.GPUMeshUniform
				m.ModelMatrix(u.Model[:])
				prepped[idx].data = u.Marshal()
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Phase 2: coalesced GPU submission — camera uniform, scene uniform, and
	// all mesh uniforms in a single WriteBuffers call. This reduces queue
	// mutex acquisitions from N to 1 for writes.
	writes := s.writePool[:0]

	camUniform := camera.GPUCameraUniform{
		ViewProj: s.cam.ViewProjectionMatrix(),
	}
	if ctrl := s.cam.Controller(); ctrl != nil {
		px, py, pz := ctrl.Position()
		camUniform.CameraPosition = [3]float32{px, py, pz}
	}
	if bgp := s.cam.BindGroupProvider(); bgp != nil {
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: bgp,
			Binding:  0,
			Offset:   0,
			Data:     camUniform.Marshal(),
		})
	}

	sceneUniform := GPUSceneUniform{
		LightDirection:  normalize3(s.lightDirection),
		AmbientStrength: s.ambientStrength,
		LightColor:      s.lightColor,
		ClipPlane:       [4]float32{0, 1, 0, -s.clipHeight},
	}
	if s.clipEnabled {
		sceneUniform.ClipEnabled = 1
	}
	writes = append(writes, bind_group_provider.BufferWrite{
		Provider: s.sceneBGP,
		Binding:  0,
		Offset:   0,
		Data:     sceneUniform.Marshal(),
	})

	for i := range prepped {
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: prepped[i].m.Provider(),
			Binding:  0,
			Offset:   0,
			Data:     prepped[i].data,
		})
	}

	s.writePool = writes
	s.r.WriteBuffers(writes)
}

func (s *scene) DrawCalls() error {
	// Full lock: the pooled bind group slice is reused across calls.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return nil
	}

	for _, id := range s.drawOrder {
		m := s.registry[id]
		if m == nil || !m.Enabled() {
			continue
		}

		bindGroups := s.drawBindGroupsPool[:0]
		bindGroups = append(bindGroups, s.cam.BindGroupProvider(), m.Provider(), s.sceneBGP)
		s.drawBindGroupsPool = bindGroups

		if err := s.r.DrawCall(m.PipelineKey(), m.Provider(), 1, bindGroups); err != nil {
			return err
		}
	}
	return nil
}

// normalize3 returns v scaled to unit length, or v unchanged when its length
// is too small to normalize safely.
func normalize3(v [3]float32) [3]float32 {
	length := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if length < 1e-6 {
		return v
	}
	return [3]float32{v[0] / length, v[1] / length, v[2] / length}
}

package demo

import (
	_ "embed"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/kestrel3d/kestrel/engine/camera"
	"github.com/kestrel3d/kestrel/engine/mesh"
	"github.com/kestrel3d/kestrel/engine/renderer/shader"
	"github.com/kestrel3d/kestrel/engine/scene"
)

//go:embed assets/line.wgsl
var lineWGSL string

//go:embed assets/lit.wgsl
var litWGSL string

//go:embed assets/plane.wgsl
var planeWGSL string

// Pipeline keys for the demo geometry.
const (
	pipelineKeyLine  = "demo_line"
	pipelineKeyLit   = "demo_lit"
	pipelineKeyPlane = "demo_plane"
)

// uniformGroupLayout builds the single-binding uniform buffer layout every demo
// bind group uses. Visibility covers both stages so all pipelines share one
// layout per group regardless of which stage reads the uniform.
func uniformGroupLayout(label string, size uint64) wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: label,
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: size,
				},
			},
		},
	}
}

// vertexLayout describes the mesh.GPUVertex buffer layout (position, normal, color).
func vertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64((&mesh.GPUVertex{}).Size()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2},
		},
	}
}

// layoutOptions returns the builder options attaching the shared bind group
// layouts for the camera, per-mesh, and scene uniforms. Every demo shader
// carries all three so the resulting pipeline layouts are identical, letting
// the scene set bind groups 0-2 uniformly on any pipeline.
func layoutOptions() []shader.ShaderBuilderOption {
	return []shader.ShaderBuilderOption{
		shader.WithBindGroupLayoutDescriptor(scene.CameraBindGroupIndex,
			uniformGroupLayout("camera_uniform", uint64((&camera.GPUCameraUniform{}).Size()))),
		shader.WithBindGroupLayoutDescriptor(scene.MeshBindGroupIndex,
			uniformGroupLayout("mesh_uniform", uint64((&mesh.GPUMeshUniform{}).Size()))),
		shader.WithBindGroupLayoutDescriptor(scene.SceneBindGroupIndex,
			uniformGroupLayout("scene_uniform", uint64((&scene.GPUSceneUniform{}).Size()))),
	}
}

// shaderPair holds the vertex and fragment shaders compiled from one WGSL file.
type shaderPair struct {
	vert shader.Shader
	frag shader.Shader
}

// buildShaders compiles the three demo shader pairs from the embedded WGSL sources.
func buildShaders() (line, lit, plane shaderPair) {
	vertexOpts := append(layoutOptions(), shader.WithVertexLayouts(vertexLayout()))
	fragmentOpts := layoutOptions()

	line = shaderPair{
		vert: shader.NewShader("line_vert", shader.ShaderTypeVertex, lineWGSL, vertexOpts...),
		frag: shader.NewShader("line_frag", shader.ShaderTypeFragment, lineWGSL, fragmentOpts...),
	}
	lit = shaderPair{
		vert: shader.NewShader("lit_vert", shader.ShaderTypeVertex, litWGSL, vertexOpts...),
		frag: shader.NewShader("lit_frag", shader.ShaderTypeFragment, litWGSL, fragmentOpts...),
	}
	plane = shaderPair{
		vert: shader.NewShader("plane_vert", shader.ShaderTypeVertex, planeWGSL, vertexOpts...),
		frag: shader.NewShader("plane_frag", shader.ShaderTypeFragment, planeWGSL, fragmentOpts...),
	}
	return line, lit, plane
}

package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithVertexLayouts sets the vertex buffer layouts for this shader.
// Only meaningful for vertex shaders; the layouts describe the buffers bound
// when a pipeline using this shader is created.
//
// Parameters:
//   - layouts: the vertex buffer layouts to use for this shader
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layouts for this shader
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}

// WithBindGroupLayoutDescriptor sets the bind group layout descriptor for a given group index.
// The renderer creates the actual GPU layout objects from these descriptors during
// pipeline registration.
//
// Parameters:
//   - group: the bind group index this descriptor applies to
//   - desc: the bind group layout descriptor
//
// Returns:
//   - ShaderBuilderOption: a function that sets the descriptor for the specified group
func WithBindGroupLayoutDescriptor(group int, desc wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = desc
	}
}

// WithEntryPoint overrides the parsed entry point name for this shader.
// Useful when the source contains more than one entry function for the same stage.
//
// Parameters:
//   - name: the entry point function name
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point for this shader
func WithEntryPoint(name string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = name
	}
}

package scene

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUSceneUniform is the per-frame scene uniform shared by every pipeline's
// fragment stage. It carries the directional light, ambient term, and the
// clipping plane state.
// Size: 48 bytes (std140 / WGSL aligned).
type GPUSceneUniform struct {
	LightDirection  [3]float32 // offset 0  — normalized world-space direction the light travels
	AmbientStrength float32    // offset 12
	LightColor      [3]float32 // offset 16
	ClipEnabled     float32    // offset 28 — 1.0 when the clip plane is active, 0.0 otherwise
	ClipPlane       [4]float32 // offset 32 — plane equation (nx, ny, nz, d); discard when dot(p, n) + d > 0
}

// Size returns the size of the GPUSceneUniform struct in bytes.
//
// Returns:
//   - int: the size in bytes
func (g *GPUSceneUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSceneUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUSceneUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	offset := 0
	put := func(v float32) {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
		offset += 4
	}
	for _, v := range g.LightDirection {
		put(v)
	}
	put(g.AmbientStrength)
	for _, v := range g.LightColor {
		put(v)
	}
	put(g.ClipEnabled)
	for _, v := range g.ClipPlane {
		put(v)
	}
	return buf
}

// SceneUniformWGSL is the canonical WGSL struct layout matching GPUSceneUniform.
//
//go:embed assets/scene_uniform.wgsl
var SceneUniformWGSL string

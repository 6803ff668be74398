package scene

import (
	"encoding/binary"
	"math"
	"testing"
)

func readF32(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestGPUSceneUniformSize(t *testing.T) {
	u := &GPUSceneUniform{}
	if got := u.Size(); got != 48 {
		t.Fatalf("Size() = %d, want 48", got)
	}
	if got := len(u.Marshal()); got != 48 {
		t.Fatalf("len(Marshal()) = %d, want 48", got)
	}
}

func TestGPUSceneUniformMarshalOffsets(t *testing.T) {
	u := &GPUSceneUniform{
		LightDirection:  [3]float32{0.1, 0.2, 0.3},
		AmbientStrength: 0.15,
		LightColor:      [3]float32{1, 0.9, 0.8},
		ClipEnabled:     1,
		ClipPlane:       [4]float32{0, 1, 0, -0.5},
	}
	buf := u.Marshal()

	tests := []struct {
		name   string
		offset int
		want   float32
	}{
		{"light_direction.x", 0, 0.1},
		{"light_direction.z", 8, 0.3},
		{"ambient_strength", 12, 0.15},
		{"light_color.r", 16, 1},
		{"clip_enabled", 28, 1},
		{"clip_plane.y", 36, 1},
		{"clip_plane.d", 44, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readF32(buf, tt.offset); got != tt.want {
				t.Errorf("offset %d = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestNormalize3(t *testing.T) {
	v := normalize3([3]float32{3, 0, 4})
	if math.Abs(float64(v[0]-0.6)) > 1e-6 || math.Abs(float64(v[2]-0.8)) > 1e-6 {
		t.Fatalf("normalize3(3,0,4) = %v, want (0.6, 0, 0.8)", v)
	}

	// Degenerate input is returned unchanged rather than producing NaN.
	zero := normalize3([3]float32{0, 0, 0})
	if zero != [3]float32{0, 0, 0} {
		t.Fatalf("normalize3(zero) = %v, want zero", zero)
	}
}

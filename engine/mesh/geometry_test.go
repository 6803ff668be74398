package mesh

import (
	"math"
	"sync"
	"testing"
)

func TestBuildGrid(t *testing.T) {
	vertices, indices := BuildGrid(10, 1)

	// 21 lines per direction, 2 directions, 2 vertices per line.
	wantLines := 21 * 2
	if got := len(vertices); got != wantLines*2 {
		t.Errorf("BuildGrid vertex count = %d, want %d", got, wantLines*2)
	}
	if got := len(indices); got != wantLines*2 {
		t.Errorf("BuildGrid index count = %d, want %d", got, wantLines*2)
	}

	for i, v := range vertices {
		if v.Position[1] != 0 {
			t.Fatalf("grid vertex %d has y = %v, want 0", i, v.Position[1])
		}
		if v.Position[0] < -10 || v.Position[0] > 10 || v.Position[2] < -10 || v.Position[2] > 10 {
			t.Fatalf("grid vertex %d out of extent: %v", i, v.Position)
		}
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			t.Fatalf("grid index %d out of range: %d", i, idx)
		}
	}
}

func TestBuildAxes(t *testing.T) {
	vertices, indices := BuildAxes(3)

	if got := len(vertices); got != 6 {
		t.Fatalf("BuildAxes vertex count = %d, want 6", got)
	}
	if got := len(indices); got != 6 {
		t.Fatalf("BuildAxes index count = %d, want 6", got)
	}

	// Every second vertex is an axis tip at the given length.
	tips := [][3]float32{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}
	for i, tip := range tips {
		if got := vertices[i*2+1].Position; got != tip {
			t.Errorf("axis %d tip = %v, want %v", i, got, tip)
		}
		if got := vertices[i*2].Position; got != ([3]float32{}) {
			t.Errorf("axis %d origin = %v, want (0,0,0)", i, got)
		}
	}
}

func TestBuildCube(t *testing.T) {
	color := [4]float32{0.8, 0.5, 0.2, 1}
	vertices, indices := BuildCube(2, color)

	if got := len(vertices); got != 24 {
		t.Fatalf("BuildCube vertex count = %d, want 24", got)
	}
	if got := len(indices); got != 36 {
		t.Fatalf("BuildCube index count = %d, want 36", got)
	}

	for i, v := range vertices {
		// Corners of a size-2 cube sit at ±1 on every axis.
		for axis := 0; axis < 3; axis++ {
			if abs := float32(math.Abs(float64(v.Position[axis]))); abs != 1 {
				t.Fatalf("vertex %d axis %d = %v, want ±1", i, axis, v.Position[axis])
			}
		}
		// Face normals are unit length.
		lenSq := v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2]
		if lenSq != 1 {
			t.Fatalf("vertex %d normal %v is not unit length", i, v.Normal)
		}
		// The normal points the same way as the face's offset from center.
		dot := v.Normal[0]*v.Position[0] + v.Normal[1]*v.Position[1] + v.Normal[2]*v.Position[2]
		if dot <= 0 {
			t.Fatalf("vertex %d normal %v points inward at %v", i, v.Normal, v.Position)
		}
		if v.Color != color {
			t.Fatalf("vertex %d color = %v, want %v", i, v.Color, color)
		}
	}
}

func TestBuildPlaneQuad(t *testing.T) {
	color := [4]float32{0.3, 0.6, 0.9, 0.25}
	vertices, indices := BuildPlaneQuad(8, color)

	if got := len(vertices); got != 4 {
		t.Fatalf("BuildPlaneQuad vertex count = %d, want 4", got)
	}
	if got := len(indices); got != 6 {
		t.Fatalf("BuildPlaneQuad index count = %d, want 6", got)
	}
	for i, v := range vertices {
		if v.Position[1] != 0 {
			t.Errorf("quad vertex %d y = %v, want 0", i, v.Position[1])
		}
		if v.Normal != ([3]float32{0, 1, 0}) {
			t.Errorf("quad vertex %d normal = %v, want (0,1,0)", i, v.Normal)
		}
	}
}

func TestGPUVertexMarshal(t *testing.T) {
	v := &GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		Color:    [4]float32{0.5, 0.5, 0.5, 1},
	}

	if got := v.Size(); got != 40 {
		t.Errorf("Size() = %d, want 40", got)
	}
	buf := v.Marshal()
	if len(buf) != 40 {
		t.Fatalf("Marshal() length = %d, want 40", len(buf))
	}
	// float32(1) little-endian at position[0].
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0x80 || buf[3] != 0x3f {
		t.Errorf("Marshal()[0:4] = % x, want float32(1) little-endian", buf[0:4])
	}
}

func TestMarshalVertices(t *testing.T) {
	vertices, _ := BuildCube(1, [4]float32{1, 1, 1, 1})
	buf := MarshalVertices(vertices)
	if got, want := len(buf), len(vertices)*40; got != want {
		t.Errorf("MarshalVertices length = %d, want %d", got, want)
	}
}

func TestMarshalIndices(t *testing.T) {
	buf := MarshalIndices([]uint32{0, 1, 0x01020304})
	if len(buf) != 12 {
		t.Fatalf("MarshalIndices length = %d, want 12", len(buf))
	}
	// Little-endian byte order of the third index.
	if buf[8] != 0x04 || buf[9] != 0x03 || buf[10] != 0x02 || buf[11] != 0x01 {
		t.Errorf("MarshalIndices()[8:12] = % x, want 04 03 02 01", buf[8:12])
	}
}

func TestMeshTransform(t *testing.T) {
	m := NewMesh(
		WithName("cube"),
		WithPosition(1, 2, 3),
		WithRotationSpeed(0, 0.5, 0),
	)

	if got := m.Name(); got != "cube" {
		t.Errorf("Name() = %q, want %q", got, "cube")
	}
	if !m.Enabled() {
		t.Error("Enabled() = false, want true by default")
	}

	m.Advance(2)
	_, ry, _ := m.Rotation()
	if ry != 1 {
		t.Errorf("rotation.y after Advance(2) at speed 0.5 = %v, want 1", ry)
	}

	var model [16]float32
	m.ModelMatrix(model[:])
	if model[12] != 1 || model[13] != 2 || model[14] != 3 {
		t.Errorf("model matrix translation = (%v, %v, %v), want (1, 2, 3)",
			model[12], model[13], model[14])
	}
}

func TestNewMeshProviderNamesUnique(t *testing.T) {
	const n = 32
	labels := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			labels <- NewMesh().Provider().Label()
		}()
	}
	wg.Wait()
	close(labels)

	seen := make(map[string]bool, n)
	for label := range labels {
		if seen[label] {
			t.Fatalf("duplicate provider label %q", label)
		}
		seen[label] = true
	}
}

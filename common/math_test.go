package common

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func nearly(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func TestRadians(t *testing.T) {
	tests := []struct {
		name    string
		degrees float32
		want    float32
	}{
		{"zero", 0, 0},
		{"right angle", 90, math.Pi / 2},
		{"half turn", 180, math.Pi},
		{"negative", -45, -math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Radians(tt.degrees); !nearly(got, tt.want) {
				t.Errorf("Radians(%v) = %v, want %v", tt.degrees, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"inside range", 3, 0, 10, 3},
		{"below range", -2, 0, 10, 0},
		{"above range", 42, 0, 10, 10},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i) + 7
	}
	Identity(m)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if m[i*4+j] != want {
				t.Errorf("Identity: m[%d][%d] = %v, want %v", i, j, m[i*4+j], want)
			}
		}
	}
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	out := make([]float32, 16)
	Mul4(out, id, m)
	for i := range m {
		if !nearly(out[i], m[i]) {
			t.Errorf("Mul4(I, m)[%d] = %v, want %v", i, out[i], m[i])
		}
	}

	Mul4(out, m, id)
	for i := range m {
		if !nearly(out[i], m[i]) {
			t.Errorf("Mul4(m, I)[%d] = %v, want %v", i, out[i], m[i])
		}
	}
}

func TestMul4Aliasing(t *testing.T) {
	a := []float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}
	b := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		3, 4, 5, 1,
	}

	// out aliases a; the product must still be a*b.
	Mul4(a, a, b)
	want := []float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		6, 8, 10, 1,
	}
	for i := range want {
		if !nearly(a[i], want[i]) {
			t.Errorf("Mul4 aliased out[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	out := make([]float32, 16)
	Perspective(out, Radians(60), 16.0/9.0, 0.1, 100)

	f := 1.0 / float32(math.Tan(float64(Radians(60))/2.0))
	if !nearly(out[0], f/(16.0/9.0)) {
		t.Errorf("Perspective out[0] = %v, want %v", out[0], f/(16.0/9.0))
	}
	if !nearly(out[5], f) {
		t.Errorf("Perspective out[5] = %v, want %v", out[5], f)
	}
	if !nearly(out[11], -1) {
		t.Errorf("Perspective out[11] = %v, want -1", out[11])
	}
	if out[15] != 0 {
		t.Errorf("Perspective out[15] = %v, want 0", out[15])
	}

	// Near plane must map to clip depth 0: for a point at z = -near the
	// transformed depth is out[10]*(-near) + out[14].
	depth := out[10]*(-0.1) + out[14]
	if !nearly(depth, 0) {
		t.Errorf("Perspective near-plane depth = %v, want 0", depth)
	}
}

func TestLookAtBasis(t *testing.T) {
	out := make([]float32, 16)
	LookAt(out, 3, 4, 5, 0, 0, 0, 0, 1, 0)

	rows := [3][3]float32{
		{out[0], out[4], out[8]},
		{out[1], out[5], out[9]},
		{out[2], out[6], out[10]},
	}

	// Each basis row is unit length.
	for i, r := range rows {
		lenSq := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
		if !nearly(lenSq, 1) {
			t.Errorf("LookAt basis row %d length^2 = %v, want 1", i, lenSq)
		}
	}

	// Rows are mutually orthogonal.
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			dot := rows[i][0]*rows[j][0] + rows[i][1]*rows[j][1] + rows[i][2]*rows[j][2]
			if !nearly(dot, 0) {
				t.Errorf("LookAt basis rows %d,%d dot = %v, want 0", i, j, dot)
			}
		}
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	out := make([]float32, 16)
	eye := [3]float32{3, 4, 5}
	LookAt(out, eye[0], eye[1], eye[2], 0, 0, 0, 0, 1, 0)

	// view * (eye, 1) == origin in view space.
	for row := 0; row < 3; row++ {
		v := out[row]*eye[0] + out[4+row]*eye[1] + out[8+row]*eye[2] + out[12+row]
		if !nearly(v, 0) {
			t.Errorf("LookAt eye component %d in view space = %v, want 0", row, v)
		}
	}
}

func TestLookAtTargetOnNegativeZ(t *testing.T) {
	out := make([]float32, 16)
	LookAt(out, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The origin sits 5 units down the camera's -Z axis.
	x := out[12]
	y := out[13]
	z := out[14]
	if !nearly(x, 0) || !nearly(y, 0) || !nearly(z, -5) {
		t.Errorf("LookAt target in view space = (%v, %v, %v), want (0, 0, -5)", x, y, z)
	}
}

func TestBuildModelMatrix(t *testing.T) {
	out := make([]float32, 16)

	t.Run("identity transform", func(t *testing.T) {
		BuildModelMatrix(out, 0, 0, 0, 0, 0, 0, 1, 1, 1)
		id := make([]float32, 16)
		Identity(id)
		for i := range id {
			if !nearly(out[i], id[i]) {
				t.Errorf("BuildModelMatrix identity[%d] = %v, want %v", i, out[i], id[i])
			}
		}
	})

	t.Run("translation only", func(t *testing.T) {
		BuildModelMatrix(out, 1, 2, 3, 0, 0, 0, 1, 1, 1)
		if !nearly(out[12], 1) || !nearly(out[13], 2) || !nearly(out[14], 3) {
			t.Errorf("BuildModelMatrix translation = (%v, %v, %v), want (1, 2, 3)", out[12], out[13], out[14])
		}
	})

	t.Run("uniform scale", func(t *testing.T) {
		BuildModelMatrix(out, 0, 0, 0, 0, 0, 0, 2, 2, 2)
		if !nearly(out[0], 2) || !nearly(out[5], 2) || !nearly(out[10], 2) {
			t.Errorf("BuildModelMatrix scale diagonal = (%v, %v, %v), want (2, 2, 2)", out[0], out[5], out[10])
		}
	})
}

func TestInvert4(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, -2, 3, 0.3, 0.7, -0.2, 1.5, 1.5, 1.5)

	inv := make([]float32, 16)
	if !Invert4(inv, m) {
		t.Fatal("Invert4 reported singular for an affine transform")
	}

	out := make([]float32, 16)
	Mul4(out, m, inv)
	id := make([]float32, 16)
	Identity(id)
	for i := range id {
		if !nearly(out[i], id[i]) {
			t.Errorf("m * inv(m) [%d] = %v, want %v", i, out[i], id[i])
		}
	}
}

func TestInvert4Singular(t *testing.T) {
	zero := make([]float32, 16)
	out := make([]float32, 16)
	out[3] = 42
	if Invert4(out, zero) {
		t.Error("Invert4 inverted a singular matrix")
	}
	if out[3] != 42 {
		t.Error("Invert4 modified the output for a singular input")
	}
}

func TestSliceToBytes(t *testing.T) {
	tests := []struct {
		name string
		data []float32
		want int
	}{
		{"empty", nil, 0},
		{"single", []float32{1}, 4},
		{"vector", []float32{1, 2, 3, 4}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SliceToBytes(tt.data)
			if len(got) != tt.want {
				t.Errorf("SliceToBytes length = %d, want %d", len(got), tt.want)
			}
		})
	}
}

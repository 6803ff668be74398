package shader

import "testing"

const lineSource = `
struct VSOut {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(2) color: vec4<f32>) -> VSOut {
    var out: VSOut;
    out.position = vec4<f32>(position, 1.0);
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VSOut) -> @location(0) vec4<f32> {
    return in.color;
}
`

func TestParseEntryPoint(t *testing.T) {
	tests := []struct {
		name       string
		shaderType ShaderType
		want       string
	}{
		{"vertex", ShaderTypeVertex, "vs_main"},
		{"fragment", ShaderTypeFragment, "fs_main"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseEntryPoint(lineSource, tt.shaderType); got != tt.want {
				t.Errorf("parseEntryPoint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEntryPointMissingStage(t *testing.T) {
	src := "@vertex fn only_vertex() {}"
	if got := parseEntryPoint(src, ShaderTypeFragment); got != "" {
		t.Errorf("parseEntryPoint() = %q, want empty", got)
	}
}

func TestNewShaderParsesEntryPoint(t *testing.T) {
	s := NewShader("line_vs", ShaderTypeVertex, lineSource)
	if got, want := s.EntryPoint(), "vs_main"; got != want {
		t.Errorf("EntryPoint() = %q, want %q", got, want)
	}
	if got, want := s.Key(), "line_vs"; got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
	if s.Module() == nil || s.Module().WGSLDescriptor.Code != lineSource {
		t.Error("Module() does not carry the WGSL source")
	}
}

func TestNewShaderPanicsOnEmptySource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewShader() with empty source did not panic")
		}
	}()
	NewShader("broken", ShaderTypeVertex, "")
}

func TestWithEntryPointOverride(t *testing.T) {
	s := NewShader("override_vs", ShaderTypeVertex, lineSource, WithEntryPoint("vs_alt"))
	if got, want := s.EntryPoint(), "vs_alt"; got != want {
		t.Errorf("EntryPoint() = %q, want %q", got, want)
	}
}

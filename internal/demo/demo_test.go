package demo

import (
	"strings"
	"sync"
	"testing"

	"github.com/kestrel3d/kestrel/engine/renderer"
)

func TestMSAASampleCount(t *testing.T) {
	tests := []struct {
		samples int
		want    renderer.MSAASampleCount
		wantErr bool
	}{
		{0, renderer.MSAAOff, false},
		{1, renderer.MSAAOff, false},
		{4, renderer.MSAA4x, false},
		{8, renderer.MSAA8x, false},
		{16, renderer.MSAA16x, false},
		{2, 0, true},
		{32, 0, true},
	}
	for _, tt := range tests {
		got, err := msaaSampleCount(tt.samples)
		if tt.wantErr {
			if err == nil {
				t.Errorf("msaaSampleCount(%d) expected error", tt.samples)
			}
			continue
		}
		if err != nil {
			t.Errorf("msaaSampleCount(%d) unexpected error: %v", tt.samples, err)
			continue
		}
		if got != tt.want {
			t.Errorf("msaaSampleCount(%d) = %d, want %d", tt.samples, got, tt.want)
		}
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if err := Run(cfg); err == nil {
		t.Fatal("Run with zero width should fail")
	}

	cfg = DefaultConfig()
	cfg.MSAA = 3
	if err := Run(cfg); err == nil || !strings.Contains(err.Error(), "msaa") {
		t.Fatalf("Run with invalid msaa should fail, got %v", err)
	}
}

func TestVertexLayoutMatchesGPUVertex(t *testing.T) {
	layout := vertexLayout()
	if layout.ArrayStride != 40 {
		t.Fatalf("ArrayStride = %d, want 40", layout.ArrayStride)
	}
	if len(layout.Attributes) != 3 {
		t.Fatalf("len(Attributes) = %d, want 3", len(layout.Attributes))
	}
	if layout.Attributes[1].Offset != 12 || layout.Attributes[2].Offset != 24 {
		t.Fatalf("attribute offsets = %d, %d, want 12, 24", layout.Attributes[1].Offset, layout.Attributes[2].Offset)
	}
}

func TestKeyTrackerConcurrentAccess(t *testing.T) {
	keys := newKeyTracker()

	// Writers stand in for the message pump thread, the reader for the tick
	// goroutine; run under -race this fails if access is unguarded.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		code := uint32(65 + i)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				keys.set(code, j%2 == 0)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 1000; j++ {
			keys.down(65)
		}
	}()
	wg.Wait()

	keys.set(87, true)
	if !keys.down(87) {
		t.Fatal("held key not reported down")
	}
	keys.set(87, false)
	if keys.down(87) {
		t.Fatal("released key still reported down")
	}
	if keys.down(999) {
		t.Fatal("never-pressed key reported down")
	}
}

func TestLayoutOptionsCoverAllGroups(t *testing.T) {
	if got := len(layoutOptions()); got != 3 {
		t.Fatalf("layoutOptions() returned %d options, want 3", got)
	}
}

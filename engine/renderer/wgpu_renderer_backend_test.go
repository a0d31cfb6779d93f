package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func bufferEntry(binding uint32, t wgpu.BufferBindingType, minSize uint64) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageCompute,
		Buffer: wgpu.BufferBindingLayout{
			Type:           t,
			MinBindingSize: minSize,
		},
	}
}

func TestBufferUsage(t *testing.T) {
	tests := []struct {
		name      string
		entry     wgpu.BindGroupLayoutEntry
		overrides map[int]wgpu.BufferUsage
		want      wgpu.BufferUsage
	}{
		{
			name:  "uniform",
			entry: bufferEntry(0, wgpu.BufferBindingTypeUniform, 96),
			want:  wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		},
		{
			name:  "storage",
			entry: bufferEntry(1, wgpu.BufferBindingTypeStorage, 4),
			want:  wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		},
		{
			name:  "read-only storage",
			entry: bufferEntry(2, wgpu.BufferBindingTypeReadOnlyStorage, 4),
			want:  wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		},
		{
			name:      "override on matching binding",
			entry:     bufferEntry(1, wgpu.BufferBindingTypeStorage, 4),
			overrides: map[int]wgpu.BufferUsage{1: wgpu.BufferUsageCopySrc},
			want:      wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc,
		},
		{
			name:      "override on other binding",
			entry:     bufferEntry(0, wgpu.BufferBindingTypeUniform, 96),
			overrides: map[int]wgpu.BufferUsage{1: wgpu.BufferUsageCopySrc},
			want:      wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bufferUsage(tt.entry, tt.overrides)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("bufferUsage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBufferUsageRejectsNonBuffers(t *testing.T) {
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    3,
		Visibility: wgpu.ShaderStageFragment,
		Texture: wgpu.TextureBindingLayout{
			SampleType:    wgpu.TextureSampleTypeFloat,
			ViewDimension: wgpu.TextureViewDimension2D,
		},
	}
	if _, err := bufferUsage(entry, nil); err == nil {
		t.Error("bufferUsage accepted a texture binding")
	}
}

func TestBufferSize(t *testing.T) {
	entry := bufferEntry(0, wgpu.BufferBindingTypeUniform, 96)
	if got := bufferSize(entry, nil); got != 96 {
		t.Errorf("bufferSize() = %d, want 96", got)
	}
	if got := bufferSize(entry, map[int]uint64{0: 256}); got != 256 {
		t.Errorf("bufferSize() with override = %d, want 256", got)
	}
}

func TestPresentModeString(t *testing.T) {
	if PresentModeVSync.String() != "vsync" || PresentModeUncapped.String() != "uncapped" {
		t.Errorf("String() = %q, %q", PresentModeVSync, PresentModeUncapped)
	}
	if PresentMode(7).String() != "unknown" {
		t.Errorf("unknown mode String() = %q", PresentMode(7))
	}
}

package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{}
	for _, opt := range []WindowBuilderOption{
		WithTitle("render-4d"),
		WithWidth(640),
		WithHeight(480),
		WithMinSize(320, 240),
		WithMaxSize(1920, 0),
	} {
		opt(w)
	}
	if w.title != "render-4d" || w.width != 640 || w.height != 480 {
		t.Errorf("title/size = %q %dx%d", w.title, w.width, w.height)
	}
	if w.minWidth != 320 || w.minHeight != 240 || w.maxWidth != 1920 || w.maxHeight != 0 {
		t.Errorf("limits = min %dx%d max %dx%d", w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)
	}
}

func TestSizeLimit(t *testing.T) {
	if got := sizeLimit(0); got != glfw.DontCare {
		t.Errorf("sizeLimit(0) = %d, want DontCare", got)
	}
	if got := sizeLimit(-3); got != glfw.DontCare {
		t.Errorf("sizeLimit(-3) = %d, want DontCare", got)
	}
	if got := sizeLimit(800); got != 800 {
		t.Errorf("sizeLimit(800) = %d", got)
	}
}

func TestUninitializedWindow(t *testing.T) {
	w := &engineWindow{}
	if w.IsRunning() {
		t.Error("uninitialized window reports running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("uninitialized window returned a surface descriptor")
	}
	if err := w.Close(); err == nil {
		t.Error("Close on uninitialized window succeeded")
	}
}

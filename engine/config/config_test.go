package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy4d/common"
	"github.com/Carmen-Shannon/oxy4d/engine/camera4d"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Camera.RotateDuration != time.Second {
		t.Errorf("RotateDuration = %v", cfg.Camera.RotateDuration)
	}
	if cfg.World.Size != 88 || !cfg.World.Demo {
		t.Errorf("World = %+v", cfg.World)
	}
	if cfg.Window.Title != "render-4d" || cfg.Window.Width != 500 || cfg.Window.Height != 500 {
		t.Errorf("Window = %+v", cfg.Window)
	}

	b, err := cfg.KeyBindings()
	if err != nil {
		t.Fatal(err)
	}
	want := camera4d.DefaultKeyBindings()
	if b.TurnA != want.TurnA || b.TurnB != want.TurnB || !slices.Equal(b.Modifiers, want.Modifiers) {
		t.Errorf("KeyBindings() = %+v, want %+v", b, want)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	src := `
camera:
  rotate_duration: 750ms
  position: [1, 2, 3, 4]
  compose: true
world:
  size: 32
keys:
  turn_a: a
  turn_b: d
  modifiers: [left_control]
`
	cfg, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Camera.RotateDuration != 750*time.Millisecond {
		t.Errorf("RotateDuration = %v", cfg.Camera.RotateDuration)
	}
	if cfg.Camera.Position != [4]float32{1, 2, 3, 4} || !cfg.Camera.Compose {
		t.Errorf("Camera = %+v", cfg.Camera)
	}
	if cfg.World.Size != 32 || !cfg.World.Demo {
		t.Errorf("World = %+v, want size override and default demo flag", cfg.World)
	}

	b, err := cfg.KeyBindings()
	if err != nil {
		t.Fatal(err)
	}
	if b.TurnA != common.KeyA || b.TurnB != common.KeyD || !slices.Equal(b.Modifiers, []uint32{common.KeyLeftControl}) {
		t.Errorf("KeyBindings() = %+v", b)
	}

	cam := camera4d.NewCamera(cfg.CameraOptions()...)
	if cam.RotateDuration() != 750*time.Millisecond || !cam.Composing() || cam.Position()[3] != 4 {
		t.Errorf("camera built from config: duration=%v compose=%v position=%v", cam.RotateDuration(), cam.Composing(), cam.Position())
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Size != Default().World.Size {
		t.Errorf("empty document changed defaults: %+v", cfg)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		invalid bool
	}{
		{"unknown field", "camera:\n  speed: 3\n", false},
		{"bad duration", "camera:\n  rotate_duration: soon\n", false},
		{"negative duration", "camera:\n  rotate_duration: -1s\n", true},
		{"zero world", "world:\n  size: 0\n", true},
		{"zero window", "window:\n  width: 0\n", true},
		{"negative frame limit", "engine:\n  frame_limit: -5\n", true},
		{"unknown key", "keys:\n  turn_a: hyper\n", true},
		{"same turn keys", "keys:\n  turn_a: q\n  turn_b: Q\n", true},
		{"modifier is turn key", "keys:\n  modifiers: [e]\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render4d.yaml")
	if err := os.WriteFile(path, []byte("world:\n  size: 16\n  demo: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Size != 16 || cfg.World.Demo {
		t.Errorf("World = %+v", cfg.World)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}

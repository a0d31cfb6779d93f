package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy4d/common"
	"github.com/Carmen-Shannon/oxy4d/engine/camera4d"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full runtime configuration of the render4d binary.
type Config struct {
	Camera CameraConfig `yaml:"camera"`
	World  WorldConfig  `yaml:"world"`
	Window WindowConfig `yaml:"window"`
	Engine EngineConfig `yaml:"engine"`
	Keys   KeysConfig   `yaml:"keys"`
}

// CameraConfig configures the 4D camera.
type CameraConfig struct {
	// RotateDuration is the length of one quarter-turn animation, e.g. "1s" or "750ms".
	RotateDuration time.Duration `yaml:"rotate_duration"`
	// Position is the camera's 4D position in world units.
	Position [4]float32 `yaml:"position"`
	// Compose accumulates successive quarter turns instead of snapping to absolute orientations.
	Compose bool `yaml:"compose"`
}

// WorldConfig configures the voxel world. Workers 0 uses one worker per CPU.
type WorldConfig struct {
	Size    int  `yaml:"size"`
	Demo    bool `yaml:"demo"`
	Workers int  `yaml:"workers"`
}

// WindowConfig configures the window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EngineConfig configures the frame loop.
type EngineConfig struct {
	// FrameLimit caps frames per second; 0 renders every loop iteration.
	FrameLimit int  `yaml:"frame_limit"`
	VSync      bool `yaml:"vsync"`
	Profiling  bool `yaml:"profiling"`
}

// KeysConfig names the rotation keys, e.g. "Q" or "LeftShift".
type KeysConfig struct {
	TurnA     string   `yaml:"turn_a"`
	TurnB     string   `yaml:"turn_b"`
	Modifiers []string `yaml:"modifiers"`
}

// Default returns the compiled-in configuration.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Camera: CameraConfig{
			RotateDuration: camera4d.DefaultRotateDuration,
		},
		World: WorldConfig{
			Size: 88,
			Demo: true,
		},
		Window: WindowConfig{
			Title:  "render-4d",
			Width:  500,
			Height: 500,
		},
		Engine: EngineConfig{
			FrameLimit: 60,
			VSync:      true,
		},
		Keys: KeysConfig{
			TurnA:     "Q",
			TurnB:     "E",
			Modifiers: []string{"LeftShift", "RightShift"},
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
//
// Parameters:
//   - path: the YAML file path
//
// Returns:
//   - Config: the loaded configuration
//   - error: an error if the file cannot be read, parsed, or validated
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Config] loaded %s", path)
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown fields are rejected
// and an empty document yields the defaults.
//
// Parameters:
//   - r: the YAML source
//
// Returns:
//   - Config: the parsed configuration
//   - error: an error if decoding or validation fails
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and key names.
//
// Returns:
//   - error: an error wrapping ErrInvalidConfig, or nil
func (c Config) Validate() error {
	switch {
	case c.Camera.RotateDuration < 0:
		return fmt.Errorf("%w: camera.rotate_duration must not be negative, got %s", ErrInvalidConfig, c.Camera.RotateDuration)
	case c.World.Size <= 0:
		return fmt.Errorf("%w: world.size must be positive, got %d", ErrInvalidConfig, c.World.Size)
	case c.World.Workers < 0:
		return fmt.Errorf("%w: world.workers must not be negative, got %d", ErrInvalidConfig, c.World.Workers)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Engine.FrameLimit < 0:
		return fmt.Errorf("%w: engine.frame_limit must not be negative, got %d", ErrInvalidConfig, c.Engine.FrameLimit)
	}
	if _, err := c.KeyBindings(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// KeyBindings resolves the configured key names to camera key bindings.
//
// Returns:
//   - camera4d.KeyBindings: the resolved bindings
//   - error: an error if a key name is unknown or the turn keys collide
func (c Config) KeyBindings() (camera4d.KeyBindings, error) {
	var b camera4d.KeyBindings
	var err error
	if b.TurnA, err = common.ParseKeyCode(c.Keys.TurnA); err != nil {
		return b, fmt.Errorf("keys.turn_a: %w", err)
	}
	if b.TurnB, err = common.ParseKeyCode(c.Keys.TurnB); err != nil {
		return b, fmt.Errorf("keys.turn_b: %w", err)
	}
	if b.TurnA == b.TurnB {
		return b, fmt.Errorf("keys.turn_a and keys.turn_b are both %q", c.Keys.TurnA)
	}
	for i, name := range c.Keys.Modifiers {
		code, err := common.ParseKeyCode(name)
		if err != nil {
			return b, fmt.Errorf("keys.modifiers[%d]: %w", i, err)
		}
		if code == b.TurnA || code == b.TurnB {
			return b, fmt.Errorf("keys.modifiers[%d]: %q is a turn key", i, name)
		}
		b.Modifiers = append(b.Modifiers, code)
	}
	return b, nil
}

// CameraOptions returns the camera builder options for this configuration.
//
// Returns:
//   - []camera4d.CameraBuilderOption: the options
func (c Config) CameraOptions() []camera4d.CameraBuilderOption {
	p := c.Camera.Position
	return []camera4d.CameraBuilderOption{
		camera4d.WithRotateDuration(c.Camera.RotateDuration),
		camera4d.WithPosition(p[0], p[1], p[2], p[3]),
		camera4d.WithComposition(c.Camera.Compose),
	}
}

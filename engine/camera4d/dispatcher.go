package camera4d

import (
	"slices"
	"time"

	"github.com/Carmen-Shannon/oxy4d/common"
)

// KeyState is the per-tick keyboard snapshot the dispatcher polls.
type KeyState interface {
	// JustPressed reports whether the key went down since the previous tick.
	JustPressed(keyCode uint32) bool
	// Pressed reports whether the key is currently held.
	Pressed(keyCode uint32) bool
}

// KeyBindings maps the two turn keys and the inverse modifier to key codes.
type KeyBindings struct {
	TurnA     uint32
	TurnB     uint32
	Modifiers []uint32
}

// DefaultKeyBindings returns Q and E as the turn keys with either shift key as the modifier.
//
// Returns:
//   - KeyBindings: the default bindings
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		TurnA:     common.KeyQ,
		TurnB:     common.KeyE,
		Modifiers: []uint32{common.KeyLeftShift, common.KeyRightShift},
	}
}

// Dispatcher translates key press edges into generator selection.
type Dispatcher struct {
	bindings KeyBindings
}

// NewDispatcher creates a Dispatcher for the given bindings.
//
// Parameters:
//   - bindings: the key bindings to poll
//
// Returns:
//   - *Dispatcher: the new dispatcher
func NewDispatcher(bindings KeyBindings) *Dispatcher {
	return &Dispatcher{bindings: bindings}
}

// Bindings returns the dispatcher's key bindings.
func (d *Dispatcher) Bindings() KeyBindings {
	return d.bindings
}

// Select picks the generator requested by this tick's key edges. Turn key A wins
// over turn key B when both are pressed in the same tick. Holding a modifier
// selects the inverse sweep.
//
// Parameters:
//   - keys: the keyboard snapshot for this tick
//
// Returns:
//   - Generator: the requested generator
//   - bool: false if no turn key was just pressed
func (d *Dispatcher) Select(keys KeyState) (Generator, bool) {
	var g Generator
	switch {
	case keys.JustPressed(d.bindings.TurnA):
		g = GeneratorForwardA
	case keys.JustPressed(d.bindings.TurnB):
		g = GeneratorForwardB
	default:
		return 0, false
	}
	if slices.ContainsFunc(d.bindings.Modifiers, keys.Pressed) {
		g = g.Inverse()
	}
	return g, true
}

// Dispatch triggers the selected generator on the camera. Nothing happens while the
// camera is animating; a rejected trigger is silently ignored.
//
// Parameters:
//   - keys: the keyboard snapshot for this tick
//   - cam: the camera to drive
//   - now: the tick's frame time, used as the animation start
func (d *Dispatcher) Dispatch(keys KeyState, cam Camera, now time.Time) {
	if cam.Animating() {
		return
	}
	if g, ok := d.Select(keys); ok {
		_ = cam.Trigger(g, now)
	}
}

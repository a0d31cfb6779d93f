package input

import "sync"

// Keyboard tracks which keys are held and which went down since the last tick.
// Window callbacks feed it key edges; the frame loop reads it and calls EndTick
// once per tick.
type Keyboard interface {
	// KeyDown records a key press. A press of a key that is already held, such as
	// an OS auto-repeat, is not a new edge.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyDown(keyCode uint32)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// JustPressed reports whether the key went down during the current tick.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - bool: true if the key was pressed since the last EndTick
	JustPressed(keyCode uint32) bool

	// Pressed reports whether the key is currently held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - bool: true if the key is down
	Pressed(keyCode uint32) bool

	// EndTick clears the press edges collected during the current tick.
	EndTick()

	// Reset releases every key, e.g. when the window loses focus.
	Reset()
}

type keyboardImpl struct {
	mu      *sync.Mutex
	held    map[uint32]bool
	pressed map[uint32]bool
}

var _ Keyboard = &keyboardImpl{}

// NewKeyboard creates a Keyboard with no keys held.
//
// Returns:
//   - Keyboard: the new keyboard tracker
func NewKeyboard() Keyboard {
	return &keyboardImpl{
		mu:      &sync.Mutex{},
		held:    make(map[uint32]bool),
		pressed: make(map[uint32]bool),
	}
}

func (k *keyboardImpl) KeyDown(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.held[keyCode] {
		return
	}
	k.held[keyCode] = true
	k.pressed[keyCode] = true
}

func (k *keyboardImpl) KeyUp(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, keyCode)
}

func (k *keyboardImpl) JustPressed(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pressed[keyCode]
}

func (k *keyboardImpl) Pressed(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[keyCode]
}

func (k *keyboardImpl) EndTick() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.pressed)
}

func (k *keyboardImpl) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
	clear(k.pressed)
}

package common

import (
	"fmt"
	"strings"
)

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA     = 65  // A key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyE     = 69  // E key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyR     = 82  // R key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyW     = 87  // W key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// Modifier keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyLeftAlt      = 342 // Left Alt (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
	KeyRightAlt     = 346 // Right Alt (GLFW)
)

var keyNames = map[string]uint32{
	"space":        KeySpace,
	"escape":       KeyEsc,
	"leftshift":    KeyLeftShift,
	"rightshift":   KeyRightShift,
	"leftcontrol":  KeyLeftControl,
	"rightcontrol": KeyRightControl,
	"leftalt":      KeyLeftAlt,
	"rightalt":     KeyRightAlt,
}

// ParseKeyCode resolves a key name to its virtual key code.
// Single letters and digits map to their ASCII code; named keys such as
// "LeftShift" or "space" are matched case-insensitively.
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - uint32: the virtual key code
//   - error: an error if the name is not recognised
func ParseKeyCode(name string) (uint32, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint32(c - 'a' + 'A'), nil
		case c >= '0' && c <= '9':
			return uint32(c), nil
		}
	}
	if code, ok := keyNames[strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

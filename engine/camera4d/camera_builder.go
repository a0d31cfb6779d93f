package camera4d

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a functional option applied to a camera during construction via NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithRotateDuration sets the length of every quarter-turn animation.
// A non-positive duration makes each animation complete on its first tick.
//
// Parameters:
//   - d: the animation length
//
// Returns:
//   - CameraBuilderOption: a function that sets the rotate duration
func WithRotateDuration(d time.Duration) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotateDuration = d
	}
}

// WithPosition sets the camera's fixed 4D world-space position.
//
// Parameters:
//   - x, y, z, w: position components in world units
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera position
func WithPosition(x, y, z, w float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec4{x, y, z, w}
	}
}

// WithRotation overrides the starting orientation. NewCamera falls back to
// InitialRotation if the matrix is not a proper rotation.
//
// Parameters:
//   - r: the starting rotation
//
// Returns:
//   - CameraBuilderOption: a function that sets the starting rotation
func WithRotation(r Rotation4) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotation = r
	}
}

// WithComposition selects how animated rotations are committed.
// When enabled the committed rotation is StartRotation * generator(fraction), so
// successive quarter turns accumulate. When disabled (the default) the generator's
// output is committed as an absolute orientation.
//
// Parameters:
//   - compose: true to compose onto the start rotation
//
// Returns:
//   - CameraBuilderOption: a function that sets the composition mode
func WithComposition(compose bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.compose = compose
	}
}

package camera4d

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultRotateDuration is the length of a single quarter-turn animation.
const DefaultRotateDuration = time.Second

// Animation records an in-flight reorientation. Progress is not stored; it is
// recomputed from the clock on every tick.
type Animation struct {
	// StartRotation is the committed rotation at the moment the animation began.
	StartRotation Rotation4
	// Generator is the sweep being animated.
	Generator Generator
	// StartTime is the monotonic timestamp the animation began at.
	StartTime time.Time
}

type cameraImpl struct {
	rotation  Rotation4
	position  mgl32.Vec4
	animation *Animation

	rotateDuration time.Duration
	compose        bool
}

// Camera is the 4D viewing camera. It owns the committed rotation and at most one
// in-flight quarter-turn animation.
//
// The camera is single-owner: it is driven from one frame loop and is not safe for
// concurrent use.
type Camera interface {
	// Rotation returns the currently committed orientation.
	//
	// Returns:
	//   - Rotation4: the rotation consumed by the renderer this frame
	Rotation() Rotation4

	// Position returns the camera's fixed 4D world-space position.
	//
	// Returns:
	//   - mgl32.Vec4: the camera position
	Position() mgl32.Vec4

	// RotateDuration returns the configured length of every animation.
	//
	// Returns:
	//   - time.Duration: the animation length
	RotateDuration() time.Duration

	// Composing reports whether animations compose onto the start rotation rather
	// than producing absolute orientations.
	//
	// Returns:
	//   - bool: true when composition is enabled
	Composing() bool

	// Animating reports whether a reorientation is in progress.
	//
	// Returns:
	//   - bool: true while an animation is active
	Animating() bool

	// Animation returns a copy of the in-flight animation record.
	//
	// Returns:
	//   - Animation: the active animation
	//   - bool: false if the camera is idle
	Animation() (Animation, bool)

	// Trigger starts animating the given generator from now. It is rejected
	// without side effects while another animation is active or when g is not a
	// known generator. Pass the same frame time that the following Tick receives.
	//
	// Parameters:
	//   - g: the generator to animate
	//   - now: the current monotonic time, recorded as the animation start
	//
	// Returns:
	//   - bool: true if the animation started, false if it was rejected
	Trigger(g Generator, now time.Time) bool

	// Tick advances the in-flight animation to the given time and commits the
	// interpolated rotation. The animation is retired once it reaches completion.
	// Tick is a no-op while idle.
	//
	// Parameters:
	//   - now: the current monotonic time
	Tick(now time.Time)

	// Internal returns the GPU-facing record for the current state.
	//
	// Returns:
	//   - GPUCameraInternal: position and inverse rotation
	Internal() GPUCameraInternal
}

var _ Camera = &cameraImpl{}

// NewCamera creates an idle Camera at InitialRotation with a one second rotate duration.
// A starting rotation supplied through WithRotation that is not in SO(4) is logged
// and replaced by InitialRotation.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		rotation:       InitialRotation(),
		rotateDuration: DefaultRotateDuration,
	}
	for _, option := range options {
		option(c)
	}
	if err := Validate(c.rotation, RotationTolerance); err != nil {
		log.Printf("[Camera4D] rejected starting rotation, using initial rotation: %v", err)
		c.rotation = InitialRotation()
	}
	return c
}

func (c *cameraImpl) Rotation() Rotation4 {
	return c.rotation
}

func (c *cameraImpl) Position() mgl32.Vec4 {
	return c.position
}

func (c *cameraImpl) RotateDuration() time.Duration {
	return c.rotateDuration
}

func (c *cameraImpl) Composing() bool {
	return c.compose
}

func (c *cameraImpl) Animating() bool {
	return c.animation != nil
}

func (c *cameraImpl) Animation() (Animation, bool) {
	if c.animation == nil {
		return Animation{}, false
	}
	return *c.animation, true
}

func (c *cameraImpl) Trigger(g Generator, now time.Time) bool {
	if c.animation != nil {
		return false
	}
	if !g.IsValid() {
		log.Printf("[Camera4D] ignoring unknown %s", g)
		return false
	}
	c.animation = &Animation{
		StartRotation: c.rotation,
		Generator:     g,
		StartTime:     now,
	}
	log.Printf("[Camera4D] rotation %s started (%s)", g, c.rotateDuration)
	return true
}

func (c *cameraImpl) Tick(now time.Time) {
	if c.animation == nil {
		return
	}

	fraction, done := progress(now.Sub(c.animation.StartTime), c.rotateDuration)
	step := c.animation.Generator.Apply(fraction)
	if c.compose {
		c.rotation = c.animation.StartRotation.Mul4(step)
	} else {
		c.rotation = step
	}

	if done {
		if c.compose {
			if err := Validate(c.rotation, RotationTolerance); err != nil {
				log.Printf("[Camera4D] re-orthonormalizing drifted rotation: %v", err)
				c.rotation = Orthonormalize(c.rotation)
			}
		}
		log.Printf("[Camera4D] rotation %s completed", c.animation.Generator)
		c.animation = nil
	}
}

func (c *cameraImpl) Internal() GPUCameraInternal {
	return NewGPUCameraInternal(c.position, c.rotation)
}

// Fraction converts elapsed animation time into progress in [0, 1].
// Elapsed times at or past the duration yield exactly 1, negative elapsed times
// (a clock that went backwards) yield 0, and a non-positive duration completes
// immediately.
//
// Parameters:
//   - elapsed: time since the animation started
//   - duration: the total animation length
//
// Returns:
//   - float32: the clamped progress
func Fraction(elapsed, duration time.Duration) float32 {
	f, _ := progress(elapsed, duration)
	return f
}

// progress is Fraction plus whether the animation has reached its end.
func progress(elapsed, duration time.Duration) (float32, bool) {
	switch {
	case duration <= 0, elapsed >= duration:
		return 1, true
	case elapsed <= 0:
		return 0, false
	}
	// Within a few ns of the end the float32 quotient already rounds to 1.
	if f := float32(float64(elapsed) / float64(duration)); f < 1 {
		return f, false
	}
	return 1, true
}

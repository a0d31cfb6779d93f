package camera4d

import "github.com/go-gl/mathgl/mgl32"

// Projection turns a camera's state into the GPU record, tracking what it last
// produced so unchanged frames can skip the upload.
type Projection struct {
	primed   bool
	rotation Rotation4
	position mgl32.Vec4
	internal GPUCameraInternal
}

// NewProjection creates a Projection that reports a change on its first call.
//
// Returns:
//   - *Projection: the new projection
func NewProjection() *Projection {
	return &Projection{}
}

// Project returns the GPU record for the camera and whether it differs from the
// record returned by the previous call.
//
// Parameters:
//   - cam: the camera to read
//
// Returns:
//   - GPUCameraInternal: the current record
//   - bool: true if the record must be re-uploaded
func (p *Projection) Project(cam Camera) (GPUCameraInternal, bool) {
	rotation, position := cam.Rotation(), cam.Position()
	if p.primed && rotation == p.rotation && position == p.position {
		return p.internal, false
	}
	p.primed = true
	p.rotation = rotation
	p.position = position
	p.internal = NewGPUCameraInternal(position, rotation)
	return p.internal, true
}

// Invalidate forces the next Project call to report a change, e.g. after the GPU
// buffer has been recreated.
func (p *Projection) Invalidate() {
	p.primed = false
}

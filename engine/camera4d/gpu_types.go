package camera4d

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraInternal is the GPU-aligned camera record read by the slicing shader.
// Matches the WGSL Camera4D struct exactly: a vec4<f32> followed by a column-major
// mat4x4<f32>, 80 bytes with no interior padding.
type GPUCameraInternal struct {
	Position    [4]float32  // offset  0: world-space 4D camera position (vec4<f32>)
	InvRotation [16]float32 // offset 16: inverse of the camera rotation (mat4x4<f32>)
}

// GPUCameraInternalSize is the byte size of GPUCameraInternal.
const GPUCameraInternalSize = 80

// NewGPUCameraInternal builds the GPU record for a position and rotation.
// The inverse rotation is computed as the transpose, which is exact for orthonormal matrices.
//
// Parameters:
//   - position: the 4D camera position
//   - rotation: the camera rotation
//
// Returns:
//   - GPUCameraInternal: the record ready for marshalling
func NewGPUCameraInternal(position mgl32.Vec4, rotation Rotation4) GPUCameraInternal {
	return GPUCameraInternal{
		Position:    [4]float32(position),
		InvRotation: [16]float32(rotation.Transpose()),
	}
}

// Size returns the size of the GPUCameraInternal struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraInternal) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the record into little-endian bytes suitable for GPU upload.
//
// Returns:
//   - []byte: the 80-byte serialized record
func (g *GPUCameraInternal) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.InvRotation[i]))
	}
	return buf
}

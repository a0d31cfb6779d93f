package uniform4d

import (
	_ "embed"
	"encoding/binary"

	"github.com/Carmen-Shannon/oxy4d/engine/camera4d"
)

// GPUUniforms4DSource is the canonical WGSL definition of the Uniforms4D block.
// Matches GPUUniforms4D layout exactly (96 bytes, WGSL uniform aligned).
//
//go:embed assets/uniforms_4d.wgsl
var GPUUniforms4DSource string

const (
	// CameraOffset is the byte offset of the camera record inside the block.
	CameraOffset = 0
	// WorldSizeOffset is the byte offset of world_size, directly after the camera record.
	WorldSizeOffset = camera4d.GPUCameraInternalSize
	// GPUUniforms4DSize is the byte size of the whole block.
	GPUUniforms4DSize = 96
)

// GPUUniforms4D is the GPU-aligned representation of the 4D uniform buffer.
// Matches the WGSL Uniforms4D struct (see GPUUniforms4DSource).
type GPUUniforms4D struct {
	Camera    camera4d.GPUCameraInternal // offset  0: Camera4D (80 bytes)
	WorldSize uint32                     // offset 80: world_size (u32)
	_pad      [3]uint32                  // offset 84: padding to the 16-byte struct alignment
}

// NewGPUUniforms4D builds the full block for a camera record and a world edge length.
// The GPU receives the edge length plus the one-voxel border on each side.
//
// Parameters:
//   - cam: the camera's GPU record
//   - worldSize: the voxel grid edge length without its border
//
// Returns:
//   - GPUUniforms4D: the block ready for marshalling
func NewGPUUniforms4D(cam camera4d.GPUCameraInternal, worldSize int) GPUUniforms4D {
	return GPUUniforms4D{
		Camera:    cam,
		WorldSize: gpuWorldSize(worldSize),
	}
}

// Size returns the size of the GPUUniforms4D struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUUniforms4D) Size() int {
	return GPUUniforms4DSize
}

// Marshal serializes the GPUUniforms4D struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUUniforms4D) Marshal() []byte {
	buf := make([]byte, g.Size())
	copy(buf[CameraOffset:], g.Camera.Marshal())
	copy(buf[WorldSizeOffset:], marshalWorldSize(g.WorldSize))
	return buf
}

func gpuWorldSize(worldSize int) uint32 {
	return uint32(worldSize + 2)
}

func marshalWorldSize(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

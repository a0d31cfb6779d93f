package uniform4d

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy4d/engine/camera4d"
	"github.com/Carmen-Shannon/oxy4d/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy4d/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// UniformsBinding is the binding index of the uniform buffer within group 0.
const UniformsBinding = 0

// GPUHost is the slice of the renderer the uniform block needs: bind group creation and
// queued buffer writes.
type GPUHost interface {
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error
	WriteBuffers(writes []bind_group_provider.BufferWrite)
}

// Uniforms owns the GPU uniform block read by the 4D slicing compute passes. The world size is
// written once at Init; afterwards only the camera bytes are rewritten, and only when the
// camera's GPU record changed.
type Uniforms interface {
	// Provider returns the bind group provider holding the uniform buffer.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider
	Provider() bind_group_provider.BindGroupProvider

	// WorldSize returns the world edge length set by Init, or 0 before Init.
	//
	// Returns:
	//   - int: the edge length without border
	WorldSize() int

	// Init creates the buffer and bind group and writes world_size as worldSize+2.
	// The next Writes call always reports the camera.
	//
	// Parameters:
	//   - host: the renderer creating GPU resources
	//   - worldSize: the voxel grid edge length, must be positive
	//
	// Returns:
	//   - error: an error if the size is invalid or GPU resource creation fails
	Init(host GPUHost, worldSize int) error

	// Writes returns the buffer write for the camera record, or nil if the record is unchanged
	// since the last call. The write covers bytes [0, 80) only.
	//
	// Parameters:
	//   - cam: the camera to project
	//
	// Returns:
	//   - []bind_group_provider.BufferWrite: zero or one writes
	Writes(cam camera4d.Camera) []bind_group_provider.BufferWrite

	// Upload queues the camera write on the host if the record changed.
	//
	// Parameters:
	//   - host: the renderer performing the write
	//   - cam: the camera to project
	//
	// Returns:
	//   - bool: true if a write was queued
	Upload(host GPUHost, cam camera4d.Camera) bool

	// Release frees the GPU resources.
	Release()
}

type uniformsImpl struct {
	provider   bind_group_provider.BindGroupProvider
	projection *camera4d.Projection
	worldSize  int
}

var _ Uniforms = &uniformsImpl{}

// NewUniforms creates an uninitialized uniform block.
//
// Parameters:
//   - options: functional options to configure the block
//
// Returns:
//   - Uniforms: the new uniform block
func NewUniforms(options ...UniformsBuilderOption) Uniforms {
	u := &uniformsImpl{
		projection: camera4d.NewProjection(),
	}
	for _, option := range options {
		option(u)
	}
	if u.provider == nil {
		u.provider = bind_group_provider.NewBindGroupProvider("Uniforms4D")
	}
	return u
}

// LayoutDescriptor returns the bind group layout derived from GPUUniforms4DSource: a single
// compute-visible uniform buffer binding of GPUUniforms4DSize bytes.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor for group 0
//   - error: an error if the WGSL source and GPUUniforms4D disagree
func LayoutDescriptor() (wgpu.BindGroupLayoutDescriptor, error) {
	return layoutDescriptor()
}

var layoutDescriptor = sync.OnceValues(func() (wgpu.BindGroupLayoutDescriptor, error) {
	layouts, err := shader.BindGroupLayouts(GPUUniforms4DSource, wgpu.ShaderStageCompute)
	if err != nil {
		return wgpu.BindGroupLayoutDescriptor{}, err
	}
	desc, ok := layouts[0]
	if !ok || len(desc.Entries) != 1 {
		return wgpu.BindGroupLayoutDescriptor{}, errors.New("uniforms source must declare exactly one binding in group 0")
	}
	entry := desc.Entries[0]
	if entry.Binding != UniformsBinding || entry.Buffer.Type != wgpu.BufferBindingTypeUniform {
		return wgpu.BindGroupLayoutDescriptor{}, fmt.Errorf("binding %d is not the uniform block", entry.Binding)
	}
	if entry.Buffer.MinBindingSize != GPUUniforms4DSize {
		return wgpu.BindGroupLayoutDescriptor{}, fmt.Errorf("WGSL block is %d bytes, host layout is %d", entry.Buffer.MinBindingSize, GPUUniforms4DSize)
	}
	desc.Label = "Uniforms4D Layout"
	return desc, nil
})

func (u *uniformsImpl) Provider() bind_group_provider.BindGroupProvider {
	return u.provider
}

func (u *uniformsImpl) WorldSize() int {
	return u.worldSize
}

func (u *uniformsImpl) Init(host GPUHost, worldSize int) error {
	if worldSize <= 0 {
		return fmt.Errorf("world size must be positive, got %d", worldSize)
	}
	desc, err := LayoutDescriptor()
	if err != nil {
		return fmt.Errorf("uniforms layout: %w", err)
	}
	if err := host.InitBindGroup(u.provider, desc, nil, nil); err != nil {
		return fmt.Errorf("init uniforms bind group: %w", err)
	}

	u.worldSize = worldSize
	host.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: u.provider,
		Binding:  UniformsBinding,
		Offset:   WorldSizeOffset,
		Data:     marshalWorldSize(gpuWorldSize(worldSize)),
	}})
	u.projection.Invalidate()

	log.Printf("[Uniforms4D] initialised %d-byte uniform block (world size %d)", GPUUniforms4DSize, worldSize)
	return nil
}

func (u *uniformsImpl) Writes(cam camera4d.Camera) []bind_group_provider.BufferWrite {
	rec, changed := u.projection.Project(cam)
	if !changed {
		return nil
	}
	return []bind_group_provider.BufferWrite{{
		Provider: u.provider,
		Binding:  UniformsBinding,
		Offset:   CameraOffset,
		Data:     rec.Marshal(),
	}}
}

func (u *uniformsImpl) Upload(host GPUHost, cam camera4d.Camera) bool {
	writes := u.Writes(cam)
	if len(writes) == 0 {
		return false
	}
	host.WriteBuffers(writes)
	return true
}

func (u *uniformsImpl) Release() {
	u.provider.Release()
	u.projection.Invalidate()
}

package world

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
)

// Empty is the reserved voxel type id for air. It is always present in the palette.
const Empty uint16 = 0

// VoxelType describes one entry of the world's type palette.
type VoxelType struct {
	// Color is the sRGB color of the voxel.
	Color mgl32.Vec3
}

// Point is an integer 4D grid coordinate (x, y, z, w).
type Point [4]int

// Box is a half-open 4D box [Min, Max) filled with a single voxel type.
type Box struct {
	Min  Point
	Max  Point
	Type uint16
}

// World is a dense cubic 4D voxel grid with a palette of voxel types.
// Voxels are addressed by Point; coordinates outside [0, Size) on any axis are outside the world.
type World interface {
	// Size returns the edge length of the grid.
	//
	// Returns:
	//   - int: the number of voxels along each axis
	Size() int

	// InsertType appends a voxel type to the palette.
	//
	// Parameters:
	//   - t: the voxel type
	//
	// Returns:
	//   - uint16: the id to store in the grid for this type
	InsertType(t VoxelType) uint16

	// Type returns the palette entry for an id.
	//
	// Parameters:
	//   - id: the voxel type id
	//
	// Returns:
	//   - VoxelType: the palette entry
	//   - bool: false if the id is not in the palette
	Type(id uint16) (VoxelType, bool)

	// Types returns a copy of the palette, indexed by id.
	//
	// Returns:
	//   - []VoxelType: the palette
	Types() []VoxelType

	// At returns the voxel type id at a point, or Empty outside the grid.
	//
	// Parameters:
	//   - p: the grid coordinate
	//
	// Returns:
	//   - uint16: the voxel type id
	At(p Point) uint16

	// Set stores a voxel type id at a point. Points outside the grid are ignored.
	//
	// Parameters:
	//   - p: the grid coordinate
	//   - id: the voxel type id
	Set(p Point, id uint16)

	// FillBox fills a box, clipped to the grid.
	//
	// Parameters:
	//   - b: the box to fill
	FillBox(b Box)

	// FillBoxes fills the boxes in order, splitting the work by x slice across the worker pool.
	// Later boxes overwrite earlier ones where they overlap.
	//
	// Parameters:
	//   - boxes: the boxes to fill
	FillBoxes(boxes ...Box)

	// Count returns how many voxels hold the given id.
	//
	// Parameters:
	//   - id: the voxel type id
	//
	// Returns:
	//   - int: the number of matching voxels
	Count(id uint16) int

	// Voxels returns the raw grid in x-major order (w varies fastest).
	//
	// Returns:
	//   - []uint16: the backing voxel slice
	Voxels() []uint16

	// Close stops the worker pool.
	Close()
}

type worldImpl struct {
	mu      *sync.Mutex
	size    int
	voxels  []uint16
	palette []VoxelType

	workers int
	pool    worker.DynamicWorkerPool
}

var _ World = &worldImpl{}

// NewWorld allocates an empty world of the given edge length.
//
// Parameters:
//   - size: the edge length, must be positive
//   - options: functional options to configure the world
//
// Returns:
//   - World: the new world
func NewWorld(size int, options ...WorldBuilderOption) World {
	if size <= 0 {
		panic(fmt.Sprintf("world size must be positive, got %d", size))
	}
	w := &worldImpl{
		mu:      &sync.Mutex{},
		size:    size,
		voxels:  make([]uint16, size*size*size*size),
		palette: []VoxelType{{}},
		workers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(w)
	}
	w.pool = worker.NewDynamicWorkerPool(w.workers, 256, 1*time.Second)
	return w
}

func (w *worldImpl) Size() int {
	return w.size
}

func (w *worldImpl) InsertType(t VoxelType) uint16 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.palette) > int(^uint16(0)) {
		panic("voxel type palette is full")
	}
	w.palette = append(w.palette, t)
	return uint16(len(w.palette) - 1)
}

func (w *worldImpl) Type(id uint16) (VoxelType, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if int(id) >= len(w.palette) {
		return VoxelType{}, false
	}
	return w.palette[id], true
}

func (w *worldImpl) Types() []VoxelType {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]VoxelType(nil), w.palette...)
}

func (w *worldImpl) At(p Point) uint16 {
	i, ok := w.index(p)
	if !ok {
		return Empty
	}
	return w.voxels[i]
}

func (w *worldImpl) Set(p Point, id uint16) {
	if i, ok := w.index(p); ok {
		w.voxels[i] = id
	}
}

func (w *worldImpl) FillBox(b Box) {
	lo, hi, ok := w.clip(b)
	if !ok {
		return
	}
	for x := lo[0]; x < hi[0]; x++ {
		w.fillSlice(x, lo, hi, b.Type)
	}
}

func (w *worldImpl) FillBoxes(boxes ...Box) {
	type clipped struct {
		lo, hi Point
		id     uint16
	}
	var jobs []clipped
	xMin, xMax := w.size, 0
	for _, b := range boxes {
		lo, hi, ok := w.clip(b)
		if !ok {
			continue
		}
		jobs = append(jobs, clipped{lo, hi, b.Type})
		xMin, xMax = min(xMin, lo[0]), max(xMax, hi[0])
	}
	if len(jobs) == 0 {
		return
	}

	// Each task owns one x slice, which is a contiguous run of the grid, so tasks never
	// touch the same voxel and boxes stay ordered within a slice.
	var wg sync.WaitGroup
	for x := xMin; x < xMax; x++ {
		wg.Add(1)
		w.pool.SubmitTask(worker.Task{
			ID: x,
			Do: func() (any, error) {
				defer wg.Done()
				for _, j := range jobs {
					if x >= j.lo[0] && x < j.hi[0] {
						w.fillSlice(x, j.lo, j.hi, j.id)
					}
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	log.Printf("[World] filled %d boxes over %d x slices", len(jobs), xMax-xMin)
}

func (w *worldImpl) Count(id uint16) int {
	n := 0
	for _, v := range w.voxels {
		if v == id {
			n++
		}
	}
	return n
}

func (w *worldImpl) Voxels() []uint16 {
	return w.voxels
}

func (w *worldImpl) Close() {
	w.pool.Stop()
}

// index maps a point to its offset in voxels.
func (w *worldImpl) index(p Point) (int, bool) {
	for _, c := range p {
		if c < 0 || c >= w.size {
			return 0, false
		}
	}
	n := w.size
	return ((p[0]*n+p[1])*n+p[2])*n + p[3], true
}

// clip intersects a box with the grid and reports whether anything is left.
func (w *worldImpl) clip(b Box) (lo, hi Point, ok bool) {
	for axis := range 4 {
		lo[axis] = max(b.Min[axis], 0)
		hi[axis] = min(b.Max[axis], w.size)
		if lo[axis] >= hi[axis] {
			return lo, hi, false
		}
	}
	return lo, hi, true
}

// fillSlice fills the part of the clipped box [lo, hi) that lies in slice x.
func (w *worldImpl) fillSlice(x int, lo, hi Point, id uint16) {
	for y := lo[1]; y < hi[1]; y++ {
		for z := lo[2]; z < hi[2]; z++ {
			base, _ := w.index(Point{x, y, z, lo[3]})
			row := w.voxels[base : base+hi[3]-lo[3]]
			for i := range row {
				row[i] = id
			}
		}
	}
}

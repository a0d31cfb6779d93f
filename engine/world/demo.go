package world

import "github.com/go-gl/mathgl/mgl32"

// DemoColor is the slate color of the demo scene's voxels.
var DemoColor = mgl32.Vec3{0.212, 0.247, 0.278}

// DemoBoxes returns the two overlapping slabs of the demo scene, filled with the given type.
//
// Parameters:
//   - id: the voxel type id to fill with
//
// Returns:
//   - []Box: the demo boxes
func DemoBoxes(id uint16) []Box {
	return []Box{
		{Min: Point{10, 35, 35, 10}, Max: Point{40, 60, 55, 75}, Type: id},
		{Min: Point{20, 16, 16, 16}, Max: Point{70, 40, 25, 40}, Type: id},
	}
}

// DemoScene registers the demo voxel type and fills the demo slabs.
//
// Parameters:
//   - w: the world to populate
//
// Returns:
//   - uint16: the id of the demo voxel type
func DemoScene(w World) uint16 {
	id := w.InsertType(VoxelType{Color: DemoColor})
	w.FillBoxes(DemoBoxes(id)...)
	return id
}

package world

import (
	"testing"
)

func newTestWorld(t *testing.T, size int) World {
	t.Helper()
	w := NewWorld(size, WithWorkers(4))
	t.Cleanup(w.Close)
	return w
}

func TestNewWorldIsEmpty(t *testing.T) {
	w := newTestWorld(t, 6)
	if w.Size() != 6 {
		t.Errorf("Size() = %d", w.Size())
	}
	if len(w.Voxels()) != 6*6*6*6 {
		t.Errorf("len(Voxels()) = %d", len(w.Voxels()))
	}
	if w.Count(Empty) != 6*6*6*6 {
		t.Errorf("Count(Empty) = %d", w.Count(Empty))
	}
	if len(w.Types()) != 1 {
		t.Errorf("palette has %d entries, want only Empty", len(w.Types()))
	}
}

func TestNewWorldPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewWorld(0) did not panic")
		}
	}()
	NewWorld(0)
}

func TestInsertType(t *testing.T) {
	w := newTestWorld(t, 2)
	a := w.InsertType(VoxelType{Color: DemoColor})
	b := w.InsertType(VoxelType{})
	if a != 1 || b != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", a, b)
	}
	if got, ok := w.Type(a); !ok || got.Color != DemoColor {
		t.Errorf("Type(%d) = (%v, %v)", a, got, ok)
	}
	if _, ok := w.Type(9); ok {
		t.Error("Type(9) found")
	}
}

func TestSetAndAt(t *testing.T) {
	w := newTestWorld(t, 4)
	w.Set(Point{1, 2, 3, 0}, 7)
	if got := w.At(Point{1, 2, 3, 0}); got != 7 {
		t.Errorf("At = %d, want 7", got)
	}
	if got := w.Voxels()[((1*4+2)*4+3)*4+0]; got != 7 {
		t.Errorf("raw voxel = %d, want 7 at x-major index", got)
	}

	for _, p := range []Point{{-1, 0, 0, 0}, {0, 4, 0, 0}, {0, 0, 0, 9}} {
		w.Set(p, 5)
		if got := w.At(p); got != Empty {
			t.Errorf("At(%v) = %d outside the grid", p, got)
		}
	}
	if w.Count(5) != 0 {
		t.Error("out-of-range Set wrote into the grid")
	}
}

func TestFillBoxClips(t *testing.T) {
	w := newTestWorld(t, 5)
	w.FillBox(Box{Min: Point{-3, 3, 0, 4}, Max: Point{2, 9, 1, 8}, Type: 1})
	// x 0..2, y 3..5, z 0..1, w 4..5
	if got := w.Count(1); got != 2*2*1*1 {
		t.Errorf("Count = %d, want 4", got)
	}
	if w.At(Point{1, 4, 0, 4}) != 1 || w.At(Point{2, 4, 0, 4}) != Empty {
		t.Error("box bounds are not half-open")
	}

	w.FillBox(Box{Min: Point{3, 3, 3, 3}, Max: Point{3, 5, 5, 5}, Type: 2})
	w.FillBox(Box{Min: Point{6, 0, 0, 0}, Max: Point{9, 5, 5, 5}, Type: 2})
	if w.Count(2) != 0 {
		t.Error("empty box filled voxels")
	}
}

func TestFillBoxesMatchesSequentialFill(t *testing.T) {
	boxes := []Box{
		{Min: Point{0, 0, 0, 0}, Max: Point{6, 3, 4, 5}, Type: 1},
		{Min: Point{2, 1, 1, 1}, Max: Point{9, 8, 3, 4}, Type: 2},
		{Min: Point{4, -2, 0, 0}, Max: Point{5, 8, 8, 8}, Type: 3},
	}
	parallel := newTestWorld(t, 8)
	parallel.FillBoxes(boxes...)

	sequential := newTestWorld(t, 8)
	for _, b := range boxes {
		sequential.FillBox(b)
	}

	pv, sv := parallel.Voxels(), sequential.Voxels()
	for i := range pv {
		if pv[i] != sv[i] {
			t.Fatalf("voxel %d = %d, want %d", i, pv[i], sv[i])
		}
	}
}

func TestFillBoxesNothingToDo(t *testing.T) {
	w := newTestWorld(t, 3)
	w.FillBoxes()
	w.FillBoxes(Box{Min: Point{5, 5, 5, 5}, Max: Point{6, 6, 6, 6}, Type: 1})
	if w.Count(Empty) != 81 {
		t.Error("out-of-range boxes changed the world")
	}
}

func TestDemoSceneClipped(t *testing.T) {
	w := newTestWorld(t, 40)
	id := DemoScene(w)
	if id != 1 {
		t.Errorf("demo type id = %d, want 1", id)
	}
	// First slab clips to 30*5*5*30, second to 20*24*9*24; they do not overlap in z.
	want := 30*5*5*30 + 20*24*9*24
	if got := w.Count(id); got != want {
		t.Errorf("Count = %d, want %d", got, want)
	}
	if w.At(Point{10, 35, 35, 10}) != id || w.At(Point{39, 39, 39, 39}) != id {
		t.Error("slab corners not filled")
	}
	if w.At(Point{9, 35, 35, 10}) != Empty {
		t.Error("voxel before the slab filled")
	}
}

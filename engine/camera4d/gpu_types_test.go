package camera4d

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGPUCameraInternalSize(t *testing.T) {
	var g GPUCameraInternal
	if g.Size() != GPUCameraInternalSize {
		t.Fatalf("Size() = %d, want %d", g.Size(), GPUCameraInternalSize)
	}
	if n := len(g.Marshal()); n != GPUCameraInternalSize {
		t.Fatalf("len(Marshal()) = %d, want %d", n, GPUCameraInternalSize)
	}
}

func TestGPUCameraInternalMarshal(t *testing.T) {
	pos := mgl32.Vec4{1.5, -2, 3.25, 44}
	rot := ForwardB(0.3)
	g := NewGPUCameraInternal(pos, rot)
	buf := g.Marshal()

	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	for i := range 4 {
		if got := read(i * 4); got != pos[i] {
			t.Errorf("position[%d] = %v, want %v", i, got, pos[i])
		}
	}

	inv := rot.Transpose()
	for col := range 4 {
		for row := range 4 {
			// Column-major: element (row, col) lives at col*4+row.
			off := 16 + (col*4+row)*4
			if got := read(off); got != inv.At(row, col) {
				t.Errorf("inv(%d,%d) at offset %d = %v, want %v", row, col, off, got, inv.At(row, col))
			}
		}
	}
}

func TestGPUCameraInternalInverse(t *testing.T) {
	for _, g := range Generators {
		for _, f := range fractions {
			rot := InitialRotation().Mul4(g.Apply(f))
			rec := NewGPUCameraInternal(mgl32.Vec4{}, rot)
			if p := rot.Mul4(mgl32.Mat4(rec.InvRotation)); !p.ApproxEqualThreshold(Identity(), tolerance) {
				t.Errorf("%s(%v): rotation * inverse = %v, want identity", g, f, p)
			}
		}
	}
}

func TestCameraInternalMatchesState(t *testing.T) {
	cam := NewCamera(WithPosition(44, 44, 44, 44))
	rec := cam.Internal()
	if rec.Position != [4]float32{44, 44, 44, 44} {
		t.Errorf("Position = %v", rec.Position)
	}
	if want := [16]float32(InitialRotation().Transpose()); rec.InvRotation != want {
		t.Errorf("InvRotation = %v, want %v", rec.InvRotation, want)
	}
}

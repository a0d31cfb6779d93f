package camera4d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

var fractions = []float32{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}

func TestGeneratorsStartAtIdentity(t *testing.T) {
	for _, g := range Generators {
		if got := g.Apply(0); !got.ApproxEqualThreshold(Identity(), tolerance) {
			t.Errorf("%s(0) = %v, want identity", g, got)
		}
	}
}

func TestFourQuarterTurnsReturnToIdentity(t *testing.T) {
	for _, g := range Generators {
		r := Identity()
		for range 4 {
			r = r.Mul4(g.Apply(1))
		}
		if !r.ApproxEqualThreshold(Identity(), tolerance) {
			t.Errorf("%s(1)^4 = %v, want identity", g, r)
		}
	}
}

func TestQuarterTurnIsNotIdentity(t *testing.T) {
	for _, g := range Generators {
		if g.Apply(1).ApproxEqualThreshold(Identity(), 0.5) {
			t.Errorf("%s(1) is the identity", g)
		}
	}
}

func TestBackwardIsForwardNegated(t *testing.T) {
	for _, f := range fractions {
		if a, b := BackwardA(f), ForwardA(-f); !a.ApproxEqualThreshold(b, 1e-6) {
			t.Errorf("BackwardA(%v) = %v, ForwardA(-%v) = %v", f, a, f, b)
		}
		if a, b := BackwardB(f), ForwardB(-f); !a.ApproxEqualThreshold(b, 1e-6) {
			t.Errorf("BackwardB(%v) = %v, ForwardB(-%v) = %v", f, a, f, b)
		}
	}
}

func TestBackwardUndoesForward(t *testing.T) {
	for _, f := range fractions {
		if r := ForwardA(f).Mul4(BackwardA(f)); !r.ApproxEqualThreshold(Identity(), tolerance) {
			t.Errorf("ForwardA(%v)*BackwardA(%v) = %v, want identity", f, f, r)
		}
		if r := ForwardB(f).Mul4(BackwardB(f)); !r.ApproxEqualThreshold(Identity(), tolerance) {
			t.Errorf("ForwardB(%v)*BackwardB(%v) = %v, want identity", f, f, r)
		}
	}
}

func TestGeneratorsProduceRotations(t *testing.T) {
	for _, g := range Generators {
		for _, f := range fractions {
			if err := Validate(g.Apply(f), tolerance); err != nil {
				t.Errorf("%s(%v): %v", g, f, err)
			}
		}
	}
}

func TestQuarterTurnAxisMapping(t *testing.T) {
	tests := []struct {
		name string
		r    Rotation4
		axis int
		want mgl32.Vec4
	}{
		{"ForwardA X->W", ForwardA(1), AxisX, mgl32.Vec4{0, 0, 0, 1}},
		{"ForwardA Y->Z", ForwardA(1), AxisY, mgl32.Vec4{0, 0, 1, 0}},
		{"ForwardA W->-X", ForwardA(1), AxisW, mgl32.Vec4{-1, 0, 0, 0}},
		{"ForwardB Y->W", ForwardB(1), AxisY, mgl32.Vec4{0, 0, 0, 1}},
		{"ForwardB X->Z", ForwardB(1), AxisX, mgl32.Vec4{0, 0, 1, 0}},
		{"BackwardA X->-W", BackwardA(1), AxisX, mgl32.Vec4{0, 0, 0, -1}},
		{"BackwardB Y->-W", BackwardB(1), AxisY, mgl32.Vec4{0, 0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Col(tt.axis); !got.ApproxEqualThreshold(tt.want, tolerance) {
				t.Errorf("column %d = %v, want %v", tt.axis, got, tt.want)
			}
		})
	}
}

func TestSweepIsMonotonic(t *testing.T) {
	// The sine of the sweep angle sits at (W, X) for A and (W, Y) for B.
	prevA, prevB := float32(-1), float32(-1)
	for i := 0; i <= 20; i++ {
		f := float32(i) / 20
		a := ForwardA(f).At(AxisW, AxisX)
		b := ForwardB(f).At(AxisW, AxisY)
		if a <= prevA || b <= prevB {
			t.Fatalf("sweep not increasing at fraction %v: a=%v (prev %v), b=%v (prev %v)", f, a, prevA, b, prevB)
		}
		prevA, prevB = a, b
	}
}

func TestInitialRotation(t *testing.T) {
	r := InitialRotation()
	if err := Validate(r, tolerance); err != nil {
		t.Fatalf("InitialRotation is not a rotation: %v", err)
	}
	if r.ApproxEqualThreshold(Identity(), tolerance) {
		t.Fatal("InitialRotation is the identity")
	}
	// Every entry is 0 or ±1.
	for i, v := range r {
		if v != 0 && v != 1 && v != -1 {
			t.Errorf("entry %d = %v, want a signed permutation", i, v)
		}
	}
}

func TestValidateRejectsNonRotations(t *testing.T) {
	reflection := mgl32.Mat4FromRows(
		mgl32.Vec4{0, 1, 0, 0},
		mgl32.Vec4{0, 0, 0, 1},
		mgl32.Vec4{1, 0, 0, 0},
		mgl32.Vec4{0, 0, 1, 0},
	)
	tests := []struct {
		name string
		m    Rotation4
	}{
		{"reflection", reflection},
		{"scaled", mgl32.Scale3D(2, 1, 1)},
		{"translated", mgl32.Translate3D(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.m, tolerance); err == nil {
				t.Errorf("Validate(%v) = nil, want error", tt.m)
			}
		})
	}
}

func TestGeneratorInverse(t *testing.T) {
	for _, g := range Generators {
		if g.Inverse().Inverse() != g {
			t.Errorf("%s.Inverse().Inverse() = %s", g, g.Inverse().Inverse())
		}
		if r := g.Apply(0.3).Mul4(g.Inverse().Apply(0.3)); !r.ApproxEqualThreshold(Identity(), tolerance) {
			t.Errorf("%s composed with its inverse = %v", g, r)
		}
	}
}

func TestGeneratorString(t *testing.T) {
	want := []string{"forward-a", "forward-b", "backward-a", "backward-b"}
	for i, g := range Generators {
		if g.String() != want[i] {
			t.Errorf("Generators[%d].String() = %q, want %q", i, g.String(), want[i])
		}
	}
	if got := Generator(42).String(); got != "generator(42)" {
		t.Errorf("unknown generator String() = %q", got)
	}
}

func TestGeneratorIsValid(t *testing.T) {
	for _, g := range Generators {
		if !g.IsValid() {
			t.Errorf("%s.IsValid() = false", g)
		}
	}
	for _, g := range []Generator{-1, 4, 42} {
		if g.IsValid() {
			t.Errorf("%s.IsValid() = true", g)
		}
	}
}

func TestOrthonormalizeKeepsRotations(t *testing.T) {
	for _, r := range []Rotation4{Identity(), InitialRotation(), ForwardA(0.3), BackwardB(0.8), ForwardB(1)} {
		if got := Orthonormalize(r); !got.ApproxEqualThreshold(r, tolerance) {
			t.Errorf("Orthonormalize(%v) = %v", r, got)
		}
	}
}

func TestOrthonormalizeRepairsDrift(t *testing.T) {
	want := InitialRotation().Mul4(ForwardA(0.3))
	drifted := want
	drifted[0] += 1e-3
	drifted[5] -= 5e-4
	drifted[14] += 2e-4
	if Validate(drifted, RotationTolerance) == nil {
		t.Fatal("drifted matrix passed Validate")
	}

	got := Orthonormalize(drifted)
	if err := Validate(got, RotationTolerance); err != nil {
		t.Fatalf("Orthonormalize result: %v", err)
	}
	if !got.ApproxEqualThreshold(want, 1e-2) {
		t.Errorf("Orthonormalize moved the matrix too far: %v, want near %v", got, want)
	}
}

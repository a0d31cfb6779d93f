package camera4d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/mat"
)

// Rotation4 is an element of SO(4): an orthonormal 4x4 matrix with determinant +1.
// Storage is column-major, matching the layout expected by WGSL mat4x4<f32>.
type Rotation4 = mgl32.Mat4

// Axis indices of the 4D view basis.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
	AxisW = 3
)

// Plane identifies a 2D coordinate plane spanned by two basis axes.
type Plane struct {
	A, B int
}

var (
	// planesA are the two orthogonal planes swept by ForwardA and BackwardA.
	planesA = [2]Plane{{AxisX, AxisW}, {AxisY, AxisZ}}
	// planesB are the two orthogonal planes swept by ForwardB and BackwardB.
	planesB = [2]Plane{{AxisY, AxisW}, {AxisX, AxisZ}}
)

// Identity returns the identity rotation.
//
// Returns:
//   - Rotation4: the 4x4 identity matrix
func Identity() Rotation4 {
	return mgl32.Ident4()
}

// InitialRotation returns the fixed starting orientation of the 4D view basis.
// It is a signed permutation that maps the world's W axis into the visible slice,
// so the first 3D slice faces the default direction of the world.
//
// Returns:
//   - Rotation4: the starting orientation (determinant +1)
func InitialRotation() Rotation4 {
	return mgl32.Mat4FromRows(
		mgl32.Vec4{0, 1, 0, 0},
		mgl32.Vec4{0, 0, 0, 1},
		mgl32.Vec4{1, 0, 0, 0},
		mgl32.Vec4{0, 0, -1, 0},
	)
}

// DoubleRotation builds a rotation by the same angle in two mutually orthogonal planes.
// Each plane (a, b) rotates axis a towards axis b.
//
// Parameters:
//   - p, q: the two planes, which must not share an axis
//   - angle: the rotation angle in radians applied in both planes
//
// Returns:
//   - Rotation4: the combined rotation
func DoubleRotation(p, q Plane, angle float64) Rotation4 {
	m := mgl32.Ident4()
	c := float32(math.Cos(angle))
	s := float32(math.Sin(angle))
	for _, pl := range [2]Plane{p, q} {
		m.Set(pl.A, pl.A, c)
		m.Set(pl.A, pl.B, -s)
		m.Set(pl.B, pl.A, s)
		m.Set(pl.B, pl.B, c)
	}
	return m
}

// quarterTurn sweeps fraction*90 degrees in both given planes.
func quarterTurn(planes [2]Plane, fraction float32) Rotation4 {
	return DoubleRotation(planes[0], planes[1], float64(fraction)*math.Pi/2)
}

// ForwardA sweeps the XW and YZ planes by fraction*90 degrees.
//
// Parameters:
//   - fraction: progress in [0, 1]
//
// Returns:
//   - Rotation4: the identity at 0, the full quarter turn at 1
func ForwardA(fraction float32) Rotation4 {
	return quarterTurn(planesA, fraction)
}

// ForwardB sweeps the YW and XZ planes by fraction*90 degrees.
//
// Parameters:
//   - fraction: progress in [0, 1]
//
// Returns:
//   - Rotation4: the identity at 0, the full quarter turn at 1
func ForwardB(fraction float32) Rotation4 {
	return quarterTurn(planesB, fraction)
}

// BackwardA is the inverse sweep of ForwardA.
func BackwardA(fraction float32) Rotation4 {
	return ForwardA(-fraction)
}

// BackwardB is the inverse sweep of ForwardB.
func BackwardB(fraction float32) Rotation4 {
	return ForwardB(-fraction)
}

// Generator names one of the four quarter-turn sweeps.
type Generator int

const (
	GeneratorForwardA Generator = iota
	GeneratorForwardB
	GeneratorBackwardA
	GeneratorBackwardB
)

// Generators lists every generator in declaration order.
var Generators = []Generator{
	GeneratorForwardA,
	GeneratorForwardB,
	GeneratorBackwardA,
	GeneratorBackwardB,
}

// IsValid reports whether g is one of the four declared generators.
func (g Generator) IsValid() bool {
	return g >= GeneratorForwardA && g <= GeneratorBackwardB
}

// Apply evaluates the generator at the given progress fraction. Unknown
// generators yield the identity.
//
// Parameters:
//   - fraction: progress in [0, 1]
//
// Returns:
//   - Rotation4: the swept rotation for the fraction
func (g Generator) Apply(fraction float32) Rotation4 {
	switch g {
	case GeneratorForwardA:
		return ForwardA(fraction)
	case GeneratorForwardB:
		return ForwardB(fraction)
	case GeneratorBackwardA:
		return BackwardA(fraction)
	case GeneratorBackwardB:
		return BackwardB(fraction)
	}
	return Identity()
}

// Inverse returns the generator sweeping the same planes in the opposite direction.
func (g Generator) Inverse() Generator {
	switch g {
	case GeneratorForwardA:
		return GeneratorBackwardA
	case GeneratorForwardB:
		return GeneratorBackwardB
	case GeneratorBackwardA:
		return GeneratorForwardA
	case GeneratorBackwardB:
		return GeneratorForwardB
	}
	return g
}

func (g Generator) String() string {
	switch g {
	case GeneratorForwardA:
		return "forward-a"
	case GeneratorForwardB:
		return "forward-b"
	case GeneratorBackwardA:
		return "backward-a"
	case GeneratorBackwardB:
		return "backward-b"
	}
	return fmt.Sprintf("generator(%d)", int(g))
}

// RotationTolerance is the per-element tolerance used when checking committed rotations.
const RotationTolerance = 1e-5

// Validate reports whether r is a proper rotation within tolerance: its columns are
// orthonormal (RᵀR ≈ I) and its determinant is +1.
//
// Parameters:
//   - r: the matrix to check
//   - tol: absolute tolerance per element and for the determinant
//
// Returns:
//   - error: nil if r is in SO(4), otherwise a description of the violation
func Validate(r Rotation4, tol float64) error {
	d := toDense(r)

	var gram mat.Dense
	gram.Mul(d.T(), d)
	if !mat.EqualApprox(&gram, mat.NewDiagDense(4, []float64{1, 1, 1, 1}), tol) {
		return fmt.Errorf("matrix is not orthonormal: RᵀR = %v", mat.Formatted(&gram, mat.Squeeze()))
	}

	if det := mat.Det(d); math.Abs(det-1) > tol {
		return fmt.Errorf("determinant is %g, want 1", det)
	}
	return nil
}

// Orthonormalize returns the rotation nearest to r in the QR sense: the Q factor of
// r with its columns signed so that R has a positive diagonal. It pulls a matrix
// that has drifted from SO(4) through repeated float32 products back onto it.
//
// Parameters:
//   - r: a matrix close to a rotation
//
// Returns:
//   - Rotation4: the re-orthonormalized matrix
func Orthonormalize(r Rotation4) Rotation4 {
	d := toDense(r)

	var qr mat.QR
	qr.Factorize(d)
	var q, upper mat.Dense
	qr.QTo(&q)
	qr.RTo(&upper)

	var out Rotation4
	for col := 0; col < 4; col++ {
		sign := 1.0
		if upper.At(col, col) < 0 {
			sign = -1
		}
		for row := 0; row < 4; row++ {
			out.Set(row, col, float32(sign*q.At(row, col)))
		}
	}
	return out
}

func toDense(r Rotation4) *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			d.Set(row, col, float64(r.At(row, col)))
		}
	}
	return d
}

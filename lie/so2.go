package lie

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SO2 is a rotation in the plane, stored as the unit complex number
// (cos θ, sin θ). The zero value is NOT a valid rotation; construct through
// SO2Identity, SO2FromRadians, SO2Exp or SO2FromParameters.
type SO2 struct {
	unitComplex [2]float64 // (cos θ, sin θ)
}

// SO2Identity returns the neutral planar rotation (θ = 0).
func SO2Identity() SO2 {
	return SO2{unitComplex: [2]float64{1, 0}}
}

// SO2FromRadians returns the rotation by theta radians (counter-clockwise).
func SO2FromRadians(theta float64) SO2 {
	return SO2{unitComplex: [2]float64{math.Cos(theta), math.Sin(theta)}}
}

// SO2FromParameters constructs a rotation from the raw parameter vector
// (cos θ, sin θ). Returns ErrInvalidDimension unless len(p) == SO2ParamDim.
// The input is NOT renormalized; near-unit norm is assumed downstream, use
// Normalize to repair drift.
func SO2FromParameters(p []float64) (SO2, error) {
	if len(p) != SO2ParamDim {
		return SO2{}, ErrInvalidDimension
	}
	return SO2{unitComplex: [2]float64{p[0], p[1]}}, nil
}

// SO2FromMatrix constructs a rotation from a 2×2 rotation matrix. Returns
// ErrInvalidDimension for a non-2×2 input and ErrInvalidMatrix when the
// matrix is not proper-orthogonal within tolerance.
func SO2FromMatrix(m mat.Matrix) (SO2, error) {
	if err := checkSquare(m, 2); err != nil {
		return SO2{}, err
	}
	if err := checkProperRotation(m, 2); err != nil {
		return SO2{}, err
	}
	return SO2{unitComplex: [2]float64{m.At(0, 0), m.At(1, 0)}}, nil
}

// SO2FromMatrixBestFit constructs the rotation nearest (Frobenius) to an
// arbitrary 2×2 matrix, projecting via SVD instead of rejecting. Only the
// shape is validated.
func SO2FromMatrixBestFit(m mat.Matrix) (SO2, error) {
	if err := checkSquare(m, 2); err != nil {
		return SO2{}, err
	}
	r, err := projectRotation(m, 2)
	if err != nil {
		return SO2{}, err
	}
	return SO2{unitComplex: [2]float64{r.At(0, 0), r.At(1, 0)}}, nil
}

// SO2Exp maps a tangent angle (radians) to its group element. Exact closed
// form, no singularity.
func SO2Exp(theta float64) SO2 {
	return SO2FromRadians(theta)
}

// Exp is the receiver-independent method form of SO2Exp, satisfying the
// generic Element contract.
func (SO2) Exp(theta float64) SO2 {
	return SO2Exp(theta)
}

// Log returns the tangent angle in (−π, π]. Exact via atan2.
func (r SO2) Log() float64 {
	return math.Atan2(r.unitComplex[1], r.unitComplex[0])
}

// AsRadians is an alias for Log in the planar case, kept for readability at
// call sites that think in angles rather than tangent vectors.
func (r SO2) AsRadians() float64 {
	return r.Log()
}

// Parameters returns a copy of the raw parameter vector (cos θ, sin θ).
func (r SO2) Parameters() []float64 {
	return []float64{r.unitComplex[0], r.unitComplex[1]}
}

// Flatten returns the ordered numeric leaves of the rotation.
func (r SO2) Flatten() []float64 {
	return r.Parameters()
}

// Unflatten reconstructs a rotation from ordered leaves. Receiver-independent.
func (SO2) Unflatten(leaves []float64) (SO2, error) {
	return SO2FromParameters(leaves)
}

// AsMatrix returns the 2×2 rotation matrix.
func (r SO2) AsMatrix() *mat.Dense {
	c, s := r.unitComplex[0], r.unitComplex[1]
	return mat.NewDense(2, 2, []float64{
		c, -s,
		s, c,
	})
}

// Multiply composes two rotations (complex multiplication). Commutative for
// SO(2) alone among the four groups.
func (r SO2) Multiply(other SO2) SO2 {
	c1, s1 := r.unitComplex[0], r.unitComplex[1]
	c2, s2 := other.unitComplex[0], other.unitComplex[1]
	return SO2{unitComplex: [2]float64{c1*c2 - s1*s2, c1*s2 + s1*c2}}
}

// Inverse returns the opposite rotation (complex conjugate).
func (r SO2) Inverse() SO2 {
	return SO2{unitComplex: [2]float64{r.unitComplex[0], -r.unitComplex[1]}}
}

// Apply rotates a point in the plane.
func (r SO2) Apply(p [2]float64) [2]float64 {
	c, s := r.unitComplex[0], r.unitComplex[1]
	return [2]float64{c*p[0] - s*p[1], s*p[0] + c*p[1]}
}

// Adjoint returns the 1×1 identity: planar rotations commute, so conjugation
// acts trivially on the tangent space.
func (r SO2) Adjoint() *mat.Dense {
	return mat.NewDense(1, 1, []float64{1})
}

// Normalize re-projects the parameters onto the unit circle, repairing
// floating-point drift from long composition chains.
func (r SO2) Normalize() SO2 {
	n := math.Hypot(r.unitComplex[0], r.unitComplex[1])
	return SO2{unitComplex: [2]float64{r.unitComplex[0] / n, r.unitComplex[1] / n}}
}

package lie

import "gonum.org/v1/gonum/mat"

// Parameter and tangent dimensions per group. Parameter dimension is the
// width of the raw storage vector; tangent dimension is the group's degrees
// of freedom, which is also the order of its Adjoint matrix.
const (
	SO2ParamDim   = 2 // (cos θ, sin θ)
	SO2TangentDim = 1 // θ

	SE2ParamDim   = 4 // (cos θ, sin θ, x, y)
	SE2TangentDim = 3 // (θ, vx, vy)

	SO3ParamDim   = 4 // (qw, qx, qy, qz)
	SO3TangentDim = 3 // (ωx, ωy, ωz)

	SE3ParamDim   = 7 // (qw, qx, qy, qz, x, y, z)
	SE3TangentDim = 6 // (ωx, ωy, ωz, vx, vy, vz)
)

// Group is the dynamic (non-generic) surface common to all four group types.
// It covers the read-only views a host pipeline needs to treat a transform
// opaquely: raw parameters, ordered numeric leaves, and the two matrix forms.
// Operations whose signatures mention the concrete type (Multiply, Exp, ...)
// live on the concrete types and on the generic Element constraint instead.
type Group interface {
	// Parameters returns a copy of the raw parameter vector.
	Parameters() []float64
	// Flatten returns the ordered numeric leaves of the value. For every
	// group this equals Parameters; it exists as a distinct method so hosts
	// implementing a tree-flattening protocol can depend on the narrower
	// Flattener contract.
	Flatten() []float64
	// AsMatrix returns the equivalent rotation or homogeneous transformation
	// matrix (2×2, 3×3 or 4×4).
	AsMatrix() *mat.Dense
	// Adjoint returns the square matrix of tangent-space dimension that
	// transports tangent vectors between frames under conjugation.
	Adjoint() *mat.Dense
}

// Flattener is the decompose half of the flatten/unflatten protocol: an
// ordered list of numeric leaves with no auxiliary metadata.
type Flattener interface {
	Flatten() []float64
}

// Unflattener is the reconstruct half, parameterized by the concrete group
// type. Unflatten is receiver-independent: it may be called on any value of
// the type, including the zero value, and returns ErrInvalidDimension when
// the leaf count does not match the group's parameter dimension.
type Unflattener[G any] interface {
	Unflatten(leaves []float64) (G, error)
}

// Tangent constrains the fixed-width tangent representations used by the
// four groups. Tangent vectors are plain numeric values, not wrapped types.
type Tangent interface {
	float64 | [3]float64 | [6]float64
}

// Element is the capability set the generic manifold helpers require of a
// group, parameterized over the concrete group type G and its tangent type T.
// Exp is receiver-independent (a constructor in method position): calling it
// on any value of the type, including the zero value, yields the exponential
// of the given tangent vector.
type Element[G any, T Tangent] interface {
	Multiply(other G) G
	Inverse() G
	Exp(tangent T) G
	Log() T
}

// Compile-time conformance of all four groups to the shared contracts.
var (
	_ Group = SO2{}
	_ Group = SE2{}
	_ Group = SO3{}
	_ Group = SE3{}

	_ Element[SO2, float64]    = SO2{}
	_ Element[SE2, [3]float64] = SE2{}
	_ Element[SO3, [3]float64] = SO3{}
	_ Element[SE3, [6]float64] = SE3{}

	_ Unflattener[SO2] = SO2{}
	_ Unflattener[SE2] = SE2{}
	_ Unflattener[SO3] = SO3{}
	_ Unflattener[SE3] = SE3{}
)

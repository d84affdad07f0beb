// Package lie implements closed-form matrix Lie groups for rigid-body
// transformations in 2D and 3D: SO(2), SE(2), SO(3) and SE(3).
//
// What it provides:
//
//	Each group is an immutable value type over a fixed-width parameter
//	vector, with the full operation set used in geometric computer vision
//	and robotics:
//	  • Exp / Log        — exponential map from a tangent (Lie-algebra)
//	                       vector to a group element, and its inverse
//	  • Multiply         — group composition (never commutative in general)
//	  • Inverse          — group inverse (always exists)
//	  • Apply            — action on a Euclidean point
//	  • Adjoint          — linear transport of tangent vectors between frames
//	  • AsMatrix / *FromMatrix — homogeneous-matrix interchange (gonum mat)
//	  • *SampleUniform   — uniform rotation sampling over an explicit source
//	  • RPlus / RMinus   — manifold retraction and local difference, generic
//	                       over all four groups
//
// Representation:
//
//	SO(2)  (cos θ, sin θ)             tangent: θ                 float64
//	SE(2)  (cos θ, sin θ, x, y)       tangent: (θ, vx, vy)       [3]float64
//	SO(3)  (qw, qx, qy, qz)           tangent: (ωx, ωy, ωz)      [3]float64
//	SE(3)  (qw, qx, qy, qz, x, y, z)  tangent: (ω, v) screw      [6]float64
//
//	Rotation parameters carry a unit-norm invariant. Constructors accepting
//	raw parameters do NOT renormalize; call Normalize explicitly to repair
//	drift accumulated by long composition chains. SO(3) quaternions are a
//	double cover: q and −q denote the same rotation, and every operation is
//	invariant under that sign.
//
// Numerical policy:
//
//	Coefficients with removable singularities at zero rotation angle come
//	from package numeric, which switches to Taylor series below a small-angle
//	threshold. The SO(3)/SE(3) logarithm canonicalizes the quaternion sign so
//	the returned rotation vector has magnitude in [0, π]. Near-singular
//	inputs are handled, not reported: no operation returns an error for a
//	small or large angle. NaN inputs propagate NaN.
//
// Errors:
//   - ErrInvalidDimension — parameter/tangent/matrix shape mismatch at a
//     construction boundary.
//   - ErrInvalidMatrix — *FromMatrix input fails the proper-orthogonality
//     check; the strict constructors reject, the *BestFit variants project
//     onto the nearest valid rotation instead.
//   - ErrNilSource — *SampleUniform called without a randomness source.
//
// Purity:
//
//	Every operation is a deterministic, side-effect-free function from
//	immutable inputs to a fresh value. Randomness is threaded explicitly as
//	a math/rand/v2 Source. This is what lets a host framework batch or
//	differentiate through these operations safely.
//
// See example_test.go for usage patterns and the examples/ directory for
// runnable scenario programs.
package lie

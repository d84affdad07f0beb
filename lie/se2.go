package lie

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/numeric"
)

// SE2 is a rigid motion in the plane: a rotation followed by a translation.
// Parameter vector (cos θ, sin θ, x, y); tangent (θ, vx, vy). The zero value
// is NOT a valid transform; construct through SE2Identity, SE2Exp,
// SE2FromRotationAndTranslation or SE2FromParameters.
//
// SE(2) is the semidirect product SO(2) ⋉ ℝ²: the parameter vector merely
// concatenates rotation and translation, but Exp and Log couple the two
// through the V matrix — they are not block-diagonal.
type SE2 struct {
	rotation    SO2
	translation [2]float64
}

// SE2Identity returns the neutral transform (zero rotation, zero translation).
func SE2Identity() SE2 {
	return SE2{rotation: SO2Identity()}
}

// SE2FromRotationAndTranslation composes a transform from its parts.
func SE2FromRotationAndTranslation(rotation SO2, translation [2]float64) SE2 {
	return SE2{rotation: rotation, translation: translation}
}

// SE2FromTranslation returns a pure translation (identity rotation).
func SE2FromTranslation(translation [2]float64) SE2 {
	return SE2{rotation: SO2Identity(), translation: translation}
}

// SE2FromXYTheta builds a transform from a planar pose (x, y, θ). This is
// the pose convention of most 2D SLAM and planning stacks.
func SE2FromXYTheta(x, y, theta float64) SE2 {
	return SE2{rotation: SO2FromRadians(theta), translation: [2]float64{x, y}}
}

// SE2FromParameters constructs a transform from the raw parameter vector
// (cos θ, sin θ, x, y). Returns ErrInvalidDimension unless
// len(p) == SE2ParamDim. The rotation part is NOT renormalized.
func SE2FromParameters(p []float64) (SE2, error) {
	if len(p) != SE2ParamDim {
		return SE2{}, ErrInvalidDimension
	}
	return SE2{
		rotation:    SO2{unitComplex: [2]float64{p[0], p[1]}},
		translation: [2]float64{p[2], p[3]},
	}, nil
}

// SE2FromMatrix constructs a transform from a 3×3 homogeneous matrix.
// Returns ErrInvalidDimension for a non-3×3 input, ErrInvalidMatrix when the
// rotation block is not proper-orthogonal within tolerance or the bottom row
// is not (0, 0, 1).
func SE2FromMatrix(m mat.Matrix) (SE2, error) {
	if err := checkSquare(m, 3); err != nil {
		return SE2{}, err
	}
	if err := checkHomogeneousRow(m, 2); err != nil {
		return SE2{}, err
	}
	rot, err := SO2FromMatrix(rotationBlock(m, 2))
	if err != nil {
		return SE2{}, err
	}
	return SE2{rotation: rot, translation: [2]float64{m.At(0, 2), m.At(1, 2)}}, nil
}

// SE2FromMatrixBestFit is the projecting variant of SE2FromMatrix: the
// rotation block is replaced by its nearest proper rotation and the
// translation column is taken as-is. Shape and bottom row are still checked.
func SE2FromMatrixBestFit(m mat.Matrix) (SE2, error) {
	if err := checkSquare(m, 3); err != nil {
		return SE2{}, err
	}
	if err := checkHomogeneousRow(m, 2); err != nil {
		return SE2{}, err
	}
	rot, err := SO2FromMatrixBestFit(rotationBlock(m, 2))
	if err != nil {
		return SE2{}, err
	}
	return SE2{rotation: rot, translation: [2]float64{m.At(0, 2), m.At(1, 2)}}, nil
}

// SE2Exp maps a twist (θ, vx, vy) to its group element:
//
//	rotation    = SO2Exp(θ)
//	translation = V(θ) · v,   V = [ sinθ/θ   −(1−cosθ)/θ ]
//	                              [ (1−cosθ)/θ   sinθ/θ  ]
//
// with the stable ratios from package numeric, so θ → 0 degrades to pure
// translation instead of 0/0.
func SE2Exp(tangent [3]float64) SE2 {
	theta, vx, vy := tangent[0], tangent[1], tangent[2]
	a := numeric.Sinc(theta)
	b := numeric.OneMinusCosOverTheta(theta)
	return SE2{
		rotation:    SO2Exp(theta),
		translation: [2]float64{a*vx - b*vy, b*vx + a*vy},
	}
}

// Exp is the receiver-independent method form of SE2Exp.
func (SE2) Exp(tangent [3]float64) SE2 {
	return SE2Exp(tangent)
}

// Log returns the twist (θ, vx, vy) with SE2Exp(t.Log()) ≈ t. The linear
// part applies V⁻¹(θ) = [[a, b], [−b, a]] / (a² + b²) to the translation,
// built from the same stable ratios as Exp.
func (t SE2) Log() [3]float64 {
	theta := t.rotation.Log()
	a := numeric.Sinc(theta)
	b := numeric.OneMinusCosOverTheta(theta)
	det := a*a + b*b
	x, y := t.translation[0], t.translation[1]
	return [3]float64{
		theta,
		(a*x + b*y) / det,
		(-b*x + a*y) / det,
	}
}

// Rotation returns the rotation part.
func (t SE2) Rotation() SO2 {
	return t.rotation
}

// Translation returns the translation part.
func (t SE2) Translation() [2]float64 {
	return t.translation
}

// Parameters returns a copy of the raw parameter vector (cos θ, sin θ, x, y).
func (t SE2) Parameters() []float64 {
	return []float64{
		t.rotation.unitComplex[0], t.rotation.unitComplex[1],
		t.translation[0], t.translation[1],
	}
}

// Flatten returns the ordered numeric leaves of the transform.
func (t SE2) Flatten() []float64 {
	return t.Parameters()
}

// Unflatten reconstructs a transform from ordered leaves. Receiver-independent.
func (SE2) Unflatten(leaves []float64) (SE2, error) {
	return SE2FromParameters(leaves)
}

// AsMatrix returns the 3×3 homogeneous transformation matrix.
func (t SE2) AsMatrix() *mat.Dense {
	c, s := t.rotation.unitComplex[0], t.rotation.unitComplex[1]
	return mat.NewDense(3, 3, []float64{
		c, -s, t.translation[0],
		s, c, t.translation[1],
		0, 0, 1,
	})
}

// Multiply composes two transforms: rotations compose as SO(2), the other
// translation is rotated into this frame and offset by this translation.
func (t SE2) Multiply(other SE2) SE2 {
	rotated := t.rotation.Apply(other.translation)
	return SE2{
		rotation: t.rotation.Multiply(other.rotation),
		translation: [2]float64{
			rotated[0] + t.translation[0],
			rotated[1] + t.translation[1],
		},
	}
}

// Inverse returns the transform undoing t: R⁻¹ rotation, −R⁻¹·t translation.
func (t SE2) Inverse() SE2 {
	rinv := t.rotation.Inverse()
	back := rinv.Apply(t.translation)
	return SE2{rotation: rinv, translation: [2]float64{-back[0], -back[1]}}
}

// Apply maps a point through the rigid motion: rotate, then translate.
func (t SE2) Apply(p [2]float64) [2]float64 {
	rotated := t.rotation.Apply(p)
	return [2]float64{rotated[0] + t.translation[0], rotated[1] + t.translation[1]}
}

// Adjoint returns the 3×3 tangent-transport matrix for the (θ, vx, vy)
// ordering:
//
//	[ 1    0     0   ]
//	[ y   cosθ −sinθ ]
//	[−x   sinθ  cosθ ]
//
// The first column couples a pure rotation increment into the translation
// induced by rotating about a frame displaced by (x, y).
func (t SE2) Adjoint() *mat.Dense {
	c, s := t.rotation.unitComplex[0], t.rotation.unitComplex[1]
	x, y := t.translation[0], t.translation[1]
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		y, c, -s,
		-x, s, c,
	})
}

// Normalize re-projects the rotation part onto the unit circle; the
// translation is untouched.
func (t SE2) Normalize() SE2 {
	return SE2{rotation: t.rotation.Normalize(), translation: t.translation}
}

package lie

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/numeric"
)

// SE3 is a rigid motion in space: a rotation followed by a translation.
// Parameter vector (qw, qx, qy, qz, x, y, z); tangent is the screw
// (ωx, ωy, ωz, vx, vy, vz). The zero value is NOT a valid transform;
// construct through SE3Identity, SE3Exp, SE3FromRotationAndTranslation or
// SE3FromParameters.
//
// SE(3) is the semidirect product SO(3) ⋉ ℝ³. Its exponential couples the
// rotational and linear parts of the screw through the matrix
//
//	V(ω) = I + (1−cosθ)/θ² · Ω + (θ−sinθ)/θ³ · Ω²,   Ω = [ω]×, θ = ‖ω‖,
//
// which is the crux of the rigid-motion exponential: integrating rotation
// and translation independently would be wrong for any θ ≠ 0.
type SE3 struct {
	rotation    SO3
	translation [3]float64
}

// SE3Identity returns the neutral transform (zero rotation, zero translation).
func SE3Identity() SE3 {
	return SE3{rotation: SO3Identity()}
}

// SE3FromRotationAndTranslation composes a transform from its parts.
func SE3FromRotationAndTranslation(rotation SO3, translation [3]float64) SE3 {
	return SE3{rotation: rotation, translation: translation}
}

// SE3FromTranslation returns a pure translation (identity rotation).
func SE3FromTranslation(translation [3]float64) SE3 {
	return SE3{rotation: SO3Identity(), translation: translation}
}

// SE3FromParameters constructs a transform from the raw parameter vector
// (qw, qx, qy, qz, x, y, z). Returns ErrInvalidDimension unless
// len(p) == SE3ParamDim. The rotation part is NOT renormalized.
func SE3FromParameters(p []float64) (SE3, error) {
	if len(p) != SE3ParamDim {
		return SE3{}, ErrInvalidDimension
	}
	return SE3{
		rotation:    SO3{wxyz: [4]float64{p[0], p[1], p[2], p[3]}},
		translation: [3]float64{p[4], p[5], p[6]},
	}, nil
}

// SE3FromMatrix constructs a transform from a 4×4 homogeneous matrix.
// Returns ErrInvalidDimension for a non-4×4 input, ErrInvalidMatrix when the
// rotation block is not proper-orthogonal within tolerance or the bottom row
// is not (0, 0, 0, 1).
func SE3FromMatrix(m mat.Matrix) (SE3, error) {
	if err := checkSquare(m, 4); err != nil {
		return SE3{}, err
	}
	if err := checkHomogeneousRow(m, 3); err != nil {
		return SE3{}, err
	}
	rot, err := SO3FromMatrix(rotationBlock(m, 3))
	if err != nil {
		return SE3{}, err
	}
	return SE3{
		rotation:    rot,
		translation: [3]float64{m.At(0, 3), m.At(1, 3), m.At(2, 3)},
	}, nil
}

// SE3FromMatrixBestFit is the projecting variant of SE3FromMatrix: the
// rotation block is replaced by its nearest proper rotation and the
// translation column is taken as-is. Shape and bottom row are still checked.
func SE3FromMatrixBestFit(m mat.Matrix) (SE3, error) {
	if err := checkSquare(m, 4); err != nil {
		return SE3{}, err
	}
	if err := checkHomogeneousRow(m, 3); err != nil {
		return SE3{}, err
	}
	rot, err := SO3FromMatrixBestFit(rotationBlock(m, 3))
	if err != nil {
		return SE3{}, err
	}
	return SE3{
		rotation:    rot,
		translation: [3]float64{m.At(0, 3), m.At(1, 3), m.At(2, 3)},
	}, nil
}

// couplingMatrix returns V(ω) when inverse is false, V⁻¹(ω) when true:
//
//	V   = I + (1−cosθ)/θ² · Ω + (θ−sinθ)/θ³ · Ω²
//	V⁻¹ = I − ½Ω + (1 − (θ/2)·cot(θ/2))/θ² · Ω²
//
// Both use the stable coefficients from package numeric, so θ → 0 degrades
// to the identity matrix.
func couplingMatrix(omega [3]float64, inverse bool) [3][3]float64 {
	theta := math.Sqrt(omega[0]*omega[0] + omega[1]*omega[1] + omega[2]*omega[2])
	var c1, c2 float64
	if inverse {
		c1 = -0.5
		c2 = numeric.CouplingInverseCoeff(theta)
	} else {
		c1 = numeric.OneMinusCosOverThetaSq(theta)
		c2 = numeric.ThetaMinusSinOverThetaCube(theta)
	}

	wx, wy, wz := omega[0], omega[1], omega[2]
	// Ω and Ω² assembled entry-wise; Ω² = ωωᵀ − θ²·I.
	var v [3][3]float64
	v[0][0] = 1 + c2*(wx*wx-theta*theta)
	v[1][1] = 1 + c2*(wy*wy-theta*theta)
	v[2][2] = 1 + c2*(wz*wz-theta*theta)
	v[0][1] = c1*(-wz) + c2*wx*wy
	v[1][0] = c1*(wz) + c2*wx*wy
	v[0][2] = c1*(wy) + c2*wx*wz
	v[2][0] = c1*(-wy) + c2*wx*wz
	v[1][2] = c1*(-wx) + c2*wy*wz
	v[2][1] = c1*(wx) + c2*wy*wz
	return v
}

// matVec3 applies a 3×3 array matrix to a 3-vector.
func matVec3(m [3][3]float64, p [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*p[0] + m[0][1]*p[1] + m[0][2]*p[2],
		m[1][0]*p[0] + m[1][1]*p[1] + m[1][2]*p[2],
		m[2][0]*p[0] + m[2][1]*p[1] + m[2][2]*p[2],
	}
}

// SE3Exp maps a screw (ω, v) to its group element: the rotation part is
// SO3Exp(ω) and the translation part is V(ω)·v.
func SE3Exp(tangent [6]float64) SE3 {
	omega := [3]float64{tangent[0], tangent[1], tangent[2]}
	v := [3]float64{tangent[3], tangent[4], tangent[5]}
	return SE3{
		rotation:    SO3Exp(omega),
		translation: matVec3(couplingMatrix(omega, false), v),
	}
}

// Exp is the receiver-independent method form of SE3Exp.
func (SE3) Exp(tangent [6]float64) SE3 {
	return SE3Exp(tangent)
}

// Log returns the screw (ω, v) with SE3Exp(t.Log()) ≈ t: ω from the SO(3)
// logarithm (principal range, ‖ω‖ ≤ π) and v = V⁻¹(ω) applied to the
// translation.
func (t SE3) Log() [6]float64 {
	omega := t.rotation.Log()
	v := matVec3(couplingMatrix(omega, true), t.translation)
	return [6]float64{omega[0], omega[1], omega[2], v[0], v[1], v[2]}
}

// Rotation returns the rotation part.
func (t SE3) Rotation() SO3 {
	return t.rotation
}

// Translation returns the translation part.
func (t SE3) Translation() [3]float64 {
	return t.translation
}

// Parameters returns a copy of the raw parameter vector
// (qw, qx, qy, qz, x, y, z).
func (t SE3) Parameters() []float64 {
	return []float64{
		t.rotation.wxyz[0], t.rotation.wxyz[1], t.rotation.wxyz[2], t.rotation.wxyz[3],
		t.translation[0], t.translation[1], t.translation[2],
	}
}

// Flatten returns the ordered numeric leaves of the transform.
func (t SE3) Flatten() []float64 {
	return t.Parameters()
}

// Unflatten reconstructs a transform from ordered leaves. Receiver-independent.
func (SE3) Unflatten(leaves []float64) (SE3, error) {
	return SE3FromParameters(leaves)
}

// AsMatrix returns the 4×4 homogeneous transformation matrix.
func (t SE3) AsMatrix() *mat.Dense {
	r := t.rotation.AsMatrix()
	return mat.NewDense(4, 4, []float64{
		r.At(0, 0), r.At(0, 1), r.At(0, 2), t.translation[0],
		r.At(1, 0), r.At(1, 1), r.At(1, 2), t.translation[1],
		r.At(2, 0), r.At(2, 1), r.At(2, 2), t.translation[2],
		0, 0, 0, 1,
	})
}

// Multiply composes two transforms: rotations compose as SO(3), the other
// translation is rotated into this frame and offset by this translation.
func (t SE3) Multiply(other SE3) SE3 {
	rotated := t.rotation.Apply(other.translation)
	return SE3{
		rotation: t.rotation.Multiply(other.rotation),
		translation: [3]float64{
			rotated[0] + t.translation[0],
			rotated[1] + t.translation[1],
			rotated[2] + t.translation[2],
		},
	}
}

// Inverse returns the transform undoing t: R⁻¹ rotation, −R⁻¹·t translation.
func (t SE3) Inverse() SE3 {
	rinv := t.rotation.Inverse()
	back := rinv.Apply(t.translation)
	return SE3{rotation: rinv, translation: [3]float64{-back[0], -back[1], -back[2]}}
}

// Apply maps a point through the rigid motion: rotate, then translate.
func (t SE3) Apply(p [3]float64) [3]float64 {
	rotated := t.rotation.Apply(p)
	return [3]float64{
		rotated[0] + t.translation[0],
		rotated[1] + t.translation[1],
		rotated[2] + t.translation[2],
	}
}

// Adjoint returns the 6×6 tangent-transport matrix for the (ω, v) ordering:
//
//	[ R        0 ]
//	[ [t]×·R   R ]
//
// with R the rotation matrix and [t]× the cross-product matrix of the
// translation.
func (t SE3) Adjoint() *mat.Dense {
	r := t.rotation.AsMatrix()
	x, y, z := t.translation[0], t.translation[1], t.translation[2]

	ad := mat.NewDense(6, 6, nil)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			ad.Set(i, j, r.At(i, j))
			ad.Set(i+3, j+3, r.At(i, j))
		}
	}
	// [t]×·R block.
	for j = 0; j < 3; j++ {
		ad.Set(3, j, -z*r.At(1, j)+y*r.At(2, j))
		ad.Set(4, j, z*r.At(0, j)-x*r.At(2, j))
		ad.Set(5, j, -y*r.At(0, j)+x*r.At(1, j))
	}
	return ad
}

// Normalize re-projects the rotation quaternion onto the unit sphere; the
// translation is untouched.
func (t SE3) Normalize() SE3 {
	return SE3{rotation: t.rotation.Normalize(), translation: t.translation}
}

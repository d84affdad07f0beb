package lie

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/numeric"
)

// SO3 is a rotation in space, stored as a unit quaternion (qw, qx, qy, qz).
// The representation is a double cover: q and −q denote the same rotation,
// and every operation here is invariant under that sign. The zero value is
// NOT a valid rotation; construct through SO3Identity, SO3Exp,
// SO3FromQuaternion or one of the conversion constructors.
type SO3 struct {
	wxyz [4]float64 // (qw, qx, qy, qz), scalar first
}

// SO3Identity returns the neutral rotation, quaternion (1, 0, 0, 0).
func SO3Identity() SO3 {
	return SO3{wxyz: [4]float64{1, 0, 0, 0}}
}

// SO3FromQuaternion constructs a rotation from scalar-first components.
// The input is NOT renormalized; use Normalize to repair drift.
func SO3FromQuaternion(w, x, y, z float64) SO3 {
	return SO3{wxyz: [4]float64{w, x, y, z}}
}

// SO3FromQuaternionXYZW constructs a rotation from vector-first components,
// the convention of several robotics message formats. Stored scalar-first.
func SO3FromQuaternionXYZW(x, y, z, w float64) SO3 {
	return SO3{wxyz: [4]float64{w, x, y, z}}
}

// SO3FromParameters constructs a rotation from the raw parameter vector
// (qw, qx, qy, qz). Returns ErrInvalidDimension unless len(p) == SO3ParamDim.
func SO3FromParameters(p []float64) (SO3, error) {
	if len(p) != SO3ParamDim {
		return SO3{}, ErrInvalidDimension
	}
	return SO3{wxyz: [4]float64{p[0], p[1], p[2], p[3]}}, nil
}

// SO3FromXRadians returns the rotation by theta about the x axis.
func SO3FromXRadians(theta float64) SO3 {
	return SO3Exp([3]float64{theta, 0, 0})
}

// SO3FromYRadians returns the rotation by theta about the y axis.
func SO3FromYRadians(theta float64) SO3 {
	return SO3Exp([3]float64{0, theta, 0})
}

// SO3FromZRadians returns the rotation by theta about the z axis.
func SO3FromZRadians(theta float64) SO3 {
	return SO3Exp([3]float64{0, 0, theta})
}

// SO3FromRPYRadians builds a rotation from intrinsic Z-Y-X Euler angles:
// yaw about z, then pitch about y, then roll about x, i.e.
// R = Rz(yaw) · Ry(pitch) · Rx(roll). This matches the aerospace convention
// used by most robotics stacks.
func SO3FromRPYRadians(roll, pitch, yaw float64) SO3 {
	return SO3FromZRadians(yaw).
		Multiply(SO3FromYRadians(pitch)).
		Multiply(SO3FromXRadians(roll))
}

// SO3FromMatrix constructs a rotation from a 3×3 rotation matrix using the
// branch-per-largest-component quaternion extraction, which stays
// well-conditioned for every rotation including half-turns. Returns
// ErrInvalidDimension for a non-3×3 input and ErrInvalidMatrix when the
// matrix is not proper-orthogonal within tolerance.
func SO3FromMatrix(m mat.Matrix) (SO3, error) {
	if err := checkSquare(m, 3); err != nil {
		return SO3{}, err
	}
	if err := checkProperRotation(m, 3); err != nil {
		return SO3{}, err
	}
	return quaternionFromRotation(m), nil
}

// SO3FromMatrixBestFit constructs the rotation nearest (Frobenius) to an
// arbitrary 3×3 matrix, projecting via SVD instead of rejecting. Only the
// shape is validated.
func SO3FromMatrixBestFit(m mat.Matrix) (SO3, error) {
	if err := checkSquare(m, 3); err != nil {
		return SO3{}, err
	}
	r, err := projectRotation(m, 3)
	if err != nil {
		return SO3{}, err
	}
	return quaternionFromRotation(r), nil
}

// quaternionFromRotation extracts a unit quaternion from a (validated or
// projected) rotation matrix. Branches on the largest of trace and diagonal
// entries so the divisor is always ≥ 1.
func quaternionFromRotation(m mat.Matrix) SO3 {
	m00, m01, m02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m10, m11, m12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m20, m21, m22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	trace := m00 + m11 + m22
	var w, x, y, z float64
	switch {
	case trace > 0:
		s := 2 * math.Sqrt(1+trace) // s = 4·qw
		w = s / 4
		x = (m21 - m12) / s
		y = (m02 - m20) / s
		z = (m10 - m01) / s
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22) // s = 4·qx
		w = (m21 - m12) / s
		x = s / 4
		y = (m01 + m10) / s
		z = (m02 + m20) / s
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22) // s = 4·qy
		w = (m02 - m20) / s
		x = (m01 + m10) / s
		y = s / 4
		z = (m12 + m21) / s
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11) // s = 4·qz
		w = (m10 - m01) / s
		x = (m02 + m20) / s
		y = (m12 + m21) / s
		z = s / 4
	}
	return SO3{wxyz: [4]float64{w, x, y, z}}
}

// SO3Exp maps a rotation vector ω (axis · angle) to its group element:
//
//	q = ( cos(‖ω‖/2),  sin(‖ω‖/2)/‖ω‖ · ω )
//
// with sin(θ/2)/θ evaluated stably by package numeric, so ω → 0 yields the
// identity instead of 0/0.
func SO3Exp(omega [3]float64) SO3 {
	theta := math.Sqrt(omega[0]*omega[0] + omega[1]*omega[1] + omega[2]*omega[2])
	factor := numeric.SinHalfOverTheta(theta)
	return SO3{wxyz: [4]float64{
		math.Cos(theta / 2),
		factor * omega[0],
		factor * omega[1],
		factor * omega[2],
	}}
}

// Exp is the receiver-independent method form of SO3Exp.
func (SO3) Exp(omega [3]float64) SO3 {
	return SO3Exp(omega)
}

// Log returns the rotation vector ω with SO3Exp(r.Log()) representing the
// same rotation as r. The quaternion sign is canonicalized (qw ≥ 0) first,
// so ‖ω‖ lies in the principal range [0, π]; the stored parameters are never
// mutated. The scale 2·atan2(‖q_xyz‖, qw)/‖q_xyz‖ switches to its Taylor
// expansion near the identity, where the direction of q_xyz vanishes.
func (r SO3) Log() [3]float64 {
	w, x, y, z := r.wxyz[0], r.wxyz[1], r.wxyz[2], r.wxyz[3]
	if w < 0 {
		// Same rotation, principal-range branch of the double cover.
		w, x, y, z = -w, -x, -y, -z
	}
	normSq := x*x + y*y + z*z
	var factor float64
	if normSq < numeric.SmallAngleThresholdSq {
		// Taylor of 2·atan2(n, w)/n about n = 0 (w ≈ 1 here).
		factor = 2/w - 2*normSq/(3*w*w*w)
	} else {
		norm := math.Sqrt(normSq)
		factor = 2 * math.Atan2(norm, w) / norm
	}
	return [3]float64{factor * x, factor * y, factor * z}
}

// AsRPYRadians returns the intrinsic Z-Y-X Euler angles (roll, pitch, yaw)
// with SO3FromRPYRadians(roll, pitch, yaw) representing the same rotation.
// Pitch is clamped to ±π/2 at the gimbal-lock boundary, where roll and yaw
// are no longer independent.
func (r SO3) AsRPYRadians() (roll, pitch, yaw float64) {
	w, x, y, z := r.wxyz[0], r.wxyz[1], r.wxyz[2], r.wxyz[3]
	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sinPitch := 2 * (w*y - z*x)
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}
	pitch = math.Asin(sinPitch)
	yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return roll, pitch, yaw
}

// AsQuaternionXYZW returns the quaternion in vector-first order.
func (r SO3) AsQuaternionXYZW() [4]float64 {
	return [4]float64{r.wxyz[1], r.wxyz[2], r.wxyz[3], r.wxyz[0]}
}

// Parameters returns a copy of the raw parameter vector (qw, qx, qy, qz).
func (r SO3) Parameters() []float64 {
	return []float64{r.wxyz[0], r.wxyz[1], r.wxyz[2], r.wxyz[3]}
}

// Flatten returns the ordered numeric leaves of the rotation.
func (r SO3) Flatten() []float64 {
	return r.Parameters()
}

// Unflatten reconstructs a rotation from ordered leaves. Receiver-independent.
func (SO3) Unflatten(leaves []float64) (SO3, error) {
	return SO3FromParameters(leaves)
}

// AsMatrix returns the 3×3 rotation matrix. The formula is quadratic in the
// quaternion components, so q and −q produce the same matrix.
func (r SO3) AsMatrix() *mat.Dense {
	w, x, y, z := r.wxyz[0], r.wxyz[1], r.wxyz[2], r.wxyz[3]
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}

// Multiply composes two rotations via the Hamilton product.
func (r SO3) Multiply(other SO3) SO3 {
	w1, x1, y1, z1 := r.wxyz[0], r.wxyz[1], r.wxyz[2], r.wxyz[3]
	w2, x2, y2, z2 := other.wxyz[0], other.wxyz[1], other.wxyz[2], other.wxyz[3]
	return SO3{wxyz: [4]float64{
		w1*w2 - x1*x2 - y1*y2 - z1*z2,
		w1*x2 + x1*w2 + y1*z2 - z1*y2,
		w1*y2 - x1*z2 + y1*w2 + z1*x2,
		w1*z2 + x1*y2 - y1*x2 + z1*w2,
	}}
}

// Inverse returns the opposite rotation (quaternion conjugate; exact inverse
// for unit-norm parameters).
func (r SO3) Inverse() SO3 {
	return SO3{wxyz: [4]float64{r.wxyz[0], -r.wxyz[1], -r.wxyz[2], -r.wxyz[3]}}
}

// Apply rotates a point in space: q·p·q*, expanded to two cross products to
// avoid building the matrix.
func (r SO3) Apply(p [3]float64) [3]float64 {
	w := r.wxyz[0]
	qx, qy, qz := r.wxyz[1], r.wxyz[2], r.wxyz[3]
	// t = 2 · (q_xyz × p)
	tx := 2 * (qy*p[2] - qz*p[1])
	ty := 2 * (qz*p[0] - qx*p[2])
	tz := 2 * (qx*p[1] - qy*p[0])
	// p' = p + w·t + q_xyz × t
	return [3]float64{
		p[0] + w*tx + qy*tz - qz*ty,
		p[1] + w*ty + qz*tx - qx*tz,
		p[2] + w*tz + qx*ty - qy*tx,
	}
}

// Adjoint returns the rotation matrix itself: SO(3)'s adjoint representation
// is its standard action on rotation vectors.
func (r SO3) Adjoint() *mat.Dense {
	return r.AsMatrix()
}

// Normalize re-projects the quaternion onto the unit sphere, repairing
// floating-point drift from long composition chains. The sign is preserved.
func (r SO3) Normalize() SO3 {
	n := math.Sqrt(r.wxyz[0]*r.wxyz[0] + r.wxyz[1]*r.wxyz[1] +
		r.wxyz[2]*r.wxyz[2] + r.wxyz[3]*r.wxyz[3])
	return SO3{wxyz: [4]float64{
		r.wxyz[0] / n, r.wxyz[1] / n, r.wxyz[2] / n, r.wxyz[3] / n,
	}}
}

package lie

// Manifold helpers: retraction and local difference in the right-multiplicative
// convention, generic over every group satisfying the Element contract. An
// optimizer perturbs a pose with RPlus and measures residuals with RMinus
// instead of adding parameter vectors, which would leave the manifold.

// RPlus perturbs base by a local tangent increment:
//
//	RPlus(base, δ) = base · Exp(δ)
//
// For small δ this moves along the manifold in the direction δ expressed in
// base's local frame.
func RPlus[G Element[G, T], T Tangent](base G, delta T) G {
	return base.Multiply(base.Exp(delta))
}

// RMinus recovers the local tangent offset from base to other:
//
//	RMinus(base, other) = Log(base⁻¹ · other)
//
// Inverse of RPlus for offsets within the principal range:
// RMinus(base, RPlus(base, δ)) ≈ δ.
func RMinus[G Element[G, T], T Tangent](base, other G) T {
	return base.Inverse().Multiply(other).Log()
}

// Interpolate moves the fraction alpha of the way from a to b along the
// group geodesic: Interpolate(a, b, 0) = a, Interpolate(a, b, 1) ≈ b, and
// intermediate values follow the screw motion connecting the two. alpha
// outside [0, 1] extrapolates.
func Interpolate[G Element[G, T], T Tangent](a, b G, alpha float64) G {
	return RPlus(a, scaleTangent(RMinus(a, b), alpha))
}

// scaleTangent multiplies a tangent vector by a scalar, preserving the
// fixed-width representation of each group.
func scaleTangent[T Tangent](tangent T, alpha float64) T {
	switch v := any(tangent).(type) {
	case float64:
		return any(v * alpha).(T)
	case [3]float64:
		for i := range v {
			v[i] *= alpha
		}
		return any(v).(T)
	case [6]float64:
		for i := range v {
			v[i] *= alpha
		}
		return any(v).(T)
	default:
		// Unreachable: Tangent admits exactly the three cases above.
		return tangent
	}
}

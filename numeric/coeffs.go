package numeric

import "math"

// SmallAngleThresholdSq is the squared-angle boundary below which all
// coefficient functions switch from their closed form to a two-term Taylor
// expansion. At θ² = 1e-8 (θ = 1e-4 rad) the truncation error of the series
// is of order θ⁴ ≈ 1e-16, i.e. at machine-epsilon level, while the closed
// forms are still far from their 0/0 singularity.
const SmallAngleThresholdSq = 1e-8

// Sinc returns sin(θ)/θ, with Sinc(0) = 1.
func Sinc(theta float64) float64 {
	thetaSq := theta * theta
	if thetaSq < SmallAngleThresholdSq {
		return 1.0 - thetaSq/6.0
	}
	return math.Sin(theta) / theta
}

// OneMinusCosOverTheta returns (1−cos θ)/θ, with value 0 at θ = 0.
// The closed branch uses 2·sin²(θ/2)/θ to avoid the catastrophic
// cancellation in 1−cos θ for moderate angles.
func OneMinusCosOverTheta(theta float64) float64 {
	thetaSq := theta * theta
	if thetaSq < SmallAngleThresholdSq {
		return theta/2.0 - theta*thetaSq/24.0
	}
	s := math.Sin(theta / 2.0)
	return 2.0 * s * s / theta
}

// OneMinusCosOverThetaSq returns (1−cos θ)/θ², with value 1/2 at θ = 0.
// This is the first Rodrigues coefficient of the SE(3) coupling matrix V.
func OneMinusCosOverThetaSq(theta float64) float64 {
	thetaSq := theta * theta
	if thetaSq < SmallAngleThresholdSq {
		return 0.5 - thetaSq/24.0
	}
	s := math.Sin(theta / 2.0)
	return 2.0 * s * s / thetaSq
}

// ThetaMinusSinOverThetaCube returns (θ−sin θ)/θ³, with value 1/6 at θ = 0.
// This is the second Rodrigues coefficient of the SE(3) coupling matrix V.
func ThetaMinusSinOverThetaCube(theta float64) float64 {
	thetaSq := theta * theta
	if thetaSq < SmallAngleThresholdSq {
		return 1.0/6.0 - thetaSq/120.0
	}
	return (theta - math.Sin(theta)) / (theta * thetaSq)
}

// SinHalfOverTheta returns sin(θ/2)/θ, with value 1/2 at θ = 0.
// It scales the imaginary part of the unit quaternion in the SO(3)
// exponential map.
func SinHalfOverTheta(theta float64) float64 {
	thetaSq := theta * theta
	if thetaSq < SmallAngleThresholdSq {
		return 0.5 - thetaSq/48.0
	}
	return math.Sin(theta/2.0) / theta
}

// CouplingInverseCoeff returns (1 − (θ/2)·cot(θ/2)) / θ², with value 1/12 at
// θ = 0. It is the Ω² coefficient of V⁻¹, the inverse of the rigid-motion
// coupling matrix, used by the SE(3) logarithm. The cot(θ/2) form stays
// finite on the whole principal range (0, π]; the naive
// (1+cos θ)/(2θ·sin θ) form blows up at θ = π.
func CouplingInverseCoeff(theta float64) float64 {
	thetaSq := theta * theta
	if thetaSq < SmallAngleThresholdSq {
		return 1.0/12.0 + thetaSq/720.0
	}
	half := theta / 2.0
	return (1.0 - half*math.Cos(half)/math.Sin(half)) / thetaSq
}

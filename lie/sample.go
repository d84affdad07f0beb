package lie

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampling constructors draw group elements with the rotation uniform over
// the rotation manifold (Haar measure) and, for the SE groups, translation
// components independent and uniform in [−1, 1]. Randomness always comes
// from the caller's source — never from process-global state — which keeps
// sampling reproducible and safe to run in parallel with per-goroutine
// sources. All four return ErrNilSource for a nil source and never fail
// otherwise.

// translationSpan is the half-width of the box the SE samplers draw
// translations from. Callers wanting another distribution compose a sampled
// rotation with their own translation via *FromRotationAndTranslation.
const translationSpan = 1.0

// SO2SampleUniform draws a rotation with angle uniform over (−π, π].
func SO2SampleUniform(src rand.Source) (SO2, error) {
	if src == nil {
		return SO2{}, ErrNilSource
	}
	angle := distuv.Uniform{Min: -math.Pi, Max: math.Pi, Src: src}
	return SO2FromRadians(angle.Rand()), nil
}

// SE2SampleUniform draws a transform with uniform rotation and translation
// uniform in [−1, 1]².
func SE2SampleUniform(src rand.Source) (SE2, error) {
	rot, err := SO2SampleUniform(src)
	if err != nil {
		return SE2{}, err
	}
	span := distuv.Uniform{Min: -translationSpan, Max: translationSpan, Src: src}
	return SE2FromRotationAndTranslation(rot, [2]float64{span.Rand(), span.Rand()}), nil
}

// SO3SampleUniform draws a rotation uniform over SO(3): four independent
// standard normals normalized to the unit sphere S³ give the Haar measure on
// unit quaternions.
func SO3SampleUniform(src rand.Source) (SO3, error) {
	if src == nil {
		return SO3{}, ErrNilSource
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	w, x, y, z := normal.Rand(), normal.Rand(), normal.Rand(), normal.Rand()
	n := math.Sqrt(w*w + x*x + y*y + z*z)
	return SO3FromQuaternion(w/n, x/n, y/n, z/n), nil
}

// SE3SampleUniform draws a transform with uniform rotation and translation
// uniform in [−1, 1]³.
func SE3SampleUniform(src rand.Source) (SE3, error) {
	rot, err := SO3SampleUniform(src)
	if err != nil {
		return SE3{}, err
	}
	span := distuv.Uniform{Min: -translationSpan, Max: translationSpan, Src: src}
	return SE3FromRotationAndTranslation(rot,
		[3]float64{span.Rand(), span.Rand(), span.Rand()}), nil
}

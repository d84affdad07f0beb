package lie_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/lie"
)

// TestSE2_ExpLogRoundTrip checks log∘exp over twists spanning pure
// translation, pure rotation and coupled motion, including the small-angle
// regime at and below the series switch.
func TestSE2_ExpLogRoundTrip(t *testing.T) {
	twists := [][3]float64{
		{0, 0, 0},
		{0, 1.5, -2.0},        // pure translation
		{1.2, 0, 0},           // pure rotation
		{0.8, 1.0, 0.5},       // coupled
		{-2.5, -0.3, 2.2},     // large negative rotation
		{1e-8, 1.0, 1.0},      // below the series switch
		{1e-4, -0.5, 0.25},    // at the series switch
		{1e-2, 0.125, -0.125}, // above the series switch
	}
	for _, twist := range twists {
		got := lie.SE2Exp(twist).Log()
		requireSliceClose(t, twist[:], got[:], 1e-7, "log(exp(twist))")
	}
}

// TestSE2_GroupLaws verifies identity, inverse and associativity over
// sampled transforms.
func TestSE2_GroupLaws(t *testing.T) {
	src := newSource(3)
	identity := lie.SE2Identity()
	for i := 0; i < 50; i++ {
		a, err := lie.SE2SampleUniform(src)
		require.NoError(t, err)
		b, err := lie.SE2SampleUniform(src)
		require.NoError(t, err)
		c, err := lie.SE2SampleUniform(src)
		require.NoError(t, err)

		requireGroupClose(t, a, a.Multiply(identity), defaultTol, "right identity")
		requireGroupClose(t, a, identity.Multiply(a), defaultTol, "left identity")
		requireGroupClose(t, identity, a.Multiply(a.Inverse()), defaultTol, "right inverse")
		requireGroupClose(t, identity, a.Inverse().Multiply(a), defaultTol, "left inverse")
		requireGroupClose(t,
			a.Multiply(b).Multiply(c),
			a.Multiply(b.Multiply(c)),
			defaultTol, "associativity")
	}
}

// TestSE2_AdjointConsistency verifies g·exp(τ)·g⁻¹ ≈ exp(Ad_g·τ) for
// sampled g and a mixed rotation/translation tangent.
func TestSE2_AdjointConsistency(t *testing.T) {
	src := newSource(4)
	tau := [3]float64{0.3, -0.7, 0.2}
	for i := 0; i < 20; i++ {
		g, err := lie.SE2SampleUniform(src)
		require.NoError(t, err)

		conjugated := g.Multiply(lie.SE2Exp(tau)).Multiply(g.Inverse())
		transported := mulVec(g.Adjoint(), tau[:])
		requireGroupClose(t,
			lie.SE2Exp([3]float64{transported[0], transported[1], transported[2]}),
			conjugated, 1e-8, "adjoint transport must match conjugation")
	}
}

// TestSE2_MultiplySemantics pins the semidirect-product composition rule:
// translation of a·b is a.rotation·b.translation + a.translation.
func TestSE2_MultiplySemantics(t *testing.T) {
	a := lie.SE2FromXYTheta(1, 2, math.Pi/2)
	b := lie.SE2FromXYTheta(3, 0, 0)
	ab := a.Multiply(b)
	trans := ab.Translation()
	// Quarter turn maps (3, 0) to (0, 3), then offset by (1, 2).
	requireSliceClose(t, []float64{1, 5}, trans[:], defaultTol, "composed translation")
	assert.InDelta(t, math.Pi/2, ab.Rotation().Log(), defaultTol, "composed rotation")
}

// TestSE2_ApplyMatchesHomogeneousMatrix checks the point action against the
// 3×3 homogeneous form.
func TestSE2_ApplyMatchesHomogeneousMatrix(t *testing.T) {
	tf := lie.SE2FromXYTheta(-0.5, 1.25, 0.6)
	p := [2]float64{2.0, -1.0}
	m := tf.AsMatrix()
	want := []float64{
		m.At(0, 0)*p[0] + m.At(0, 1)*p[1] + m.At(0, 2),
		m.At(1, 0)*p[0] + m.At(1, 1)*p[1] + m.At(1, 2),
	}
	got := tf.Apply(p)
	requireSliceClose(t, want, got[:], defaultTol, "Apply must equal homogeneous action")
}

// TestSE2_MatrixRoundTrip checks FromMatrix∘AsMatrix, bottom-row validation
// and strict rejection of an improper rotation block.
func TestSE2_MatrixRoundTrip(t *testing.T) {
	tf := lie.SE2FromXYTheta(4, -3, 2.8)
	back, err := lie.SE2FromMatrix(tf.AsMatrix())
	require.NoError(t, err)
	requireGroupClose(t, tf, back, defaultTol, "matrix round trip")

	bad := tf.AsMatrix()
	bad.Set(2, 0, 0.5) // corrupt the homogeneous row
	_, err = lie.SE2FromMatrix(bad)
	assert.ErrorIs(t, err, lie.ErrInvalidMatrix, "malformed bottom row")

	reflection := mat.NewDense(3, 3, []float64{
		1, 0, 2,
		0, -1, 3,
		0, 0, 1,
	})
	_, err = lie.SE2FromMatrix(reflection)
	assert.ErrorIs(t, err, lie.ErrInvalidMatrix, "improper rotation block")

	_, err = lie.SE2FromMatrix(mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, lie.ErrInvalidDimension, "wrong shape")
}

// TestSE2_FromMatrixBestFit perturbs the rotation block and checks the
// projecting constructor recovers a valid transform near the original.
func TestSE2_FromMatrixBestFit(t *testing.T) {
	tf := lie.SE2FromXYTheta(0.5, -0.5, 1.0)
	noisy := mat.DenseCopyOf(tf.AsMatrix())
	noisy.Set(0, 0, noisy.At(0, 0)+1e-3)

	_, err := lie.SE2FromMatrix(noisy)
	assert.ErrorIs(t, err, lie.ErrInvalidMatrix, "perturbed block must fail strict check")

	fit, err := lie.SE2FromMatrixBestFit(noisy)
	require.NoError(t, err)
	requireGroupClose(t, tf, fit, 5e-3, "best fit must stay near the original")
}

// TestSE2_FromParameters checks construction, accessors and the dimension
// sentinel.
func TestSE2_FromParameters(t *testing.T) {
	tf, err := lie.SE2FromParameters([]float64{1, 0, 5, 6})
	require.NoError(t, err)
	trans := tf.Translation()
	requireSliceClose(t, []float64{5, 6}, trans[:], 0, "translation accessor")
	assert.InDelta(t, 0, tf.Rotation().Log(), 0, "identity rotation part")

	_, err = lie.SE2FromParameters([]float64{1, 0, 5})
	assert.ErrorIs(t, err, lie.ErrInvalidDimension, "length-3 parameters")
}

// TestSE2_FlattenUnflattenRoundTrip checks the leaf protocol.
func TestSE2_FlattenUnflattenRoundTrip(t *testing.T) {
	tf := lie.SE2FromXYTheta(1, -1, 0.7)
	leaves := tf.Flatten()
	require.Len(t, leaves, lie.SE2ParamDim)
	back, err := lie.SE2{}.Unflatten(leaves)
	require.NoError(t, err)
	requireSliceClose(t, tf.Parameters(), back.Parameters(), 0, "flatten round trip")

	_, err = lie.SE2{}.Unflatten(leaves[:3])
	assert.ErrorIs(t, err, lie.ErrInvalidDimension, "wrong leaf count")
}

// TestSE2_SampleUniform checks determinism per seed, translation bounds and
// the nil-source sentinel.
func TestSE2_SampleUniform(t *testing.T) {
	a, err := lie.SE2SampleUniform(newSource(8))
	require.NoError(t, err)
	b, err := lie.SE2SampleUniform(newSource(8))
	require.NoError(t, err)
	requireSliceClose(t, a.Parameters(), b.Parameters(), 0, "same seed, same sample")

	for i := 0; i < 100; i++ {
		s, err := lie.SE2SampleUniform(newSource(uint64(100 + i)))
		require.NoError(t, err)
		trans := s.Translation()
		assert.LessOrEqual(t, math.Abs(trans[0]), 1.0, "translation x in bounds")
		assert.LessOrEqual(t, math.Abs(trans[1]), 1.0, "translation y in bounds")
	}

	_, err = lie.SE2SampleUniform(nil)
	assert.ErrorIs(t, err, lie.ErrNilSource, "nil source must be rejected")
}

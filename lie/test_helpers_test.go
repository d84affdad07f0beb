package lie_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/lie"
)

// defaultTol is the closeness tolerance for algebraic identities over
// well-conditioned inputs. Properties involving a logarithm near the
// principal-range boundary use looser, documented tolerances locally.
const defaultTol = 1e-9

// newSource returns a deterministic randomness source for reproducible
// sampling in tests. Distinct seeds give independent streams.
func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed*2654435761+1)
}

// requireSliceClose compares two numeric slices element-wise within tol.
func requireSliceClose(t *testing.T, want, got []float64, tol float64, msg string) {
	t.Helper()
	require.Len(t, got, len(want), "%s: length mismatch", msg)
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "%s: component %d", msg, i)
	}
}

// requireMatClose compares two matrices entry-wise within tol.
func requireMatClose(t *testing.T, want, got mat.Matrix, tol float64, msg string) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr, "%s: row mismatch", msg)
	require.Equal(t, wc, gc, "%s: column mismatch", msg)
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			require.InDelta(t, want.At(i, j), got.At(i, j), tol,
				"%s: entry (%d,%d)", msg, i, j)
		}
	}
}

// requireGroupClose compares two group elements through their matrix form,
// which is insensitive to the SO(3) double-cover sign.
func requireGroupClose(t *testing.T, want, got lie.Group, tol float64, msg string) {
	t.Helper()
	requireMatClose(t, want.AsMatrix(), got.AsMatrix(), tol, msg)
}

// mulVec applies a dense matrix to a plain vector, returning a plain vector.
// Used by the adjoint-consistency tests.
func mulVec(m *mat.Dense, v []float64) []float64 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(len(v), v))
	res := make([]float64, len(v))
	for i := range res {
		res[i] = out.AtVec(i)
	}
	return res
}

package lie

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// orthoTol bounds the allowed deviation of a rotation block from proper
// orthogonality: max |RᵀR − I| entry and |det R − 1|. Inputs beyond it are
// rejected by the strict constructors with ErrInvalidMatrix.
const orthoTol = 1e-5

// homogeneousRowTol bounds the allowed deviation of the bottom row of a
// homogeneous matrix from (0, ..., 0, 1).
const homogeneousRowTol = 1e-8

// checkSquare validates that m is dim×dim, returning ErrInvalidDimension
// otherwise. Shape problems are dimension errors, not matrix-validity errors:
// a 3×4 input is malformed before orthogonality is even a question.
func checkSquare(m mat.Matrix, dim int) error {
	r, c := m.Dims()
	if r != dim || c != dim {
		return ErrInvalidDimension
	}
	return nil
}

// checkProperRotation validates that the dim×dim matrix m is orthogonal with
// determinant +1 within orthoTol. m must already be square.
func checkProperRotation(m mat.Matrix, dim int) error {
	// RᵀR ≈ I, entry by entry.
	var i, j, k int
	var sum, want float64
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			sum = 0
			for k = 0; k < dim; k++ {
				sum += m.At(k, i) * m.At(k, j)
			}
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(sum-want) > orthoTol {
				return ErrInvalidMatrix
			}
		}
	}
	// Proper: det ≈ +1 (orthogonality alone admits reflections).
	if math.Abs(mat.Det(m)-1) > orthoTol {
		return ErrInvalidMatrix
	}
	return nil
}

// projectRotation returns the proper rotation nearest to m in the Frobenius
// sense, via SVD: R = U·diag(1,...,1,det(UVᵀ))·Vᵀ. Used by the *BestFit
// constructors. Fails with ErrInvalidMatrix only if the factorization itself
// does not converge (degenerate input such as an all-NaN matrix).
func projectRotation(m mat.Matrix, dim int) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return nil, ErrInvalidMatrix
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	r := mat.NewDense(dim, dim, nil)
	r.Mul(&u, v.T())
	if mat.Det(r) < 0 {
		// Flip the least-significant singular direction to restore det = +1.
		for i := 0; i < dim; i++ {
			u.Set(i, dim-1, -u.At(i, dim-1))
		}
		r.Mul(&u, v.T())
	}
	return r, nil
}

// rotationBlock copies the top-left dim×dim block of a homogeneous matrix
// into a fresh dense matrix.
func rotationBlock(m mat.Matrix, dim int) *mat.Dense {
	out := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// checkHomogeneousRow validates that the bottom row of the (dim+1)×(dim+1)
// homogeneous matrix m is (0, ..., 0, 1) within homogeneousRowTol.
func checkHomogeneousRow(m mat.Matrix, dim int) error {
	for j := 0; j < dim; j++ {
		if math.Abs(m.At(dim, j)) > homogeneousRowTol {
			return ErrInvalidMatrix
		}
	}
	if math.Abs(m.At(dim, dim)-1) > homogeneousRowTol {
		return ErrInvalidMatrix
	}
	return nil
}

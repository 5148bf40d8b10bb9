package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// rankEps is the singular-value threshold below which a direction is counted
// as part of the null space.
const rankEps = 1e-9

// NullSpaceBasis computes an orthonormal basis of the null space of an m x n
// matrix (m < n) from its right singular vectors. Columns of the result span
// {x : C*x = 0}. The basis always contains at least n-m vectors; additional
// near-zero singular values widen it.
func NullSpaceBasis(c *mat.Dense) (*mat.Dense, error) {
	m, n := c.Dims()
	if m >= n {
		return nil, fmt.Errorf("null space basis requires a wide matrix, got %dx%d", m, n)
	}

	var svd mat.SVD
	if ok := svd.Factorize(c, mat.SVDFullV); !ok {
		return nil, fmt.Errorf("SVD factorization failed")
	}

	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	// Right singular vectors whose singular value is (numerically) zero span
	// the null space. Values are returned in descending order, so the null
	// space sits in the trailing columns.
	rank := 0
	for _, s := range values {
		if s > rankEps {
			rank++
		}
	}
	dim := n - rank
	if dim <= 0 {
		return nil, fmt.Errorf("matrix has full column rank, null space is empty")
	}

	basis := mat.NewDense(n, dim, nil)
	for j := 0; j < dim; j++ {
		for i := 0; i < n; i++ {
			basis.Set(i, j, v.At(i, rank+j))
		}
	}
	return basis, nil
}

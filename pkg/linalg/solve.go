// Package linalg provides the small dense linear algebra used by the curve
// fitting and plane estimation code: Cramer's-rule 3x3 solves, a bounded
// cyclic Jacobi eigenvalue solver for symmetric matrices, PCA plane normals, and
// SVD-based null space extraction.
package linalg

import "math"

// singularEps is the determinant magnitude below which a 3x3 system is
// reported singular and no solution is attempted.
const singularEps = 1e-9

// Solve3x3 solves A*x = b by Cramer's rule. The second return value is false
// when the system is singular (|det A| < 1e-9).
func Solve3x3(a [3][3]float64, b [3]float64) ([3]float64, bool) {
	det := det3(a)
	if math.Abs(det) < singularEps {
		return [3]float64{}, false
	}

	var x [3]float64
	for col := 0; col < 3; col++ {
		m := a
		for row := 0; row < 3; row++ {
			m[row][col] = b[row]
		}
		x[col] = det3(m) / det
	}
	return x, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

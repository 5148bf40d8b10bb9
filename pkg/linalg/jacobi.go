package linalg

import "math"

// Iteration budgets for the two callers of the Jacobi solver. The solver is
// best-effort: it stops after the budget even if the off-diagonal mass has not
// converged, and callers must tolerate approximate eigenvectors.
const (
	// PlaneIterations is enough for the well-conditioned 3x3 covariance
	// matrices produced by plane-normal estimation.
	PlaneIterations = 10
	// ConicIterations covers the larger Gram matrices built by the
	// constrained conic fit.
	ConicIterations = 50

	// PlaneEps and ConicEps are the off-diagonal convergence thresholds for
	// the respective budgets.
	PlaneEps = 1e-9
	ConicEps = 1e-10
)

// EigenResult holds the eigenvalues and eigenvectors of a symmetric matrix.
// Values[i] corresponds to the column Vectors[*][i]. The order follows the
// Jacobi sweep and is NOT sorted.
type EigenResult struct {
	Values  []float64
	Vectors [][]float64 // Vectors[row][col]; column col is the eigenvector for Values[col]
}

// JacobiEigen diagonalizes a symmetric n x n matrix with cyclic Jacobi
// rotations. It sweeps all off-diagonal entries up to maxSweeps times and
// returns whatever it has once the off-diagonal norm drops below eps or the
// budget runs out. The result after budget exhaustion is an approximation,
// not an error.
func JacobiEigen(m [][]float64, maxSweeps int, eps float64) EigenResult {
	n := len(m)

	// Work on a copy; the rotations are applied in place.
	a := make([][]float64, n)
	for i := range m {
		a[i] = append([]float64(nil), m[i]...)
	}

	v := identity(n)

	for sweep := 0; sweep < maxSweeps; sweep++ {
		if offDiagonalNorm(a) < eps {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				rotate(a, v, p, q)
			}
		}
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = a[i][i]
	}
	return EigenResult{Values: values, Vectors: v}
}

// MinEigenpair returns the smallest eigenvalue and its eigenvector column
// from a Jacobi result.
func (r EigenResult) MinEigenpair() (float64, []float64) {
	minIdx := 0
	for i := 1; i < len(r.Values); i++ {
		if r.Values[i] < r.Values[minIdx] {
			minIdx = i
		}
	}
	vec := make([]float64, len(r.Values))
	for row := range vec {
		vec[row] = r.Vectors[row][minIdx]
	}
	return r.Values[minIdx], vec
}

// rotate zeroes a[p][q] with a single Jacobi rotation, accumulating the
// rotation into v.
func rotate(a, v [][]float64, p, q int) {
	if a[p][q] == 0 {
		return
	}
	n := len(a)

	theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
	t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	for i := 0; i < n; i++ {
		aip := a[i][p]
		aiq := a[i][q]
		a[i][p] = c*aip - s*aiq
		a[i][q] = s*aip + c*aiq
	}
	for i := 0; i < n; i++ {
		api := a[p][i]
		aqi := a[q][i]
		a[p][i] = c*api - s*aqi
		a[q][i] = s*api + c*aqi
	}
	for i := 0; i < n; i++ {
		vip := v[i][p]
		viq := v[i][q]
		v[i][p] = c*vip - s*viq
		v[i][q] = s*vip + c*viq
	}
}

func offDiagonalNorm(a [][]float64) float64 {
	sum := 0.0
	for i := range a {
		for j := range a[i] {
			if i != j {
				sum += a[i][j] * a[i][j]
			}
		}
	}
	return math.Sqrt(sum)
}

func identity(n int) [][]float64 {
	v := make([][]float64, n)
	for i := range v {
		v[i] = make([]float64, n)
		v[i][i] = 1
	}
	return v
}

package curve

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/linalg"
)

// conic holds the coefficients of Ax^2 + Bxy + Cy^2 + Dx + Ey + F = 0
type conic struct {
	a, b, c, d, e, f float64
}

// isHyperbola classifies the conic by its discriminant. The archwire fit
// only accepts the hyperbola family; ellipses and parabolas coming out of
// the least-squares stage mean the interior points do not support the
// expected arch shape.
func (cn conic) isHyperbola() bool {
	return 4*cn.a*cn.c-cn.b*cn.b < 0
}

// FitConic fits a general conic constrained to pass exactly through the two
// endpoints, least-squares through up to 3 interior points, and samples it
// with the given count. Fit failures (degenerate constraints, non-hyperbolic
// classification) fall back to Catmull-Rom smoothing through the raw points,
// reported via the result's Method tag.
func FitConic(start, end geometry.Vector3, interior []geometry.Vector3, samples int) Result {
	samples = ClampResampleCount(samples)

	raw := make([]geometry.Vector3, 0, len(interior)+2)
	raw = append(raw, start)
	raw = append(raw, interior...)
	raw = append(raw, end)
	if len(interior) == 0 {
		return Result{Points: CatmullRom(raw, samples), Method: MethodCatmullRom}
	}

	// Working plane through the anchor set, x axis along start -> end
	along := end.Sub(start)
	if along.LengthSq() < coincidentEps {
		return Result{Points: CatmullRom(raw, samples), Method: MethodCatmullRom}
	}
	normal := linalg.FitPlaneNormal(raw)
	basis := geometry.NewBasis(start, along, normal)

	xs, ys := basis.Project(start)
	xe, ye := basis.Project(end)

	ix := make([]float64, len(interior))
	iy := make([]float64, len(interior))
	for i, p := range interior {
		ix[i], iy[i] = basis.Project(p)
	}

	cn, ok := solveConstrainedConic(xs, ys, xe, ye, ix, iy)
	if !ok || !cn.isHyperbola() {
		return Result{Points: CatmullRom(raw, samples), Method: MethodCatmullRom}
	}

	points := sampleConic(cn, basis, xs, ys, xe, ye, medianOf(iy), samples)
	points[0] = start
	points[len(points)-1] = end
	return Result{Points: points, Method: MethodConic}
}

// conicRow builds the design-matrix row [x^2, xy, y^2, x, y, 1]
func conicRow(x, y float64) []float64 {
	return []float64{x * x, x * y, y * y, x, y, 1}
}

// solveConstrainedConic finds the conic through both endpoints minimizing the
// algebraic residual at the interior points: the endpoint rows span a rank-2
// constraint whose 4-dimensional null space parameterizes all candidate
// conics, and the winner is the null-space combination with the smallest
// eigenvalue of the projected Gram matrix.
func solveConstrainedConic(xs, ys, xe, ye float64, ix, iy []float64) (conic, bool) {
	constraints := mat.NewDense(2, 6, nil)
	constraints.SetRow(0, conicRow(xs, ys))
	constraints.SetRow(1, conicRow(xe, ye))

	null, err := linalg.NullSpaceBasis(constraints)
	if err != nil {
		return conic{}, false
	}
	_, dim := null.Dims()

	design := mat.NewDense(len(ix), 6, nil)
	for i := range ix {
		design.SetRow(i, conicRow(ix[i], iy[i]))
	}

	var projected mat.Dense
	projected.Mul(design, null)

	var gram mat.Dense
	gram.Mul(projected.T(), &projected)

	g := make([][]float64, dim)
	for i := range g {
		g[i] = make([]float64, dim)
		for j := range g[i] {
			g[i][j] = gram.At(i, j)
		}
	}
	_, weights := linalg.JacobiEigen(g, linalg.ConicIterations, linalg.ConicEps).MinEigenpair()

	coeffs := make([]float64, 6)
	for row := 0; row < 6; row++ {
		for col := 0; col < dim; col++ {
			coeffs[row] += null.At(row, col) * weights[col]
		}
	}
	cn := conic{a: coeffs[0], b: coeffs[1], c: coeffs[2], d: coeffs[3], e: coeffs[4], f: coeffs[5]}

	for _, v := range coeffs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return conic{}, false
		}
	}
	return cn, true
}

// sampleConic evaluates the conic at evenly spaced x values between the two
// endpoints and maps the solved points back to 3D. y is the root of the
// per-x quadratic; when two real roots exist the one closer to the median
// interior y wins. That branch choice is a heuristic and can mis-select near
// asymptotes, which the endpoint correction in FitConic papers over at the
// boundary.
func sampleConic(cn conic, basis geometry.Basis, xs, ys, xe, ye, medianY float64, samples int) []geometry.Vector3 {
	reversed := false
	x0, x1 := xs, xe
	y0 := ys
	if x0 > x1 {
		x0, x1 = x1, x0
		y0 = ye
		reversed = true
	}

	points := make([]geometry.Vector3, samples)
	prevY := y0
	for i := 0; i < samples; i++ {
		x := x0 + (x1-x0)*float64(i)/float64(samples-1)
		y, ok := solveConicY(cn, x, medianY)
		if !ok {
			// No real root at this x: hold the previous height rather than
			// emitting a non-finite point.
			y = prevY
		}
		prevY = y
		points[i] = basis.Unproject(x, y)
	}

	if reversed {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return points
}

// solveConicY solves C y^2 + (Bx + E) y + (Ax^2 + Dx + F) = 0 for y at a
// fixed x, preferring the root closer to wantY.
func solveConicY(cn conic, x, wantY float64) (float64, bool) {
	qa := cn.c
	qb := cn.b*x + cn.e
	qc := cn.a*x*x + cn.d*x + cn.f

	if math.Abs(qa) < 1e-12 {
		if math.Abs(qb) < 1e-12 {
			return 0, false
		}
		return -qc / qb, true
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	y1 := (-qb + sq) / (2 * qa)
	y2 := (-qb - sq) / (2 * qa)
	if math.Abs(y1-wantY) <= math.Abs(y2-wantY) {
		return y1, true
	}
	return y2, true
}

func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

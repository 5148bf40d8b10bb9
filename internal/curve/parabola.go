package curve

import (
	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/linalg"
)

// Method identifies which construction produced a fitted curve, so callers
// can tell a degraded fallback from the requested fit.
type Method int

const (
	// MethodParabola is an exact parabola through 3 points.
	MethodParabola Method = iota
	// MethodConic is a constrained general conic (hyperbola branch).
	MethodConic
	// MethodCatmullRom marks the smoothing fallback taken on degeneracy.
	MethodCatmullRom
)

// String returns a short name for the method
func (m Method) String() string {
	switch m {
	case MethodParabola:
		return "parabola"
	case MethodConic:
		return "conic"
	default:
		return "catmull-rom"
	}
}

// Result is a fitted curve and the construction that produced it
type Result struct {
	Points []geometry.Vector3
	Method Method
}

// coincidentEps is the squared distance below which two anchor points are
// treated as coincident when choosing the in-plane x axis.
const coincidentEps = 1e-12

// ParabolaThrough fits the parabola y = ax^2 + bx + c passing exactly through
// three points in their common plane and samples it with the given count,
// evenly spaced in x from p1 to p3. When the points are collinear or the
// Vandermonde system is singular, it falls back to Catmull-Rom interpolation
// through the three raw points.
func ParabolaThrough(p1, p2, p3 geometry.Vector3, samples int) Result {
	samples = ClampResampleCount(samples)

	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	if normal.LengthSq() < coincidentEps {
		return fallback(p1, p2, p3)
	}

	// In-plane x axis runs p1 -> p3 so that p1 projects to the origin and p3
	// to (x3, 0); fall back to p1 -> p2 when the outer points nearly coincide.
	along := p3.Sub(p1)
	if along.LengthSq() < coincidentEps {
		along = p2.Sub(p1)
	}
	basis := geometry.NewBasis(p1, along, normal)

	x1, y1 := basis.Project(p1)
	x2, y2 := basis.Project(p2)
	x3, y3 := basis.Project(p3)

	coeffs, ok := linalg.Solve3x3(
		[3][3]float64{
			{x1 * x1, x1, 1},
			{x2 * x2, x2, 1},
			{x3 * x3, x3, 1},
		},
		[3]float64{y1, y2, y3},
	)
	if !ok {
		return fallback(p1, p2, p3)
	}
	a, b, c := coeffs[0], coeffs[1], coeffs[2]

	points := make([]geometry.Vector3, samples)
	for i := 0; i < samples; i++ {
		x := x3 * float64(i) / float64(samples-1)
		y := a*x*x + b*x + c
		points[i] = basis.Unproject(x, y)
	}
	// The sampled ends are analytic, the anchors are authoritative
	points[0] = p1
	points[samples-1] = p3

	return Result{Points: points, Method: MethodParabola}
}

func fallback(points ...geometry.Vector3) Result {
	return Result{
		Points: CatmullRom(points, DefaultResampleCount),
		Method: MethodCatmullRom,
	}
}

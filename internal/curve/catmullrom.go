// Package curve builds smooth wire centerlines from sparse control points:
// exact parabola interpolation, constrained conic least-squares fitting, and
// Catmull-Rom smoothing. Every entry point returns a usable point sequence;
// geometric degeneracies degrade to a simpler construction reported through
// the result's Method tag instead of an error.
package curve

import (
	"github.com/orthocad/archwire/pkg/geometry"
)

// Resample count limits for smoothing output
const (
	MinResampleCount     = 20
	MaxResampleCount     = 200
	DefaultResampleCount = 50
)

// catmullTension is the Catmull-Rom tension parameter
const catmullTension = 0.5

// ClampResampleCount forces a requested sample count into the valid range.
// Zero or negative requests get the default.
func ClampResampleCount(count int) int {
	if count <= 0 {
		return DefaultResampleCount
	}
	if count < MinResampleCount {
		return MinResampleCount
	}
	if count > MaxResampleCount {
		return MaxResampleCount
	}
	return count
}

// CatmullRom interpolates a smooth curve through the ordered control points
// and resamples it to the given count (clamped to the valid range). The
// first and last control points are reproduced exactly. Fewer than 3 control
// points come back unchanged; there is nothing to smooth.
func CatmullRom(points []geometry.Vector3, count int) []geometry.Vector3 {
	if len(points) < 3 {
		return append([]geometry.Vector3(nil), points...)
	}
	count = ClampResampleCount(count)

	segments := len(points) - 1
	out := make([]geometry.Vector3, count)
	for i := 0; i < count; i++ {
		u := float64(i) / float64(count-1) * float64(segments)
		seg := int(u)
		if seg >= segments {
			seg = segments - 1
		}
		out[i] = catmullSample(points, seg, u-float64(seg))
	}
	// Guard against accumulated parameterization error at the ends
	out[0] = points[0]
	out[count-1] = points[len(points)-1]
	return out
}

// catmullSample evaluates the spline segment between points[seg] and
// points[seg+1] at local parameter t, duplicating endpoints for the missing
// outer neighbors.
func catmullSample(points []geometry.Vector3, seg int, t float64) geometry.Vector3 {
	p1 := points[seg]
	p2 := points[seg+1]
	p0 := p1
	if seg > 0 {
		p0 = points[seg-1]
	}
	p3 := p2
	if seg+2 < len(points) {
		p3 = points[seg+2]
	}

	t2 := t * t
	t3 := t2 * t

	// Tangents scaled by the tension parameter
	m1 := p2.Sub(p0).Mul(catmullTension)
	m2 := p3.Sub(p1).Mul(catmullTension)

	// Cubic Hermite basis
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return p1.Mul(h00).Add(m1.Mul(h10)).Add(p2.Mul(h01)).Add(m2.Mul(h11))
}

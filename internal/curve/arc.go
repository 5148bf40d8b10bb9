package curve

import (
	"github.com/orthocad/archwire/pkg/geometry"
)

// Control-point target limits for arc down-sampling
const (
	MinControlPoints     = 3
	MaxControlPoints     = 20
	DefaultControlPoints = 10
)

// ClampControlPoints forces a requested control-point target into the valid
// range. Zero or negative requests get the default.
func ClampControlPoints(target int) int {
	if target <= 0 {
		return DefaultControlPoints
	}
	if target < MinControlPoints {
		return MinControlPoints
	}
	if target > MaxControlPoints {
		return MaxControlPoints
	}
	return target
}

// ArcBetween returns the shorter of the two cyclic arcs of a contact ring
// between the selected indices, both endpoints included. Shorter is decided
// by index distance, not geodesic length. Out-of-range or equal indices
// yield nil.
func ArcBetween(ring []geometry.Vector3, i, j int) []geometry.Vector3 {
	n := len(ring)
	if n == 0 || i < 0 || j < 0 || i >= n || j >= n || i == j {
		return nil
	}

	forward := (j - i + n) % n  // Steps walking i -> j in ring order
	backward := (i - j + n) % n // Steps walking i -> j against ring order

	var arc []geometry.Vector3
	if forward <= backward {
		for k := 0; k <= forward; k++ {
			arc = append(arc, ring[(i+k)%n])
		}
	} else {
		for k := 0; k <= backward; k++ {
			arc = append(arc, ring[(i-k+n)%n])
		}
	}
	return arc
}

// Downsample reduces a point run to roughly the target count with a uniform
// index stride, always keeping the first and last points. Runs at or below
// the target are returned unchanged.
func Downsample(points []geometry.Vector3, target int) []geometry.Vector3 {
	target = ClampControlPoints(target)
	if len(points) <= target {
		return append([]geometry.Vector3(nil), points...)
	}

	out := make([]geometry.Vector3, 0, target)
	last := len(points) - 1
	for i := 0; i < target; i++ {
		idx := i * last / (target - 1)
		out = append(out, points[idx])
	}
	out[len(out)-1] = points[last]
	return out
}

// PathBetween builds a smoothed wire path between two selected contact
// points: shorter cyclic arc, down-sample to the control-point target, then
// Catmull-Rom resample. The selected contact points always survive as the
// exact ends of the result.
func PathBetween(ring []geometry.Vector3, i, j, controlTarget, resampleCount int) []geometry.Vector3 {
	arc := ArcBetween(ring, i, j)
	if len(arc) == 0 {
		return nil
	}
	controls := Downsample(arc, controlTarget)
	smooth := CatmullRom(controls, resampleCount)
	if len(smooth) > 0 {
		smooth[0] = arc[0]
		smooth[len(smooth)-1] = arc[len(arc)-1]
	}
	return smooth
}

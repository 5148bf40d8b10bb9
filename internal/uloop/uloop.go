// Package uloop generates the parametric U-loop bend feature: two raised
// arms connected by a semicircular arc, spliced into the wire path between
// selected anchor points.
package uloop

import (
	"math"

	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/wirepath"
)

// Defaults for loop generation, in millimeters and samples
const (
	DefaultEndOffset = 1.0 // Outward offset of the arm-tops away from the surface
	DefaultArmCount  = 16  // Semicircle samples per loop
)

// Params controls the loop shape
type Params struct {
	Height    float64 // Arm height along the opening direction
	EndOffset float64 // Extra outward offset applied to both arms
	ArmCount  int     // Semicircle sample count (the arrival point included)
}

// DefaultParams returns loop parameters with the standard offsets
func DefaultParams(height float64) Params {
	return Params{Height: height, EndOffset: DefaultEndOffset, ArmCount: DefaultArmCount}
}

// Generate builds the loop run between two base anchors. up must be a unit
// vector giving the bend's opening direction. The result is the replacement
// run for the open sub-range between the anchors: first arm-top, the
// semicircle samples, arrival at the second arm-top. Interior semicircle
// points are tagged LoopInternal except the exact midpoint; the arm-tops and
// the midpoint stay visible as LoopArm control points.
//
// Generation is a pure function of its inputs: the same anchors and
// parameters always produce bit-identical output.
func Generate(start, end, up geometry.Vector3, p Params) wirepath.Sequence {
	if p.ArmCount <= 0 {
		p.ArmCount = DefaultArmCount
	}

	chord := end.Sub(start)
	chordDir := chord.Normalize()
	if chordDir.LengthSq() == 0 || up.LengthSq() == 0 {
		return nil
	}

	raise := up.Mul(p.Height + p.EndOffset)
	armTop1 := start.Add(raise)
	armTop2 := end.Add(raise)

	center := armTop1.Midpoint(armTop2)
	// Rotating armTop1 about this axis sweeps it through +up toward armTop2
	axis := up.Cross(chordDir).Normalize()
	if !axis.IsFinite() || axis.LengthSq() == 0 {
		return nil // up parallel to the chord: no loop plane
	}

	run := make(wirepath.Sequence, 0, p.ArmCount+1)
	run = append(run, wirepath.Point{Position: armTop1, Role: wirepath.RoleLoopArm})

	spoke := armTop1.Sub(center)
	for k := 1; k <= p.ArmCount; k++ {
		angle := math.Pi * float64(k) / float64(p.ArmCount)
		pos := center.Add(spoke.RotateAround(axis, angle))

		role := wirepath.RoleLoopInternal
		if k == p.ArmCount {
			role = wirepath.RoleLoopArm // Arrival at the second arm-top
		} else if 2*k == p.ArmCount {
			role = wirepath.RoleLoopArm // Exact semicircle midpoint stays visible
		}
		run = append(run, wirepath.Point{Position: pos, Role: role})
	}
	return run
}

// UpFromMidpoint derives the opening direction from a third picked anchor:
// the component of (mid - chord midpoint) perpendicular to the chord,
// pointing toward the midpoint so the bend opens the way the user indicated.
func UpFromMidpoint(start, end, mid geometry.Vector3) (geometry.Vector3, bool) {
	chordDir := end.Sub(start).Normalize()
	toMid := mid.Sub(start.Midpoint(end))
	up := toMid.Sub(chordDir.Mul(toMid.Dot(chordDir))).Normalize()
	if !up.IsFinite() || up.LengthSq() == 0 {
		return geometry.Vector3{}, false
	}
	return up, true
}

// UpFromTangent derives the opening direction for a two-anchor loop from the
// local path tangent and the reference-plane normal.
func UpFromTangent(tangent, planeNormal geometry.Vector3) (geometry.Vector3, bool) {
	up := tangent.Cross(planeNormal).Normalize()
	if !up.IsFinite() || up.LengthSq() == 0 {
		return geometry.Vector3{}, false
	}
	return up, true
}

// HeightFromAnchors derives the loop height from a start/mid/end triple:
// distance from the chord midpoint to the bend apex minus half the chord
// length. Anchor triples where the middle point sits closer to the chord
// than half the chord length would yield a negative height and an inverted
// loop; those are clamped to zero.
func HeightFromAnchors(start, mid, end geometry.Vector3) float64 {
	height := mid.Distance(start.Midpoint(end)) - start.Distance(end)/2
	if height < 0 {
		return 0
	}
	return height
}

// Package wirepath defines the wire centerline representation shared by the
// editor, the generators, and persistence: an ordered sequence of tagged 3D
// points. Insertion order equals spatial order along the wire.
package wirepath

import (
	"github.com/orthocad/archwire/pkg/geometry"
)

// Role classifies how a path point can be interacted with
type Role int

const (
	// RoleNormal is a regular control point: draggable and pickable.
	RoleNormal Role = iota
	// RoleLoopArm marks the visible control points of a U-loop (the two
	// arm-tops and the semicircle midpoint). Draggable and pickable.
	RoleLoopArm
	// RoleLoopInternal marks generated interior semicircle vertices. Hidden
	// from direct manipulation and never offered as new anchors.
	RoleLoopInternal
)

// String returns the role name used in the persisted design format
func (r Role) String() string {
	switch r {
	case RoleLoopArm:
		return "loopArm"
	case RoleLoopInternal:
		return "loopInternal"
	default:
		return "normal"
	}
}

// ParseRole maps a persisted role name back to a Role. Unknown names map to
// RoleNormal so older design files keep loading.
func ParseRole(s string) Role {
	switch s {
	case "loopArm":
		return RoleLoopArm
	case "loopInternal":
		return RoleLoopInternal
	default:
		return RoleNormal
	}
}

// Point is a single wire path point with its interaction role
type Point struct {
	Position geometry.Vector3
	Role     Role
}

// NewPoint creates a regular path point at the given position
func NewPoint(pos geometry.Vector3) Point {
	return Point{Position: pos, Role: RoleNormal}
}

// Selectable reports whether the point may be picked or dragged
func (p Point) Selectable() bool {
	return p.Role != RoleLoopInternal
}

// Sequence is the ordered wire centerline
type Sequence []Point

// FromPositions wraps plain positions as a sequence of regular points
func FromPositions(positions []geometry.Vector3) Sequence {
	seq := make(Sequence, len(positions))
	for i, p := range positions {
		seq[i] = NewPoint(p)
	}
	return seq
}

// Positions returns the bare positions of the sequence
func (s Sequence) Positions() []geometry.Vector3 {
	out := make([]geometry.Vector3, len(s))
	for i, p := range s {
		out[i] = p.Position
	}
	return out
}

// Clone returns a deep copy of the sequence including roles
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Length returns the polyline length of the sequence
func (s Sequence) Length() float64 {
	total := 0.0
	for i := 1; i < len(s); i++ {
		total += s[i].Position.Distance(s[i-1].Position)
	}
	return total
}

// Equal reports deep equality of two sequences, roles included
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

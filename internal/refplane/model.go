// Package refplane owns the reference plane used to slice the arch surface:
// three picked control points, the derived plane, and the confirmation
// lifecycle that freezes the plane once the user accepts it.
package refplane

import (
	"fmt"

	"github.com/orthocad/archwire/pkg/geometry"
)

// State is the plane-definition lifecycle
type State int

const (
	// StateUndefined means no control points yet.
	StateUndefined State = iota
	// StateCollecting means 1 or 2 control points have been picked.
	StateCollecting
	// StateDefined means all 3 control points exist and the plane is valid;
	// the points remain draggable.
	StateDefined
	// StateConfirmed freezes the plane until an explicit reset.
	StateConfirmed
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateCollecting:
		return "collecting"
	case StateDefined:
		return "defined"
	case StateConfirmed:
		return "confirmed"
	default:
		return "undefined"
	}
}

// Model holds the reference-plane control points and lifecycle state
type Model struct {
	controlPoints []geometry.Vector3
	plane         geometry.Plane
	planeValid    bool
	state         State
	Visible       bool
}

// New creates an undefined plane model
func New() *Model {
	return &Model{state: StateUndefined, Visible: true}
}

// State returns the current lifecycle state
func (m *Model) State() State {
	return m.state
}

// ControlPoints returns a copy of the picked control points
func (m *Model) ControlPoints() []geometry.Vector3 {
	return append([]geometry.Vector3(nil), m.controlPoints...)
}

// Plane returns the derived plane. The second return value is false while
// the plane is undefined or its control points are collinear.
func (m *Model) Plane() (geometry.Plane, bool) {
	return m.plane, m.planeValid
}

// AddControlPoint accepts a picked point while collecting. The third point
// completes the definition and derives the plane. Picks are rejected once
// the plane is confirmed or already fully defined.
func (m *Model) AddControlPoint(p geometry.Vector3) error {
	switch m.state {
	case StateConfirmed:
		return fmt.Errorf("plane is confirmed; reset before editing")
	case StateDefined:
		return fmt.Errorf("plane already has 3 control points")
	}

	m.controlPoints = append(m.controlPoints, p)
	if len(m.controlPoints) < 3 {
		m.state = StateCollecting
		return nil
	}

	m.state = StateDefined
	m.recompute()
	return nil
}

// MoveControlPoint updates a control point during a drag and recomputes the
// plane. Rejected after confirmation.
func (m *Model) MoveControlPoint(index int, p geometry.Vector3) error {
	if m.state == StateConfirmed {
		return fmt.Errorf("plane is confirmed; reset before editing")
	}
	if index < 0 || index >= len(m.controlPoints) {
		return fmt.Errorf("control point index %d out of range", index)
	}
	m.controlPoints[index] = p
	m.recompute()
	return nil
}

// Confirm freezes the plane. Only a fully defined, non-degenerate plane can
// be confirmed.
func (m *Model) Confirm() error {
	if m.state != StateDefined {
		return fmt.Errorf("cannot confirm plane in state %s", m.state)
	}
	if !m.planeValid {
		return fmt.Errorf("cannot confirm degenerate plane (collinear control points)")
	}
	m.state = StateConfirmed
	return nil
}

// Reset clears the control points and returns to the undefined state
func (m *Model) Reset() {
	m.controlPoints = nil
	m.planeValid = false
	m.state = StateUndefined
}

// recompute derives the plane from the current control points. Collinear
// points leave the plane invalid but keep the control points editable so
// the user can drag one out of line.
func (m *Model) recompute() {
	if len(m.controlPoints) < 3 {
		m.planeValid = false
		return
	}
	plane, err := geometry.PlaneFromPoints(m.controlPoints[0], m.controlPoints[1], m.controlPoints[2])
	if err != nil {
		m.planeValid = false
		return
	}
	m.plane = plane
	m.planeValid = true
}

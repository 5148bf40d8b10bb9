package refplane

import (
	"math"
	"testing"

	"github.com/orthocad/archwire/pkg/geometry"
)

func TestLifecycle(t *testing.T) {
	m := New()
	if m.State() != StateUndefined {
		t.Fatalf("initial state = %v, want undefined", m.State())
	}

	if err := m.AddControlPoint(geometry.NewVector3(0, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if m.State() != StateCollecting {
		t.Errorf("state after 1 point = %v, want collecting", m.State())
	}

	m.AddControlPoint(geometry.NewVector3(10, 0, 0))
	if err := m.AddControlPoint(geometry.NewVector3(0, 10, 0)); err != nil {
		t.Fatal(err)
	}
	if m.State() != StateDefined {
		t.Errorf("state after 3 points = %v, want defined", m.State())
	}

	plane, ok := m.Plane()
	if !ok {
		t.Fatal("plane should be valid after 3 non-collinear points")
	}
	if math.Abs(plane.Normal.Length()-1) > 1e-10 {
		t.Errorf("plane normal not unit length: %v", plane.Normal)
	}

	// A fourth pick is rejected
	if err := m.AddControlPoint(geometry.NewVector3(5, 5, 5)); err == nil {
		t.Error("fourth control point should be rejected")
	}

	if err := m.Confirm(); err != nil {
		t.Fatal(err)
	}
	if m.State() != StateConfirmed {
		t.Errorf("state after confirm = %v, want confirmed", m.State())
	}

	// Confirmed plane is immutable
	if err := m.MoveControlPoint(0, geometry.NewVector3(1, 1, 1)); err == nil {
		t.Error("moving a confirmed plane's control point should fail")
	}

	m.Reset()
	if m.State() != StateUndefined {
		t.Errorf("state after reset = %v, want undefined", m.State())
	}
	if len(m.ControlPoints()) != 0 {
		t.Error("reset should clear control points")
	}
}

func TestDragRecomputesPlane(t *testing.T) {
	m := New()
	m.AddControlPoint(geometry.NewVector3(0, 0, 0))
	m.AddControlPoint(geometry.NewVector3(10, 0, 0))
	m.AddControlPoint(geometry.NewVector3(0, 10, 0))

	before, _ := m.Plane()

	// Tilt the plane by dragging the third point out of z=0
	if err := m.MoveControlPoint(2, geometry.NewVector3(0, 10, 5)); err != nil {
		t.Fatal(err)
	}
	after, ok := m.Plane()
	if !ok {
		t.Fatal("plane should remain valid after drag")
	}
	if before.Normal.Distance(after.Normal) < 1e-6 {
		t.Error("dragging a control point should change the plane normal")
	}
}

func TestCollinearPoints(t *testing.T) {
	m := New()
	m.AddControlPoint(geometry.NewVector3(0, 0, 0))
	m.AddControlPoint(geometry.NewVector3(1, 1, 1))
	m.AddControlPoint(geometry.NewVector3(2, 2, 2))

	if _, ok := m.Plane(); ok {
		t.Error("collinear control points must not produce a valid plane")
	}
	if err := m.Confirm(); err == nil {
		t.Error("degenerate plane must not be confirmable")
	}

	// Dragging a point out of line recovers the plane
	if err := m.MoveControlPoint(2, geometry.NewVector3(0, 5, 0)); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Plane(); !ok {
		t.Error("plane should become valid after the drag")
	}
}

// Package editor orchestrates wire path construction: it owns the canonical
// point sequence, the interaction mode, the selections, and the undo
// history, and dispatches to the contact extractor, curve fitters, and the
// U-loop generator. It is the sole mutator of the path; everything here runs
// synchronously inside the caller's event handler.
package editor

import (
	"fmt"

	"github.com/orthocad/archwire/internal/contact"
	"github.com/orthocad/archwire/internal/curve"
	"github.com/orthocad/archwire/internal/history"
	"github.com/orthocad/archwire/internal/refplane"
	"github.com/orthocad/archwire/internal/uloop"
	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/surface"
	"github.com/orthocad/archwire/pkg/wirepath"
)

// Selection capacities: loop anchors take 2 or 3 picks, contact start/end
// takes exactly 2.
const (
	anchorCapacity  = 3
	contactCapacity = 2
)

// Editor is the path-construction controller
type Editor struct {
	config Config
	mode   Mode

	path     wirepath.Sequence
	plane    *refplane.Model
	contacts []geometry.Vector3

	anchorSel  *SelectionSet // Indices into path
	contactSel *SelectionSet // Indices into contacts

	surf      surface.Query
	extractor *contact.Extractor
	undo      *history.Stack

	lastFit curve.Method
}

// New creates an editor with the given configuration
func New(config Config) (*Editor, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid editor config: %w", err)
	}
	return &Editor{
		config:     config,
		mode:       ModeIdle,
		plane:      refplane.New(),
		anchorSel:  NewSelectionSet(anchorCapacity),
		contactSel: NewSelectionSet(contactCapacity),
		extractor:  contact.NewExtractor(),
		undo:       history.New(),
	}, nil
}

// SetSurface attaches the loaded scan. Contact points are stale after a
// reload and are recomputed in full on the next plane confirmation.
func (e *Editor) SetSurface(s surface.Query) {
	e.surf = s
	e.contacts = nil
	e.contactSel.Clear()
}

// Config returns the active configuration
func (e *Editor) Config() Config {
	return e.config
}

// Mode returns the current interaction mode
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode switches the interaction mode. Entering a mode clears the
// selections of the previous one.
func (e *Editor) SetMode(mode Mode) error {
	if !canTransition(e.mode, mode) {
		return fmt.Errorf("cannot switch from %s to %s", e.mode, mode)
	}
	if e.mode != mode {
		e.anchorSel.Clear()
		e.contactSel.Clear()
	}
	e.mode = mode
	return nil
}

// Path returns the canonical point sequence. Callers must treat it as
// read-only; all mutation goes through editor operations.
func (e *Editor) Path() wirepath.Sequence {
	return e.path
}

// Plane returns the reference-plane model
func (e *Editor) Plane() *refplane.Model {
	return e.plane
}

// Contacts returns the current ordered contact ring
func (e *Editor) Contacts() []geometry.Vector3 {
	return e.contacts
}

// LastFitMethod reports which construction the most recent curve operation
// used, so callers can surface degraded fits to the user.
func (e *Editor) LastFitMethod() curve.Method {
	return e.lastFit
}

// PickRay resolves a pick ray against the surface and dispatches the hit
// point according to the current mode. Returns false when the ray misses or
// the mode accepts no picks.
func (e *Editor) PickRay(origin, direction geometry.Vector3) bool {
	if e.surf == nil {
		return false
	}
	hit, ok := e.surf.Raycast(origin, direction)
	if !ok {
		return false
	}
	switch e.mode {
	case ModePlacingPlane:
		return e.plane.AddControlPoint(hit.Point) == nil
	case ModeDrawing:
		e.AddDrawnPoint(hit.Point)
		return true
	default:
		return false
	}
}

// AddDrawnPoint inserts a freehand point at whichever end of the path it is
// geometrically closer to. Insertion order is spatial order along the wire,
// not creation order.
func (e *Editor) AddDrawnPoint(p geometry.Vector3) {
	e.undo.Save(e.path)

	point := wirepath.NewPoint(p)
	if len(e.path) < 2 {
		e.path = append(e.path, point)
		return
	}

	distToStart := p.Distance(e.path[0].Position)
	distToEnd := p.Distance(e.path[len(e.path)-1].Position)
	if distToStart < distToEnd {
		e.path = append(wirepath.Sequence{point}, e.path...)
	} else {
		e.path = append(e.path, point)
	}
}

// MovePoint drags a path point to a new position. Loop-internal points are
// hidden from manipulation and cannot be moved.
func (e *Editor) MovePoint(index int, p geometry.Vector3) error {
	if index < 0 || index >= len(e.path) {
		return fmt.Errorf("path index %d out of range", index)
	}
	if !e.path[index].Selectable() {
		return fmt.Errorf("point %d is loop-internal and cannot be moved", index)
	}
	e.undo.Save(e.path)
	e.path[index].Position = p
	return nil
}

// SelectAnchor records a path point as a loop/fit anchor. Loop-internal
// points are never valid anchors.
func (e *Editor) SelectAnchor(index int) error {
	if index < 0 || index >= len(e.path) {
		return fmt.Errorf("path index %d out of range", index)
	}
	if !e.path[index].Selectable() {
		return fmt.Errorf("point %d is loop-internal and cannot be an anchor", index)
	}
	e.anchorSel.Add(index)
	return nil
}

// SelectContact records a contact-ring point as a path start/end pick
func (e *Editor) SelectContact(index int) error {
	if index < 0 || index >= len(e.contacts) {
		return fmt.Errorf("contact index %d out of range", index)
	}
	e.contactSel.Add(index)
	return nil
}

// AnchorSelection returns the current anchor picks in selection order
func (e *Editor) AnchorSelection() []int {
	return e.anchorSel.Indices()
}

// ContactSelection returns the current contact picks in selection order
func (e *Editor) ContactSelection() []int {
	return e.contactSel.Indices()
}

// ConfirmPlane freezes the reference plane and extracts the contact ring
// from the attached surface. The ring is recomputed in full; previous
// contact points and selections are discarded.
func (e *Editor) ConfirmPlane() error {
	if err := e.plane.Confirm(); err != nil {
		return err
	}
	return e.RefreshContacts()
}

// RefreshContacts rescans the surface against the confirmed plane. A result
// of zero contact points is reported to the caller through the returned
// count, not as an error.
func (e *Editor) RefreshContacts() error {
	if e.surf == nil {
		return fmt.Errorf("no surface loaded")
	}
	plane, ok := e.plane.Plane()
	if !ok {
		return fmt.Errorf("reference plane is not defined")
	}
	e.contacts = e.extractor.Extract(e.surf.Vertices(), plane)
	e.contactSel.Clear()
	return nil
}

// ResetPlane returns the plane to the undefined state and drops the contact
// ring derived from it.
func (e *Editor) ResetPlane() {
	e.plane.Reset()
	e.contacts = nil
	e.contactSel.Clear()
}

// BuildPathBetweenContacts replaces the whole path with the smoothed arc
// between the two selected contact points.
func (e *Editor) BuildPathBetweenContacts() error {
	sel := e.contactSel.Indices()
	if len(sel) != 2 {
		return fmt.Errorf("need exactly 2 selected contact points, have %d", len(sel))
	}

	points := curve.PathBetween(e.contacts, sel[0], sel[1],
		e.config.ControlPointTarget, e.config.ResampleCount)
	if len(points) == 0 {
		return fmt.Errorf("no path between the selected contact points")
	}

	e.undo.SaveIfNonEmpty(e.path)
	e.path = wirepath.FromPositions(points)
	e.lastFit = curve.MethodCatmullRom
	e.anchorSel.Clear()
	return nil
}

// FitParabola replaces the whole path with a parabola through the 3 selected
// anchors. Degenerate anchor geometry degrades to Catmull-Rom smoothing,
// reported via LastFitMethod.
func (e *Editor) FitParabola() error {
	sel := e.anchorSel.Indices()
	if len(sel) != 3 {
		return fmt.Errorf("need exactly 3 selected anchors, have %d", len(sel))
	}
	for _, idx := range sel {
		if idx >= len(e.path) {
			return fmt.Errorf("anchor %d no longer exists", idx)
		}
	}

	result := curve.ParabolaThrough(
		e.path[sel[0]].Position,
		e.path[sel[1]].Position,
		e.path[sel[2]].Position,
		e.config.ResampleCount,
	)

	e.undo.Save(e.path)
	e.path = wirepath.FromPositions(result.Points)
	e.lastFit = result.Method
	e.anchorSel.Clear()
	return nil
}

// FitConic replaces the whole path with a constrained conic through the two
// selected contact points, least-squares through the selected interior
// anchors (up to 3). Non-hyperbolic fits degrade to smoothing, reported via
// LastFitMethod.
func (e *Editor) FitConic() error {
	contactIdx := e.contactSel.Indices()
	if len(contactIdx) != 2 {
		return fmt.Errorf("need exactly 2 selected contact points, have %d", len(contactIdx))
	}

	var interior []geometry.Vector3
	for _, idx := range e.anchorSel.Indices() {
		if idx >= len(e.path) {
			continue // Stale anchor from a previous path generation
		}
		interior = append(interior, e.path[idx].Position)
	}

	result := curve.FitConic(
		e.contacts[contactIdx[0]],
		e.contacts[contactIdx[1]],
		interior,
		e.config.ResampleCount,
	)

	e.undo.SaveIfNonEmpty(e.path)
	e.path = wirepath.FromPositions(result.Points)
	e.lastFit = result.Method
	e.anchorSel.Clear()
	return nil
}

// SmoothPath resamples the whole path with Catmull-Rom smoothing
func (e *Editor) SmoothPath() error {
	if len(e.path) < 3 {
		return fmt.Errorf("need at least 3 path points to smooth, have %d", len(e.path))
	}
	e.undo.Save(e.path)
	e.path = wirepath.FromPositions(curve.CatmullRom(e.path.Positions(), e.config.ResampleCount))
	e.lastFit = curve.MethodCatmullRom
	return nil
}

// InsertLoop splices a U-loop between the selected anchors. With 3 anchors
// the middle pick sets both the opening direction and the height; with 2
// anchors the height is taken from the argument and the opening direction
// from the path tangent and the reference-plane normal.
func (e *Editor) InsertLoop(height float64) error {
	sel := e.anchorSel.Indices()
	if len(sel) != 2 && len(sel) != 3 {
		return fmt.Errorf("need 2 or 3 selected anchors, have %d", len(sel))
	}

	for _, idx := range sel {
		if idx >= len(e.path) {
			return fmt.Errorf("anchor %d no longer exists", idx)
		}
	}

	startIdx, endIdx := sel[0], sel[len(sel)-1]
	if startIdx > endIdx {
		startIdx, endIdx = endIdx, startIdx
	}
	if endIdx-startIdx < 1 {
		return fmt.Errorf("loop anchors must be distinct path points")
	}

	start := e.path[startIdx].Position
	end := e.path[endIdx].Position

	var up geometry.Vector3
	var ok bool
	if len(sel) == 3 {
		mid := e.path[sel[1]].Position
		up, ok = uloop.UpFromMidpoint(start, end, mid)
		height = uloop.HeightFromAnchors(start, mid, end)
	} else {
		plane, valid := e.plane.Plane()
		if !valid {
			return fmt.Errorf("two-anchor loops need a defined reference plane")
		}
		up, ok = uloop.UpFromTangent(end.Sub(start).Normalize(), plane.Normal)
	}
	if !ok {
		return fmt.Errorf("cannot derive loop opening direction from the selected anchors")
	}

	params := uloop.Params{
		Height:    height,
		EndOffset: e.config.LoopEndOffset,
		ArmCount:  uloop.DefaultArmCount,
	}
	run := uloop.Generate(start, end, up, params)
	if run == nil {
		return fmt.Errorf("degenerate loop geometry for the selected anchors")
	}

	e.undo.Save(e.path)

	// Replace the open sub-range strictly between the anchors
	spliced := make(wirepath.Sequence, 0, startIdx+1+len(run)+len(e.path)-endIdx)
	spliced = append(spliced, e.path[:startIdx+1]...)
	spliced = append(spliced, run...)
	spliced = append(spliced, e.path[endIdx:]...)
	e.path = spliced

	e.anchorSel.Clear()
	return nil
}

// Undo restores the path to its most recent snapshot. A no-op when the
// history is empty.
func (e *Editor) Undo() bool {
	snapshot, ok := e.undo.Undo()
	if !ok {
		return false
	}
	e.path = snapshot
	e.anchorSel.Clear()
	return true
}

// ClearPath removes every path point, saving a snapshot first so the clear
// itself is undoable.
func (e *Editor) ClearPath() {
	e.undo.SaveIfNonEmpty(e.path)
	e.path = nil
	e.anchorSel.Clear()
}

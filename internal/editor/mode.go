package editor

// Mode is the editor's single interaction mode. Exactly one mode is active
// at a time; the transition table below replaces the cluster of mutually
// exclusive boolean flags this design started from.
type Mode int

const (
	// ModeIdle accepts no picks.
	ModeIdle Mode = iota
	// ModePlacingPlane routes picks to the reference-plane control points.
	ModePlacingPlane
	// ModeDrawing appends freehand points to the wire path.
	ModeDrawing
	// ModeEditing allows dragging existing path points.
	ModeEditing
	// ModeContactPicking selects start/end contact points on the ring.
	ModeContactPicking
	// ModeLoopAnchoring selects 2 or 3 path points as U-loop anchors.
	ModeLoopAnchoring
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModePlacingPlane:
		return "placing-plane"
	case ModeDrawing:
		return "drawing"
	case ModeEditing:
		return "editing"
	case ModeContactPicking:
		return "contact-picking"
	case ModeLoopAnchoring:
		return "loop-anchoring"
	default:
		return "idle"
	}
}

// validTransitions lists the allowed mode changes. Every mode can bail out
// to idle; the working modes are reachable only from idle so switching tools
// always passes through a clean state.
var validTransitions = map[Mode][]Mode{
	ModeIdle:           {ModePlacingPlane, ModeDrawing, ModeEditing, ModeContactPicking, ModeLoopAnchoring},
	ModePlacingPlane:   {ModeIdle},
	ModeDrawing:        {ModeIdle},
	ModeEditing:        {ModeIdle},
	ModeContactPicking: {ModeIdle},
	ModeLoopAnchoring:  {ModeIdle},
}

// canTransition reports whether the mode change is allowed
func canTransition(from, to Mode) bool {
	if from == to {
		return true
	}
	for _, m := range validTransitions[from] {
		if m == to {
			return true
		}
	}
	return false
}

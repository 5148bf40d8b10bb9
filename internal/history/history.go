// Package history implements the snapshot-based undo stack over the wire
// path. There is no redo: popping a snapshot discards it.
package history

import (
	"github.com/orthocad/archwire/pkg/wirepath"
)

// Stack is a LIFO of deep-copied path snapshots. Depth is bounded only by
// memory; editing sessions are short enough that this is a deliberate
// simplification rather than a guarantee.
type Stack struct {
	snapshots []wirepath.Sequence
}

// New creates an empty history stack
func New() *Stack {
	return &Stack{}
}

// Save pushes a deep copy of the sequence, roles included. Call this before
// every mutation, never after: a post-mutation save would record the new
// state as the "previous" one.
func (s *Stack) Save(seq wirepath.Sequence) {
	s.snapshots = append(s.snapshots, seq.Clone())
}

// SaveIfNonEmpty pushes a snapshot only when the sequence has points. Used
// before destructive clears so an empty path does not pollute the stack.
func (s *Stack) SaveIfNonEmpty(seq wirepath.Sequence) {
	if len(seq) > 0 {
		s.Save(seq)
	}
}

// Undo pops and returns the most recent snapshot. The second return value is
// false when the stack is empty; callers treat that as a no-op.
func (s *Stack) Undo() (wirepath.Sequence, bool) {
	if len(s.snapshots) == 0 {
		return nil, false
	}
	last := len(s.snapshots) - 1
	snapshot := s.snapshots[last]
	s.snapshots = s.snapshots[:last]
	return snapshot, true
}

// Depth returns the number of stored snapshots
func (s *Stack) Depth() int {
	return len(s.snapshots)
}

// Clear drops all snapshots
func (s *Stack) Clear() {
	s.snapshots = nil
}

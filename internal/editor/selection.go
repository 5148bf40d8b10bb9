package editor

// SelectionSet is a small ordered list of indices with a fixed capacity.
// Selecting beyond capacity evicts the oldest entry instead of erroring, so
// the user can keep clicking until the picks are the ones they want. Order
// is significant: loop anchors are start/[mid]/end in selection order.
type SelectionSet struct {
	capacity int
	indices  []int
}

// NewSelectionSet creates a selection set holding at most capacity indices
func NewSelectionSet(capacity int) *SelectionSet {
	return &SelectionSet{capacity: capacity}
}

// Add records an index, evicting the oldest selection when full. Re-selecting
// an index that is already present is a no-op.
func (s *SelectionSet) Add(index int) {
	for _, existing := range s.indices {
		if existing == index {
			return
		}
	}
	if len(s.indices) >= s.capacity {
		s.indices = s.indices[1:]
	}
	s.indices = append(s.indices, index)
}

// Indices returns the selected indices in selection order
func (s *SelectionSet) Indices() []int {
	return append([]int(nil), s.indices...)
}

// Len returns the number of current selections
func (s *SelectionSet) Len() int {
	return len(s.indices)
}

// Clear drops all selections
func (s *SelectionSet) Clear() {
	s.indices = s.indices[:0]
}

package editor

import "testing"

func TestSelectionSetOrder(t *testing.T) {
	s := NewSelectionSet(3)
	s.Add(4)
	s.Add(1)
	s.Add(7)

	got := s.Indices()
	want := []int{4, 1, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %d selections, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selection %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestSelectionSetEvictsOldest(t *testing.T) {
	s := NewSelectionSet(2)
	s.Add(1)
	s.Add(2)
	s.Add(3)

	got := s.Indices()
	if len(got) != 2 {
		t.Fatalf("expected 2 selections, got %d", len(got))
	}
	if got[0] != 2 || got[1] != 3 {
		t.Errorf("expected oldest selection evicted, got %v", got)
	}
}

func TestSelectionSetIgnoresDuplicates(t *testing.T) {
	s := NewSelectionSet(3)
	s.Add(5)
	s.Add(5)
	s.Add(5)

	if s.Len() != 1 {
		t.Errorf("expected 1 selection after duplicate adds, got %d", s.Len())
	}
}

func TestSelectionSetClear(t *testing.T) {
	s := NewSelectionSet(3)
	s.Add(1)
	s.Add(2)
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("expected empty set after clear, got %d", s.Len())
	}

	s.Add(9)
	if got := s.Indices(); len(got) != 1 || got[0] != 9 {
		t.Errorf("expected set usable after clear, got %v", got)
	}
}

func TestSelectionSetIndicesIsCopy(t *testing.T) {
	s := NewSelectionSet(3)
	s.Add(1)
	s.Add(2)

	got := s.Indices()
	got[0] = 99

	if s.Indices()[0] != 1 {
		t.Error("mutating the returned slice must not affect the set")
	}
}

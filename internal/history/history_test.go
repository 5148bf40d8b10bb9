package history

import (
	"testing"

	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/wirepath"
)

func samplePath() wirepath.Sequence {
	return wirepath.Sequence{
		{Position: geometry.NewVector3(0, 0, 0), Role: wirepath.RoleNormal},
		{Position: geometry.NewVector3(5, 1, 0), Role: wirepath.RoleLoopArm},
		{Position: geometry.NewVector3(6, 2, 0), Role: wirepath.RoleLoopInternal},
	}
}

func TestSaveMutateUndo(t *testing.T) {
	stack := New()
	path := samplePath()
	original := path.Clone()

	stack.Save(path)

	// Mutate the live sequence after saving
	path[0].Position = geometry.NewVector3(99, 99, 99)
	path[1].Role = wirepath.RoleNormal
	path = append(path, wirepath.NewPoint(geometry.NewVector3(7, 7, 7)))

	restored, ok := stack.Undo()
	if !ok {
		t.Fatal("expected a snapshot to pop")
	}
	if !restored.Equal(original) {
		t.Errorf("restored sequence differs from pre-mutation state:\n%v\nvs\n%v", restored, original)
	}
}

func TestUndoEmptyStack(t *testing.T) {
	stack := New()
	if _, ok := stack.Undo(); ok {
		t.Error("undo on empty stack must be a no-op")
	}
}

func TestSaveIfNonEmpty(t *testing.T) {
	stack := New()

	stack.SaveIfNonEmpty(nil)
	if stack.Depth() != 0 {
		t.Error("empty sequence should not be saved")
	}

	stack.SaveIfNonEmpty(samplePath())
	if stack.Depth() != 1 {
		t.Error("non-empty sequence should be saved")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	stack := New()
	path := samplePath()
	stack.Save(path)
	stack.Save(path)

	first, _ := stack.Undo()
	first[0].Position = geometry.NewVector3(-1, -1, -1)

	second, _ := stack.Undo()
	if second[0].Position == first[0].Position {
		t.Error("snapshots must be independent deep copies")
	}
}

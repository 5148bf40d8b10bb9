package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orthocad/archwire/internal/refplane"
	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/wirepath"
)

func buildDesignEditor(t *testing.T) *Editor {
	t.Helper()
	e := newTestEditor(t)
	e.AddDrawnPoint(geometry.NewVector3(0, 0, 0))
	e.AddDrawnPoint(geometry.NewVector3(5, 8, 0))
	e.AddDrawnPoint(geometry.NewVector3(10, 0, 0))
	for i := 0; i < 3; i++ {
		if err := e.SelectAnchor(i); err != nil {
			t.Fatalf("SelectAnchor(%d) failed: %v", i, err)
		}
	}
	if err := e.InsertLoop(0); err != nil {
		t.Fatalf("InsertLoop failed: %v", err)
	}
	definePlaneZ0(t, e)
	return e
}

func TestDesignRoundTrip(t *testing.T) {
	e := buildDesignEditor(t)
	data := e.ExportDesign()

	if data.Version != "1.0" {
		t.Errorf("expected version 1.0, got %q", data.Version)
	}
	if len(data.Points) != len(e.Path()) {
		t.Fatalf("expected %d exported points, got %d", len(e.Path()), len(data.Points))
	}
	if data.ReferencePlane == nil {
		t.Fatal("expected reference plane exported")
	}
	if len(data.ReferencePlane.ControlPoints) != 3 {
		t.Fatalf("expected 3 exported control points, got %d", len(data.ReferencePlane.ControlPoints))
	}

	loaded := newTestEditor(t)
	if err := loaded.ImportDesign(data); err != nil {
		t.Fatalf("ImportDesign failed: %v", err)
	}

	if !loaded.Path().Equal(e.Path()) {
		t.Error("expected imported path to equal the exported one, roles included")
	}
	if loaded.Plane().State() != refplane.StateDefined {
		t.Errorf("expected imported plane in defined state, got %s", loaded.Plane().State())
	}
	plane, ok := loaded.Plane().Plane()
	if !ok {
		t.Fatal("expected imported plane to be valid")
	}
	if plane.Normal.Cross(geometry.NewVector3(0, 0, 1)).Length() > 1e-10 {
		t.Errorf("expected plane normal along z, got %v", plane.Normal)
	}
}

func TestExportOmitsNormalRole(t *testing.T) {
	e := newTestEditor(t)
	e.AddDrawnPoint(geometry.NewVector3(1, 2, 3))

	data := e.ExportDesign()
	if data.Points[0].Role != "" {
		t.Errorf("expected normal role omitted, got %q", data.Points[0].Role)
	}
	if data.ReferencePlane != nil {
		t.Error("expected no reference plane without control points")
	}
}

func TestImportRejectsBadPlane(t *testing.T) {
	data := DesignData{
		Version: "1.0",
		ReferencePlane: &PlaneData{
			ControlPoints: []Vector3Data{{X: 0}, {X: 1}},
		},
	}

	e := newTestEditor(t)
	if err := e.ImportDesign(data); err == nil {
		t.Error("expected error for a plane with 2 control points")
	}
}

func TestImportUnknownRoleLoadsAsNormal(t *testing.T) {
	data := DesignData{
		Version: "1.0",
		Points:  []PointData{{X: 1, Role: "bendMarker"}},
	}

	e := newTestEditor(t)
	if err := e.ImportDesign(data); err != nil {
		t.Fatalf("ImportDesign failed: %v", err)
	}
	if e.Path()[0].Role != wirepath.RoleNormal {
		t.Errorf("expected unknown role mapped to normal, got %s", e.Path()[0].Role)
	}
}

func TestImportIsUndoable(t *testing.T) {
	e := newTestEditor(t)
	e.AddDrawnPoint(geometry.NewVector3(9, 9, 9))
	before := e.Path().Clone()

	if err := e.ImportDesign(DesignData{Version: "1.0"}); err != nil {
		t.Fatalf("ImportDesign failed: %v", err)
	}
	if len(e.Path()) != 0 {
		t.Fatalf("expected imported empty path, got %d points", len(e.Path()))
	}
	if !e.Undo() {
		t.Fatal("expected undo after import to succeed")
	}
	if !e.Path().Equal(before) {
		t.Errorf("expected pre-import path restored, got %v", e.Path())
	}
}

func TestSaveAndLoadDesignFile(t *testing.T) {
	e := buildDesignEditor(t)
	filename := filepath.Join(t.TempDir(), "design.json")

	if err := e.SaveDesign(filename); err != nil {
		t.Fatalf("SaveDesign failed: %v", err)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Fatalf("expected design file written: %v", err)
	}

	loaded := newTestEditor(t)
	if err := loaded.LoadDesign(filename); err != nil {
		t.Fatalf("LoadDesign failed: %v", err)
	}
	if !loaded.Path().Equal(e.Path()) {
		t.Error("expected loaded path to equal the saved one")
	}
}

func TestLoadDesignMissingFile(t *testing.T) {
	e := newTestEditor(t)
	if err := e.LoadDesign(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing design file")
	}
}

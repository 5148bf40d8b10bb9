package editor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/orthocad/archwire/internal/refplane"
	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/wirepath"
)

// DesignData is the persisted JSON structure for a wire design
type DesignData struct {
	Version        string          `json:"version"`
	Points         []PointData     `json:"points"`
	ReferencePlane *PlaneData      `json:"referencePlane"`
}

// PointData is a persisted path point
type PointData struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Role string  `json:"role,omitempty"`
}

// PlaneData is a persisted reference plane. The normal and position are
// informational caches; on import the plane is always rebuilt from its
// control points.
type PlaneData struct {
	ControlPoints []Vector3Data `json:"controlPoints"`
	Normal        Vector3Data   `json:"normal"`
	Position      Vector3Data   `json:"position"`
	Visible       bool          `json:"visible"`
}

// Vector3Data is a 3D vector for JSON serialization
type Vector3Data struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func toVectorData(v geometry.Vector3) Vector3Data {
	return Vector3Data{X: v.X, Y: v.Y, Z: v.Z}
}

func (d Vector3Data) vector() geometry.Vector3 {
	return geometry.NewVector3(d.X, d.Y, d.Z)
}

// ExportDesign captures the current path and plane as a serializable design
func (e *Editor) ExportDesign() DesignData {
	data := DesignData{
		Version: "1.0",
		Points:  make([]PointData, 0, len(e.path)),
	}

	for _, p := range e.path {
		pd := PointData{X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z}
		if p.Role != wirepath.RoleNormal {
			pd.Role = p.Role.String()
		}
		data.Points = append(data.Points, pd)
	}

	controls := e.plane.ControlPoints()
	if len(controls) == 3 {
		pd := &PlaneData{Visible: e.plane.Visible}
		for _, c := range controls {
			pd.ControlPoints = append(pd.ControlPoints, toVectorData(c))
		}
		if plane, ok := e.plane.Plane(); ok {
			pd.Normal = toVectorData(plane.Normal)
			pd.Position = toVectorData(plane.Point)
		}
		data.ReferencePlane = pd
	}
	return data
}

// ImportDesign replaces the editor state with a loaded design. The path
// (order and roles preserved) is restored as-is and the plane is rebuilt
// from its stored control points; a design with 3 control points comes back
// in the defined state, ready to confirm.
func (e *Editor) ImportDesign(data DesignData) error {
	path := make(wirepath.Sequence, 0, len(data.Points))
	for _, pd := range data.Points {
		path = append(path, wirepath.Point{
			Position: geometry.NewVector3(pd.X, pd.Y, pd.Z),
			Role:     wirepath.ParseRole(pd.Role),
		})
	}

	plane := refplane.New()
	if data.ReferencePlane != nil {
		if n := len(data.ReferencePlane.ControlPoints); n != 3 {
			return fmt.Errorf("reference plane has %d control points, want 3", n)
		}
		for _, cd := range data.ReferencePlane.ControlPoints {
			if err := plane.AddControlPoint(cd.vector()); err != nil {
				return fmt.Errorf("rebuilding reference plane: %w", err)
			}
		}
		plane.Visible = data.ReferencePlane.Visible
	}

	e.undo.SaveIfNonEmpty(e.path)
	e.path = path
	e.plane = plane
	e.contacts = nil
	e.anchorSel.Clear()
	e.contactSel.Clear()
	return nil
}

// SaveDesign writes the current design to a JSON file
func (e *Editor) SaveDesign(filename string) error {
	jsonData, err := json.MarshalIndent(e.ExportDesign(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal design: %w", err)
	}
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write design file: %w", err)
	}
	return nil
}

// LoadDesign reads a design from a JSON file and applies it
func (e *Editor) LoadDesign(filename string) error {
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read design file: %w", err)
	}
	var data DesignData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to parse design file: %w", err)
	}
	return e.ImportDesign(data)
}

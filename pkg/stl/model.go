package stl

import (
	"github.com/orthocad/archwire/pkg/geometry"
)

// Model represents a loaded STL surface scan
type Model struct {
	Name      string
	Triangles []geometry.Triangle

	vertices []geometry.Vector3 // Lazily built flat vertex list
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
	m.vertices = nil
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Vertices returns all triangle vertices in file order. Shared vertices are
// repeated; callers that need deduplication cluster them downstream. The
// slice is cached and must not be mutated.
func (m *Model) Vertices() []geometry.Vector3 {
	if m.vertices == nil {
		m.vertices = make([]geometry.Vector3, 0, len(m.Triangles)*3)
		for _, t := range m.Triangles {
			m.vertices = append(m.vertices, t.V1, t.V2, t.V3)
		}
	}
	return m.vertices
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

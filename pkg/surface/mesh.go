package surface

import (
	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/stl"
)

// Mesh adapts a loaded STL model to the Query interface
type Mesh struct {
	model *stl.Model
}

// NewMesh wraps an STL model as a queryable surface
func NewMesh(model *stl.Model) *Mesh {
	return &Mesh{model: model}
}

// Raycast tests the ray against every triangle and returns the nearest hit.
// A linear scan is adequate for the scan sizes the editor works with; picks
// happen at interaction rate, not per frame.
func (m *Mesh) Raycast(origin, direction geometry.Vector3) (Hit, bool) {
	dir := direction.Normalize()

	var best Hit
	bestDist := -1.0
	for _, tri := range m.model.Triangles {
		point, ok := tri.IntersectRay(origin, dir)
		if !ok {
			continue
		}
		dist := origin.Distance(point)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			normal := tri.ComputedNormal()
			// Report the normal facing the ray origin
			if normal.Dot(dir) > 0 {
				normal = normal.Negate()
			}
			best = Hit{Point: point, Normal: normal}
		}
	}
	return best, bestDist >= 0
}

// Vertices returns the raw vertex positions of the underlying model
func (m *Mesh) Vertices() []geometry.Vector3 {
	return m.model.Vertices()
}

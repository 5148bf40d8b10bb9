// Package surface abstracts the scanned arch surface behind a query
// interface. The path-construction core only ever needs two things from the
// scan: ray intersection (for picking) and the raw vertex stream (for
// contact-point scanning). Rendering and scene management live elsewhere.
package surface

import (
	"github.com/orthocad/archwire/pkg/geometry"
)

// Hit is a single ray-surface intersection
type Hit struct {
	Point  geometry.Vector3
	Normal geometry.Vector3 // Unit surface normal at the hit point
}

// Query is the abstract surface consumed by the path editor
type Query interface {
	// Raycast intersects a ray with the surface and returns the nearest hit.
	// The second return value is false when the ray misses.
	Raycast(origin, direction geometry.Vector3) (Hit, bool)

	// Vertices returns the raw world-space vertex positions of the surface
	// mesh in deterministic order.
	Vertices() []geometry.Vector3
}

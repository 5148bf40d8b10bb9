// Package contact extracts the ordered ring of points where a reference
// plane touches the scanned arch surface.
package contact

import (
	"github.com/orthocad/archwire/pkg/geometry"
)

// Default extraction parameters in millimeters
const (
	DefaultTolerance     = 0.5 // Max distance from the plane for a vertex to count
	DefaultClusterRadius = 1.0 // Near-duplicate merge radius
)

// Extractor scans mesh vertices against a reference plane
type Extractor struct {
	Tolerance     float64
	ClusterRadius float64
}

// NewExtractor creates an extractor with the default tolerances
func NewExtractor() *Extractor {
	return &Extractor{
		Tolerance:     DefaultTolerance,
		ClusterRadius: DefaultClusterRadius,
	}
}

// Extract returns the contact points of the plane with the given vertex set:
// vertices within Tolerance of the plane, merged into cluster centroids, and
// ordered into a travel sequence. An empty result is not an error; it simply
// means the plane does not touch the surface.
//
// The whole pipeline is deterministic for a deterministic vertex order:
// clusters form in input order and the ordering walk starts from the first
// cluster formed.
func (e *Extractor) Extract(vertices []geometry.Vector3, plane geometry.Plane) []geometry.Vector3 {
	var candidates []geometry.Vector3
	for _, v := range vertices {
		if plane.Distance(v) <= e.Tolerance {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	clusters := clusterPoints(candidates, e.ClusterRadius)
	return orderNearestNeighbor(clusters)
}

// clusterPoints merges near-duplicate points with greedy single-link
// clustering: take the first unused point, absorb every remaining unused
// point within radius, and emit the centroid of the group.
func clusterPoints(points []geometry.Vector3, radius float64) []geometry.Vector3 {
	used := make([]bool, len(points))
	var clusters []geometry.Vector3

	for i := range points {
		if used[i] {
			continue
		}
		used[i] = true

		sum := points[i]
		count := 1
		for j := i + 1; j < len(points); j++ {
			if used[j] {
				continue
			}
			if points[i].Distance(points[j]) <= radius {
				used[j] = true
				sum = sum.Add(points[j])
				count++
			}
		}
		clusters = append(clusters, sum.Mul(1.0/float64(count)))
	}
	return clusters
}

// orderNearestNeighbor arranges points into an open travel path with the
// greedy nearest-neighbor heuristic, starting from the first point. Contact
// rings are convex-ish loops in practice, so the greedy tour is close enough
// to the true ordering; it is not guaranteed optimal and the travel
// direction depends on the starting point.
func orderNearestNeighbor(points []geometry.Vector3) []geometry.Vector3 {
	if len(points) < 2 {
		return points
	}

	visited := make([]bool, len(points))
	ordered := make([]geometry.Vector3, 0, len(points))

	current := 0
	visited[0] = true
	ordered = append(ordered, points[0])

	for len(ordered) < len(points) {
		next := -1
		bestDist := 0.0
		for j := range points {
			if visited[j] {
				continue
			}
			d := points[current].Distance(points[j])
			if next < 0 || d < bestDist {
				next = j
				bestDist = d
			}
		}
		visited[next] = true
		ordered = append(ordered, points[next])
		current = next
	}
	return ordered
}

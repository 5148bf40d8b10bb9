package contact

import (
	"math"
	"testing"

	"github.com/orthocad/archwire/pkg/geometry"
)

func xyPlane() geometry.Plane {
	return geometry.NewPlane(geometry.NewVector3(0, 0, 1), geometry.NewVector3(0, 0, 0))
}

func pathLength(points []geometry.Vector3) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	return total
}

func TestExtractFiltersByTolerance(t *testing.T) {
	e := NewExtractor()
	vertices := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0.3),  // Within 0.5mm
		geometry.NewVector3(5, 0, -0.4), // Within
		geometry.NewVector3(9, 0, 2.0),  // Too far
	}

	result := e.Extract(vertices, xyPlane())
	if len(result) != 2 {
		t.Fatalf("contact count = %d, want 2", len(result))
	}
}

func TestExtractEmpty(t *testing.T) {
	e := NewExtractor()
	vertices := []geometry.Vector3{
		geometry.NewVector3(0, 0, 5),
		geometry.NewVector3(1, 1, -7),
	}

	result := e.Extract(vertices, xyPlane())
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d points", len(result))
	}
}

func TestClusterMergesNearDuplicates(t *testing.T) {
	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0.4, 0, 0), // Within 1mm of the first
		geometry.NewVector3(10, 0, 0),  // Isolated
	}

	clusters := clusterPoints(points, 1.0)
	if len(clusters) != 2 {
		t.Fatalf("cluster count = %d, want 2", len(clusters))
	}

	// Merged pair collapses to its centroid
	if clusters[0].Distance(geometry.NewVector3(0.2, 0, 0)) > 1e-10 {
		t.Errorf("centroid = %v, want (0.2, 0, 0)", clusters[0])
	}
	// Isolated point is unchanged
	if clusters[1].Distance(geometry.NewVector3(10, 0, 0)) > 1e-10 {
		t.Errorf("isolated point moved: %v", clusters[1])
	}
}

func TestExtractClusteredPairs(t *testing.T) {
	// 4 pairs of near-duplicate vertices within 0.3mm of the plane must
	// produce exactly 4 ordered contact points.
	e := NewExtractor()
	var vertices []geometry.Vector3
	bases := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0.2),
		geometry.NewVector3(10, 0, -0.3),
		geometry.NewVector3(10, 10, 0.1),
		geometry.NewVector3(0, 10, 0.3),
	}
	for _, b := range bases {
		vertices = append(vertices, b, b.Add(geometry.NewVector3(0.2, 0.1, 0)))
	}

	result := e.Extract(vertices, xyPlane())
	if len(result) != 4 {
		t.Fatalf("contact count = %d, want 4", len(result))
	}
}

func TestOrderNearestNeighborShortens(t *testing.T) {
	// Points of a convex ring presented in a shuffled order; the greedy walk
	// must not be longer than the input order.
	var shuffled []geometry.Vector3
	n := 12
	order := []int{0, 6, 3, 9, 1, 7, 4, 10, 2, 8, 5, 11}
	for _, i := range order {
		angle := 2 * math.Pi * float64(i) / float64(n)
		shuffled = append(shuffled, geometry.NewVector3(20*math.Cos(angle), 20*math.Sin(angle), 0))
	}

	ordered := orderNearestNeighbor(shuffled)
	if len(ordered) != n {
		t.Fatalf("ordered count = %d, want %d", len(ordered), n)
	}
	if pathLength(ordered) > pathLength(shuffled) {
		t.Errorf("greedy order is longer than input order: %v > %v",
			pathLength(ordered), pathLength(shuffled))
	}
}

func TestOrderNearestNeighborSmallInputs(t *testing.T) {
	empty := orderNearestNeighbor(nil)
	if len(empty) != 0 {
		t.Error("ordering of empty input should be empty")
	}

	one := []geometry.Vector3{geometry.NewVector3(1, 2, 3)}
	if got := orderNearestNeighbor(one); len(got) != 1 || got[0] != one[0] {
		t.Error("ordering of a single point should return it unchanged")
	}
}

package analysis

import (
	"fmt"
	"math"

	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/stl"
	"github.com/orthocad/archwire/pkg/wirepath"
)

// ScanResult contains measurements of a loaded arch scan
type ScanResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	VertexCount   int
}

// AnalyzeScan measures a loaded arch scan
func AnalyzeScan(model *stl.Model) *ScanResult {
	result := &ScanResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		VertexCount:   len(model.Vertices()),
	}
	result.Dimensions = result.BoundingBox.Size()
	return result
}

// PathResult contains measurements of a wire path
type PathResult struct {
	BoundingBox    geometry.BoundingBox
	PointCount     int
	LoopArmCount   int
	LoopPointCount int
	WireLength     float64
	SegmentCount   int
	MinSegment     float64
	MaxSegment     float64
	AvgSegment     float64
}

// AnalyzePath measures a wire path: total arch length, per-segment
// statistics, the extent of the wire, and how many of its points belong to
// U-loop features.
func AnalyzePath(path wirepath.Sequence) *PathResult {
	result := &PathResult{
		BoundingBox: geometry.NewBoundingBox(),
		PointCount:  len(path),
		WireLength:  path.Length(),
	}

	minSeg := math.MaxFloat64
	maxSeg := 0.0
	for i, p := range path {
		result.BoundingBox.Extend(p.Position)
		switch p.Role {
		case wirepath.RoleLoopArm:
			result.LoopArmCount++
		case wirepath.RoleLoopInternal:
			result.LoopPointCount++
		}

		if i == 0 {
			continue
		}
		length := p.Position.Distance(path[i-1].Position)
		result.SegmentCount++
		if length < minSeg {
			minSeg = length
		}
		if length > maxSeg {
			maxSeg = length
		}
	}

	if result.SegmentCount > 0 {
		result.MinSegment = minSeg
		result.MaxSegment = maxSeg
		result.AvgSegment = result.WireLength / float64(result.SegmentCount)
	}
	return result
}

// FindNearestVertex finds the scan vertex nearest to a given point
func FindNearestVertex(model *stl.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDistance := math.MaxFloat64

	for _, vertex := range model.Vertices() {
		distance := point.Distance(vertex)
		if distance < minDistance {
			minDistance = distance
			nearest = vertex
		}
	}
	return nearest, minDistance
}

// FormatVector formats a 3D vector for CLI output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

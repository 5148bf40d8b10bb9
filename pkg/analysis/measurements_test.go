package analysis

import (
	"math"
	"testing"

	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/stl"
	"github.com/orthocad/archwire/pkg/wirepath"
)

func buildTestScan() *stl.Model {
	model := stl.NewModel("scan")
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(4, 0, 0),
		geometry.NewVector3(0, 3, 0),
	))
	return model
}

func TestAnalyzeScan(t *testing.T) {
	result := AnalyzeScan(buildTestScan())

	if result.TriangleCount != 1 {
		t.Errorf("expected 1 triangle, got %d", result.TriangleCount)
	}
	if result.VertexCount != 3 {
		t.Errorf("expected 3 vertices, got %d", result.VertexCount)
	}
	if math.Abs(result.SurfaceArea-6.0) > 1e-10 {
		t.Errorf("expected surface area 6, got %f", result.SurfaceArea)
	}
	if math.Abs(result.Dimensions.X-4.0) > 1e-10 || math.Abs(result.Dimensions.Y-3.0) > 1e-10 {
		t.Errorf("expected dimensions 4x3, got %v", result.Dimensions)
	}
}

func TestAnalyzePath(t *testing.T) {
	path := wirepath.Sequence{
		{Position: geometry.NewVector3(0, 0, 0), Role: wirepath.RoleNormal},
		{Position: geometry.NewVector3(3, 0, 0), Role: wirepath.RoleLoopArm},
		{Position: geometry.NewVector3(3, 4, 0), Role: wirepath.RoleLoopInternal},
		{Position: geometry.NewVector3(13, 4, 0), Role: wirepath.RoleLoopArm},
	}

	result := AnalyzePath(path)

	if result.PointCount != 4 {
		t.Errorf("expected 4 points, got %d", result.PointCount)
	}
	if result.SegmentCount != 3 {
		t.Errorf("expected 3 segments, got %d", result.SegmentCount)
	}
	if math.Abs(result.WireLength-18.0) > 1e-10 {
		t.Errorf("expected wire length 18, got %f", result.WireLength)
	}
	if math.Abs(result.MinSegment-3.0) > 1e-10 {
		t.Errorf("expected min segment 3, got %f", result.MinSegment)
	}
	if math.Abs(result.MaxSegment-10.0) > 1e-10 {
		t.Errorf("expected max segment 10, got %f", result.MaxSegment)
	}
	if math.Abs(result.AvgSegment-6.0) > 1e-10 {
		t.Errorf("expected avg segment 6, got %f", result.AvgSegment)
	}
	if result.LoopArmCount != 2 || result.LoopPointCount != 1 {
		t.Errorf("expected 2 arm and 1 internal points, got %d and %d",
			result.LoopArmCount, result.LoopPointCount)
	}
}

func TestAnalyzeEmptyPath(t *testing.T) {
	result := AnalyzePath(nil)

	if result.PointCount != 0 || result.SegmentCount != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if result.WireLength != 0 {
		t.Errorf("expected zero wire length, got %f", result.WireLength)
	}
}

func TestFindNearestVertex(t *testing.T) {
	model := buildTestScan()
	nearest, dist := FindNearestVertex(model, geometry.NewVector3(4.1, 0, 0))

	if nearest.Distance(geometry.NewVector3(4, 0, 0)) > 1e-10 {
		t.Errorf("expected nearest vertex (4,0,0), got %v", nearest)
	}
	if math.Abs(dist-0.1) > 1e-10 {
		t.Errorf("expected distance 0.1, got %f", dist)
	}
}

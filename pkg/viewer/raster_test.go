package viewer

import (
	"image/color"
	"testing"

	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/stl"
	"github.com/orthocad/archwire/pkg/wirepath"
)

func TestSnapshotRendersScene(t *testing.T) {
	model := stl.NewModel("scan")
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(-5, -5, 0),
		geometry.NewVector3(5, -5, 0),
		geometry.NewVector3(0, 5, 0),
	))
	path := wirepath.FromPositions([]geometry.Vector3{
		geometry.NewVector3(-4, -4, 0),
		geometry.NewVector3(0, 4, 0),
		geometry.NewVector3(4, -4, 0),
	})

	img := Snapshot(model, path, 200, 200)

	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("expected 200x200 image, got %v", img.Bounds())
	}

	painted := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{}) {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("expected the snapshot to paint pixels")
	}
}

func TestSnapshotEmptyPath(t *testing.T) {
	model := stl.NewModel("scan")
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))

	img := Snapshot(model, nil, 100, 100)
	if img == nil {
		t.Fatal("expected an image for an empty path")
	}
}

package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/orthocad/archwire/pkg/stl"
	"github.com/orthocad/archwire/pkg/wirepath"
)

// Snapshot renders the scan and wire path offscreen, for CLI previews and
// design documentation. The camera frames the scan the same way the
// interactive viewer does.
func Snapshot(model *stl.Model, path wirepath.Sequence, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	camera := NewCamera(model.BoundingBox())
	fw, fh := float64(width), float64(height)

	for _, triangle := range model.Triangles {
		x1, y1, z1 := camera.Project(triangle.V1, fw, fh)
		x2, y2, z2 := camera.Project(triangle.V2, fw, fh)
		x3, y3, z3 := camera.Project(triangle.V3, fw, fh)

		brightness := uint8(math.Max(40, math.Min(200, 70+(z1+z2+z3)/3*2)))
		fillTriangle(img, zbuffer,
			[3]float64{x1, y1, z1},
			[3]float64{x2, y2, z2},
			[3]float64{x3, y3, z3},
			color.RGBA{brightness, brightness, brightness, 255})
	}

	for i := 1; i < len(path); i++ {
		x1, y1, _ := camera.Project(path[i-1].Position, fw, fh)
		x2, y2, _ := camera.Project(path[i].Position, fw, fh)
		drawLine(img, int(x1), int(y1), int(x2), int(y2), wireColor)
	}
	for _, p := range path {
		if p.Role != wirepath.RoleLoopArm {
			continue
		}
		x, y, _ := camera.Project(p.Position, fw, fh)
		drawDot(img, int(x), int(y), 3, loopMarkerColor)
	}
	return img
}

// fillTriangle rasterizes a screen-space triangle with a z-buffer test.
// Vertices are (x, y, depth).
func fillTriangle(img *image.RGBA, zbuffer []float64, v1, v2, v3 [3]float64, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	minX := int(math.Max(0, math.Min(v1[0], math.Min(v2[0], v3[0]))))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Max(v1[0], math.Max(v2[0], v3[0]))))
	minY := int(math.Max(0, math.Min(v1[1], math.Min(v2[1], v3[1]))))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Max(v1[1], math.Max(v2[1], v3[1]))))

	area := edgeFunction(v1, v2, v3[0], v3[1])
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w1 := edgeFunction(v2, v3, px, py) / area
			w2 := edgeFunction(v3, v1, px, py) / area
			w3 := edgeFunction(v1, v2, px, py) / area
			if w1 < 0 || w2 < 0 || w3 < 0 {
				continue
			}

			z := w1*v1[2] + w2*v2[2] + w3*v3[2]
			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// edgeFunction returns twice the signed area of the triangle (a, b, p)
func edgeFunction(a, b [3]float64, px, py float64) float64 {
	return (b[0]-a[0])*(py-a[1]) - (b[1]-a[1])*(px-a[0])
}

// drawLine draws a line using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawDot fills a small disc marker
func drawDot(img *image.RGBA, cx, cy, radius int, col color.RGBA) {
	bounds := img.Bounds()
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= bounds.Max.X || y < 0 || y >= bounds.Max.Y {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

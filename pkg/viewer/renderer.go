package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/stl"
	"github.com/orthocad/archwire/pkg/wirepath"
)

// Pick tolerance in screen pixels
const pickRadius = 14.0

// Scene colors
var (
	wireColor       = color.RGBA{66, 135, 245, 255}  // Wire path segments
	markerColor     = color.RGBA{255, 255, 255, 255} // Regular path points
	loopMarkerColor = color.RGBA{245, 166, 35, 255}  // U-loop arm points
	contactColor    = color.RGBA{80, 220, 100, 255}  // Contact ring points
	planePointColor = color.RGBA{235, 64, 52, 255}   // Plane control points
	selectedOutline = color.RGBA{255, 230, 0, 255}
)

// ArchViewer renders the scanned arch as a wireframe with the wire path,
// contact ring, and reference-plane control points overlaid. Taps either
// select an existing path point or are forwarded as world-space pick rays,
// depending on which callback claims them.
type ArchViewer struct {
	widget.BaseWidget
	model  *stl.Model
	camera *Camera

	path        wirepath.Sequence
	contacts    []geometry.Vector3
	planePoints []geometry.Vector3
	selected    map[int]bool

	lines   []*canvas.Line
	markers []*canvas.Circle

	dragStart  *fyne.Position
	isDragging bool
	width      float64
	height     float64

	// OnPathPointPick is tried first: a tap within pickRadius of a visible
	// path point reports that point's index. Return false to decline the
	// pick and fall through.
	OnPathPointPick func(index int) bool
	// OnContactPick is tried next, against the contact ring.
	OnContactPick func(index int) bool
	// OnPickRay receives taps that hit no scene point, as world-space rays.
	OnPickRay func(origin, direction geometry.Vector3)
}

// NewArchViewer creates a viewer for the given scan
func NewArchViewer(model *stl.Model) *ArchViewer {
	v := &ArchViewer{
		model:    model,
		camera:   NewCamera(model.BoundingBox()),
		selected: make(map[int]bool),
	}
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the orbit camera for external adjustments
func (v *ArchViewer) Camera() *Camera {
	return v.camera
}

// SetPath replaces the rendered wire path
func (v *ArchViewer) SetPath(path wirepath.Sequence) {
	v.path = path
	v.selected = make(map[int]bool)
	v.Render(v.width, v.height)
}

// SetContacts replaces the rendered contact ring
func (v *ArchViewer) SetContacts(contacts []geometry.Vector3) {
	v.contacts = contacts
	v.Render(v.width, v.height)
}

// SetPlanePoints replaces the rendered plane control points
func (v *ArchViewer) SetPlanePoints(points []geometry.Vector3) {
	v.planePoints = points
	v.Render(v.width, v.height)
}

// SetSelected highlights the given path point indices
func (v *ArchViewer) SetSelected(indices []int) {
	v.selected = make(map[int]bool)
	for _, i := range indices {
		v.selected[i] = true
	}
	v.Render(v.width, v.height)
}

// CreateRenderer creates the fyne renderer for the widget
func (v *ArchViewer) CreateRenderer() fyne.WidgetRenderer {
	return &archWidgetRenderer{viewer: v}
}

// Render rebuilds the scene primitives for the current camera
func (v *ArchViewer) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height
	v.lines = v.lines[:0]
	v.markers = v.markers[:0]

	v.renderMesh()
	v.renderPath()
	v.renderPoints()
	v.Refresh()
}

// renderMesh draws the scan wireframe with simple depth shading
func (v *ArchViewer) renderMesh() {
	for _, triangle := range v.model.Triangles {
		vertices := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for i := 0; i < 3; i++ {
			x1, y1, z1 := v.camera.Project(vertices[i], v.width, v.height)
			x2, y2, z2 := v.camera.Project(vertices[(i+1)%3], v.width, v.height)

			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(40, math.Min(160, 60+avgZ*2)))
			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			v.lines = append(v.lines, line)
		}
	}
}

// renderPath draws the wire centerline as a polyline
func (v *ArchViewer) renderPath() {
	for i := 1; i < len(v.path); i++ {
		x1, y1, _ := v.camera.Project(v.path[i-1].Position, v.width, v.height)
		x2, y2, _ := v.camera.Project(v.path[i].Position, v.width, v.height)

		line := canvas.NewLine(wireColor)
		line.StrokeWidth = 3
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		v.lines = append(v.lines, line)
	}
}

// renderPoints draws the markers: path control points, contacts, and plane
// control points. Loop-internal points get no marker; they are not
// manipulable.
func (v *ArchViewer) renderPoints() {
	for i, p := range v.path {
		if !p.Selectable() {
			continue
		}
		col := markerColor
		if p.Role == wirepath.RoleLoopArm {
			col = loopMarkerColor
		}
		v.addMarker(p.Position, col, 8, v.selected[i])
	}
	for _, c := range v.contacts {
		v.addMarker(c, contactColor, 6, false)
	}
	for _, p := range v.planePoints {
		v.addMarker(p, planePointColor, 8, false)
	}
}

func (v *ArchViewer) addMarker(point geometry.Vector3, col color.Color, size float32, highlighted bool) {
	x, y, z := v.camera.Project(point, v.width, v.height)
	if z <= 0.01 {
		return
	}
	marker := canvas.NewCircle(col)
	marker.StrokeColor = color.White
	marker.StrokeWidth = 1
	if highlighted {
		marker.StrokeColor = selectedOutline
		marker.StrokeWidth = 3
	}
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	v.markers = append(v.markers, marker)
}

// Dragged orbits the camera
func (v *ArchViewer) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y
		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Render(v.width, v.height)
	}
	v.dragStart = &event.Position
	v.isDragging = true
}

// DragEnd finishes a camera orbit
func (v *ArchViewer) DragEnd() {
	v.dragStart = nil
	v.isDragging = false
}

// Scrolled zooms the camera
func (v *ArchViewer) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Render(v.width, v.height)
}

// Tapped resolves a tap against the scene. A visible path point within
// pickRadius wins; otherwise the tap is forwarded as a pick ray.
func (v *ArchViewer) Tapped(event *fyne.PointEvent) {
	if v.isDragging {
		return
	}
	sx := float64(event.Position.X)
	sy := float64(event.Position.Y)

	if v.OnPathPointPick != nil {
		if idx, ok := v.nearestPathPoint(sx, sy); ok && v.OnPathPointPick(idx) {
			return
		}
	}
	if v.OnContactPick != nil {
		if idx, ok := v.nearestScenePoint(v.contacts, sx, sy); ok && v.OnContactPick(idx) {
			return
		}
	}
	if v.OnPickRay != nil {
		origin, dir := v.camera.PickRay(sx, sy, v.width, v.height)
		v.OnPickRay(origin, dir)
	}
}

// nearestPathPoint finds the closest visible path point within pickRadius of
// the screen position.
func (v *ArchViewer) nearestPathPoint(sx, sy float64) (int, bool) {
	best := -1
	bestDist := pickRadius
	for i, p := range v.path {
		if !p.Selectable() {
			continue
		}
		x, y, z := v.camera.Project(p.Position, v.width, v.height)
		if z <= 0.01 {
			continue
		}
		dist := math.Hypot(x-sx, y-sy)
		if dist <= bestDist {
			best = i
			bestDist = dist
		}
	}
	return best, best >= 0
}

// nearestScenePoint finds the closest of the given points within pickRadius
// of the screen position.
func (v *ArchViewer) nearestScenePoint(points []geometry.Vector3, sx, sy float64) (int, bool) {
	best := -1
	bestDist := pickRadius
	for i, p := range points {
		x, y, z := v.camera.Project(p, v.width, v.height)
		if z <= 0.01 {
			continue
		}
		dist := math.Hypot(x-sx, y-sy)
		if dist <= bestDist {
			best = i
			bestDist = dist
		}
	}
	return best, best >= 0
}

// archWidgetRenderer implements fyne.WidgetRenderer
type archWidgetRenderer struct {
	viewer  *ArchViewer
	objects []fyne.CanvasObject
}

func (r *archWidgetRenderer) Layout(size fyne.Size) {
	r.viewer.Render(float64(size.Width), float64(size.Height))
}

func (r *archWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *archWidgetRenderer) Refresh() {
	r.objects = r.objects[:0]
	for _, line := range r.viewer.lines {
		r.objects = append(r.objects, line)
	}
	for _, marker := range r.viewer.markers {
		r.objects = append(r.objects, marker)
	}
	canvas.Refresh(r.viewer)
}

func (r *archWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *archWidgetRenderer) Destroy() {}

package viewer

import (
	"math"

	"github.com/orthocad/archwire/pkg/geometry"
)

// Camera is an orbit camera around the scanned arch
type Camera struct {
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
	Distance float64
	Pitch    float64 // Rotation around the horizontal axis
	Yaw      float64 // Rotation around the vertical axis

	Position geometry.Vector3
}

// NewCamera creates a camera framing the given bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	size := bbox.Size()
	c := &Camera{
		Target:   bbox.Center(),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0,
	}
	c.updatePosition()
	return c
}

// Rotate orbits the camera by the given angle deltas. Pitch is clamped just
// short of the poles to keep the up vector usable.
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw

	maxPitch := math.Pi/2 - 0.1
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.updatePosition()
}

// Zoom scales the orbit distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.updatePosition()
}

// Pan shifts the orbit target within the view plane
func (c *Camera) Pan(deltaRight, deltaUp float64) {
	right, up, _ := c.basis()
	c.Target = c.Target.Add(right.Mul(deltaRight)).Add(up.Mul(deltaUp))
	c.updatePosition()
}

func (c *Camera) updatePosition() {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// basis returns the camera-space right, up, and forward directions
func (c *Camera) basis() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// Project maps a world point to screen coordinates. The third return value
// is the camera-space depth, positive in front of the camera.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	right, up, forward := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)
	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + width/2
	screenY := (-y/(z*fovScale))*(height/2) + height/2
	return screenX, screenY, z
}

// PickRay converts screen coordinates into a world-space ray for surface
// picking.
func (c *Camera) PickRay(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	ndcX := 2.0*screenX/width - 1.0
	ndcY := 1.0 - 2.0*screenY/height

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	right, up, forward := c.basis()
	dir := forward.
		Add(right.Mul(ndcX * fovScale * aspect)).
		Add(up.Mul(ndcY * fovScale)).
		Normalize()
	return c.Position, dir
}

package geometry

import (
	"fmt"
	"math"
)

// collinearEps is the squared-length threshold below which the cross product
// of two edge vectors is considered degenerate.
const collinearEps = 1e-12

// Plane represents an infinite plane defined by a unit normal and a point on it
type Plane struct {
	Normal Vector3 // Unit normal
	Point  Vector3 // Reference point on the plane
}

// NewPlane creates a plane from a unit normal and a point on the plane
func NewPlane(normal, point Vector3) Plane {
	return Plane{Normal: normal.Normalize(), Point: point}
}

// PlaneFromPoints builds the plane through three points. The normal is the
// normalized cross product of (p2-p1) and (p3-p1) and the reference point is
// p1. Returns an error when the points are collinear.
func PlaneFromPoints(p1, p2, p3 Vector3) (Plane, error) {
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	if normal.LengthSq() < collinearEps {
		return Plane{}, fmt.Errorf("plane points are collinear")
	}
	return Plane{Normal: normal.Normalize(), Point: p1}, nil
}

// SignedDistance returns the signed distance from a point to the plane,
// positive on the side the normal points to.
func (p Plane) SignedDistance(point Vector3) float64 {
	return point.Sub(p.Point).Dot(p.Normal)
}

// Distance returns the absolute distance from a point to the plane
func (p Plane) Distance(point Vector3) float64 {
	return math.Abs(p.SignedDistance(point))
}

// Project returns the orthogonal projection of a point onto the plane
func (p Plane) Project(point Vector3) Vector3 {
	return point.Sub(p.Normal.Mul(p.SignedDistance(point)))
}

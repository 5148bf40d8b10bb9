package geometry

import "math"

// Triangle represents a triangle in 3D space with a stored facet normal
type Triangle struct {
	Normal Vector3
	V1     Vector3
	V2     Vector3
	V3     Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Area returns the area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Centroid returns the centroid of the triangle
func (t Triangle) Centroid() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// ComputedNormal returns the geometric normal from the winding order,
// ignoring the stored facet normal.
func (t Triangle) ComputedNormal() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalize()
}

// EdgeLengths returns the lengths of the three edges (V1-V2, V2-V3, V3-V1)
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the sum of the edge lengths
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// IntersectRay intersects a ray with the triangle using the Moller-Trumbore
// algorithm. Returns the hit point and true when the ray (origin + t*dir,
// t >= 0) crosses the triangle interior.
func (t Triangle) IntersectRay(origin, dir Vector3) (Vector3, bool) {
	const eps = 1e-9

	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	h := dir.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < eps {
		return Vector3{}, false // Ray parallel to triangle plane
	}

	f := 1.0 / a
	s := origin.Sub(t.V1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return Vector3{}, false
	}

	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return Vector3{}, false
	}

	dist := f * edge2.Dot(q)
	if dist < eps {
		return Vector3{}, false
	}

	return origin.Add(dir.Mul(dist)), true
}

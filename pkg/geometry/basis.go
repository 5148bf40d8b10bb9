package geometry

// Basis is an orthonormal in-plane coordinate frame used to project 3D points
// onto a working plane for 2D curve fitting.
type Basis struct {
	Origin Vector3 // World-space origin of the frame
	U      Vector3 // First in-plane axis (unit)
	V      Vector3 // Second in-plane axis (unit)
	Normal Vector3 // Plane normal (unit), U x V
}

// NewBasis builds an orthonormal frame at origin with u pointing along the
// given direction, re-orthogonalized against the plane normal.
func NewBasis(origin, along, normal Vector3) Basis {
	n := normal.Normalize()
	u := along.Sub(n.Mul(along.Dot(n))).Normalize()
	v := n.Cross(u).Normalize()
	return Basis{Origin: origin, U: u, V: v, Normal: n}
}

// Project maps a world-space point to 2D coordinates in the frame
func (b Basis) Project(p Vector3) (float64, float64) {
	rel := p.Sub(b.Origin)
	return rel.Dot(b.U), rel.Dot(b.V)
}

// Unproject maps 2D frame coordinates back to a world-space point on the plane
func (b Basis) Unproject(x, y float64) Vector3 {
	return b.Origin.Add(b.U.Mul(x)).Add(b.V.Mul(y))
}

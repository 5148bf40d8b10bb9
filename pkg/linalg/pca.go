package linalg

import (
	"github.com/orthocad/archwire/pkg/geometry"
)

// FitPlaneNormal estimates the best-fit plane normal of a point cloud as the
// eigenvector of the covariance matrix belonging to the smallest eigenvalue.
// Near-planar-degenerate input that produces a non-finite normal falls back
// to the Z axis.
func FitPlaneNormal(points []geometry.Vector3) geometry.Vector3 {
	fallback := geometry.NewVector3(0, 0, 1)
	if len(points) < 3 {
		return fallback
	}

	var centroid geometry.Vector3
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1.0 / float64(len(points)))

	cov := make([][]float64, 3)
	for i := range cov {
		cov[i] = make([]float64, 3)
	}
	for _, p := range points {
		d := p.Sub(centroid)
		cov[0][0] += d.X * d.X
		cov[0][1] += d.X * d.Y
		cov[0][2] += d.X * d.Z
		cov[1][1] += d.Y * d.Y
		cov[1][2] += d.Y * d.Z
		cov[2][2] += d.Z * d.Z
	}
	cov[1][0] = cov[0][1]
	cov[2][0] = cov[0][2]
	cov[2][1] = cov[1][2]

	_, vec := JacobiEigen(cov, PlaneIterations, PlaneEps).MinEigenpair()
	normal := geometry.NewVector3(vec[0], vec[1], vec[2]).Normalize()
	if !normal.IsFinite() || normal.Length() == 0 {
		return fallback
	}
	return normal
}

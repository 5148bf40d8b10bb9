package linalg

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/orthocad/archwire/pkg/geometry"
)

func TestJacobiEigenDiagonal(t *testing.T) {
	m := [][]float64{
		{3, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	}

	result := JacobiEigen(m, PlaneIterations, PlaneEps)
	min, vec := result.MinEigenpair()

	if math.Abs(min-1.0) > 1e-9 {
		t.Errorf("smallest eigenvalue = %v, want 1", min)
	}
	// Eigenvector for eigenvalue 1 is the Y axis (up to sign)
	if math.Abs(math.Abs(vec[1])-1.0) > 1e-6 {
		t.Errorf("eigenvector = %v, want +/-Y axis", vec)
	}
}

func TestJacobiEigenSymmetric(t *testing.T) {
	m := [][]float64{
		{2, 1, 0},
		{1, 2, 0},
		{0, 0, 5},
	}

	result := JacobiEigen(m, PlaneIterations, PlaneEps)

	// Eigenvalues of the 2x2 block are 1 and 3; with 5 from the last axis.
	found := map[float64]bool{}
	for _, v := range result.Values {
		for _, want := range []float64{1, 3, 5} {
			if math.Abs(v-want) < 1e-8 {
				found[want] = true
			}
		}
	}
	if len(found) != 3 {
		t.Errorf("eigenvalues = %v, want {1, 3, 5}", result.Values)
	}

	// Residual check: M*v = lambda*v for each eigenpair
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			mv := 0.0
			for k := 0; k < 3; k++ {
				mv += m[row][k] * result.Vectors[k][col]
			}
			want := result.Values[col] * result.Vectors[row][col]
			if math.Abs(mv-want) > 1e-7 {
				t.Errorf("eigenpair %d residual at row %d: %v vs %v", col, row, mv, want)
			}
		}
	}
}

func TestFitPlaneNormal(t *testing.T) {
	// Points scattered in the z=0 plane
	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(2, 0.5, 0),
	}

	normal := FitPlaneNormal(points)
	if math.Abs(math.Abs(normal.Z)-1.0) > 1e-6 {
		t.Errorf("normal = %v, want +/-Z axis", normal)
	}
}

func TestFitPlaneNormalDegenerate(t *testing.T) {
	// Fewer than 3 points falls back to the Z axis
	normal := FitPlaneNormal([]geometry.Vector3{geometry.NewVector3(1, 2, 3)})
	if normal != geometry.NewVector3(0, 0, 1) {
		t.Errorf("degenerate input should fall back to Z axis, got %v", normal)
	}
}

func TestNullSpaceBasis(t *testing.T) {
	// Single constraint row x + y = 0 in R^3: null space has dimension 2
	c := mat.NewDense(1, 3, []float64{1, 1, 0})

	basis, err := NullSpaceBasis(c)
	if err != nil {
		t.Fatalf("NullSpaceBasis failed: %v", err)
	}

	rows, cols := basis.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("basis dims = %dx%d, want 3x2", rows, cols)
	}

	// Every basis column must satisfy the constraint
	for j := 0; j < cols; j++ {
		residual := basis.At(0, j) + basis.At(1, j)
		if math.Abs(residual) > 1e-9 {
			t.Errorf("basis column %d violates constraint: residual %v", j, residual)
		}
	}
}

func TestNullSpaceBasisTwoConstraints(t *testing.T) {
	// Two independent rows in R^4: null space dimension 2
	c := mat.NewDense(2, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
	})

	basis, err := NullSpaceBasis(c)
	if err != nil {
		t.Fatalf("NullSpaceBasis failed: %v", err)
	}
	rows, cols := basis.Dims()
	if rows != 4 || cols != 2 {
		t.Fatalf("basis dims = %dx%d, want 4x2", rows, cols)
	}
	for j := 0; j < cols; j++ {
		if math.Abs(basis.At(0, j)) > 1e-9 || math.Abs(basis.At(1, j)) > 1e-9 {
			t.Errorf("basis column %d violates constraints", j)
		}
	}
}

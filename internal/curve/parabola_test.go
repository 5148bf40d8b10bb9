package curve

import (
	"testing"

	"github.com/orthocad/archwire/pkg/geometry"
)

func TestParabolaThroughEndpoints(t *testing.T) {
	p1 := geometry.NewVector3(0, 0, 0)
	p2 := geometry.NewVector3(5, 4, 0)
	p3 := geometry.NewVector3(10, 0, 0)

	result := ParabolaThrough(p1, p2, p3, 50)
	if result.Method != MethodParabola {
		t.Fatalf("method = %v, want parabola", result.Method)
	}
	if len(result.Points) != 50 {
		t.Fatalf("sample count = %d, want 50", len(result.Points))
	}
	if result.Points[0].Distance(p1) > 1e-10 {
		t.Errorf("first sample %v != p1 %v", result.Points[0], p1)
	}
	if result.Points[49].Distance(p3) > 1e-10 {
		t.Errorf("last sample %v != p3 %v", result.Points[49], p3)
	}
}

func TestParabolaThroughMiddlePoint(t *testing.T) {
	p1 := geometry.NewVector3(0, 0, 0)
	p2 := geometry.NewVector3(6, 5, 2)
	p3 := geometry.NewVector3(12, 1, 4)

	result := ParabolaThrough(p1, p2, p3, 200)
	if result.Method != MethodParabola {
		t.Fatalf("method = %v, want parabola", result.Method)
	}

	// The parabola passes exactly through p2, so a dense sampling must come
	// close to it.
	best := result.Points[0].Distance(p2)
	for _, p := range result.Points {
		if d := p.Distance(p2); d < best {
			best = d
		}
	}
	if best > 0.1 {
		t.Errorf("fitted curve misses middle point by %v", best)
	}
}

func TestParabolaCollinearFallback(t *testing.T) {
	p1 := geometry.NewVector3(0, 0, 0)
	p2 := geometry.NewVector3(5, 5, 5)
	p3 := geometry.NewVector3(10, 10, 10)

	result := ParabolaThrough(p1, p2, p3, 50)
	if result.Method != MethodCatmullRom {
		t.Errorf("collinear input should fall back to Catmull-Rom, got %v", result.Method)
	}
	if len(result.Points) == 0 {
		t.Error("fallback must still return a usable point sequence")
	}
	for _, p := range result.Points {
		if !p.IsFinite() {
			t.Fatalf("fallback produced non-finite point %v", p)
		}
	}
}

package curve

import (
	"testing"

	"github.com/orthocad/archwire/pkg/geometry"
)

func TestCatmullRomEndpoints(t *testing.T) {
	controls := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(5, 3, 1),
		geometry.NewVector3(10, 0, 2),
		geometry.NewVector3(15, -2, 0),
	}

	out := CatmullRom(controls, 50)
	if len(out) != 50 {
		t.Fatalf("sample count = %d, want 50", len(out))
	}
	if out[0] != controls[0] {
		t.Errorf("first sample %v should equal first control %v", out[0], controls[0])
	}
	if out[49] != controls[3] {
		t.Errorf("last sample %v should equal last control %v", out[49], controls[3])
	}
}

func TestCatmullRomPassesThroughControls(t *testing.T) {
	controls := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 5, 0),
		geometry.NewVector3(20, 0, 0),
	}

	// With a dense resample, some sample must come close to the middle
	// control point (the spline interpolates it exactly at t boundaries).
	out := CatmullRom(controls, 200)
	best := out[0].Distance(controls[1])
	for _, p := range out {
		if d := p.Distance(controls[1]); d < best {
			best = d
		}
	}
	if best > 0.2 {
		t.Errorf("spline misses the middle control point by %v", best)
	}
}

func TestCatmullRomCountClamping(t *testing.T) {
	controls := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(2, 0, 0),
	}

	if n := len(CatmullRom(controls, 5)); n != MinResampleCount {
		t.Errorf("undersized request gave %d samples, want %d", n, MinResampleCount)
	}
	if n := len(CatmullRom(controls, 1000)); n != MaxResampleCount {
		t.Errorf("oversized request gave %d samples, want %d", n, MaxResampleCount)
	}
	if n := len(CatmullRom(controls, 0)); n != DefaultResampleCount {
		t.Errorf("zero request gave %d samples, want %d", n, DefaultResampleCount)
	}
}

func TestCatmullRomTooFewPoints(t *testing.T) {
	two := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
	}
	out := CatmullRom(two, 50)
	if len(out) != 2 || out[0] != two[0] || out[1] != two[1] {
		t.Errorf("short input should pass through unchanged, got %v", out)
	}
}

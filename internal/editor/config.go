package editor

import (
	"fmt"

	"github.com/orthocad/archwire/internal/curve"
	"github.com/orthocad/archwire/internal/uloop"
)

// Config holds the user-adjustable editing parameters. All lengths are in
// millimeters.
type Config struct {
	WireRadius         float64 `json:"wireRadius"`         // Rendered wire radius, > 0
	MarkerRadius       float64 `json:"markerRadius"`       // Control-point marker radius, > 0
	ControlPointTarget int     `json:"controlPointTarget"` // Down-sample target, 3-20
	ResampleCount      int     `json:"resampleCount"`      // Smoothing output count, 20-200
	LoopEndOffset      float64 `json:"loopEndOffset"`      // U-loop outward offset
}

// DefaultConfig returns the standard editing parameters
func DefaultConfig() Config {
	return Config{
		WireRadius:         0.4,
		MarkerRadius:       0.6,
		ControlPointTarget: curve.DefaultControlPoints,
		ResampleCount:      curve.DefaultResampleCount,
		LoopEndOffset:      uloop.DefaultEndOffset,
	}
}

// Validate checks the configuration ranges
func (c Config) Validate() error {
	if c.WireRadius <= 0 {
		return fmt.Errorf("wire radius must be positive, got %g", c.WireRadius)
	}
	if c.MarkerRadius <= 0 {
		return fmt.Errorf("marker radius must be positive, got %g", c.MarkerRadius)
	}
	if c.ControlPointTarget < curve.MinControlPoints || c.ControlPointTarget > curve.MaxControlPoints {
		return fmt.Errorf("control point target %d outside %d-%d",
			c.ControlPointTarget, curve.MinControlPoints, curve.MaxControlPoints)
	}
	if c.ResampleCount < curve.MinResampleCount || c.ResampleCount > curve.MaxResampleCount {
		return fmt.Errorf("resample count %d outside %d-%d",
			c.ResampleCount, curve.MinResampleCount, curve.MaxResampleCount)
	}
	if c.LoopEndOffset < 0 {
		return fmt.Errorf("loop end offset must not be negative, got %g", c.LoopEndOffset)
	}
	return nil
}

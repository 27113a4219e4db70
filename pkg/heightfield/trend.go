package heightfield

import (
	dsmath "github.com/Faultbox/datascape/pkg/math"
	"github.com/Faultbox/datascape/pkg/validate"
)

// TrendLine returns the series as a polyline spread across span world units,
// centered on the origin at z = 0. A single sample yields one point at x = 0.
func TrendLine(samples []float32, span, scale float32) ([]dsmath.Vec3, error) {
	const op = "heightfield.TrendLine"
	if len(samples) == 0 {
		return nil, validate.Invalid(op, "samples", "must not be empty")
	}
	if !(scale > 0) {
		return nil, validate.Invalid(op, "scale", "must be positive")
	}

	points := make([]dsmath.Vec3, len(samples))
	if len(samples) == 1 {
		points[0] = dsmath.Vec3{Y: samples[0] / scale}
		return points, nil
	}

	last := float32(len(samples) - 1)
	for i, s := range samples {
		points[i] = dsmath.Vec3{
			X: float32(i)/last*span - span/2,
			Y: s / scale,
		}
	}
	return points, nil
}

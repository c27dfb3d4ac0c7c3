package symmetry

import (
	"math"
	"sort"

	"stadium-editor/internal/sketch"
	"stadium-editor/pkg/geometry"
)

// axisTolerance is the angular distance below which two axes are
// considered the same line.
const axisTolerance = 0.001

// ConstraintAxes derives the snap axes implied by a mirror configuration:
// the two cardinal axes plus, for N > 0 planes, every plane angle and every
// bisector between adjacent planes. Axes are bidirectional lines, folded
// into [0, pi), deduplicated, and sorted ascending.
func ConstraintAxes(cfg sketch.MirrorConfig) []float64 {
	axes := []float64{0, math.Pi / 2}

	if cfg.PlaneCount > 0 {
		step := math.Pi / float64(cfg.PlaneCount)
		for i := 0; i < cfg.PlaneCount; i++ {
			axes = append(axes,
				geometry.FoldAxisAngle(cfg.StartAngle+float64(i)*step),
				geometry.FoldAxisAngle(cfg.StartAngle+(float64(i)+0.5)*step))
		}
	}

	sort.Float64s(axes)

	deduped := make([]float64, 0, len(axes))
	for _, a := range axes {
		if len(deduped) == 0 || a-deduped[len(deduped)-1] > axisTolerance {
			deduped = append(deduped, a)
		}
	}
	// The fold seam: an axis just under pi is the same line as one at 0.
	if len(deduped) > 1 && math.Pi-deduped[len(deduped)-1]+deduped[0] <= axisTolerance {
		deduped = deduped[:len(deduped)-1]
	}

	return deduped
}

// ConstrainToNearestAxis projects a drag vector onto the nearest axis line.
// A zero-length delta is returned unchanged, as is any delta when no axes
// are given. The result is the vector projection onto the winning axis, so
// its magnitude shrinks unless the delta was already axis-aligned.
func ConstrainToNearestAxis(delta geometry.Point2D, axes []float64) geometry.Point2D {
	if (delta.X == 0 && delta.Y == 0) || len(axes) == 0 {
		return delta
	}

	angle := geometry.FoldAxisAngle(delta.Angle())

	best := axes[0]
	bestDist := math.Inf(1)
	for _, a := range axes {
		// Check the direct difference and both pi-wrapped differences so
		// angles near the 0/pi seam snap to the right line.
		d := math.Abs(angle - a)
		d = math.Min(d, math.Abs(angle-a+math.Pi))
		d = math.Min(d, math.Abs(angle-a-math.Pi))
		if d < bestDist {
			bestDist = d
			best = a
		}
	}

	// Projecting onto the axis direction or its opposite yields the same
	// vector; the dot product carries the sign.
	dir := geometry.FromPolar(best, 1)
	return dir.Scale(delta.Dot(dir))
}

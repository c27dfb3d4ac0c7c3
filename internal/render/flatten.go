// Package render turns computed outlines into consumable forms: flattened
// polylines, RGBA raster images, SVG path descriptions, and exact bounds.
package render

import (
	"math"

	"stadium-editor/internal/hull"
	"stadium-editor/pkg/geometry"
)

// DefaultTolerance is the flattening chord error used by the raster and
// hit-testing paths.
const DefaultTolerance = 0.25

// Flatten converts a path into a polyline whose chords deviate from the
// true curve by at most tolerance. Subdivision counts depend only on the
// segment parameters and the tolerance, so the output is deterministic.
func Flatten(p hull.Path, tolerance float64) []geometry.Point2D {
	if p.Empty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	pts := []geometry.Point2D{p.Segments[0].Start()}
	for _, s := range p.Segments {
		pts = appendFlattened(pts, s, tolerance)
	}
	return pts
}

func appendFlattened(pts []geometry.Point2D, s hull.Segment, tolerance float64) []geometry.Point2D {
	switch seg := s.(type) {
	case hull.Line:
		return appendPoint(pts, seg.To)
	case hull.Arc:
		steps := arcSteps(seg.Sweep(), seg.Radius, tolerance)
		for i := 1; i <= steps; i++ {
			pts = appendPoint(pts, seg.PointAt(float64(i)/float64(steps)))
		}
		return pts
	case hull.Bezier:
		steps := bezierSteps(seg, tolerance)
		for i := 1; i <= steps; i++ {
			pts = appendPoint(pts, seg.PointAt(float64(i)/float64(steps)))
		}
		return pts
	case hull.EllipseArc:
		steps := arcSteps(seg.Sweep(), math.Max(seg.RadiusX, seg.RadiusY), tolerance)
		for i := 1; i <= steps; i++ {
			pts = appendPoint(pts, seg.PointAt(float64(i)/float64(steps)))
		}
		return pts
	default:
		return appendPoint(pts, s.End())
	}
}

// arcSteps picks the step count so the chord sagitta stays below the
// tolerance: r*(1 - cos(step/2)) <= tol.
func arcSteps(sweep, radius, tolerance float64) int {
	if sweep <= 0 || radius <= 0 {
		return 1
	}
	maxStep := 2 * math.Acos(geometry.Clamp(1-tolerance/radius, -1, 1))
	if maxStep <= 0 {
		return 1
	}
	steps := int(math.Ceil(sweep / maxStep))
	if steps < 2 {
		steps = 2
	}
	return steps
}

// bezierSteps scales subdivision with the control polygon length, which
// bounds the curve length.
func bezierSteps(b hull.Bezier, tolerance float64) int {
	poly := b.From.Distance(b.CP1) + b.CP1.Distance(b.CP2) + b.CP2.Distance(b.To)
	steps := int(math.Ceil(math.Sqrt(poly / (2 * tolerance))))
	if steps < 4 {
		steps = 4
	}
	if steps > 128 {
		steps = 128
	}
	return steps
}

func appendPoint(pts []geometry.Point2D, p geometry.Point2D) []geometry.Point2D {
	if n := len(pts); n > 0 && pts[n-1].Distance(p) < 1e-9 {
		return pts
	}
	return append(pts, p)
}

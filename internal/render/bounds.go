package render

import (
	"math"

	"stadium-editor/internal/hull"
	"stadium-editor/pkg/geometry"
)

// BoundsOf computes the exact geometric extents of a path. Arc quadrant
// crossings and Bezier derivative roots are included, not just endpoints,
// so the result is a true bounding box.
func BoundsOf(p hull.Path) geometry.Rect {
	if p.Empty() {
		return geometry.Rect{}
	}

	r := geometry.RectAround(p.Segments[0].Start())
	for _, s := range p.Segments {
		r = r.Union(segmentBounds(s))
	}
	return r
}

func segmentBounds(s hull.Segment) geometry.Rect {
	switch seg := s.(type) {
	case hull.Line:
		return geometry.RectAround(seg.From).ExpandToInclude(seg.To)
	case hull.Arc:
		return arcBounds(seg)
	case hull.Bezier:
		return bezierBounds(seg)
	case hull.EllipseArc:
		return ellipseArcBounds(seg)
	default:
		return geometry.RectAround(s.Start()).ExpandToInclude(s.End())
	}
}

func arcBounds(a hull.Arc) geometry.Rect {
	r := geometry.RectAround(a.Start()).ExpandToInclude(a.End())

	// Include every axis extreme the sweep passes through.
	for q := 0; q < 4; q++ {
		angle := float64(q) * math.Pi / 2
		if arcCrosses(a.StartAngle, a.Sweep(), a.Counterclockwise, angle) {
			r = r.ExpandToInclude(a.Center.Add(geometry.FromPolar(angle, a.Radius)))
		}
	}
	return r
}

// arcCrosses reports whether a sweep starting at start in the given
// direction passes through the target angle.
func arcCrosses(start, sweep float64, ccw bool, target float64) bool {
	var offset float64
	if ccw {
		offset = geometry.NormalizeAngle(target - start)
	} else {
		offset = geometry.NormalizeAngle(start - target)
	}
	return offset <= sweep
}

func bezierBounds(b hull.Bezier) geometry.Rect {
	r := geometry.RectAround(b.From).ExpandToInclude(b.To)

	for _, t := range bezierExtrema(b.From.X, b.CP1.X, b.CP2.X, b.To.X) {
		r = r.ExpandToInclude(b.PointAt(t))
	}
	for _, t := range bezierExtrema(b.From.Y, b.CP1.Y, b.CP2.Y, b.To.Y) {
		r = r.ExpandToInclude(b.PointAt(t))
	}
	return r
}

// bezierExtrema returns the interior parameters where the cubic's
// derivative along one axis is zero.
func bezierExtrema(v0, v1, v2, v3 float64) []float64 {
	a := 3 * (-v0 + 3*v1 - 3*v2 + v3)
	b := 6 * (v0 - 2*v1 + v2)
	c := 3 * (v1 - v0)

	var roots []float64
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) > 1e-12 {
			roots = append(roots, -c/b)
		}
	} else {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			roots = append(roots, (-b+sq)/(2*a), (-b-sq)/(2*a))
		}
	}

	out := roots[:0]
	for _, t := range roots {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

func ellipseArcBounds(e hull.EllipseArc) geometry.Rect {
	r := geometry.RectAround(e.Start()).ExpandToInclude(e.End())

	sin, cos := math.Sincos(e.Rotation)

	// Parameter angles of the horizontal and vertical extremes of a
	// rotated ellipse; each extreme repeats half a turn later.
	tx := math.Atan2(-e.RadiusY*sin, e.RadiusX*cos)
	ty := math.Atan2(e.RadiusY*cos, e.RadiusX*sin)
	for _, base := range []float64{tx, ty} {
		for _, angle := range []float64{base, base + math.Pi} {
			if arcCrosses(e.StartAngle, e.Sweep(), e.Counterclockwise, angle) {
				p := geometry.Point2D{
					X: e.RadiusX * math.Cos(angle),
					Y: e.RadiusY * math.Sin(angle),
				}
				r = r.ExpandToInclude(e.Center.Add(p.Rotate(e.Rotation)))
			}
		}
	}
	return r
}

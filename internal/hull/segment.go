package hull

import (
	"math"

	"stadium-editor/pkg/geometry"
)

// Fixed subdivision counts for numeric arc lengths. Fixed-step summation is
// deliberately used instead of adaptive quadrature so repeated calls with
// identical inputs produce bit-identical lengths.
const (
	bezierLengthSamples  = 32
	ellipseLengthSamples = 64
)

// Segment is one drawable piece of a computed outline. Lengths are always
// derived from the segment's own parameters.
type Segment interface {
	Start() geometry.Point2D
	End() geometry.Point2D
	Length() float64
}

// Line is a straight segment between two tangent points.
type Line struct {
	From geometry.Point2D
	To   geometry.Point2D
}

// Start returns the first endpoint.
func (l Line) Start() geometry.Point2D { return l.From }

// End returns the second endpoint.
func (l Line) End() geometry.Point2D { return l.To }

// Length returns the Euclidean distance between the endpoints.
func (l Line) Length() float64 { return l.From.Distance(l.To) }

// Arc is a circular arc swept from StartAngle to EndAngle in the direction
// given by Counterclockwise.
type Arc struct {
	Center           geometry.Point2D
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	Counterclockwise bool
}

// Start returns the point at the arc's start angle.
func (a Arc) Start() geometry.Point2D {
	return geometry.Circle{Center: a.Center, Radius: a.Radius}.PointAt(a.StartAngle)
}

// End returns the point at the arc's end angle.
func (a Arc) End() geometry.Point2D {
	return geometry.Circle{Center: a.Center, Radius: a.Radius}.PointAt(a.EndAngle)
}

// Sweep returns the swept angle magnitude in the arc's direction, in [0, 2*pi).
func (a Arc) Sweep() float64 {
	if a.Counterclockwise {
		return geometry.NormalizeAngle(a.EndAngle - a.StartAngle)
	}
	return geometry.NormalizeAngle(a.StartAngle - a.EndAngle)
}

// Length returns radius times the swept angle.
func (a Arc) Length() float64 { return a.Radius * a.Sweep() }

// PointAt returns the point at parameter t in [0, 1] along the sweep.
func (a Arc) PointAt(t float64) geometry.Point2D {
	sweep := a.Sweep()
	if !a.Counterclockwise {
		sweep = -sweep
	}
	return a.Center.Add(geometry.FromPolar(a.StartAngle+t*sweep, a.Radius))
}

// AsEllipse converts the circular arc to its elliptical-arc form, as used
// when flattening a path into elliptical-arc drawing commands.
func (a Arc) AsEllipse() EllipseArc {
	return EllipseArc{
		Center:           a.Center,
		RadiusX:          a.Radius,
		RadiusY:          a.Radius,
		StartAngle:       a.StartAngle,
		EndAngle:         a.EndAngle,
		Counterclockwise: a.Counterclockwise,
	}
}

// Bezier is a cubic Bezier segment.
type Bezier struct {
	From geometry.Point2D
	CP1  geometry.Point2D
	CP2  geometry.Point2D
	To   geometry.Point2D
}

// Start returns the first endpoint.
func (b Bezier) Start() geometry.Point2D { return b.From }

// End returns the second endpoint.
func (b Bezier) End() geometry.Point2D { return b.To }

// PointAt evaluates the curve at parameter t in [0, 1].
func (b Bezier) PointAt(t float64) geometry.Point2D {
	u := 1 - t
	p := b.From.Scale(u * u * u)
	p = p.Add(b.CP1.Scale(3 * u * u * t))
	p = p.Add(b.CP2.Scale(3 * u * t * t))
	return p.Add(b.To.Scale(t * t * t))
}

// Length returns the arc length approximated by a fixed-step polyline.
func (b Bezier) Length() float64 {
	var total float64
	prev := b.From
	for i := 1; i <= bezierLengthSamples; i++ {
		p := b.PointAt(float64(i) / bezierLengthSamples)
		total += prev.Distance(p)
		prev = p
	}
	return total
}

// EllipseArc is an elliptical arc with an axis rotation, swept from
// StartAngle to EndAngle in the direction given by Counterclockwise.
// Angles are ellipse parameter angles, not geometric angles.
type EllipseArc struct {
	Center           geometry.Point2D
	RadiusX          float64
	RadiusY          float64
	Rotation         float64
	StartAngle       float64
	EndAngle         float64
	Counterclockwise bool
}

// Sweep returns the swept parameter angle magnitude in the arc's direction.
func (e EllipseArc) Sweep() float64 {
	if e.Counterclockwise {
		return geometry.NormalizeAngle(e.EndAngle - e.StartAngle)
	}
	return geometry.NormalizeAngle(e.StartAngle - e.EndAngle)
}

// PointAt returns the point at parameter t in [0, 1] along the sweep.
func (e EllipseArc) PointAt(t float64) geometry.Point2D {
	sweep := e.Sweep()
	if !e.Counterclockwise {
		sweep = -sweep
	}
	return e.pointAtAngle(e.StartAngle + t*sweep)
}

func (e EllipseArc) pointAtAngle(angle float64) geometry.Point2D {
	sin, cos := math.Sincos(angle)
	p := geometry.Point2D{X: e.RadiusX * cos, Y: e.RadiusY * sin}
	return e.Center.Add(p.Rotate(e.Rotation))
}

// Start returns the point at the arc's start angle.
func (e EllipseArc) Start() geometry.Point2D { return e.pointAtAngle(e.StartAngle) }

// End returns the point at the arc's end angle.
func (e EllipseArc) End() geometry.Point2D { return e.pointAtAngle(e.EndAngle) }

// Length returns the arc length approximated by a fixed-step polyline.
// An ellipse perimeter has no closed form; fixed sampling keeps the result
// stable across calls.
func (e EllipseArc) Length() float64 {
	var total float64
	prev := e.PointAt(0)
	for i := 1; i <= ellipseLengthSamples; i++ {
		p := e.PointAt(float64(i) / ellipseLengthSamples)
		total += prev.Distance(p)
		prev = p
	}
	return total
}

// Path is an ordered sequence of connected segments.
type Path struct {
	Segments []Segment
}

// Empty reports whether the path has nothing to draw.
func (p Path) Empty() bool { return len(p.Segments) == 0 }

// TotalLength returns the sum of all segment lengths.
func (p Path) TotalLength() float64 {
	var total float64
	for _, s := range p.Segments {
		total += s.Length()
	}
	return total
}

package hull

import (
	"math"

	"stadium-editor/pkg/geometry"
)

// Tangent is the external tangent contact between an adjacent circle pair.
// The radius direction at both contact points is the same angle, so a
// single Angle describes both.
type Tangent struct {
	From  geometry.Point2D // contact point on the first circle
	To    geometry.Point2D // contact point on the second circle
	Angle float64          // radius angle at both contacts
}

// OuterTangent computes the external tangent between two circles on the
// side matching the traversal handedness. The hull never uses internal
// tangents; the path must not pass between the circles.
//
// The pair is degenerate when one disk contains the other (including
// coincident centers); ok is false and no tangent exists. Degeneracy is an
// expected outcome, not an error.
func OuterTangent(c1, c2 geometry.Circle, ccw bool) (Tangent, bool) {
	d := c1.Center.Distance(c2.Center)
	if d <= math.Abs(c1.Radius-c2.Radius) {
		return Tangent{}, false
	}

	theta := c2.Center.Sub(c1.Center).Angle()
	// Clamped: rounding can push the ratio a hair outside acos' domain.
	phi := math.Acos(geometry.Clamp((c1.Radius-c2.Radius)/d, -1, 1))

	angle := theta + phi
	if ccw {
		angle = theta - phi
	}

	return Tangent{
		From:  c1.PointAt(angle),
		To:    c2.PointAt(angle),
		Angle: angle,
	}, true
}

package hull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stadium-editor/pkg/geometry"
)

func TestOuterTangentStadium(t *testing.T) {
	a := geometry.Circle{Center: geometry.Point2D{X: 0, Y: 0}, Radius: 2}
	b := geometry.Circle{Center: geometry.Point2D{X: 10, Y: 0}, Radius: 2}

	// Clockwise traversal takes the upper tangent.
	tan, ok := OuterTangent(a, b, false)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, tan.Angle, 1e-9)
	assert.InDelta(t, 0, tan.From.X, 1e-9)
	assert.InDelta(t, 2, tan.From.Y, 1e-9)
	assert.InDelta(t, 10, tan.To.X, 1e-9)
	assert.InDelta(t, 2, tan.To.Y, 1e-9)

	// Counterclockwise takes the lower tangent.
	tan, ok = OuterTangent(a, b, true)
	require.True(t, ok)
	assert.InDelta(t, -math.Pi/2, tan.Angle, 1e-9)
	assert.InDelta(t, -2, tan.From.Y, 1e-9)
	assert.InDelta(t, -2, tan.To.Y, 1e-9)
}

func TestOuterTangentPerpendicular(t *testing.T) {
	pairs := []struct {
		a, b geometry.Circle
	}{
		{
			geometry.Circle{Center: geometry.Point2D{X: 0, Y: 0}, Radius: 3},
			geometry.Circle{Center: geometry.Point2D{X: 12, Y: 5}, Radius: 1},
		},
		{
			geometry.Circle{Center: geometry.Point2D{X: -4, Y: 2}, Radius: 0.5},
			geometry.Circle{Center: geometry.Point2D{X: 3, Y: -6}, Radius: 4},
		},
		{
			geometry.Circle{Center: geometry.Point2D{X: 1, Y: 1}, Radius: 2},
			geometry.Circle{Center: geometry.Point2D{X: 1, Y: 9}, Radius: 2},
		},
	}

	for _, pair := range pairs {
		for _, ccw := range []bool{false, true} {
			tan, ok := OuterTangent(pair.a, pair.b, ccw)
			require.True(t, ok)

			// The tangent chord is perpendicular to the radius direction
			// at both contact points.
			chord := tan.To.Sub(tan.From)
			radius := geometry.FromPolar(tan.Angle, 1)
			assert.InDelta(t, 0, chord.Normalize().Dot(radius), 1e-9)

			// Both contact points lie on their circles.
			assert.InDelta(t, pair.a.Radius, tan.From.Distance(pair.a.Center), 1e-9)
			assert.InDelta(t, pair.b.Radius, tan.To.Distance(pair.b.Center), 1e-9)
		}
	}
}

func TestOuterTangentEqualRadiiParallel(t *testing.T) {
	a := geometry.Circle{Center: geometry.Point2D{X: 0, Y: 0}, Radius: 3}
	b := geometry.Circle{Center: geometry.Point2D{X: 7, Y: 4}, Radius: 3}

	tan, ok := OuterTangent(a, b, false)
	require.True(t, ok)

	// Equal radii: the tangent is parallel to the center line.
	chord := tan.To.Sub(tan.From).Normalize()
	centers := b.Center.Sub(a.Center).Normalize()
	assert.InDelta(t, 0, chord.Cross(centers), 1e-9)
}

func TestOuterTangentDegenerate(t *testing.T) {
	big := geometry.Circle{Center: geometry.Point2D{X: 0, Y: 0}, Radius: 10}
	small := geometry.Circle{Center: geometry.Point2D{X: 2, Y: 0}, Radius: 1}

	_, ok := OuterTangent(big, small, false)
	assert.False(t, ok)

	// Coincident centers.
	_, ok = OuterTangent(big, geometry.Circle{Center: big.Center, Radius: 3}, true)
	assert.False(t, ok)

	// Internally tangent, distance equals the radius difference.
	inner := geometry.Circle{Center: geometry.Point2D{X: 5, Y: 0}, Radius: 5}
	_, ok = OuterTangent(big, inner, false)
	assert.False(t, ok)
}

package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stadium-editor/pkg/geometry"
)

func TestCircleExact(t *testing.T) {
	want := geometry.Circle{Center: geometry.Point2D{X: 3, Y: -2}, Radius: 5}

	var points []geometry.Point2D
	for i := 0; i < 8; i++ {
		angle := 2 * math.Pi * float64(i) / 8
		points = append(points, want.PointAt(angle))
	}

	got, err := Circle(points)
	require.NoError(t, err)
	assert.InDelta(t, want.Center.X, got.Center.X, 1e-9)
	assert.InDelta(t, want.Center.Y, got.Center.Y, 1e-9)
	assert.InDelta(t, want.Radius, got.Radius, 1e-9)
}

func TestCircleThreePoints(t *testing.T) {
	// Unit circle through three of its points.
	points := []geometry.Point2D{
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
	}

	got, err := Circle(points)
	require.NoError(t, err)
	assert.InDelta(t, 0, got.Center.X, 1e-9)
	assert.InDelta(t, 0, got.Center.Y, 1e-9)
	assert.InDelta(t, 1, got.Radius, 1e-9)
}

func TestCircleNoisy(t *testing.T) {
	want := geometry.Circle{Center: geometry.Point2D{X: -10, Y: 4}, Radius: 7}

	// Alternate small inward and outward radial offsets.
	var points []geometry.Point2D
	for i := 0; i < 12; i++ {
		angle := 2 * math.Pi * float64(i) / 12
		r := want.Radius + 0.01*math.Pow(-1, float64(i))
		points = append(points, want.Center.Add(geometry.FromPolar(angle, r)))
	}

	got, err := Circle(points)
	require.NoError(t, err)
	assert.InDelta(t, want.Center.X, got.Center.X, 0.05)
	assert.InDelta(t, want.Center.Y, got.Center.Y, 0.05)
	assert.InDelta(t, want.Radius, got.Radius, 0.05)
}

func TestCircleTooFewPoints(t *testing.T) {
	_, err := Circle(nil)
	assert.Error(t, err)

	_, err = Circle([]geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
}

func TestCircleCollinear(t *testing.T) {
	points := []geometry.Point2D{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 3, Y: 3},
	}

	_, err := Circle(points)
	assert.Error(t, err)
}

package symmetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"stadium-editor/internal/sketch"
	"stadium-editor/pkg/geometry"
)

func TestConstraintAxesNoMirror(t *testing.T) {
	axes := ConstraintAxes(sketch.MirrorConfig{})

	assert.Len(t, axes, 2)
	assert.InDelta(t, 0, axes[0], 1e-9)
	assert.InDelta(t, math.Pi/2, axes[1], 1e-9)
}

func TestConstraintAxesTwoPlanes(t *testing.T) {
	axes := ConstraintAxes(sketch.MirrorConfig{PlaneCount: 2})

	// Cardinals coincide with the planes; the bisectors add the diagonals.
	expected := []float64{0, math.Pi / 4, math.Pi / 2, 3 * math.Pi / 4}
	assert.Len(t, axes, len(expected))
	for i, want := range expected {
		assert.InDelta(t, want, axes[i], 1e-9)
	}
}

func TestConstraintAxesSeamDedup(t *testing.T) {
	// A start angle just below pi folds a plane onto the 0 axis.
	axes := ConstraintAxes(sketch.MirrorConfig{PlaneCount: 1, StartAngle: math.Pi - 1e-5})

	for i := 1; i < len(axes); i++ {
		assert.Greater(t, axes[i]-axes[i-1], 0.001)
	}
	// No member may be the same line as axis 0 through the pi seam.
	last := axes[len(axes)-1]
	assert.Greater(t, math.Pi-last+axes[0], 0.001)
}

func TestConstraintAxesSorted(t *testing.T) {
	axes := ConstraintAxes(sketch.MirrorConfig{PlaneCount: 5, StartAngle: 0.3})
	for i := 1; i < len(axes); i++ {
		assert.Greater(t, axes[i], axes[i-1])
		assert.GreaterOrEqual(t, axes[i], 0.0)
		assert.Less(t, axes[i], math.Pi)
	}
}

func TestConstrainToNearestAxis(t *testing.T) {
	cardinals := ConstraintAxes(sketch.MirrorConfig{})

	// A drag nearly along x collapses onto x.
	got := ConstrainToNearestAxis(geometry.Point2D{X: 3, Y: 0.2}, cardinals)
	assert.InDelta(t, 3, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)

	// A drag nearly along y collapses onto y.
	got = ConstrainToNearestAxis(geometry.Point2D{X: -0.1, Y: 5}, cardinals)
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 5, got.Y, 1e-9)

	// Negative x direction snaps through the pi seam.
	got = ConstrainToNearestAxis(geometry.Point2D{X: -4, Y: 0.1}, cardinals)
	assert.InDelta(t, -4, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
}

func TestConstrainToNearestAxisDiagonal(t *testing.T) {
	axes := ConstraintAxes(sketch.MirrorConfig{PlaneCount: 2})

	// Projection onto the pi/4 diagonal.
	got := ConstrainToNearestAxis(geometry.Point2D{X: 1, Y: 0.9}, axes)
	want := (1 + 0.9) / 2
	assert.InDelta(t, want, got.X, 1e-9)
	assert.InDelta(t, want, got.Y, 1e-9)
}

func TestConstrainToNearestAxisEdgeCases(t *testing.T) {
	axes := ConstraintAxes(sketch.MirrorConfig{})

	zero := ConstrainToNearestAxis(geometry.Point2D{}, axes)
	assert.Equal(t, geometry.Point2D{}, zero)

	free := ConstrainToNearestAxis(geometry.Point2D{X: 1, Y: 2}, nil)
	assert.Equal(t, geometry.Point2D{X: 1, Y: 2}, free)

	// An axis-aligned drag is unchanged.
	exact := ConstrainToNearestAxis(geometry.Point2D{X: 7, Y: 0}, axes)
	assert.InDelta(t, 7, exact.X, 1e-9)
	assert.InDelta(t, 0, exact.Y, 1e-9)
}

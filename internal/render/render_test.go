package render

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stadium-editor/internal/hull"
	"stadium-editor/internal/sketch"
	"stadium-editor/pkg/geometry"
)

func stadiumPath(t *testing.T) hull.Path {
	t.Helper()
	discs := []sketch.Disc{
		{ID: "a", Center: geometry.Point2D{X: 0, Y: 0}, Radius: 2},
		{ID: "b", Center: geometry.Point2D{X: 10, Y: 0}, Radius: 2},
	}
	p := hull.ComputeTangentHull(discs, []string{"a", "b"},
		sketch.PathOptions{Closed: true}, sketch.MirrorConfig{})
	require.False(t, p.Empty())
	return p
}

func TestBoundsOfStadium(t *testing.T) {
	bounds := BoundsOf(stadiumPath(t))

	// The caps bulge past the tangent endpoints, so the bounds must
	// include the arc extremes, not just segment endpoints.
	assert.InDelta(t, -2, bounds.X, 1e-9)
	assert.InDelta(t, -2, bounds.Y, 1e-9)
	assert.InDelta(t, 14, bounds.Width, 1e-9)
	assert.InDelta(t, 4, bounds.Height, 1e-9)
}

func TestBoundsOfBezier(t *testing.T) {
	// A symmetric bump: the curve's peak lies between the endpoints.
	b := hull.Bezier{
		From: geometry.Point2D{X: 0, Y: 0},
		CP1:  geometry.Point2D{X: 2, Y: 4},
		CP2:  geometry.Point2D{X: 4, Y: 4},
		To:   geometry.Point2D{X: 6, Y: 0},
	}
	bounds := BoundsOf(hull.Path{Segments: []hull.Segment{b}})

	assert.InDelta(t, 0, bounds.X, 1e-9)
	assert.InDelta(t, 6, bounds.Width, 1e-9)
	assert.Greater(t, bounds.Height, 2.5)
	assert.Less(t, bounds.Height, 4.0)
}

func TestBoundsOfEmpty(t *testing.T) {
	assert.Equal(t, geometry.Rect{}, BoundsOf(hull.Path{}))
}

func TestFlattenContinuity(t *testing.T) {
	p := stadiumPath(t)
	pts := Flatten(p, 0.1)
	require.Greater(t, len(pts), 8)

	// Consecutive points are distinct; straight runs stay single chords.
	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i-1].Distance(pts[i]), 0.0)
	}

	// Closed path: the polyline returns to its start.
	assert.InDelta(t, pts[0].X, pts[len(pts)-1].X, 1e-6)
	assert.InDelta(t, pts[0].Y, pts[len(pts)-1].Y, 1e-6)
}

func TestFlattenLengthConverges(t *testing.T) {
	p := stadiumPath(t)

	var polyLen float64
	pts := Flatten(p, 0.01)
	for i := 1; i < len(pts); i++ {
		polyLen += pts[i-1].Distance(pts[i])
	}

	// The polyline length approaches the analytic 20 + 4*pi from below.
	want := 20 + 4*math.Pi
	assert.Less(t, polyLen, want+1e-9)
	assert.InDelta(t, want, polyLen, 0.1)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Nil(t, Flatten(hull.Path{}, 0.1))
}

func TestPathData(t *testing.T) {
	d := PathData(stadiumPath(t))

	assert.True(t, strings.HasPrefix(d, "M "))
	assert.Contains(t, d, " L ")
	assert.Contains(t, d, " A ")

	// Two half-turn caps produce two large-arc commands.
	assert.Equal(t, 2, strings.Count(d, " A "))

	assert.Equal(t, "", PathData(hull.Path{}))
}

func TestPathDataBezier(t *testing.T) {
	p := hull.Path{Segments: []hull.Segment{
		hull.Bezier{
			From: geometry.Point2D{X: 0, Y: 0},
			CP1:  geometry.Point2D{X: 1, Y: 1},
			CP2:  geometry.Point2D{X: 2, Y: 1},
			To:   geometry.Point2D{X: 3, Y: 0},
		},
	}}

	d := PathData(p)
	assert.Equal(t, "M 0 0 C 1 1 2 1 3 0", d)
}

func TestWriteSVGDocument(t *testing.T) {
	var sb strings.Builder
	err := WriteSVGDocument(&sb, stadiumPath(t), 0.5)
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "viewBox=")
	assert.Contains(t, out, `stroke-width="0.5"`)
	assert.Contains(t, out, "<path d=\"M ")
}

func TestFnum(t *testing.T) {
	assert.Equal(t, "1.5", fnum(1.5))
	assert.Equal(t, "2", fnum(2.0000))
	assert.Equal(t, "0", fnum(0))
	assert.Equal(t, "0", fnum(-0.00001))
	assert.Equal(t, "-3.25", fnum(-3.25))
}

func TestRasterizeFit(t *testing.T) {
	style := Style{
		Stroke:      color.RGBA{R: 10, G: 20, B: 30, A: 255},
		StrokeWidth: 0.5,
	}
	img := RasterizeFit(stadiumPath(t), style, 200, 100)

	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 100, img.Bounds().Dy())

	painted := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 100)
}

func TestRasterizeEmptyPath(t *testing.T) {
	img := Rasterize(hull.Path{}, Style{}, geometry.Identity(), 10, 10)
	require.NotNil(t, img)

	for i := range img.Pix {
		assert.Zero(t, img.Pix[i])
	}
}

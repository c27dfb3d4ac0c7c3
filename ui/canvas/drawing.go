package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"

	"stadium-editor/internal/render"
	"stadium-editor/internal/symmetry"
	"stadium-editor/pkg/geometry"
)

var (
	colorBackground = color.RGBA{R: 250, G: 250, B: 248, A: 255}
	colorAxis       = color.RGBA{R: 215, G: 220, B: 230, A: 255}
	colorDisc       = color.RGBA{R: 70, G: 110, B: 190, A: 255}
	colorImage      = color.RGBA{R: 170, G: 185, B: 210, A: 255}
	colorSelected   = color.RGBA{R: 235, G: 140, B: 40, A: 255}
	colorOutline    = color.RGBA{R: 25, G: 25, B: 30, A: 255}
	colorFitPoint   = color.RGBA{R: 190, G: 50, B: 60, A: 255}
)

// draw is the raster drawing function.
func (sc *SketchCanvas) draw(w, h int) image.Image {
	sc.size = fyne.NewSize(float32(w), float32(h))

	output := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(output, output.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	if w == 0 || h == 0 {
		return output
	}

	view := sc.viewTransform()

	sc.drawAxes(output, view, w, h)
	sc.drawDiscs(output, view)

	path := sc.state.Path()
	if !path.Empty() {
		width := sc.state.Settings().StrokeWidth * sc.zoom
		if width < 1 {
			width = 1
		}
		render.DrawPath(output, path, render.Style{Stroke: colorOutline, StrokeWidth: width}, view)
	}

	sc.drawFitPoints(output, view)
	return output
}

// drawAxes draws the snap axes as guide lines through the origin, spanning
// the visible area.
func (sc *SketchCanvas) drawAxes(dst *image.RGBA, view geometry.AffineTransform, w, h int) {
	// Long enough to cross any view: the model-space half diagonal.
	reach := float64(w+h)/sc.zoom + sc.center.Norm()

	for _, angle := range symmetry.ConstraintAxes(sc.state.Mirror()) {
		dir := geometry.FromPolar(angle, reach)
		render.DrawLine(dst, dir.Scale(-1), dir, 1, colorAxis, view)
	}
}

// drawDiscs draws user discs, their mirror images, and center markers.
func (sc *SketchCanvas) drawDiscs(dst *image.RGBA, view geometry.AffineTransform) {
	selected := sc.state.Selected()

	for _, d := range symmetry.Expand(sc.state.Discs(), sc.state.Mirror()) {
		col := colorDisc
		switch {
		case d.IsImage():
			col = colorImage
		case d.ID == selected:
			col = colorSelected
		}

		style := render.Style{Stroke: col, StrokeWidth: 1.5}
		render.StrokeCircle(dst, d.Circle(), style, view)

		c := view.Apply(d.Center)
		cross := 3.0
		render.StrokePolyline(dst, []geometry.Point2D{
			{X: c.X - cross, Y: c.Y}, {X: c.X + cross, Y: c.Y},
		}, 1, col)
		render.StrokePolyline(dst, []geometry.Point2D{
			{X: c.X, Y: c.Y - cross}, {X: c.X, Y: c.Y + cross},
		}, 1, col)
	}
}

// drawFitPoints draws the points collected for the circle-fit tool.
func (sc *SketchCanvas) drawFitPoints(dst *image.RGBA, view geometry.AffineTransform) {
	for _, p := range sc.fitPoints {
		c := view.Apply(p)
		render.StrokePolyline(dst, []geometry.Point2D{
			{X: c.X - 2, Y: c.Y - 2}, {X: c.X + 2, Y: c.Y - 2},
			{X: c.X + 2, Y: c.Y + 2}, {X: c.X - 2, Y: c.Y + 2},
			{X: c.X - 2, Y: c.Y - 2},
		}, 2, colorFitPoint)
	}
}

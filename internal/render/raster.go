package render

import (
	"image"
	"image/color"
	"math"

	"stadium-editor/internal/hull"
	"stadium-editor/pkg/geometry"

	"golang.org/x/image/vector"
)

// Style controls how a path is drawn onto a raster.
type Style struct {
	Stroke      color.RGBA
	StrokeWidth float64
	Fill        color.RGBA // zero alpha disables filling
}

// Rasterize draws a path into a fresh RGBA image of the given size, after
// applying the view transform (model to pixel coordinates).
func Rasterize(p hull.Path, style Style, view geometry.AffineTransform, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	DrawPath(img, p, style, view)
	return img
}

// RasterizeFit draws a path into a fresh image with a view transform
// computed to fit the path's bounds, centered with a small margin. The
// model's y axis points up, so the vertical scale is negated.
func RasterizeFit(p hull.Path, style Style, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	bounds := BoundsOf(p).Grow(style.StrokeWidth)
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return img
	}

	scale := math.Min(
		float64(width)*0.95/bounds.Width,
		float64(height)*0.95/bounds.Height)
	center := bounds.Center()

	view := geometry.Translation(float64(width)/2, float64(height)/2).
		Compose(geometry.Scaling(scale, -scale)).
		Compose(geometry.Translation(-center.X, -center.Y))

	// Stroke width is given in model units.
	scaled := style
	scaled.StrokeWidth = style.StrokeWidth * scale

	DrawPath(img, p, scaled, view)
	return img
}

// DrawPath draws a path onto an existing image.
func DrawPath(dst *image.RGBA, p hull.Path, style Style, view geometry.AffineTransform) {
	pts := Flatten(p, DefaultTolerance)
	if len(pts) < 2 {
		return
	}

	mapped := make([]geometry.Point2D, len(pts))
	for i, pt := range pts {
		mapped[i] = view.Apply(pt)
	}

	if style.Fill.A > 0 {
		fillPolygon(dst, mapped, style.Fill)
	}
	if style.Stroke.A > 0 && style.StrokeWidth > 0 {
		StrokePolyline(dst, mapped, style.StrokeWidth, style.Stroke)
	}
}

// StrokeCircle draws a circle outline onto an image through the view
// transform.
func StrokeCircle(dst *image.RGBA, c geometry.Circle, style Style, view geometry.AffineTransform) {
	steps := arcSteps(2*math.Pi, c.Radius, DefaultTolerance/2)
	if steps < 16 {
		steps = 16
	}
	pts := make([]geometry.Point2D, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		pts = append(pts, view.Apply(c.PointAt(angle)))
	}
	if style.Fill.A > 0 {
		fillPolygon(dst, pts, style.Fill)
	}
	if style.Stroke.A > 0 && style.StrokeWidth > 0 {
		StrokePolyline(dst, pts, style.StrokeWidth, style.Stroke)
	}
}

// fillPolygon fills the polygon described by the points.
func fillPolygon(dst *image.RGBA, pts []geometry.Point2D, col color.RGBA) {
	bounds := dst.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(dst, bounds, image.NewUniform(col), image.Point{})
}

// StrokePolyline strokes a polyline with the given width by filling one
// quad per chord plus a square at every joint.
func StrokePolyline(dst *image.RGBA, pts []geometry.Point2D, width float64, col color.RGBA) {
	if len(pts) < 2 {
		return
	}

	bounds := dst.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	half := width / 2

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a)
		if d.Norm() == 0 {
			continue
		}
		n := geometry.Point2D{X: -d.Y, Y: d.X}.Normalize().Scale(half)
		addQuad(r, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	}
	for _, p := range pts {
		addQuad(r,
			geometry.Point2D{X: p.X - half, Y: p.Y - half},
			geometry.Point2D{X: p.X + half, Y: p.Y - half},
			geometry.Point2D{X: p.X + half, Y: p.Y + half},
			geometry.Point2D{X: p.X - half, Y: p.Y + half})
	}

	r.Draw(dst, bounds, image.NewUniform(col), image.Point{})
}

func addQuad(r *vector.Rasterizer, a, b, c, d geometry.Point2D) {
	r.MoveTo(float32(a.X), float32(a.Y))
	r.LineTo(float32(b.X), float32(b.Y))
	r.LineTo(float32(c.X), float32(c.Y))
	r.LineTo(float32(d.X), float32(d.Y))
	r.ClosePath()
}

// DrawLine strokes a single straight line through the view transform.
func DrawLine(dst *image.RGBA, a, b geometry.Point2D, width float64, col color.RGBA, view geometry.AffineTransform) {
	StrokePolyline(dst, []geometry.Point2D{view.Apply(a), view.Apply(b)}, width, col)
}

// Package canvas provides the sketch canvas with pan, zoom, and disc editing.
package canvas

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"stadium-editor/internal/app"
	"stadium-editor/internal/symmetry"
	"stadium-editor/pkg/geometry"
)

const (
	minZoom  = 0.1
	maxZoom  = 50.0
	zoomStep = 1.25

	// hitSlop is the extra pick distance around a disc edge, in pixels.
	hitSlop = 6.0
)

// Tool represents the current interaction tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolAddDisc
	ToolFitPoints
)

// SketchCanvas displays the sketch and its computed outline, and handles
// panning, zooming, disc dragging, and point picking.
type SketchCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	zoom   float64
	center geometry.Point2D // model point shown at the view center
	size   fyne.Size        // last drawn size, for the view transform

	tool Tool

	// Drag state. dragID is empty while panning.
	dragging   bool
	dragID     string
	dragOrigin geometry.Point2D
	dragDelta  geometry.Point2D

	// Points collected for the circle-fit tool.
	fitPoints []geometry.Point2D

	onZoomChange func(zoom float64)
	onEdit       func()
}

// NewSketchCanvas creates a canvas bound to the application state.
func NewSketchCanvas(state *app.State) *SketchCanvas {
	sc := &SketchCanvas{
		state: state,
		zoom:  4.0,
	}
	sc.raster = fynecanvas.NewRaster(sc.draw)
	sc.raster.ScaleMode = fynecanvas.ImageScalePixels
	sc.ExtendBaseWidget(sc)
	return sc
}

// viewTransform maps model coordinates (y up) to pixel coordinates (y down).
func (sc *SketchCanvas) viewTransform() geometry.AffineTransform {
	return geometry.Translation(float64(sc.size.Width)/2, float64(sc.size.Height)/2).
		Compose(geometry.Scaling(sc.zoom, -sc.zoom)).
		Compose(geometry.Translation(-sc.center.X, -sc.center.Y))
}

// screenToModel converts a widget position to model coordinates.
func (sc *SketchCanvas) screenToModel(pos fyne.Position) geometry.Point2D {
	inv, ok := sc.viewTransform().Inverse()
	if !ok {
		return geometry.Point2D{}
	}
	return inv.Apply(geometry.Point2D{X: float64(pos.X), Y: float64(pos.Y)})
}

// hitDisc returns the ID of the topmost user disc at the position, or "".
func (sc *SketchCanvas) hitDisc(p geometry.Point2D) string {
	slop := hitSlop / sc.zoom
	discs := sc.state.Discs()
	for i := len(discs) - 1; i >= 0; i-- {
		if discs[i].Center.Distance(p) <= discs[i].Radius+slop {
			return discs[i].ID
		}
	}
	return ""
}

// SetTool sets the current interaction tool.
func (sc *SketchCanvas) SetTool(tool Tool) {
	sc.tool = tool
	if tool != ToolFitPoints {
		sc.fitPoints = nil
	}
	sc.Refresh()
}

// CurrentTool returns the active tool.
func (sc *SketchCanvas) CurrentTool() Tool {
	return sc.tool
}

// FitPoints returns the points collected with the circle-fit tool.
func (sc *SketchCanvas) FitPoints() []geometry.Point2D {
	return append([]geometry.Point2D(nil), sc.fitPoints...)
}

// ClearFitPoints discards collected fit points.
func (sc *SketchCanvas) ClearFitPoints() {
	sc.fitPoints = nil
	sc.Refresh()
}

// SetZoom sets the zoom level in pixels per model unit.
func (sc *SketchCanvas) SetZoom(zoom float64) {
	sc.zoom = geometry.Clamp(zoom, minZoom, maxZoom)
	sc.Refresh()
	if sc.onZoomChange != nil {
		sc.onZoomChange(sc.zoom)
	}
}

// Zoom returns the current zoom level.
func (sc *SketchCanvas) Zoom() float64 {
	return sc.zoom
}

// ZoomIn increases the zoom level.
func (sc *SketchCanvas) ZoomIn() {
	sc.SetZoom(sc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (sc *SketchCanvas) ZoomOut() {
	sc.SetZoom(sc.zoom / zoomStep)
}

// CenterOnOrigin pans the view back to the model origin.
func (sc *SketchCanvas) CenterOnOrigin() {
	sc.center = geometry.Point2D{}
	sc.Refresh()
}

// OnZoomChange sets a callback for zoom changes.
func (sc *SketchCanvas) OnZoomChange(callback func(zoom float64)) {
	sc.onZoomChange = callback
}

// OnEdit sets a callback fired after any canvas-initiated sketch edit.
func (sc *SketchCanvas) OnEdit(callback func()) {
	sc.onEdit = callback
}

func (sc *SketchCanvas) edited() {
	if sc.onEdit != nil {
		sc.onEdit()
	}
}

// Scrolled zooms with the mouse wheel.
func (sc *SketchCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		sc.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		sc.ZoomOut()
	}
}

// Dragged moves the grabbed disc, or pans the view when the drag started
// on empty space.
func (sc *SketchCanvas) Dragged(ev *fyne.DragEvent) {
	if !sc.dragging {
		sc.dragging = true
		start := fyne.Position{X: ev.Position.X - ev.Dragged.DX, Y: ev.Position.Y - ev.Dragged.DY}
		sc.dragID = ""
		sc.dragDelta = geometry.Point2D{}
		if sc.tool == ToolSelect {
			if id := sc.hitDisc(sc.screenToModel(start)); id != "" {
				sc.dragID = id
				if d, ok := sc.state.Disc(id); ok {
					sc.dragOrigin = d.Center
				}
				sc.state.Select(id)
			}
		}
	}

	step := geometry.Point2D{
		X: float64(ev.Dragged.DX) / sc.zoom,
		Y: -float64(ev.Dragged.DY) / sc.zoom,
	}

	if sc.dragID == "" {
		sc.center = sc.center.Sub(step)
		sc.Refresh()
		return
	}

	sc.dragDelta = sc.dragDelta.Add(step)
	target := sc.dragOrigin.Add(sc.constrainedDelta())
	if d, ok := sc.state.Disc(sc.dragID); ok {
		sc.state.MoveDisc(sc.dragID, target.Sub(d.Center))
	}
	sc.edited()
}

// DragEnd finishes the current drag.
func (sc *SketchCanvas) DragEnd() {
	sc.dragging = false
	sc.dragID = ""
}

// constrainedDelta applies axis snapping to the accumulated drag vector.
func (sc *SketchCanvas) constrainedDelta() geometry.Point2D {
	if !sc.state.Settings().SnapToAxes {
		return sc.dragDelta
	}
	axes := symmetry.ConstraintAxes(sc.state.Mirror())
	return symmetry.ConstrainToNearestAxis(sc.dragDelta, axes)
}

// Tapped selects, adds a disc, or collects a fit point depending on the tool.
func (sc *SketchCanvas) Tapped(ev *fyne.PointEvent) {
	p := sc.screenToModel(ev.Position)

	switch sc.tool {
	case ToolSelect:
		sc.state.Select(sc.hitDisc(p))
	case ToolAddDisc:
		sc.state.AddDisc(p, sc.state.Settings().DefaultRadius)
		sc.edited()
	case ToolFitPoints:
		sc.fitPoints = append(sc.fitPoints, p)
	}
	sc.Refresh()
}

// TappedSecondary removes the disc under the cursor.
func (sc *SketchCanvas) TappedSecondary(ev *fyne.PointEvent) {
	if id := sc.hitDisc(sc.screenToModel(ev.Position)); id != "" {
		sc.state.RemoveDisc(id)
		sc.edited()
		sc.Refresh()
	}
}

// Refresh redraws the canvas.
func (sc *SketchCanvas) Refresh() {
	sc.raster.Refresh()
	sc.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (sc *SketchCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &sketchCanvasRenderer{canvas: sc}
}

type sketchCanvasRenderer struct {
	canvas *SketchCanvas
}

func (r *sketchCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *sketchCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func (r *sketchCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *sketchCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *sketchCanvasRenderer) Destroy() {}

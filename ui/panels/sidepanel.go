// Package panels provides UI panels for the application.
package panels

import (
	"fmt"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"stadium-editor/internal/app"
	"stadium-editor/internal/sketch"
	"stadium-editor/ui/canvas"
)

const degToRad = math.Pi / 180

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	canvas    *canvas.SketchCanvas
	container *container.AppTabs

	pathPanel *PathPanel
	discPanel *DiscPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, cvs *canvas.SketchCanvas) *SidePanel {
	sp := &SidePanel{
		state:  state,
		canvas: cvs,
	}

	sp.pathPanel = NewPathPanel(state, cvs)
	sp.discPanel = NewDiscPanel(state, cvs)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Path", sp.pathPanel.Container()),
		container.NewTabItem("Disc", sp.discPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Sync refreshes all panel widgets from state.
func (sp *SidePanel) Sync() {
	sp.pathPanel.Sync()
	sp.discPanel.Sync()
}

// SyncSelection refreshes only the selection-dependent widgets.
func (sp *SidePanel) SyncSelection() {
	sp.discPanel.Sync()
}

// PathPanel edits the path options and mirror configuration.
type PathPanel struct {
	state     *app.State
	canvas    *canvas.SketchCanvas
	container fyne.CanvasObject

	closedCheck   *widget.Check
	useStartCheck *widget.Check
	useEndCheck   *widget.Check
	stretchSlider *widget.Slider
	stretchLabel  *widget.Label

	planeSelect     *widget.Select
	startAngleEntry *widget.Entry
	snapCheck       *widget.Check

	outlineLabel *widget.Label

	syncing bool
}

// NewPathPanel creates the path options panel.
func NewPathPanel(state *app.State, cvs *canvas.SketchCanvas) *PathPanel {
	pp := &PathPanel{
		state:  state,
		canvas: cvs,
	}

	pp.outlineLabel = widget.NewLabel("")
	pp.outlineLabel.Wrapping = fyne.TextWrapWord

	pp.closedCheck = widget.NewCheck("Closed loop", func(on bool) {
		pp.updateOptions(func(o *sketch.PathOptions) { o.Closed = on })
	})
	pp.useStartCheck = widget.NewCheck("Cap start", func(on bool) {
		pp.updateOptions(func(o *sketch.PathOptions) { o.UseStartPoint = on })
	})
	pp.useEndCheck = widget.NewCheck("Cap end", func(on bool) {
		pp.updateOptions(func(o *sketch.PathOptions) { o.UseEndPoint = on })
	})

	pp.stretchLabel = widget.NewLabel("Stretch: 0.00")
	pp.stretchSlider = widget.NewSlider(-1.0, 1.0)
	pp.stretchSlider.Step = 0.01
	pp.stretchSlider.OnChanged = func(v float64) {
		pp.stretchLabel.SetText(fmt.Sprintf("Stretch: %.2f", v))
		pp.updateOptions(func(o *sketch.PathOptions) { o.GlobalStretch = v })
	}

	pp.planeSelect = widget.NewSelect(
		[]string{"None", "1", "2", "3", "4", "5", "6", "8", "12"},
		func(selected string) {
			if pp.syncing {
				return
			}
			n := 0
			if selected != "None" {
				n, _ = strconv.Atoi(selected)
			}
			cfg := state.Mirror()
			cfg.PlaneCount = n
			pp.applyMirror(cfg)
		})

	pp.startAngleEntry = widget.NewEntry()
	pp.startAngleEntry.SetPlaceHolder("0.0")
	pp.startAngleEntry.OnSubmitted = func(text string) {
		if pp.syncing {
			return
		}
		deg, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return
		}
		cfg := state.Mirror()
		cfg.StartAngle = deg * degToRad
		pp.applyMirror(cfg)
	}

	pp.snapCheck = widget.NewCheck("Snap drags to axes", func(on bool) {
		if pp.syncing {
			return
		}
		settings := state.Settings()
		settings.SnapToAxes = on
		state.SetSettings(settings)
	})

	pp.container = container.NewVBox(
		widget.NewLabel("Topology"),
		pp.closedCheck,
		pp.useStartCheck,
		pp.useEndCheck,
		widget.NewSeparator(),
		pp.stretchLabel,
		pp.stretchSlider,
		widget.NewSeparator(),
		widget.NewLabel("Mirror planes"),
		pp.planeSelect,
		widget.NewLabel("Start angle (degrees)"),
		pp.startAngleEntry,
		pp.snapCheck,
		widget.NewSeparator(),
		widget.NewLabel("Outline"),
		pp.outlineLabel,
	)

	pp.Sync()
	return pp
}

func (pp *PathPanel) updateOptions(mutate func(*sketch.PathOptions)) {
	if pp.syncing {
		return
	}
	opts := pp.state.Options()
	mutate(&opts)
	pp.state.SetOptions(opts)
	pp.refreshOutlineInfo()
	pp.canvas.Refresh()
}

func (pp *PathPanel) applyMirror(cfg sketch.MirrorConfig) {
	pp.state.SetMirror(cfg)
	pp.refreshOutlineInfo()
	pp.canvas.Refresh()
}

// Container returns the panel container.
func (pp *PathPanel) Container() fyne.CanvasObject {
	return pp.container
}

// Sync refreshes widgets from state without feeding changes back.
func (pp *PathPanel) Sync() {
	pp.syncing = true
	opts := pp.state.Options()
	pp.closedCheck.SetChecked(opts.Closed)
	pp.useStartCheck.SetChecked(opts.UseStartPoint)
	pp.useEndCheck.SetChecked(opts.UseEndPoint)
	pp.stretchSlider.SetValue(opts.GlobalStretch)
	pp.stretchLabel.SetText(fmt.Sprintf("Stretch: %.2f", opts.GlobalStretch))

	cfg := pp.state.Mirror()
	if cfg.PlaneCount == 0 {
		pp.planeSelect.SetSelected("None")
	} else {
		pp.planeSelect.SetSelected(strconv.Itoa(cfg.PlaneCount))
	}
	pp.startAngleEntry.SetText(fmt.Sprintf("%.1f", cfg.StartAngle/degToRad))

	pp.snapCheck.SetChecked(pp.state.Settings().SnapToAxes)
	pp.syncing = false

	pp.refreshOutlineInfo()
}

// refreshOutlineInfo updates the segment count and length readout.
func (pp *PathPanel) refreshOutlineInfo() {
	path := pp.state.Path()
	if path.Empty() {
		pp.outlineLabel.SetText("No outline (needs two discs)")
		return
	}
	pp.outlineLabel.SetText(fmt.Sprintf("%d segments, length %.2f",
		len(path.Segments), path.TotalLength()))
}

// DiscPanel edits the selected disc.
type DiscPanel struct {
	state     *app.State
	canvas    *canvas.SketchCanvas
	container fyne.CanvasObject

	idLabel       *widget.Label
	xEntry        *widget.Entry
	yEntry        *widget.Entry
	radiusEntry   *widget.Entry
	mirroredCheck *widget.Check
	removeButton  *widget.Button

	syncing bool
}

// NewDiscPanel creates the selected-disc property panel.
func NewDiscPanel(state *app.State, cvs *canvas.SketchCanvas) *DiscPanel {
	dp := &DiscPanel{
		state:  state,
		canvas: cvs,
	}

	dp.idLabel = widget.NewLabel("No disc selected")

	dp.xEntry = widget.NewEntry()
	dp.yEntry = widget.NewEntry()
	dp.radiusEntry = widget.NewEntry()

	dp.xEntry.OnSubmitted = func(string) { dp.applyPosition() }
	dp.yEntry.OnSubmitted = func(string) { dp.applyPosition() }
	dp.radiusEntry.OnSubmitted = func(text string) {
		if dp.syncing {
			return
		}
		id := state.Selected()
		if id == "" {
			return
		}
		if r, err := strconv.ParseFloat(text, 64); err == nil {
			state.SetRadius(id, r)
			cvs.Refresh()
		}
	}

	dp.mirroredCheck = widget.NewCheck("Mirrored", func(on bool) {
		if dp.syncing {
			return
		}
		if id := state.Selected(); id != "" {
			state.SetMirrored(id, on)
			cvs.Refresh()
		}
	})

	dp.removeButton = widget.NewButton("Remove Disc", func() {
		if id := state.Selected(); id != "" {
			state.RemoveDisc(id)
			cvs.Refresh()
		}
	})

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("X:"), dp.xEntry,
		widget.NewLabel("Y:"), dp.yEntry,
		widget.NewLabel("Radius:"), dp.radiusEntry,
	)

	dp.container = container.NewVBox(
		dp.idLabel,
		form,
		dp.mirroredCheck,
		dp.removeButton,
	)

	dp.Sync()
	return dp
}

func (dp *DiscPanel) applyPosition() {
	if dp.syncing {
		return
	}
	id := dp.state.Selected()
	if id == "" {
		return
	}
	d, ok := dp.state.Disc(id)
	if !ok {
		return
	}

	x, errX := strconv.ParseFloat(dp.xEntry.Text, 64)
	y, errY := strconv.ParseFloat(dp.yEntry.Text, 64)
	if errX != nil || errY != nil {
		return
	}

	target := d.Center
	target.X = x
	target.Y = y
	dp.state.MoveDisc(id, target.Sub(d.Center))
	dp.canvas.Refresh()
}

// Container returns the panel container.
func (dp *DiscPanel) Container() fyne.CanvasObject {
	return dp.container
}

// Sync refreshes widgets from the current selection.
func (dp *DiscPanel) Sync() {
	dp.syncing = true
	defer func() { dp.syncing = false }()

	id := dp.state.Selected()
	d, ok := dp.state.Disc(id)
	if !ok {
		dp.idLabel.SetText("No disc selected")
		dp.xEntry.SetText("")
		dp.yEntry.SetText("")
		dp.radiusEntry.SetText("")
		dp.mirroredCheck.SetChecked(false)
		return
	}

	dp.idLabel.SetText(d.ID)
	dp.xEntry.SetText(fmt.Sprintf("%.2f", d.Center.X))
	dp.yEntry.SetText(fmt.Sprintf("%.2f", d.Center.Y))
	dp.radiusEntry.SetText(fmt.Sprintf("%.2f", d.Radius))
	dp.mirroredCheck.SetChecked(d.Mirrored)
}

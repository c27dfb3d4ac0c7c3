// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"stadium-editor/internal/app"
	"stadium-editor/internal/fit"
	"stadium-editor/internal/render"
	"stadium-editor/internal/version"
	"stadium-editor/ui/canvas"
	"stadium-editor/ui/panels"
	"stadium-editor/ui/prefs"
)

const (
	prefKeyLastDir = "lastDirectory"

	exportImageSize = 1024
)

var exportStrokeColor = color.RGBA{R: 25, G: 25, B: 30, A: 255}

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.SketchCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label
	zoomLabel *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Stadium Editor")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	win.Resize(fyne.NewSize(1100, 750))
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewSketchCanvas(mw.state)
	mw.sidePanel = panels.NewSidePanel(mw.state, mw.canvas)

	mw.statusBar = widget.NewLabel("Ready")
	mw.zoomLabel = widget.NewLabel("")
	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.zoomLabel.SetText(fmt.Sprintf("%.0f px/unit", zoom))
	})

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar, // top
		nil, nil, nil,
		mw.canvas,
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(container.NewHBox(mw.statusBar, mw.zoomLabel)),
		nil, nil,
		split,
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with tool and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	tools := widget.NewRadioGroup([]string{"Select", "Add Disc", "Fit Points"}, func(selected string) {
		switch selected {
		case "Add Disc":
			mw.canvas.SetTool(canvas.ToolAddDisc)
			mw.updateStatus("Click to place discs, right-click to remove")
		case "Fit Points":
			mw.canvas.SetTool(canvas.ToolFitPoints)
			mw.updateStatus("Click three or more points, then Tools > Fit Circle")
		default:
			mw.canvas.SetTool(canvas.ToolSelect)
			mw.updateStatus("Drag discs to move, drag empty space to pan")
		}
	})
	tools.Horizontal = true
	tools.SetSelected("Select")

	zoomOutBtn := widget.NewButton("-", mw.canvas.ZoomOut)
	zoomInBtn := widget.NewButton("+", mw.canvas.ZoomIn)
	originBtn := widget.NewButton("Origin", mw.canvas.CenterOnOrigin)

	return container.NewHBox(
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		originBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", mw.onNewProject),
		fyne.NewMenuItem("Open Project...", mw.onOpenProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Project", mw.onSaveProject),
		fyne.NewMenuItem("Save Project As...", mw.onSaveProjectAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export SVG...", mw.onExportSVG),
		fyne.NewMenuItem("Export PNG...", mw.onExportPNG),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItem("Center on Origin", mw.canvas.CenterOnOrigin),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Fit Circle to Points", mw.onFitCircle),
		fyne.NewMenuItem("Clear Fit Points", mw.canvas.ClearFitPoints),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, toolsMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventProjectLoaded, func(data interface{}) {
		if path, ok := data.(string); ok && path != "" {
			mw.SetTitle("Stadium Editor - " + filepath.Base(path))
			mw.updateStatus("Project loaded: " + path)
		}
		mw.sidePanel.Sync()
		mw.canvas.Refresh()
	})

	mw.state.On(app.EventProjectSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle("Stadium Editor - " + filepath.Base(path))
			mw.updateStatus("Saved: " + path)
		}
	})

	mw.state.On(app.EventSelectionChanged, func(interface{}) {
		mw.sidePanel.SyncSelection()
		mw.canvas.Refresh()
	})

	mw.state.On(app.EventSketchChanged, func(interface{}) {
		mw.sidePanel.SyncSelection()
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		if modified, ok := data.(bool); ok && modified {
			title := mw.Title()
			if len(title) > 0 && title[len(title)-1] != '*' {
				mw.SetTitle(title + " *")
			}
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
	_ = mw.prefs.Save()
}

// Menu action handlers

func (mw *MainWindow) onNewProject() {
	mw.state.Reset()
	mw.SetTitle("Stadium Editor")
	mw.updateStatus("New project")
}

func (mw *MainWindow) onOpenProject() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.LoadProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".stadium"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveProject() {
	if mw.state.ProjectPath == "" {
		mw.onSaveProjectAs()
		return
	}
	if err := mw.state.SaveProject(mw.state.ProjectPath); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSaveProjectAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".stadium" {
			path += ".stadium"
		}
		mw.saveLastDir(path)
		if err := mw.state.SaveProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("project.stadium")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportSVG() {
	path := mw.state.Path()
	if path.Empty() {
		mw.updateStatus("Nothing to export")
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := render.WriteSVGDocument(writer, path, mw.state.Settings().StrokeWidth); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported SVG: " + writer.URI().Path())
	}, mw.Window)
	fd.SetFileName("outline.svg")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportPNG() {
	path := mw.state.Path()
	if path.Empty() {
		mw.updateStatus("Nothing to export")
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		outPath := writer.URI().Path()

		img := render.RasterizeFit(path, render.Style{
			Stroke:      exportStrokeColor,
			StrokeWidth: mw.state.Settings().StrokeWidth,
		}, exportImageSize, exportImageSize)

		f, err := os.Create(outPath)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported PNG: " + outPath)
	}, mw.Window)
	fd.SetFileName("outline.png")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onFitCircle() {
	points := mw.canvas.FitPoints()
	circle, err := fit.Circle(points)
	if err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}

	mw.state.AddDisc(circle.Center, circle.Radius)
	mw.canvas.ClearFitPoints()
	mw.canvas.SetTool(canvas.ToolSelect)
	mw.canvas.Refresh()
	mw.updateStatus(fmt.Sprintf("Fitted disc at (%.2f, %.2f) r=%.2f",
		circle.Center.X, circle.Center.Y, circle.Radius))
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Stadium Editor",
		fmt.Sprintf("Stadium Editor v%s\n\n"+
			"An editor for smooth tangent-hull outlines\n"+
			"threaded through circles.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/orthocad/archwire/internal/editor"
	"github.com/orthocad/archwire/pkg/analysis"
	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/stl"
	"github.com/orthocad/archwire/pkg/surface"
	"github.com/orthocad/archwire/pkg/viewer"
	"github.com/orthocad/archwire/pkg/watcher"
)

type App struct {
	window fyne.Window
	model  *stl.Model
	mesh   *surface.Mesh
	editor *editor.Editor
	viewer *viewer.ArchViewer
	watch  *watcher.ReloadWatcher

	scanFile  string
	moveIndex int // Path point pending relocation in edit mode, -1 when none

	statusLabel *widget.Label
	pathLabel   *widget.Label
	scanLabel   *widget.Label
	heightEntry *widget.Entry
}

func main() {
	a := app.New()
	w := a.NewWindow("Archwire - Wire Path Designer")

	ed, err := editor.New(editor.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appInstance := &App{
		window:    w,
		editor:    ed,
		moveIndex: -1,
	}

	if len(os.Args) > 1 {
		appInstance.loadScan(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1280, 840))
	w.ShowAndRun()

	if appInstance.watch != nil {
		appInstance.watch.Close()
	}
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to Archwire")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Open an arch scan (STL) to start designing a wire path")

	openButton := widget.NewButton("Open Arch Scan", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)
	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadScan(reader.URI().Path())
	}, a.window)
}

func (a *App) loadScan(filename string) {
	model, err := stl.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load arch scan: %w", err), a.window)
		return
	}

	a.model = model
	a.mesh = surface.NewMesh(model)
	a.editor.SetSurface(a.mesh)
	a.scanFile = filename
	a.watchScan(filename)
	a.setupMainUI()
}

// watchScan reloads the scan when the exporter rewrites it
func (a *App) watchScan(filename string) {
	if a.watch != nil {
		a.watch.Close()
		a.watch = nil
	}

	w, err := watcher.New(0)
	if err != nil {
		return
	}
	if err := w.Watch(filename, func(path string) {
		fyne.Do(func() {
			a.reloadScan(path)
		})
	}); err != nil {
		w.Close()
		return
	}
	w.Start()
	a.watch = w
}

func (a *App) reloadScan(filename string) {
	model, err := stl.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to reload arch scan: %w", err), a.window)
		return
	}
	a.model = model
	a.mesh = surface.NewMesh(model)
	a.editor.SetSurface(a.mesh)
	a.setupMainUI()
	a.setStatus("Scan reloaded from disk")
}

func (a *App) setupMainUI() {
	a.statusLabel = widget.NewLabel("Mode: idle")
	a.pathLabel = widget.NewLabel("Path: empty")
	a.scanLabel = widget.NewLabel("")
	a.heightEntry = widget.NewEntry()
	a.heightEntry.SetText("5.0")

	a.viewer = viewer.NewArchViewer(a.model)
	a.configurePicking()

	result := analysis.AnalyzeScan(a.model)
	a.scanLabel.SetText(fmt.Sprintf(
		"Scan: %s\nTriangles: %d\nSurface Area: %.2f mm²\nExtent: %.1f × %.1f × %.1f mm",
		a.model.Name,
		result.TriangleCount,
		result.SurfaceArea,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))

	modeButtons := container.NewVBox(
		widget.NewLabel("Mode:"),
		widget.NewButton("Place Plane", func() { a.switchMode(editor.ModePlacingPlane) }),
		widget.NewButton("Draw Points", func() { a.switchMode(editor.ModeDrawing) }),
		widget.NewButton("Edit Points", func() { a.switchMode(editor.ModeEditing) }),
		widget.NewButton("Pick Contacts", func() { a.switchMode(editor.ModeContactPicking) }),
		widget.NewButton("Loop Anchors", func() { a.switchMode(editor.ModeLoopAnchoring) }),
		widget.NewButton("Idle", func() { a.switchMode(editor.ModeIdle) }),
	)

	planeButtons := container.NewVBox(
		widget.NewLabel("Reference Plane:"),
		widget.NewButton("Confirm Plane", func() { a.run(a.editor.ConfirmPlane) }),
		widget.NewButton("Reset Plane", func() {
			a.editor.ResetPlane()
			a.refresh()
		}),
	)

	pathButtons := container.NewVBox(
		widget.NewLabel("Wire Path:"),
		widget.NewButton("Build Between Contacts", func() { a.run(a.editor.BuildPathBetweenContacts) }),
		widget.NewButton("Fit Parabola", func() { a.run(a.editor.FitParabola) }),
		widget.NewButton("Fit Conic", func() { a.run(a.editor.FitConic) }),
		widget.NewButton("Smooth", func() { a.run(a.editor.SmoothPath) }),
		container.NewBorder(nil, nil, widget.NewLabel("Loop height:"), nil, a.heightEntry),
		widget.NewButton("Insert U-Loop", func() { a.insertLoop() }),
		widget.NewButton("Undo", func() {
			a.editor.Undo()
			a.refresh()
		}),
		widget.NewButton("Clear Path", func() {
			a.editor.ClearPath()
			a.refresh()
		}),
	)

	fileButtons := container.NewVBox(
		widget.NewLabel("Design:"),
		widget.NewButton("Save Design", func() { a.saveDesign() }),
		widget.NewButton("Load Design", func() { a.loadDesign() }),
		widget.NewButton("Open Scan", func() { a.showFileDialog() }),
	)

	infoPanel := container.NewVBox(
		a.scanLabel,
		widget.NewSeparator(),
		a.statusLabel,
		a.pathLabel,
		widget.NewSeparator(),
		modeButtons,
		widget.NewSeparator(),
		planeButtons,
		widget.NewSeparator(),
		pathButtons,
		widget.NewSeparator(),
		fileButtons,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, a.viewer)
	a.window.SetContent(content)

	a.refresh()
	a.viewer.Render(900, 800)
}

// configurePicking wires viewer taps into the editor according to the
// active mode.
func (a *App) configurePicking() {
	a.viewer.OnPathPointPick = func(index int) bool {
		switch a.editor.Mode() {
		case editor.ModeLoopAnchoring:
			if err := a.editor.SelectAnchor(index); err != nil {
				a.setStatus(err.Error())
				return true
			}
			a.refresh()
			return true
		case editor.ModeEditing:
			a.moveIndex = index
			a.setStatus(fmt.Sprintf("Point %d selected, tap the surface to move it", index))
			return true
		}
		return false
	}

	a.viewer.OnContactPick = func(index int) bool {
		if a.editor.Mode() != editor.ModeContactPicking {
			return false
		}
		if err := a.editor.SelectContact(index); err != nil {
			a.setStatus(err.Error())
			return true
		}
		a.setStatus(fmt.Sprintf("Contact %d selected", index))
		return true
	}

	a.viewer.OnPickRay = func(origin, direction geometry.Vector3) {
		if a.editor.Mode() == editor.ModeEditing && a.moveIndex >= 0 {
			hit, ok := a.mesh.Raycast(origin, direction)
			if !ok {
				return
			}
			if err := a.editor.MovePoint(a.moveIndex, hit.Point); err != nil {
				a.setStatus(err.Error())
				return
			}
			a.moveIndex = -1
			a.refresh()
			return
		}
		if a.editor.PickRay(origin, direction) {
			a.refresh()
		}
	}
}

func (a *App) switchMode(mode editor.Mode) {
	a.moveIndex = -1
	if err := a.editor.SetMode(mode); err != nil {
		// Working modes require passing through idle first
		if idleErr := a.editor.SetMode(editor.ModeIdle); idleErr == nil {
			a.editor.SetMode(mode)
		}
	}
	a.refresh()
}

// run executes an editor operation and reports the outcome in the status bar
func (a *App) run(op func() error) {
	if err := op(); err != nil {
		a.setStatus(err.Error())
		return
	}
	a.refresh()
}

func (a *App) insertLoop() {
	height, err := strconv.ParseFloat(a.heightEntry.Text, 64)
	if err != nil {
		a.setStatus("Loop height must be a number")
		return
	}
	a.run(func() error { return a.editor.InsertLoop(height) })
}

func (a *App) saveDesign() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := a.editor.SaveDesign(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.setStatus(fmt.Sprintf("Design saved to %s", path))
	}, a.window)
}

func (a *App) loadDesign() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := a.editor.LoadDesign(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.refresh()
		a.setStatus(fmt.Sprintf("Design loaded from %s", path))
	}, a.window)
}

// refresh pushes the editor state into the viewer and the info labels
func (a *App) refresh() {
	a.viewer.SetPath(a.editor.Path())
	a.viewer.SetContacts(a.editor.Contacts())
	a.viewer.SetPlanePoints(a.editor.Plane().ControlPoints())
	a.viewer.SetSelected(a.editor.AnchorSelection())

	result := analysis.AnalyzePath(a.editor.Path())
	a.pathLabel.SetText(fmt.Sprintf(
		"Path: %d points, %.2f mm\nContacts: %d\nPlane: %s\nLast fit: %s",
		result.PointCount,
		result.WireLength,
		len(a.editor.Contacts()),
		a.editor.Plane().State(),
		a.editor.LastFitMethod(),
	))
	a.statusLabel.SetText(fmt.Sprintf("Mode: %s", a.editor.Mode()))
}

func (a *App) setStatus(message string) {
	a.statusLabel.SetText(fmt.Sprintf("Mode: %s | %s", a.editor.Mode(), message))
}

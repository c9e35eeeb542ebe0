package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PrimitiveBoard/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.RGB
	OnTapped func(state.RGB)
}

func newColorSwatch(c state.RGB, tapped func(state.RGB)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(toFyne(s.Color))
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbar holds the controls whose state has to follow the editor, such
// as the kind selector after Clear.
type toolbar struct {
	board   *BoardWidget
	win     fyne.Window
	kinds   *widget.RadioGroup
	current *canvas.Rectangle
}

// NewToolbar builds the kind selector, history and file actions, palette,
// stroke slider and viewport toggle for board.
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	t := &toolbar{board: board, win: win}
	ed := board.Editor()

	names := make([]string, len(state.Kinds))
	for i, k := range state.Kinds {
		names[i] = k.String()
	}
	t.kinds = widget.NewRadioGroup(names, func(s string) {
		k, _ := state.ParseKind(s)
		ed.SetKind(k)
	})
	t.kinds.Horizontal = true
	if k := ed.Kind(); k != state.KindNone {
		t.kinds.SetSelected(k.String())
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), ed.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), ed.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), t.clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { showLoadDialog(board, win) }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { showSaveDialog(board, win) }),
		widget.NewToolbarAction(theme.DownloadIcon(), func() { showExportDialog(board, win) }),
	)

	// --- Color Palette ---
	t.current = canvas.NewRectangle(toFyne(ed.Color()))
	t.current.SetMinSize(fyne.NewSize(32, 32))
	colorBox := container.NewHBox(
		newColorSwatch(state.Black, t.setColor),
		newColorSwatch(state.Red, t.setColor),
		newColorSwatch(state.Green, t.setColor),
		newColorSwatch(state.Blue, t.setColor),
		newColorSwatch(state.RGB{R: 255, G: 255}, t.setColor),
		widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.pickColor),
		t.current,
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.Step = 1
	strokeSlider.SetValue(float64(ed.StrokeWidth()))
	strokeSlider.OnChanged = func(val float64) {
		if err := ed.SetStrokeWidth(int(val)); err != nil {
			dialog.ShowError(err, win)
		}
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	viewportCheck := widget.NewCheck("Viewport", ed.SetViewportEnabled)
	viewportCheck.SetChecked(ed.ViewportEnabled())

	return container.NewVBox(
		container.NewHBox(widget.NewLabel("Shape:"), t.kinds, layout.NewSpacer(), tb),
		container.NewHBox(
			widget.NewLabel("Color:"),
			colorBox,
			widget.NewSeparator(),
			widget.NewLabel("Size:"),
			sliderContainer,
			widget.NewSeparator(),
			viewportCheck,
			layout.NewSpacer(),
		),
	)
}

func (t *toolbar) setColor(c state.RGB) {
	t.board.Editor().SetColor(c)
	t.current.FillColor = toFyne(c)
	t.current.Refresh()
}

func (t *toolbar) pickColor() {
	picker := dialog.NewColorPicker("Color", "Stroke color", func(c color.Color) {
		t.setColor(fromFyne(c))
	}, t.win)
	picker.Advanced = true
	picker.Show()
}

// clear empties the board and deselects the kind, like a fresh start.
func (t *toolbar) clear() {
	ed := t.board.Editor()
	ed.Clear()
	ed.SetKind(state.KindNone)
	t.kinds.SetSelected("")
}

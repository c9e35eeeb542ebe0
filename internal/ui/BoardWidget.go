package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PrimitiveBoard/internal/editor"
	"PrimitiveBoard/internal/logging"
)

// BoardWidget is the drawing surface. It forwards pointer events to the
// editor and repaints whenever the editor reports a change.
type BoardWidget struct {
	widget.BaseWidget

	ed        *editor.Editor
	statusBar *widget.Label

	// canvas size in board pixels; also the widget's minimum size
	width, height float32
	// ExportScale multiplies the resolution of raster exports.
	ExportScale float64

	dragging bool
	lastDrag fyne.Position
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget wires ed's callbacks to the widget. The status label
// shows the "(x, y) - KIND" line.
func NewBoardWidget(ed *editor.Editor, width, height int) *BoardWidget {
	b := &BoardWidget{
		ed:        ed,
		statusBar: widget.NewLabel(ed.Status()),
		width:     float32(width),
		height:    float32(height),

		ExportScale: 1,
	}
	ed.OnChange = b.Refresh
	ed.OnStatus = b.SetStatus
	b.ExtendBaseWidget(b)
	return b
}

// Editor returns the engine behind the widget.
func (b *BoardWidget) Editor() *editor.Editor { return b.ed }

// StatusBar returns the label the widget writes status text into.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ed.PointerDown(float64(e.Position.X), float64(e.Position.Y))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.dragging = false
	b.ed.PointerUp(float64(e.Position.X), float64(e.Position.Y))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.dragging = true
	b.lastDrag = e.Position
	b.ed.PointerDrag(float64(e.Position.X), float64(e.Position.Y))
}

// DragEnd finishes the gesture at the last drag position. Some drivers
// deliver no MouseUp once a drag has started; when they do, the second
// release is a no-op because the gesture is already idle.
func (b *BoardWidget) DragEnd() {
	if !b.dragging {
		return
	}
	b.dragging = false
	logging.For("ui").Debug("drag end", "x", b.lastDrag.X, "y", b.lastDrag.Y)
	b.ed.PointerUp(float64(b.lastDrag.X), float64(b.lastDrag.Y))
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.ed.PointerMove(float64(e.Position.X), float64(e.Position.Y))
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.ed.PointerMove(float64(e.Position.X), float64(e.Position.Y))
}

func (b *BoardWidget) MouseOut() {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}

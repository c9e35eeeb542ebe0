package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"PrimitiveBoard/internal/render"
	"PrimitiveBoard/internal/state"
)

// boardRenderer repaints the whole board into one raster on every refresh.
type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
	frame      *canvas.Rectangle
}

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(color.White),
		frame:      canvas.NewRectangle(color.Transparent),
	}
	r.raster = canvas.NewRaster(r.paint)
	r.frame.StrokeColor = color.NRGBA{R: 0, G: 0, B: 255, A: 96}
	r.frame.StrokeWidth = 1
	r.frame.Hide()
	return r
}

// paint renders the editor's current renderables at the device pixel size
// fyne asks for.
func (r *boardRenderer) paint(w, h int) image.Image {
	size := r.board.Size()
	scale := 1.0
	if size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}
	s := render.NewImageSurface(int(size.Width), int(size.Height), scale, nil)
	render.Draw(s, r.board.ed.Renderables(), r.board.ed.RenderOptions())
	return s.Img
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster, r.frame}
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
	r.layoutFrame()
}

// layoutFrame outlines the viewport rectangle while the viewport pass is on.
func (r *boardRenderer) layoutFrame() {
	o := r.board.ed.RenderOptions()
	if o.Viewport == nil {
		r.frame.Hide()
		return
	}
	v := o.Viewport.Viewport
	r.frame.Move(fyne.NewPos(float32(v.XMin), float32(v.YMin)))
	r.frame.Resize(fyne.NewSize(float32(v.Width()), float32(v.Height())))
	r.frame.Show()
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.board.width, r.board.height)
}

func (r *boardRenderer) Refresh() {
	r.layoutFrame()
	r.raster.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}

// toFyne converts a board color for fyne widgets.
func toFyne(c state.RGB) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// fromFyne drops alpha from a picked color.
func fromFyne(c color.Color) state.RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return state.RGB{R: n.R, G: n.G, B: n.B}
}

package export

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"PrimitiveBoard/internal/render"
	"PrimitiveBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// MMPerPixel is how many millimetres one board pixel takes on the page.
const MMPerPixel = 1.0 / 3

// PDFSurface plots onto a gofpdf page.
type PDFSurface struct {
	pdf   *gofpdf.Fpdf
	scale float64
}

// NewPDFSurface starts a one page document sized to a w x h board. The
// orientation stays "P" because gofpdf swaps the custom size for "L".
func NewPDFSurface(w, h int) *PDFSurface {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: float64(w) * MMPerPixel, Ht: float64(h) * MMPerPixel},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	return &PDFSurface{pdf: p, scale: MMPerPixel}
}

func rgb8(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

func (s *PDFSurface) stroke(width int, c color.Color) {
	if width < 1 {
		width = 1
	}
	s.pdf.SetDrawColor(rgb8(c))
	s.pdf.SetLineWidth(float64(width) * s.scale)
}

func (s *PDFSurface) Dot(x, y float64, diameter int, c color.Color) {
	if diameter < 1 {
		diameter = 1
	}
	s.pdf.SetFillColor(rgb8(c))
	s.pdf.Circle(x*s.scale, y*s.scale, float64(diameter)*s.scale/2, "F")
}

func (s *PDFSurface) Line(x1, y1, x2, y2 float64, width int, c color.Color) {
	s.stroke(width, c)
	s.pdf.Line(x1*s.scale, y1*s.scale, x2*s.scale, y2*s.scale)
}

func (s *PDFSurface) Circle(cx, cy, r float64, width int, c color.Color) {
	s.stroke(width, c)
	s.pdf.Circle(cx*s.scale, cy*s.scale, r*s.scale, "D")
}

// Output writes the finished document to w.
func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDF renders prims on a c.Width x c.Height page and writes it to w.
func WritePDF(w io.Writer, prims []state.Primitive, c Canvas, opts render.Options) error {
	s := NewPDFSurface(c.Width, c.Height)
	render.Draw(s, prims, opts)
	return s.Output(w)
}

// PDFFile is WritePDF into a newly created file.
func PDFFile(path string, prims []state.Primitive, c Canvas, opts render.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WritePDF(f, prims, c, opts)
}

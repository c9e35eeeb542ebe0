package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageSurface rasterizes onto an in-memory RGBA image. Board coordinates
// are multiplied by Scale before plotting.
type ImageSurface struct {
	Img   *image.RGBA
	Scale float64

	z *vector.Rasterizer
}

// NewImageSurface allocates a w x h board (before scaling) filled with bg.
func NewImageSurface(w, h int, scale float64, bg color.Color) *ImageSurface {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Ceil(float64(w) * scale))
	ph := int(math.Ceil(float64(h) * scale))
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return &ImageSurface{
		Img:   img,
		Scale: scale,
		z:     vector.NewRasterizer(pw, ph),
	}
}

// Image returns the backing image.
func (s *ImageSurface) Image() image.Image { return s.Img }

func (s *ImageSurface) fill(c color.Color, path func(z *vector.Rasterizer)) {
	b := s.Img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
	path(s.z)
	s.z.Draw(s.Img, b, image.NewUniform(c), image.Point{})
}

func (s *ImageSurface) stroke(width int) float64 {
	if width < 1 {
		width = 1
	}
	return float64(width) * s.Scale
}

// ring appends a closed polygon approximating a circle. Reversing the
// direction lets an inner ring cancel the coverage of an outer one.
func ring(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	n := int(r * 2)
	if n < 16 {
		n = 16
	}
	if n > 360 {
		n = 360
	}
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		x := float32(cx + r*math.Cos(a))
		y := float32(cy + r*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func (s *ImageSurface) Dot(x, y float64, diameter int, c color.Color) {
	r := s.stroke(diameter) / 2
	s.fill(c, func(z *vector.Rasterizer) {
		ring(z, x*s.Scale, y*s.Scale, r, false)
	})
}

func (s *ImageSurface) Line(x1, y1, x2, y2 float64, width int, c color.Color) {
	x1, y1, x2, y2 = x1*s.Scale, y1*s.Scale, x2*s.Scale, y2*s.Scale
	w := s.stroke(width)
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		s.fill(c, func(z *vector.Rasterizer) { ring(z, x1, y1, w/2, false) })
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	s.fill(c, func(z *vector.Rasterizer) {
		z.MoveTo(float32(x1+nx), float32(y1+ny))
		z.LineTo(float32(x2+nx), float32(y2+ny))
		z.LineTo(float32(x2-nx), float32(y2-ny))
		z.LineTo(float32(x1-nx), float32(y1-ny))
		z.ClosePath()
	})
	if w > 2 {
		// Round caps, filled separately so their winding never cancels
		// the body's.
		s.fill(c, func(z *vector.Rasterizer) { ring(z, x1, y1, w/2, false) })
		s.fill(c, func(z *vector.Rasterizer) { ring(z, x2, y2, w/2, false) })
	}
}

func (s *ImageSurface) Circle(cx, cy, r float64, width int, c color.Color) {
	cx, cy, r = cx*s.Scale, cy*s.Scale, r*s.Scale
	half := s.stroke(width) / 2
	s.fill(c, func(z *vector.Rasterizer) {
		ring(z, cx, cy, r+half, false)
		if inner := r - half; inner > 0 {
			ring(z, cx, cy, inner, true)
		}
	})
}

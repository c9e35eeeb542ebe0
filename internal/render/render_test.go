package render

import (
	"image/color"
	"testing"

	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/raster"
	"PrimitiveBoard/internal/state"
	"PrimitiveBoard/internal/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op    string
	a     [4]float64
	width int
	c     color.Color
}

type recorder struct{ calls []call }

func (r *recorder) Dot(x, y float64, d int, c color.Color) {
	r.calls = append(r.calls, call{"dot", [4]float64{x, y}, d, c})
}

func (r *recorder) Line(x1, y1, x2, y2 float64, w int, c color.Color) {
	r.calls = append(r.calls, call{"line", [4]float64{x1, y1, x2, y2}, w, c})
}

func (r *recorder) Circle(cx, cy, rad float64, w int, c color.Color) {
	r.calls = append(r.calls, call{"circle", [4]float64{cx, cy, rad}, w, c})
}

func prim(sh state.Shape, c state.RGB, w int) state.Primitive {
	return state.Primitive{ID: "x", Shape: sh, Color: c, Width: w}
}

func TestDrawPointIsDotOfWidth(t *testing.T) {
	rec := &recorder{}
	Draw(rec, []state.Primitive{prim(state.PointShape(geom.Pt(10, 10)), state.Black, 7)}, Options{})
	require.Len(t, rec.calls, 1)
	assert.Equal(t, call{"dot", [4]float64{10, 10}, 7, state.Black}, rec.calls[0])
}

func TestDrawRectangleOutlineOrder(t *testing.T) {
	rec := &recorder{}
	r := geom.Rectangle{P1: geom.Pt(0, 0), P2: geom.Pt(4, 2)}
	Draw(rec, []state.Primitive{prim(state.RectangleShape(r), state.Red, 1)}, Options{})

	require.Len(t, rec.calls, 4)
	want := [][4]float64{
		{0, 0, 0, 2},
		{0, 2, 4, 2},
		{4, 2, 4, 0},
		{4, 0, 0, 0},
	}
	for i, w := range want {
		assert.Equal(t, "line", rec.calls[i].op)
		assert.Equal(t, w, rec.calls[i].a)
	}
}

func TestDrawTriangleThreeEdges(t *testing.T) {
	rec := &recorder{}
	tri := geom.Triangle{P1: geom.Pt(0, 0), P2: geom.Pt(5, 0), P3: geom.Pt(3, 4)}
	Draw(rec, []state.Primitive{prim(state.TriangleShape(tri), state.Red, 3)}, Options{})

	require.Len(t, rec.calls, 3)
	assert.Equal(t, [4]float64{0, 0, 5, 0}, rec.calls[0].a)
	assert.Equal(t, [4]float64{5, 0, 3, 4}, rec.calls[1].a)
	assert.Equal(t, [4]float64{3, 4, 0, 0}, rec.calls[2].a)
}

func TestDrawCircleAlgorithms(t *testing.T) {
	c := state.CircleShape(geom.Circle{Center: geom.Pt(20, 20), Radius: 5})
	ps := []state.Primitive{prim(c, state.Green, 2)}

	rec := &recorder{}
	Draw(rec, ps, Options{Circle: CircleNative})
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "circle", rec.calls[0].op)

	rec = &recorder{}
	Draw(rec, ps, Options{Circle: CircleMidpoint})
	want := raster.Unique(raster.CircleMidpoint(20, 20, 5))
	require.Len(t, rec.calls, len(want))
	for i, p := range want {
		assert.Equal(t, "dot", rec.calls[i].op)
		assert.Equal(t, float64(p.X), rec.calls[i].a[0])
		assert.Equal(t, float64(p.Y), rec.calls[i].a[1])
		assert.Equal(t, 2, rec.calls[i].width)
	}

	rec = &recorder{}
	Draw(rec, ps, Options{Circle: CircleParametric})
	assert.Len(t, rec.calls, len(raster.Unique(raster.CircleParametric(20, 20, 5))))
}

func TestDrawLineAlgorithms(t *testing.T) {
	ps := []state.Primitive{prim(state.SegmentShape(geom.Segment{P1: geom.Pt(0, 0), P2: geom.Pt(4, 2)}), state.Black, 1)}

	rec := &recorder{}
	Draw(rec, ps, Options{Line: LineMidpoint})
	assert.Len(t, rec.calls, 5)

	rec = &recorder{}
	Draw(rec, ps, Options{Line: LineEquation})
	assert.Len(t, rec.calls, 5)
}

func TestDrawViewportPass(t *testing.T) {
	m, err := viewport.NewMapper(viewport.R(0, 0, 100, 100), viewport.R(100, 100, 150, 150))
	require.NoError(t, err)

	ps := []state.Primitive{
		prim(state.PointShape(geom.Pt(0, 0)), state.Black, 1),
		prim(state.CircleShape(geom.Circle{Center: geom.Pt(50, 50), Radius: 25}), state.Red, 1),
	}
	rec := &recorder{}
	Draw(rec, ps, Options{Viewport: &m})

	require.Len(t, rec.calls, 4)
	assert.Equal(t, state.Black, rec.calls[0].c)
	assert.Equal(t, state.Red, rec.calls[1].c)

	assert.Equal(t, call{"dot", [4]float64{100, 100}, 1, state.Blue}, rec.calls[2])
	assert.Equal(t, call{"circle", [4]float64{125, 125, 12}, 1, state.Blue}, rec.calls[3])
}

func TestParseAlgorithms(t *testing.T) {
	a, err := ParseCircleAlgorithm("Midpoint")
	require.NoError(t, err)
	assert.Equal(t, CircleMidpoint, a)
	_, err = ParseCircleAlgorithm("bogus")
	assert.Error(t, err)

	l, err := ParseLineAlgorithm("equation")
	require.NoError(t, err)
	assert.Equal(t, LineEquation, l)
	assert.Equal(t, "equation", l.String())
}

func TestImageSurfacePlots(t *testing.T) {
	s := NewImageSurface(40, 40, 1, state.White)
	Draw(s, []state.Primitive{
		prim(state.PointShape(geom.Pt(10, 10)), state.Black, 6),
		prim(state.SegmentShape(geom.Segment{P1: geom.Pt(0, 30), P2: geom.Pt(39, 30)}), state.Red, 3),
	}, Options{})

	r, g, b, _ := s.Img.At(10, 10).RGBA()
	assert.Zero(t, r|g|b)

	r, g, b, _ = s.Img.At(20, 30).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g|b)

	r, g, b, _ = s.Img.At(35, 5).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestImageSurfaceScale(t *testing.T) {
	s := NewImageSurface(10, 20, 2.5, nil)
	assert.Equal(t, 25, s.Img.Bounds().Dx())
	assert.Equal(t, 50, s.Img.Bounds().Dy())
}

// Package render walks a primitive list and plots it onto a Surface.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/raster"
	"PrimitiveBoard/internal/state"
	"PrimitiveBoard/internal/viewport"
)

// Surface is anything the render pass can plot onto. Coordinates are in
// board pixels; the surface applies its own scaling.
type Surface interface {
	// Dot fills a disc of the given diameter centered on (x, y).
	Dot(x, y float64, diameter int, c color.Color)
	// Line strokes the segment from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64, width int, c color.Color)
	// Circle strokes a circle outline.
	Circle(cx, cy, r float64, width int, c color.Color)
}

// CircleAlgorithm selects how circle outlines are produced.
type CircleAlgorithm int

const (
	CircleNative CircleAlgorithm = iota
	CircleParametric
	CircleMidpoint
)

var circleNames = map[CircleAlgorithm]string{
	CircleNative:     "native",
	CircleParametric: "parametric",
	CircleMidpoint:   "midpoint",
}

func (a CircleAlgorithm) String() string {
	if s, ok := circleNames[a]; ok {
		return s
	}
	return fmt.Sprintf("CircleAlgorithm(%d)", int(a))
}

// ParseCircleAlgorithm accepts native, parametric or midpoint.
func ParseCircleAlgorithm(s string) (CircleAlgorithm, error) {
	for a, name := range circleNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return CircleNative, fmt.Errorf("unknown circle algorithm %q", s)
}

// LineAlgorithm selects how segments are produced.
type LineAlgorithm int

const (
	LineNative LineAlgorithm = iota
	LineEquation
	LineMidpoint
)

var lineNames = map[LineAlgorithm]string{
	LineNative:   "native",
	LineEquation: "equation",
	LineMidpoint: "midpoint",
}

func (a LineAlgorithm) String() string {
	if s, ok := lineNames[a]; ok {
		return s
	}
	return fmt.Sprintf("LineAlgorithm(%d)", int(a))
}

// ParseLineAlgorithm accepts native, equation or midpoint.
func ParseLineAlgorithm(s string) (LineAlgorithm, error) {
	for a, name := range lineNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return LineNative, fmt.Errorf("unknown line algorithm %q", s)
}

// Options controls a render pass. The zero value draws everything natively
// with no viewport pass.
type Options struct {
	Circle CircleAlgorithm
	Line   LineAlgorithm

	// Viewport, when set, adds a second pass drawing every primitive again
	// through the mapper in ViewportColor.
	Viewport      *viewport.Mapper
	ViewportColor color.Color
}

// Draw plots prims in order, so later primitives land on top.
func Draw(s Surface, prims []state.Primitive, opts Options) {
	for _, p := range prims {
		drawShape(s, p.Shape, p.Width, p.Color, opts)
	}
	if opts.Viewport == nil {
		return
	}
	vc := opts.ViewportColor
	if vc == nil {
		vc = state.Blue
	}
	for _, p := range prims {
		drawShape(s, MapShape(p.Shape, *opts.Viewport), p.Width, vc, opts)
	}
}

// MapShape sends every vertex of sh through m. A circle keeps its mapped
// center and gets its radius scaled by m.Length, truncated to whole pixels.
func MapShape(sh state.Shape, m viewport.Mapper) state.Shape {
	switch sh.Kind {
	case state.KindPoint:
		return state.PointShape(m.Point(sh.Point))
	case state.KindLine:
		return state.SegmentShape(geom.Segment{P1: m.Point(sh.Segment.P1), P2: m.Point(sh.Segment.P2)})
	case state.KindCircle:
		return state.CircleShape(geom.Circle{
			Center: m.Point(sh.Circle.Center),
			Radius: float64(int(m.Length(sh.Circle.Radius))),
		})
	case state.KindRectangle:
		return state.RectangleShape(geom.Rectangle{P1: m.Point(sh.Rectangle.P1), P2: m.Point(sh.Rectangle.P2)})
	case state.KindTriangle:
		t := sh.Triangle
		return state.TriangleShape(geom.Triangle{P1: m.Point(t.P1), P2: m.Point(t.P2), P3: m.Point(t.P3)})
	}
	return sh
}

func drawShape(s Surface, sh state.Shape, width int, c color.Color, opts Options) {
	switch sh.Kind {
	case state.KindPoint:
		s.Dot(sh.Point.X, sh.Point.Y, width, c)
	case state.KindLine:
		drawSegment(s, sh.Segment.P1, sh.Segment.P2, width, c, opts.Line)
	case state.KindCircle:
		drawCircle(s, sh.Circle, width, c, opts.Circle)
	case state.KindRectangle:
		corners := sh.Rectangle.Corners()
		for i := range corners {
			drawSegment(s, corners[i], corners[(i+1)%len(corners)], width, c, opts.Line)
		}
	case state.KindTriangle:
		for _, e := range sh.Triangle.Edges() {
			drawSegment(s, e.P1, e.P2, width, c, opts.Line)
		}
	}
}

func drawSegment(s Surface, p1, p2 geom.Point, width int, c color.Color, algo LineAlgorithm) {
	switch algo {
	case LineEquation:
		dots(s, raster.LineEquation(int(p1.X), int(p1.Y), int(p2.X), int(p2.Y)), width, c)
	case LineMidpoint:
		dots(s, raster.LineMidpoint(int(p1.X), int(p1.Y), int(p2.X), int(p2.Y)), width, c)
	default:
		s.Line(p1.X, p1.Y, p2.X, p2.Y, width, c)
	}
}

func drawCircle(s Surface, ci geom.Circle, width int, c color.Color, algo CircleAlgorithm) {
	cx, cy, r := int(ci.Center.X), int(ci.Center.Y), int(ci.Radius)
	switch algo {
	case CircleParametric:
		dots(s, raster.Unique(raster.CircleParametric(cx, cy, r)), width, c)
	case CircleMidpoint:
		dots(s, raster.Unique(raster.CircleMidpoint(cx, cy, r)), width, c)
	default:
		s.Circle(ci.Center.X, ci.Center.Y, ci.Radius, width, c)
	}
}

func dots(s Surface, pts []image.Point, width int, c color.Color) {
	for _, p := range pts {
		s.Dot(float64(p.X), float64(p.Y), width, c)
	}
}

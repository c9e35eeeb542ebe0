package state

import (
	"math"

	"PrimitiveBoard/internal/geom"
)

// Bounds is an axis aligned box on the canvas.
type Bounds struct {
	Min geom.Point
	Max geom.Point
}

func (b Bounds) Width() float64  { return b.Max.X - b.Min.X }
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Pad grows b by d on every side.
func (b Bounds) Pad(d float64) Bounds {
	return Bounds{
		Min: geom.Pt(b.Min.X-d, b.Min.Y-d),
		Max: geom.Pt(b.Max.X+d, b.Max.Y+d),
	}
}

// Union returns the smallest box holding both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: geom.Pt(math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)),
		Max: geom.Pt(math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)),
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p geom.Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func boundsOf(points ...geom.Point) Bounds {
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// ShapeBounds returns the geometric extent of s, ignoring stroke width.
func ShapeBounds(s Shape) Bounds {
	switch s.Kind {
	case KindPoint:
		return boundsOf(s.Point)
	case KindLine:
		return boundsOf(s.Segment.P1, s.Segment.P2)
	case KindCircle:
		c, r := s.Circle.Center, s.Circle.Radius
		return boundsOf(geom.Pt(c.X-r, c.Y-r), geom.Pt(c.X+r, c.Y+r))
	case KindRectangle:
		return boundsOf(s.Rectangle.P1, s.Rectangle.P2)
	case KindTriangle:
		return boundsOf(s.Triangle.P1, s.Triangle.P2, s.Triangle.P3)
	}
	return Bounds{}
}

// PrimitiveBounds returns the inked extent of p: its shape grown by half
// the stroke width.
func PrimitiveBounds(p Primitive) Bounds {
	return ShapeBounds(p.Shape).Pad(float64(p.Width) / 2)
}

// DocumentBounds returns the union of every primitive's bounds. ok is false
// for an empty list.
func DocumentBounds(ps []Primitive) (b Bounds, ok bool) {
	for i, p := range ps {
		pb := PrimitiveBounds(p)
		if i == 0 {
			b = pb
			continue
		}
		b = b.Union(pb)
	}
	return b, len(ps) > 0
}

package state

import (
	"math/rand"

	"PrimitiveBoard/internal/geom"
)

// RandomPrimitives scatters n primitives of random kind and color inside
// area, all drawn with the given stroke width.
func RandomPrimitives(r *rand.Rand, n int, area Bounds, width int) []Primitive {
	pt := func() geom.Point {
		return geom.Pt(
			area.Min.X+r.Float64()*area.Width(),
			area.Min.Y+r.Float64()*area.Height(),
		)
	}

	out := make([]Primitive, 0, n)
	for i := 0; i < n; i++ {
		var s Shape
		switch Kinds[r.Intn(len(Kinds))] {
		case KindPoint:
			s = PointShape(pt())
		case KindLine:
			s = SegmentShape(geom.Segment{P1: pt(), P2: pt()})
		case KindCircle:
			s = CircleShape(geom.CircleThrough(pt(), pt()))
		case KindRectangle:
			s = RectangleShape(geom.Rectangle{P1: pt(), P2: pt()})
		case KindTriangle:
			s = TriangleShape(geom.Triangle{P1: pt(), P2: pt(), P3: pt()})
		}
		c := RGB{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))}
		out = append(out, NewPrimitive(s, c, width))
	}
	return out
}

package state

import (
	"PrimitiveBoard/internal/geom"
)

// Kind names the primitive the board is currently constructing.
type Kind int

const (
	KindNone Kind = iota
	KindPoint
	KindLine
	KindCircle
	KindRectangle
	KindTriangle
)

// Kinds lists every drawable kind in toolbar order.
var Kinds = []Kind{KindPoint, KindLine, KindCircle, KindRectangle, KindTriangle}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindPoint:
		return "POINT"
	case KindLine:
		return "LINE"
	case KindCircle:
		return "CIRCLE"
	case KindRectangle:
		return "RECTANGLE"
	case KindTriangle:
		return "TRIANGLE"
	}
	return "UNKNOWN"
}

// ParseKind is the inverse of Kind.String, case sensitive.
func ParseKind(s string) (Kind, bool) {
	for _, k := range append([]Kind{KindNone}, Kinds...) {
		if k.String() == s {
			return k, true
		}
	}
	return KindNone, false
}

// RGB is an opaque 8-bit color. It satisfies color.Color.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{}
	White = RGB{R: 255, G: 255, B: 255}
	Red   = RGB{R: 255}
	Green = RGB{G: 255}
	Blue  = RGB{B: 255}
)

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Shape is a closed union over the five geometric kinds. Only the field
// selected by Kind is meaningful; the others stay zero.
type Shape struct {
	Kind      Kind
	Point     geom.Point
	Segment   geom.Segment
	Circle    geom.Circle
	Rectangle geom.Rectangle
	Triangle  geom.Triangle
}

func PointShape(p geom.Point) Shape         { return Shape{Kind: KindPoint, Point: p} }
func SegmentShape(s geom.Segment) Shape     { return Shape{Kind: KindLine, Segment: s} }
func CircleShape(c geom.Circle) Shape       { return Shape{Kind: KindCircle, Circle: c} }
func RectangleShape(r geom.Rectangle) Shape { return Shape{Kind: KindRectangle, Rectangle: r} }
func TriangleShape(t geom.Triangle) Shape   { return Shape{Kind: KindTriangle, Triangle: t} }

// Primitive is a shape plus the attributes it is drawn with. It is the unit
// stored in a Document.
type Primitive struct {
	ID    string
	Shape Shape
	Color RGB
	Width int // stroke width, or dot diameter for points
}

// Kind is shorthand for p.Shape.Kind.
func (p Primitive) Kind() Kind {
	return p.Shape.Kind
}

// NewPrimitive stamps a fresh ID on shape.
func NewPrimitive(shape Shape, c RGB, width int) Primitive {
	return Primitive{
		ID:    NewID(),
		Shape: shape,
		Color: c,
		Width: width,
	}
}

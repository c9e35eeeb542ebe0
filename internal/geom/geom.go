// Package geom holds the plain geometric values the board is built from.
// None of these types carry drawing attributes; see state.Primitive for that.
package geom

import "math"

// Point is a location on the canvas.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Segment is the straight line between two points.
type Segment struct {
	P1 Point
	P2 Point
}

// Slope returns m in y = m*x + b. It is ±Inf or NaN for vertical segments.
func (s Segment) Slope() float64 {
	return (s.P2.Y - s.P1.Y) / (s.P2.X - s.P1.X)
}

// Intercept returns b in y = m*x + b. Not finite when Slope is not finite.
func (s Segment) Intercept() float64 {
	return s.P1.Y - s.Slope()*s.P1.X
}

// Circle is a center and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// CircleThrough returns the circle centered at center whose outline passes
// through border.
func CircleThrough(center, border Point) Circle {
	return Circle{Center: center, Radius: center.Distance(border)}
}

// SetBorder recomputes the radius so that the outline passes through p.
func (c *Circle) SetBorder(p Point) {
	c.Radius = c.Center.Distance(p)
}

// Rectangle is an axis aligned rectangle given by two opposite corners.
// The remaining corners are derived from P1 and P2 on every call, so they
// can never go stale.
type Rectangle struct {
	P1 Point
	P2 Point
}

// P3 is the corner sharing X with P1 and Y with P2.
func (r Rectangle) P3() Point {
	return Point{X: r.P1.X, Y: r.P2.Y}
}

// P4 is the corner sharing X with P2 and Y with P1.
func (r Rectangle) P4() Point {
	return Point{X: r.P2.X, Y: r.P1.Y}
}

// Corners returns the outline in drawing order p1, p3, p2, p4.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{r.P1, r.P3(), r.P2, r.P4()}
}

// Triangle has three independent vertices. Degenerate triangles are legal.
type Triangle struct {
	P1 Point
	P2 Point
	P3 Point
}

// Edges returns the three sides p1-p2, p2-p3, p3-p1.
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{
		{P1: t.P1, P2: t.P2},
		{P1: t.P2, P2: t.P3},
		{P1: t.P3, P2: t.P1},
	}
}

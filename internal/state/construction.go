package state

import (
	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/logging"
)

// Phase names what a Constructor is in the middle of building.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLine
	PhaseRectangle
	PhaseCircle
	PhaseTriangle
)

func (p Phase) String() string {
	switch p {
	case PhaseLine:
		return "line"
	case PhaseRectangle:
		return "rectangle"
	case PhaseCircle:
		return "circle"
	case PhaseTriangle:
		return "triangle"
	}
	return "idle"
}

// construction is the transient gesture state. Exactly one variant is live
// at a time, so a half-built circle and a half-built triangle cannot coexist.
type construction interface {
	phase() Phase
	elastic() (Shape, bool)
}

type idle struct{}

type lineInProgress struct{ seg geom.Segment }

type rectInProgress struct{ rect geom.Rectangle }

type circleInProgress struct{ circle geom.Circle }

// triangleInProgress covers stages 1 and 2; stage 0 is idle.
type triangleInProgress struct {
	stage int
	tri   geom.Triangle
}

func (idle) phase() Phase               { return PhaseIdle }
func (lineInProgress) phase() Phase     { return PhaseLine }
func (rectInProgress) phase() Phase     { return PhaseRectangle }
func (circleInProgress) phase() Phase   { return PhaseCircle }
func (triangleInProgress) phase() Phase { return PhaseTriangle }

func (idle) elastic() (Shape, bool)                 { return Shape{}, false }
func (s lineInProgress) elastic() (Shape, bool)     { return SegmentShape(s.seg), true }
func (s rectInProgress) elastic() (Shape, bool)     { return RectangleShape(s.rect), true }
func (s circleInProgress) elastic() (Shape, bool)   { return CircleShape(s.circle), true }
func (s triangleInProgress) elastic() (Shape, bool) { return TriangleShape(s.tri), true }

// Constructor turns pointer events into committed shapes for one primitive
// kind at a time.
//
// Point commits on press. Line, rectangle and circle are press, drag,
// release with a rubber band preview. Triangle takes three presses; drags
// between presses move the pending vertices.
type Constructor struct {
	kind  Kind
	state construction
}

// NewConstructor returns an idle constructor with no kind selected.
func NewConstructor() *Constructor {
	return &Constructor{kind: KindNone, state: idle{}}
}

// Kind returns the active primitive kind.
func (c *Constructor) Kind() Kind {
	return c.kind
}

// SetKind selects k and drops any gesture in progress.
func (c *Constructor) SetKind(k Kind) {
	c.kind = k
	c.Reset()
}

// Reset drops any gesture in progress.
func (c *Constructor) Reset() {
	if c.state != nil && c.state.phase() != PhaseIdle {
		logging.For("construction").Debug("discard", "phase", c.state.phase())
	}
	c.state = idle{}
}

// Phase reports the current construction state.
func (c *Constructor) Phase() Phase {
	return c.state.phase()
}

// TriangleStage returns 0, 1 or 2: the number of triangle vertices fixed so far.
func (c *Constructor) TriangleStage() int {
	if t, ok := c.state.(triangleInProgress); ok {
		return t.stage
	}
	return 0
}

// Elastic returns the in-progress preview shape, if any.
func (c *Constructor) Elastic() (Shape, bool) {
	return c.state.elastic()
}

// PointerDown handles a button press at p. It returns the finished shape
// when the press completes one (a point, or the third triangle vertex).
func (c *Constructor) PointerDown(p geom.Point) (Shape, bool) {
	switch c.kind {
	case KindPoint:
		return PointShape(p), true
	case KindLine:
		c.state = lineInProgress{seg: geom.Segment{P1: p, P2: p}}
	case KindRectangle:
		c.state = rectInProgress{rect: geom.Rectangle{P1: p, P2: p}}
	case KindCircle:
		c.state = circleInProgress{circle: geom.Circle{Center: p}}
	case KindTriangle:
		return c.triangleDown(p)
	}
	return Shape{}, false
}

func (c *Constructor) triangleDown(p geom.Point) (Shape, bool) {
	t, ok := c.state.(triangleInProgress)
	if !ok {
		c.state = triangleInProgress{stage: 1, tri: geom.Triangle{P1: p, P2: p, P3: p}}
		return Shape{}, false
	}
	switch t.stage {
	case 1:
		t.tri.P2 = p
		t.tri.P3 = p
		t.stage = 2
		c.state = t
		return Shape{}, false
	default:
		t.tri.P3 = p
		c.state = idle{}
		return TriangleShape(t.tri), true
	}
}

// PointerDrag moves the live end of the preview. It reports whether the
// preview changed.
func (c *Constructor) PointerDrag(p geom.Point) bool {
	switch s := c.state.(type) {
	case lineInProgress:
		s.seg.P2 = p
		c.state = s
	case rectInProgress:
		s.rect.P2 = p
		c.state = s
	case circleInProgress:
		s.circle.SetBorder(p)
		c.state = s
	case triangleInProgress:
		if s.stage == 1 {
			s.tri.P2 = p
		}
		s.tri.P3 = p
		c.state = s
	default:
		return false
	}
	return true
}

// PointerUp finishes a drag gesture. Triangles ignore releases.
func (c *Constructor) PointerUp(p geom.Point) (Shape, bool) {
	var done Shape
	switch s := c.state.(type) {
	case lineInProgress:
		s.seg.P2 = p
		done = SegmentShape(s.seg)
	case rectInProgress:
		s.rect.P2 = p
		done = RectangleShape(s.rect)
	case circleInProgress:
		s.circle.SetBorder(p)
		done = CircleShape(s.circle)
	default:
		return Shape{}, false
	}
	c.state = idle{}
	return done, true
}

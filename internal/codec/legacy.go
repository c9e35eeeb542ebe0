package codec

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/state"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The legacy format is one primitive per line:
//
//	TIPO,r,g,b,width,coord...
//
// with coordinates in the same order as the JSON fields for that tipo.
// Blank lines and # comments are ignored.
var legacyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Tag", Pattern: `[A-Za-z_]+`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Comma", Pattern: `,`},
})

type legacyFile struct {
	Lines []*legacyLine `parser:"EOL* ( @@ EOL* )*"`
}

type legacyLine struct {
	Pos    lexer.Position
	Tag    string    `parser:"@Tag"`
	Values []float64 `parser:"( Comma @Number )*"`
}

var legacyParser = participle.MustBuild[legacyFile](
	participle.Lexer(legacyLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// coordinate count per tipo after the four style values
var legacyCoords = map[state.Kind]int{
	state.KindPoint:     2,
	state.KindLine:      4,
	state.KindRectangle: 4,
	state.KindCircle:    3,
	state.KindTriangle:  6,
}

// DecodeLegacy parses the line format. Every line must be valid.
func DecodeLegacy(data []byte) ([]state.Primitive, error) {
	f, err := legacyParser.ParseBytes("", data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	ps := make([]state.Primitive, 0, len(f.Lines))
	for _, l := range f.Lines {
		p, err := l.primitive()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.Pos.Line, err)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func (l *legacyLine) primitive() (state.Primitive, error) {
	kind, ok := KindForTag(strings.ToUpper(l.Tag))
	if !ok {
		return state.Primitive{}, malformed("unknown tipo %q", l.Tag)
	}
	want := 4 + legacyCoords[kind]
	if len(l.Values) != want {
		return state.Primitive{}, malformed("%s: want %d values, got %d", l.Tag, want, len(l.Values))
	}

	v := l.Values
	for i := 0; i < 4; i++ {
		if v[i] != float64(int(v[i])) {
			return state.Primitive{}, malformed("%s: style value %g is not an integer", l.Tag, v[i])
		}
	}
	c, err := checkStyle([3]int{int(v[0]), int(v[1]), int(v[2])}, int(v[3]))
	if err != nil {
		return state.Primitive{}, fmt.Errorf("%s: %w", l.Tag, err)
	}

	xy := v[4:]
	pt := func(i int) geom.Point { return geom.Pt(xy[i], xy[i+1]) }
	var sh state.Shape
	switch kind {
	case state.KindPoint:
		sh = state.PointShape(pt(0))
	case state.KindLine:
		sh = state.SegmentShape(geom.Segment{P1: pt(0), P2: pt(2)})
	case state.KindRectangle:
		sh = state.RectangleShape(geom.Rectangle{P1: pt(0), P2: pt(2)})
	case state.KindCircle:
		if xy[2] < 0 {
			return state.Primitive{}, malformed("%s: negative radius %g", l.Tag, xy[2])
		}
		sh = state.CircleShape(geom.Circle{Center: pt(0), Radius: xy[2]})
	case state.KindTriangle:
		sh = state.TriangleShape(geom.Triangle{P1: pt(0), P2: pt(2), P3: pt(4)})
	}
	return state.NewPrimitive(sh, c, int(v[3])), nil
}

// EncodeLegacy writes ps one per line. IDs are not part of this format.
func EncodeLegacy(w io.Writer, ps []state.Primitive) error {
	var buf bytes.Buffer
	for i, p := range ps {
		tag, ok := kindTags[p.Kind()]
		if !ok {
			return fmt.Errorf("figure %d: %w", i, malformed("cannot encode kind %v", p.Kind()))
		}
		vals := []float64{float64(p.Color.R), float64(p.Color.G), float64(p.Color.B), float64(p.Width)}
		vals = append(vals, legacyCoordsOf(p.Shape)...)

		buf.WriteString(tag)
		for _, x := range vals {
			buf.WriteByte(',')
			buf.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
		buf.WriteByte('\n')
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write: %v", ErrIO, err)
	}
	return nil
}

func legacyCoordsOf(sh state.Shape) []float64 {
	switch sh.Kind {
	case state.KindPoint:
		return []float64{sh.Point.X, sh.Point.Y}
	case state.KindLine:
		s := sh.Segment
		return []float64{s.P1.X, s.P1.Y, s.P2.X, s.P2.Y}
	case state.KindRectangle:
		r := sh.Rectangle
		return []float64{r.P1.X, r.P1.Y, r.P2.X, r.P2.Y}
	case state.KindCircle:
		c := sh.Circle
		return []float64{c.Center.X, c.Center.Y, c.Radius}
	case state.KindTriangle:
		t := sh.Triangle
		return []float64{t.P1.X, t.P1.Y, t.P2.X, t.P2.Y, t.P3.X, t.P3.Y}
	}
	return nil
}

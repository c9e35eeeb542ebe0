package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/state"
)

// Tags used for the "tipo" field. The legacy format reuses them.
const (
	TagPoint     = "PONTO"
	TagLine      = "RETA"
	TagRectangle = "RETANGULO"
	TagCircle    = "CIRCULO"
	TagTriangle  = "TRIANGULO"
)

var kindTags = map[state.Kind]string{
	state.KindPoint:     TagPoint,
	state.KindLine:      TagLine,
	state.KindRectangle: TagRectangle,
	state.KindCircle:    TagCircle,
	state.KindTriangle:  TagTriangle,
}

// KindForTag maps a "tipo" value back to a Kind.
func KindForTag(tag string) (state.Kind, bool) {
	for k, t := range kindTags {
		if t == tag {
			return k, true
		}
	}
	return state.KindNone, false
}

type jsonDocument struct {
	Figuras []jsonEntry `json:"figuras"`
}

// Style numbers are read as floats so 255.0 is accepted like 255; they
// must still be whole.
type jsonColor struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

// jsonEntry carries every field any tipo uses. Pointers tell "absent"
// apart from zero so missing coordinates are reported, not defaulted.
type jsonEntry struct {
	ID        string     `json:"id,omitempty"`
	Tipo      string     `json:"tipo"`
	X         *float64   `json:"x,omitempty"`
	Y         *float64   `json:"y,omitempty"`
	X1        *float64   `json:"x1,omitempty"`
	Y1        *float64   `json:"y1,omitempty"`
	X2        *float64   `json:"x2,omitempty"`
	Y2        *float64   `json:"y2,omitempty"`
	X3        *float64   `json:"x3,omitempty"`
	Y3        *float64   `json:"y3,omitempty"`
	CentroX   *float64   `json:"centroX,omitempty"`
	CentroY   *float64   `json:"centroY,omitempty"`
	Raio      *float64   `json:"raio,omitempty"`
	Cor       *jsonColor `json:"cor,omitempty"`
	Espessura *float64   `json:"espessura,omitempty"`
	Diametro  *float64   `json:"diametro,omitempty"`
}

func f64(v float64) *float64 { return &v }

// EncodeJSON writes ps as an indented {"figuras": [...]} document.
func EncodeJSON(w io.Writer, ps []state.Primitive) error {
	doc := jsonDocument{Figuras: make([]jsonEntry, 0, len(ps))}
	for i, p := range ps {
		e, err := toEntry(p)
		if err != nil {
			return fmt.Errorf("figure %d: %w", i, err)
		}
		doc.Figuras = append(doc.Figuras, e)
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: write: %v", ErrIO, err)
	}
	return nil
}

func toEntry(p state.Primitive) (jsonEntry, error) {
	tag, ok := kindTags[p.Kind()]
	if !ok {
		return jsonEntry{}, malformed("cannot encode kind %v", p.Kind())
	}
	e := jsonEntry{
		ID:        p.ID,
		Tipo:      tag,
		Cor:       &jsonColor{R: f64(float64(p.Color.R)), G: f64(float64(p.Color.G)), B: f64(float64(p.Color.B))},
		Espessura: f64(float64(p.Width)),
	}
	sh := p.Shape
	switch sh.Kind {
	case state.KindPoint:
		e.X, e.Y = f64(sh.Point.X), f64(sh.Point.Y)
	case state.KindLine:
		e.X1, e.Y1 = f64(sh.Segment.P1.X), f64(sh.Segment.P1.Y)
		e.X2, e.Y2 = f64(sh.Segment.P2.X), f64(sh.Segment.P2.Y)
	case state.KindRectangle:
		e.X1, e.Y1 = f64(sh.Rectangle.P1.X), f64(sh.Rectangle.P1.Y)
		e.X2, e.Y2 = f64(sh.Rectangle.P2.X), f64(sh.Rectangle.P2.Y)
	case state.KindCircle:
		e.CentroX, e.CentroY = f64(sh.Circle.Center.X), f64(sh.Circle.Center.Y)
		e.Raio = f64(sh.Circle.Radius)
	case state.KindTriangle:
		t := sh.Triangle
		e.X1, e.Y1 = f64(t.P1.X), f64(t.P1.Y)
		e.X2, e.Y2 = f64(t.P2.X), f64(t.P2.Y)
		e.X3, e.Y3 = f64(t.P3.X), f64(t.P3.Y)
	}
	return e, nil
}

// DecodeJSON parses a whole {"figuras": [...]} document, or the older
// {"figura": {...}} layout grouped by kind. Nothing is returned unless
// every entry is valid.
func DecodeJSON(data []byte) ([]state.Primitive, error) {
	var root struct {
		Figuras json.RawMessage `json:"figuras"`
		Figura  json.RawMessage `json:"figura"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	switch {
	case isPresent(root.Figuras):
		return decodeFiguras(root.Figuras)
	case isPresent(root.Figura):
		return decodeGrouped(root.Figura)
	}
	return nil, malformed(`missing "figuras" array`)
}

func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func decodeFiguras(raw json.RawMessage) ([]state.Primitive, error) {
	var entries []jsonEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: figuras: %v", ErrMalformedDocument, err)
	}

	ps := make([]state.Primitive, 0, len(entries))
	for i, e := range entries {
		p, err := fromEntry(e)
		if err != nil {
			return nil, fmt.Errorf("figure %d: %w", i, err)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func fromEntry(e jsonEntry) (state.Primitive, error) {
	kind, ok := KindForTag(e.Tipo)
	if !ok {
		return state.Primitive{}, malformed("unknown tipo %q", e.Tipo)
	}

	if e.Cor == nil || e.Cor.R == nil || e.Cor.G == nil || e.Cor.B == nil {
		return state.Primitive{}, malformed(`%s: missing or incomplete "cor"`, e.Tipo)
	}
	rawWidth, widthName := e.Espessura, "espessura"
	if rawWidth == nil {
		rawWidth, widthName = e.Diametro, "diametro"
	}
	if rawWidth == nil {
		return state.Primitive{}, malformed(`%s: missing "espessura"`, e.Tipo)
	}

	req := fieldReader{tipo: e.Tipo}
	rgb := [3]int{req.whole(e.Cor.R, "r"), req.whole(e.Cor.G, "g"), req.whole(e.Cor.B, "b")}
	width := req.whole(rawWidth, widthName)
	if req.err != nil {
		return state.Primitive{}, req.err
	}
	c, err := checkStyle(rgb, width)
	if err != nil {
		return state.Primitive{}, fmt.Errorf("%s: %w", e.Tipo, err)
	}

	var sh state.Shape
	switch kind {
	case state.KindPoint:
		sh = state.PointShape(req.point(e.X, e.Y, "x", "y"))
	case state.KindLine:
		sh = state.SegmentShape(geom.Segment{
			P1: req.point(e.X1, e.Y1, "x1", "y1"),
			P2: req.point(e.X2, e.Y2, "x2", "y2"),
		})
	case state.KindRectangle:
		sh = state.RectangleShape(geom.Rectangle{
			P1: req.point(e.X1, e.Y1, "x1", "y1"),
			P2: req.point(e.X2, e.Y2, "x2", "y2"),
		})
	case state.KindCircle:
		center := req.point(e.CentroX, e.CentroY, "centroX", "centroY")
		r := req.value(e.Raio, "raio")
		if req.err == nil && r < 0 {
			req.err = malformed("%s: negative raio %g", e.Tipo, r)
		}
		sh = state.CircleShape(geom.Circle{Center: center, Radius: r})
	case state.KindTriangle:
		sh = state.TriangleShape(geom.Triangle{
			P1: req.point(e.X1, e.Y1, "x1", "y1"),
			P2: req.point(e.X2, e.Y2, "x2", "y2"),
			P3: req.point(e.X3, e.Y3, "x3", "y3"),
		})
	}
	if req.err != nil {
		return state.Primitive{}, req.err
	}

	p := state.Primitive{ID: e.ID, Shape: sh, Color: c, Width: width}
	if p.ID == "" {
		p.ID = state.NewID()
	}
	return p, nil
}

// fieldReader dereferences required fields, keeping the first failure.
type fieldReader struct {
	tipo string
	err  error
}

func (r *fieldReader) value(v *float64, name string) float64 {
	if r.err != nil {
		return 0
	}
	if v == nil {
		r.err = malformed("%s: missing %q", r.tipo, name)
		return 0
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		r.err = malformed("%s: %q is not finite", r.tipo, name)
		return 0
	}
	return *v
}

func (r *fieldReader) point(x, y *float64, xn, yn string) geom.Point {
	return geom.Point{X: r.value(x, xn), Y: r.value(y, yn)}
}

// whole reads a style number that may be written as 3 or 3.0.
func (r *fieldReader) whole(v *float64, name string) int {
	f := r.value(v, name)
	if r.err != nil {
		return 0
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		r.err = malformed("%s: %q must be a whole number, got %g", r.tipo, name, f)
		return 0
	}
	return int(f)
}

func (r *fieldReader) xy(p *jsonXY, name string) geom.Point {
	if r.err != nil {
		return geom.Point{}
	}
	if p == nil {
		r.err = malformed("%s: missing %q", r.tipo, name)
		return geom.Point{}
	}
	return r.point(p.X, p.Y, name+".x", name+".y")
}

package codec

import (
	"encoding/json"
	"fmt"

	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/state"
)

// Older drawings were saved as {"figura": {"ponto": [...], "reta": [...],
// ...}}, one array per kind and no style at all. Reading them gives every
// figure the default style. The layout does not record drawing order, so
// groups are concatenated in the order they were written.

type jsonXY struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type jsonPair struct {
	P1 *jsonXY `json:"p1"`
	P2 *jsonXY `json:"p2"`
}

type jsonTrio struct {
	P1 *jsonXY `json:"p1"`
	P2 *jsonXY `json:"p2"`
	P3 *jsonXY `json:"p3"`
}

type jsonRound struct {
	Centro *jsonXY  `json:"centro"`
	Raio   *float64 `json:"raio"`
}

type groupedFigures struct {
	Ponto     []jsonXY    `json:"ponto"`
	Reta      []jsonPair  `json:"reta"`
	Circulo   []jsonRound `json:"circulo"`
	Triangulo []jsonTrio  `json:"triangulo"`
	Retangulo []jsonPair  `json:"retangulo"`
}

// Style given to figures read from the grouped layout.
var (
	groupedColor = state.Black
	groupedWidth = 1
)

func decodeGrouped(raw json.RawMessage) ([]state.Primitive, error) {
	var g groupedFigures
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("%w: figura: %v", ErrMalformedDocument, err)
	}

	var ps []state.Primitive
	add := func(group string, i int, sh state.Shape, err error) error {
		if err != nil {
			return fmt.Errorf("%s %d: %w", group, i, err)
		}
		ps = append(ps, state.NewPrimitive(sh, groupedColor, groupedWidth))
		return nil
	}

	for i, p := range g.Ponto {
		req := fieldReader{tipo: "ponto"}
		sh := state.PointShape(req.point(p.X, p.Y, "x", "y"))
		if err := add("ponto", i, sh, req.err); err != nil {
			return nil, err
		}
	}
	for i, r := range g.Reta {
		req := fieldReader{tipo: "reta"}
		sh := state.SegmentShape(geom.Segment{P1: req.xy(r.P1, "p1"), P2: req.xy(r.P2, "p2")})
		if err := add("reta", i, sh, req.err); err != nil {
			return nil, err
		}
	}
	for i, c := range g.Circulo {
		req := fieldReader{tipo: "circulo"}
		center := req.xy(c.Centro, "centro")
		r := req.value(c.Raio, "raio")
		if req.err == nil && r < 0 {
			req.err = malformed("circulo: negative raio %g", r)
		}
		sh := state.CircleShape(geom.Circle{Center: center, Radius: r})
		if err := add("circulo", i, sh, req.err); err != nil {
			return nil, err
		}
	}
	for i, t := range g.Triangulo {
		req := fieldReader{tipo: "triangulo"}
		sh := state.TriangleShape(geom.Triangle{
			P1: req.xy(t.P1, "p1"),
			P2: req.xy(t.P2, "p2"),
			P3: req.xy(t.P3, "p3"),
		})
		if err := add("triangulo", i, sh, req.err); err != nil {
			return nil, err
		}
	}
	for i, r := range g.Retangulo {
		req := fieldReader{tipo: "retangulo"}
		sh := state.RectangleShape(geom.Rectangle{P1: req.xy(r.P1, "p1"), P2: req.xy(r.P2, "p2")})
		if err := add("retangulo", i, sh, req.err); err != nil {
			return nil, err
		}
	}

	if ps == nil {
		ps = []state.Primitive{}
	}
	return ps, nil
}

// Package viewport maps window coordinates into a viewport rectangle.
package viewport

import (
	"errors"
	"fmt"

	"PrimitiveBoard/internal/geom"
)

// ErrDegenerateRect is returned for a rectangle with no extent on an axis.
var ErrDegenerateRect = errors.New("viewport: rectangle has zero or negative extent")

// Rect is an axis aligned rectangle.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// R is shorthand for Rect{xmin, ymin, xmax, ymax}.
func R(xmin, ymin, xmax, ymax float64) Rect {
	return Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

func (r Rect) Width() float64  { return r.XMax - r.XMin }
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Validate reports ErrDegenerateRect unless XMax > XMin and YMax > YMin.
func (r Rect) Validate() error {
	if !(r.XMax > r.XMin) || !(r.YMax > r.YMin) {
		return fmt.Errorf("%w: (%g, %g)-(%g, %g)", ErrDegenerateRect, r.XMin, r.YMin, r.XMax, r.YMax)
	}
	return nil
}

// Mapper is the affine window to viewport transform.
type Mapper struct {
	Window   Rect
	Viewport Rect
}

// NewMapper validates both rectangles.
func NewMapper(window, viewport Rect) (Mapper, error) {
	if err := window.Validate(); err != nil {
		return Mapper{}, fmt.Errorf("window: %w", err)
	}
	if err := viewport.Validate(); err != nil {
		return Mapper{}, fmt.Errorf("viewport: %w", err)
	}
	return Mapper{Window: window, Viewport: viewport}, nil
}

// Point maps p from the window into the viewport, each axis independently.
func (m Mapper) Point(p geom.Point) geom.Point {
	w, v := m.Window, m.Viewport
	return geom.Point{
		X: v.XMin + ((p.X-w.XMin)/(w.XMax-w.XMin))*(v.XMax-v.XMin),
		Y: v.YMin + ((p.Y-w.YMin)/(w.YMax-w.YMin))*(v.YMax-v.YMin),
	}
}

// Length scales a length by the horizontal extent ratio only. This matches
// Point exactly when both rectangles share an aspect ratio and is only an
// approximation otherwise.
func (m Mapper) Length(l float64) float64 {
	return l * m.Viewport.Width() / m.Window.Width()
}

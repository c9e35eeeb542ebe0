// Package raster turns circles and segments into the integer pixel
// positions a surface plots, one dot per position.
package raster

import (
	"image"
	"math"
)

// ParametricStep is the angular step, in degrees, of the parametric sweep.
const ParametricStep = 0.1

// Octants returns the eight reflections of the first octant offset (x, y)
// around (cx, cy).
func Octants(cx, cy, x, y int) [8]image.Point {
	return [8]image.Point{
		{X: cx + x, Y: cy + y},
		{X: cx + y, Y: cy + x},
		{X: cx - y, Y: cy + x},
		{X: cx - x, Y: cy + y},
		{X: cx - x, Y: cy - y},
		{X: cx - y, Y: cy - x},
		{X: cx + y, Y: cy - x},
		{X: cx + x, Y: cy - y},
	}
}

// CircleParametric sweeps 0..45 degrees in fixed steps, truncating
// x = r*sin(a), y = r*cos(a), and reflects each sample into all octants.
// The step does not adapt to r: large circles show gaps, small ones plot
// the same pixel many times.
func CircleParametric(cx, cy, r int) []image.Point {
	out := make([]image.Point, 0, 8*int(45/ParametricStep+1))
	for alfa := 0.0; alfa <= 45; alfa += ParametricStep {
		rad := alfa * math.Pi / 180
		x := float64(r) * math.Sin(rad)
		y := float64(r) * math.Cos(rad)
		o := Octants(cx, cy, int(x), int(y))
		out = append(out, o[:]...)
	}
	return out
}

// CircleMidpoint is the integer decision variable circle algorithm. For
// r == 0 it yields the center eight times.
func CircleMidpoint(cx, cy, r int) []image.Point {
	if r < 0 {
		r = -r
	}
	x, y := 0, r
	// 5/4 is integer division on purpose: it evaluates to 1, and existing
	// drawings depend on the resulting pixel choice.
	d := 5/4 - r

	o := Octants(cx, cy, x, y)
	out := append(make([]image.Point, 0, 8*(r+1)), o[:]...)
	for y > x {
		if d < 0 {
			d += 2*x + 3
			x++
		} else {
			d += 2*(x-y) + 5
			x++
			y--
		}
		o = Octants(cx, cy, x, y)
		out = append(out, o[:]...)
	}
	return out
}

// Unique drops repeated pixels, keeping first occurrence order.
func Unique(pts []image.Point) []image.Point {
	seen := make(map[image.Point]struct{}, len(pts))
	out := pts[:0:0]
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

package raster

import (
	"image"
	"math"
)

// LineEquation walks y = m*x + b one pixel at a time along the major axis,
// rounding the minor coordinate. Steep and vertical lines step on y using
// the inverse slope.
func LineEquation(x1, y1, x2, y2 int) []image.Point {
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		return []image.Point{{X: x1, Y: y1}}
	}

	var out []image.Point
	if abs(dx) >= abs(dy) {
		m := float64(dy) / float64(dx)
		b := float64(y1) - m*float64(x1)
		step := sign(dx)
		for x := x1; ; x += step {
			out = append(out, image.Point{X: x, Y: int(math.Round(m*float64(x) + b))})
			if x == x2 {
				break
			}
		}
		return out
	}

	m := float64(dx) / float64(dy)
	b := float64(x1) - m*float64(y1)
	step := sign(dy)
	for y := y1; ; y += step {
		out = append(out, image.Point{X: int(math.Round(m*float64(y) + b)), Y: y})
		if y == y2 {
			break
		}
	}
	return out
}

// LineMidpoint is Bresenham's integer line algorithm, valid in all octants.
func LineMidpoint(x1, y1, x2, y2 int) []image.Point {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := sign(x2-x1), sign(y2-y1)
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}

	out := make([]image.Point, 0, max(dx, dy)+1)
	e := dx - dy
	for {
		out = append(out, image.Point{X: x1, Y: y1})
		if x1 == x2 && y1 == y2 {
			return out
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

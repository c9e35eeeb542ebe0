package raster

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointSet(pts []image.Point) map[image.Point]bool {
	s := make(map[image.Point]bool, len(pts))
	for _, p := range pts {
		s[p] = true
	}
	return s
}

func TestOctants(t *testing.T) {
	got := Octants(10, 20, 1, 3)
	want := [8]image.Point{
		{11, 23}, {13, 21}, {7, 21}, {9, 23},
		{9, 17}, {7, 19}, {13, 19}, {11, 17},
	}
	assert.Equal(t, want, got)
}

func TestCircleMidpointZeroRadius(t *testing.T) {
	pts := CircleMidpoint(7, -3, 0)
	require.NotEmpty(t, pts)
	assert.Equal(t, []image.Point{{7, -3}}, Unique(pts))
}

func TestCircleMidpointFirstOctant(t *testing.T) {
	pts := CircleMidpoint(0, 0, 5)
	var first []image.Point
	for i := 0; i < len(pts); i += 8 {
		first = append(first, pts[i])
	}
	assert.Equal(t, []image.Point{{0, 5}, {1, 5}, {2, 5}, {3, 4}, {4, 3}}, first)
}

func TestCircleMidpointSymmetric(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10, 17, 64, 200} {
		cx, cy := 40, -12
		set := pointSet(CircleMidpoint(cx, cy, r))
		for p := range set {
			x, y := p.X-cx, p.Y-cy
			for _, q := range Octants(cx, cy, x, y) {
				assert.True(t, set[q], "r=%d: reflection %v of %v missing", r, q, p)
			}
		}
	}
}

func TestCircleMidpointNearRadius(t *testing.T) {
	for _, r := range []int{1, 4, 9, 33, 150} {
		for _, p := range CircleMidpoint(0, 0, r) {
			d := math.Hypot(float64(p.X), float64(p.Y))
			assert.InDelta(t, float64(r), d, 1, "r=%d p=%v", r, p)
		}
	}
}

func TestCircleParametric(t *testing.T) {
	r := 50
	pts := CircleParametric(100, 100, r)
	require.NotEmpty(t, pts)
	assert.Zero(t, len(pts)%8)

	set := pointSet(pts)
	assert.True(t, set[image.Point{100, 150}], "alfa=0 sample missing")
	for p := range set {
		d := math.Hypot(float64(p.X-100), float64(p.Y-100))
		assert.LessOrEqual(t, d, float64(r)+1e-9)
		assert.GreaterOrEqual(t, d, float64(r)-math.Sqrt2)
	}
}

func TestCircleParametricOverplotsSmallCircles(t *testing.T) {
	pts := CircleParametric(0, 0, 2)
	assert.Greater(t, len(pts), len(Unique(pts))*10)
}

func TestUniqueKeepsOrder(t *testing.T) {
	in := []image.Point{{1, 1}, {2, 2}, {1, 1}, {3, 3}, {2, 2}}
	assert.Equal(t, []image.Point{{1, 1}, {2, 2}, {3, 3}}, Unique(in))
}

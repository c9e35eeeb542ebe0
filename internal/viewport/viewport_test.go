package viewport

import (
	"testing"

	"PrimitiveBoard/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMapper(t *testing.T) Mapper {
	t.Helper()
	m, err := NewMapper(R(0, 0, 680, 510), R(450, 350, 680, 510))
	require.NoError(t, err)
	return m
}

func TestMapperCorners(t *testing.T) {
	m := defaultMapper(t)
	assert.Equal(t, geom.Pt(450, 350), m.Point(geom.Pt(0, 0)))
	assert.Equal(t, geom.Pt(680, 510), m.Point(geom.Pt(680, 510)))

	mid := m.Point(geom.Pt(340, 255))
	assert.InDelta(t, 565, mid.X, 1e-9)
	assert.InDelta(t, 430, mid.Y, 1e-9)
}

func TestMapperMonotonic(t *testing.T) {
	m := defaultMapper(t)
	prev := m.Point(geom.Pt(-50, -50))
	for v := -49.0; v <= 800; v += 7.5 {
		cur := m.Point(geom.Pt(v, v))
		assert.Greater(t, cur.X, prev.X)
		assert.Greater(t, cur.Y, prev.Y)
		prev = cur
	}
}

func TestMapperLengthUsesHorizontalRatio(t *testing.T) {
	m, err := NewMapper(R(0, 0, 100, 100), R(0, 0, 50, 400))
	require.NoError(t, err)
	assert.InDelta(t, 5, m.Length(10), 1e-12)

	d := defaultMapper(t)
	assert.InDelta(t, 100*230.0/680.0, d.Length(100), 1e-12)
}

func TestMapperRejectsDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		win, vp Rect
	}{
		{"flat window", R(0, 0, 0, 10), R(0, 0, 1, 1)},
		{"inverted window", R(10, 0, 0, 10), R(0, 0, 1, 1)},
		{"flat viewport", R(0, 0, 10, 10), R(0, 5, 1, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMapper(tt.win, tt.vp)
			assert.ErrorIs(t, err, ErrDegenerateRect)
		})
	}
}

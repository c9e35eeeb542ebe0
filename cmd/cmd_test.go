package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"PrimitiveBoard/internal/codec"
	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDrawing(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "drawing.json")
	prims := []state.Primitive{
		state.NewPrimitive(state.PointShape(geom.Pt(10, 10)), state.Black, 2),
		state.NewPrimitive(state.CircleShape(geom.Circle{Center: geom.Pt(50, 50), Radius: 10}), state.Red, 1),
		state.NewPrimitive(state.TriangleShape(geom.Triangle{P1: geom.Pt(0, 0), P2: geom.Pt(5, 0), P3: geom.Pt(3, 4)}), state.Blue, 3),
	}
	require.NoError(t, codec.WriteFile(path, prims, codec.FormatJSON))
	return path
}

func TestRasterCircleCommand(t *testing.T) {
	out, err := run(t, "raster", "circle", "--cx", "3", "--cy", "4", "--r", "0", "--algo", "midpoint")
	require.NoError(t, err)
	assert.Equal(t, "3 4\n# 1 pixels\n", out)

	_, err = run(t, "raster", "circle", "--r", "3", "--algo", "native")
	assert.Error(t, err)
}

func TestRasterLineCommand(t *testing.T) {
	out, err := run(t, "raster", "line", "--from", "0,0", "--to", "4,2", "--algo", "midpoint")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n1 0\n2 1\n3 1\n4 2\n# 5 pixels\n", out)
}

func TestInfoCommand(t *testing.T) {
	path := writeDrawing(t, t.TempDir())
	out, err := run(t, "info", "--list", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Format:  json")
	assert.Contains(t, out, "Figures: 3")
	assert.Contains(t, out, "TRIANGLE")
	assert.Contains(t, out, "center (50, 50) radius 10")
}

func TestConvertRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeDrawing(t, dir)
	legacy := filepath.Join(dir, "drawing.txt")
	back := filepath.Join(dir, "back.json")

	out, err := run(t, "convert", "--to", "legacy", src, legacy)
	require.NoError(t, err)
	assert.Contains(t, out, "json -> legacy")

	data, err := os.ReadFile(legacy)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PONTO,0,0,0,2,10,10\n"))

	_, err = run(t, "convert", "--to", "json", legacy, back)
	require.NoError(t, err)

	want, _, err := codec.ReadFile(src)
	require.NoError(t, err)
	got, _, err := codec.ReadFile(back)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Shape, got[i].Shape)
		assert.Equal(t, want[i].Color, got[i].Color)
	}
}

func TestRenderAndPDFCommands(t *testing.T) {
	dir := t.TempDir()
	src := writeDrawing(t, dir)

	png := filepath.Join(dir, "out.png")
	out, err := run(t, "render", "--fit", "--scale", "2", src, png)
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered 3 figures")
	_, err = os.Stat(png)
	require.NoError(t, err)

	pdf := filepath.Join(dir, "out.pdf")
	_, err = run(t, "pdf", "--viewport", src, pdf)
	require.NoError(t, err)
	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRasterRandomCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.json")
	_, err := run(t, "raster", "random", "--count", "12", "--seed", "3", path)
	require.NoError(t, err)

	got, _, err := codec.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 12)
}

func TestMissingInput(t *testing.T) {
	_, err := run(t, "info", filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, codec.ErrIO)
}

func TestCanvasFor(t *testing.T) {
	_, err := run(t, "raster", "circle", "--r", "1")
	require.NoError(t, err)

	c := canvasFor(nil, true)
	assert.Equal(t, 850, c.Width)
	c = canvasFor([]state.Primitive{state.NewPrimitive(state.PointShape(geom.Pt(99.5, 20)), state.Black, 1)}, true)
	assert.Equal(t, 101, c.Width)
	assert.Equal(t, 22, c.Height)
}

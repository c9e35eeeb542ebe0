package config

import (
	"os"
	"path/filepath"
	"testing"

	"PrimitiveBoard/internal/codec"
	"PrimitiveBoard/internal/render"
	"PrimitiveBoard/internal/state"
	"PrimitiveBoard/internal/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, viewport.R(0, 0, 680, 510), c.Window)
	assert.Equal(t, viewport.R(450, 350, 680, 510), c.Viewport)
	assert.False(t, c.ViewportEnabled)
	assert.Equal(t, state.Blue, c.ViewportColor)
	assert.Equal(t, 850, c.CanvasWidth)
	assert.Equal(t, 730, c.CanvasHeight)
	assert.Equal(t, state.Black, c.Color)
	assert.Equal(t, 1, c.Width)
	assert.Equal(t, state.KindNone, c.Kind)
	assert.Equal(t, render.CircleMidpoint, c.Circle)
	assert.Equal(t, render.LineNative, c.Line)
	assert.Equal(t, codec.FormatJSON, c.SaveFormat)
	assert.Equal(t, "info", c.LogLevel)

	assert.Equal(t, state.Blue, c.RenderOptions().ViewportColor)
	assert.Equal(t, c.Window, c.Mapper().Window)
}

func TestFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
canvas:
  width: 400
draw:
  kind: circle
  width: 5
  color: {r: 200, g: 10, b: 20}
render:
  line: midpoint
viewport:
  enabled: true
`), 0o644))

	t.Setenv("PRIMITIVEBOARD_CANVAS_HEIGHT", "300")
	t.Setenv("PRIMITIVEBOARD_SAVE_FORMAT", "legacy")

	v, err := New(path)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 400, c.CanvasWidth)
	assert.Equal(t, 300, c.CanvasHeight)
	assert.Equal(t, state.KindCircle, c.Kind)
	assert.Equal(t, 5, c.Width)
	assert.Equal(t, state.RGB{R: 200, G: 10, B: 20}, c.Color)
	assert.Equal(t, render.LineMidpoint, c.Line)
	assert.True(t, c.ViewportEnabled)
	assert.Equal(t, codec.FormatLegacy, c.SaveFormat)
}

func TestLoadRejects(t *testing.T) {
	tests := map[string][2]any{
		"degenerate window": {CfgWindowXMax, 0},
		"color range":       {CfgDrawR, 300},
		"width":             {CfgDrawWidth, 0},
		"canvas":            {CfgCanvasWidth, -1},
		"kind":              {CfgDrawKind, "hexagon"},
		"circle algo":       {CfgRenderCircle, "fast"},
		"line algo":         {CfgRenderLine, "wu"},
		"scale":             {CfgExportScale, 0},
		"format":            {CfgSaveFormat, "xml"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := New("")
			require.NoError(t, err)
			v.Set(kv[0].(string), kv[1])
			_, err = Load(v)
			assert.Error(t, err)
		})
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

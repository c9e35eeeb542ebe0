// Package config reads board settings from defaults, an optional config
// file and PRIMITIVEBOARD_* environment variables, in rising priority.
package config

import (
	"fmt"
	"strings"

	"PrimitiveBoard/internal/codec"
	"PrimitiveBoard/internal/render"
	"PrimitiveBoard/internal/state"
	"PrimitiveBoard/internal/viewport"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, with dots in the
// key replaced by underscores: PRIMITIVEBOARD_CANVAS_WIDTH.
const EnvPrefix = "PRIMITIVEBOARD"

// Keys understood by Load.
const (
	CfgWindowXMin   = "window.xmin"
	CfgWindowYMin   = "window.ymin"
	CfgWindowXMax   = "window.xmax"
	CfgWindowYMax   = "window.ymax"
	CfgViewportXMin = "viewport.xmin"
	CfgViewportYMin = "viewport.ymin"
	CfgViewportXMax = "viewport.xmax"
	CfgViewportYMax = "viewport.ymax"
	CfgViewportOn   = "viewport.enabled"
	CfgViewportR    = "viewport.color.r"
	CfgViewportG    = "viewport.color.g"
	CfgViewportB    = "viewport.color.b"
	CfgCanvasWidth  = "canvas.width"
	CfgCanvasHeight = "canvas.height"
	CfgDrawR        = "draw.color.r"
	CfgDrawG        = "draw.color.g"
	CfgDrawB        = "draw.color.b"
	CfgDrawWidth    = "draw.width"
	CfgDrawKind     = "draw.kind"
	CfgRenderCircle = "render.circle"
	CfgRenderLine   = "render.line"
	CfgExportScale  = "export.scale"
	CfgSaveFormat   = "save.format"
	CfgLogLevel     = "log.level"
)

// SetDefaults installs the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(CfgWindowXMin, 0)
	v.SetDefault(CfgWindowYMin, 0)
	v.SetDefault(CfgWindowXMax, 680)
	v.SetDefault(CfgWindowYMax, 510)
	v.SetDefault(CfgViewportXMin, 450)
	v.SetDefault(CfgViewportYMin, 350)
	v.SetDefault(CfgViewportXMax, 680)
	v.SetDefault(CfgViewportYMax, 510)
	v.SetDefault(CfgViewportOn, false)
	v.SetDefault(CfgViewportR, 0)
	v.SetDefault(CfgViewportG, 0)
	v.SetDefault(CfgViewportB, 255)
	v.SetDefault(CfgCanvasWidth, 850)
	v.SetDefault(CfgCanvasHeight, 730)
	v.SetDefault(CfgDrawR, 0)
	v.SetDefault(CfgDrawG, 0)
	v.SetDefault(CfgDrawB, 0)
	v.SetDefault(CfgDrawWidth, 1)
	v.SetDefault(CfgDrawKind, state.KindNone.String())
	v.SetDefault(CfgRenderCircle, render.CircleMidpoint.String())
	v.SetDefault(CfgRenderLine, render.LineNative.String())
	v.SetDefault(CfgExportScale, 1.0)
	v.SetDefault(CfgSaveFormat, codec.FormatJSON.String())
	v.SetDefault(CfgLogLevel, "info")
}

// New returns a viper instance with defaults and environment overrides
// installed, reading path as well when it is not empty.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

// Config is the validated, typed view of the settings.
type Config struct {
	Window          viewport.Rect
	Viewport        viewport.Rect
	ViewportEnabled bool
	ViewportColor   state.RGB

	CanvasWidth  int
	CanvasHeight int

	Color state.RGB
	Width int
	Kind  state.Kind

	Circle render.CircleAlgorithm
	Line   render.LineAlgorithm

	ExportScale float64
	SaveFormat  codec.Format
	LogLevel    string
}

// Load reads and validates every key from v.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Window: viewport.R(
			v.GetFloat64(CfgWindowXMin), v.GetFloat64(CfgWindowYMin),
			v.GetFloat64(CfgWindowXMax), v.GetFloat64(CfgWindowYMax)),
		Viewport: viewport.R(
			v.GetFloat64(CfgViewportXMin), v.GetFloat64(CfgViewportYMin),
			v.GetFloat64(CfgViewportXMax), v.GetFloat64(CfgViewportYMax)),
		ViewportEnabled: v.GetBool(CfgViewportOn),
		CanvasWidth:     v.GetInt(CfgCanvasWidth),
		CanvasHeight:    v.GetInt(CfgCanvasHeight),
		Width:           v.GetInt(CfgDrawWidth),
		ExportScale:     v.GetFloat64(CfgExportScale),
		LogLevel:        v.GetString(CfgLogLevel),
	}

	var err error
	if c.ViewportColor, err = rgb(v, CfgViewportR, CfgViewportG, CfgViewportB); err != nil {
		return Config{}, err
	}
	if c.Color, err = rgb(v, CfgDrawR, CfgDrawG, CfgDrawB); err != nil {
		return Config{}, err
	}
	if _, err = viewport.NewMapper(c.Window, c.Viewport); err != nil {
		return Config{}, err
	}
	if c.CanvasWidth < 1 || c.CanvasHeight < 1 {
		return Config{}, fmt.Errorf("canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.Width < 1 {
		return Config{}, fmt.Errorf("%s must be at least 1, got %d", CfgDrawWidth, c.Width)
	}
	if c.ExportScale <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %g", CfgExportScale, c.ExportScale)
	}

	var ok bool
	if c.Kind, ok = state.ParseKind(strings.ToUpper(v.GetString(CfgDrawKind))); !ok {
		return Config{}, fmt.Errorf("%s: unknown kind %q", CfgDrawKind, v.GetString(CfgDrawKind))
	}
	if c.Circle, err = render.ParseCircleAlgorithm(v.GetString(CfgRenderCircle)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", CfgRenderCircle, err)
	}
	if c.Line, err = render.ParseLineAlgorithm(v.GetString(CfgRenderLine)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", CfgRenderLine, err)
	}
	if c.SaveFormat, err = codec.ParseFormat(v.GetString(CfgSaveFormat)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", CfgSaveFormat, err)
	}
	return c, nil
}

func rgb(v *viper.Viper, rk, gk, bk string) (state.RGB, error) {
	var out [3]uint8
	for i, k := range []string{rk, gk, bk} {
		n := v.GetInt(k)
		if n < 0 || n > 255 {
			return state.RGB{}, fmt.Errorf("%s out of range: %d", k, n)
		}
		out[i] = uint8(n)
	}
	return state.RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// Mapper builds the window to viewport transform. Load has already
// validated both rectangles.
func (c Config) Mapper() viewport.Mapper {
	m, _ := viewport.NewMapper(c.Window, c.Viewport)
	return m
}

// RenderOptions returns the render settings without a viewport pass.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		Circle:        c.Circle,
		Line:          c.Line,
		ViewportColor: c.ViewportColor,
	}
}

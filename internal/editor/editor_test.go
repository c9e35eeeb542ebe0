package editor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"PrimitiveBoard/internal/codec"
	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/render"
	"PrimitiveBoard/internal/state"
	"PrimitiveBoard/internal/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioUndoRedo(t *testing.T) {
	e := New()
	e.SetKind(state.KindPoint)
	require.NoError(t, e.SetStrokeWidth(2))
	e.PointerDown(10, 10)

	e.SetKind(state.KindLine)
	require.NoError(t, e.SetStrokeWidth(1))
	e.PointerDown(0, 0)
	e.PointerDrag(3, 3)
	e.PointerUp(5, 5)

	ps := e.Renderables()
	require.Len(t, ps, 2)

	e.Undo()
	got := e.Renderables()
	require.Len(t, got, 1)
	assert.Equal(t, ps[0], got[0])
	assert.Equal(t, 2, got[0].Width)

	e.Redo()
	assert.Equal(t, ps, e.Renderables())
	assert.Equal(t, geom.Segment{P1: geom.Pt(0, 0), P2: geom.Pt(5, 5)}, ps[1].Shape.Segment)
}

func TestCircleGestureAndElastic(t *testing.T) {
	e := New(WithKind(state.KindCircle), WithStyle(state.Red, 4))

	e.PointerDown(50, 50)
	e.PointerDrag(60, 50)
	rs := e.Renderables()
	require.Len(t, rs, 1)
	assert.Empty(t, rs[0].ID)
	assert.Equal(t, 10.0, rs[0].Shape.Circle.Radius)
	assert.Equal(t, state.Red, rs[0].Color)
	assert.Equal(t, 0, e.Document().Len())

	e.PointerUp(50, 60)
	committed := e.Document().Committed()
	require.Len(t, committed, 1)
	assert.Equal(t, geom.Circle{Center: geom.Pt(50, 50), Radius: 10}, committed[0].Shape.Circle)
	assert.Equal(t, 4, committed[0].Width)
	assert.Len(t, e.Renderables(), 1)
	assert.Equal(t, state.PhaseIdle, e.Phase())
}

func TestTriangleGesture(t *testing.T) {
	e := New(WithKind(state.KindTriangle))
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	e.PointerDrag(5, 0)
	e.PointerDown(5, 0)
	e.PointerDrag(2, 2)
	assert.Equal(t, 0, e.Document().Len())
	e.PointerDown(3, 4)

	committed := e.Document().Committed()
	require.Len(t, committed, 1)
	assert.Equal(t, geom.Triangle{P1: geom.Pt(0, 0), P2: geom.Pt(5, 0), P3: geom.Pt(3, 4)}, committed[0].Shape.Triangle)
}

func TestCommitClearsRedo(t *testing.T) {
	e := New(WithKind(state.KindPoint))
	e.PointerDown(1, 1)
	e.PointerDown(2, 2)
	e.Undo()
	assert.Len(t, e.Document().RedoStack(), 1)
	e.PointerDown(3, 3)
	assert.Empty(t, e.Document().RedoStack())
}

func TestKindChangeDiscardsPreview(t *testing.T) {
	e := New(WithKind(state.KindRectangle))
	e.PointerDown(0, 0)
	e.PointerDrag(10, 10)
	require.Len(t, e.Renderables(), 1)

	e.SetKind(state.KindLine)
	assert.Empty(t, e.Renderables())
	e.PointerUp(20, 20)
	assert.Equal(t, 0, e.Document().Len())
}

func TestClear(t *testing.T) {
	e := New(WithKind(state.KindLine))
	e.PointerDown(0, 0)
	e.PointerUp(1, 1)
	e.PointerDown(2, 2)
	e.Undo()
	e.Clear()

	assert.Empty(t, e.Renderables())
	assert.Empty(t, e.Document().RedoStack())
	assert.Equal(t, state.PhaseIdle, e.Phase())
	assert.Equal(t, state.KindLine, e.Kind())
}

func TestStatusAndCallbacks(t *testing.T) {
	e := New()
	var statuses []string
	changes := 0
	e.OnStatus = func(s string) { statuses = append(statuses, s) }
	e.OnChange = func() { changes++ }

	e.PointerMove(12.7, 40.2)
	assert.Equal(t, "(12, 40) - NONE", e.Status())

	e.SetKind(state.KindCircle)
	assert.Equal(t, "(12, 40) - CIRCLE", statuses[len(statuses)-1])
	assert.Zero(t, changes)

	e.PointerDown(0, 0)
	e.PointerDrag(3, 4)
	e.PointerUp(3, 4)
	assert.Equal(t, 3, changes)
	assert.Equal(t, "(3, 4) - CIRCLE", statuses[len(statuses)-1])

	e.PointerDown(100, 100)
	e.Undo()
	e.Undo()
	e.Undo()
	assert.Equal(t, 5, changes)
}

func TestStrokeWidthValidation(t *testing.T) {
	e := New()
	assert.ErrorIs(t, e.SetStrokeWidth(0), ErrInvalidStrokeWidth)
	assert.ErrorIs(t, e.SetStrokeWidth(-3), ErrInvalidStrokeWidth)
	assert.Equal(t, 1, e.StrokeWidth())
	require.NoError(t, e.SetStrokeWidth(50))
	assert.Equal(t, 50, e.StrokeWidth())
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")

	src := New(WithKind(state.KindPoint), WithStyle(state.Blue, 3))
	src.PointerDown(1, 2)
	src.SetKind(state.KindRectangle)
	src.PointerDown(0, 0)
	src.PointerUp(8, 9)
	require.NoError(t, src.Save(path))

	dst := New(WithKind(state.KindLine))
	dst.PointerDown(4, 4)
	require.NoError(t, dst.Load(path))
	assert.Equal(t, src.Document().Committed(), dst.Renderables())
	assert.Equal(t, state.PhaseIdle, dst.Phase())
	assert.Empty(t, dst.Document().RedoStack())
}

func TestFailedLoadKeepsDocument(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"figuras":[{"tipo":"PONTO"}]}`), 0o644))

	e := New(WithKind(state.KindPoint))
	e.PointerDown(5, 5)
	before := e.Document().Committed()

	assert.ErrorIs(t, e.Load(bad), codec.ErrMalformedDocument)
	assert.ErrorIs(t, e.Load(filepath.Join(dir, "missing.json")), codec.ErrIO)
	assert.Equal(t, before, e.Document().Committed())
}

func TestSaveToLoadFromLegacy(t *testing.T) {
	src := New(WithKind(state.KindPoint), WithSaveFormat(codec.FormatLegacy))
	src.PointerDown(7, 8)

	var buf bytes.Buffer
	require.NoError(t, src.SaveTo(&buf))
	assert.Equal(t, "PONTO,0,0,0,1,7,8\n", buf.String())

	dst := New()
	require.NoError(t, dst.LoadFrom(&buf))
	require.Len(t, dst.Renderables(), 1)
	assert.Equal(t, geom.Pt(7, 8), dst.Renderables()[0].Shape.Point)
}

func TestRenderOptionsViewport(t *testing.T) {
	m, err := viewport.NewMapper(viewport.R(0, 0, 10, 10), viewport.R(0, 0, 5, 5))
	require.NoError(t, err)
	e := New(WithViewport(m), WithRenderOptions(render.Options{Circle: render.CircleMidpoint}))

	assert.Nil(t, e.RenderOptions().Viewport)
	e.SetViewportEnabled(true)
	o := e.RenderOptions()
	require.NotNil(t, o.Viewport)
	assert.Equal(t, m, *o.Viewport)
	assert.Equal(t, render.CircleMidpoint, o.Circle)
	assert.True(t, e.ViewportEnabled())
}

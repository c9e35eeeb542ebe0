// Package editor is the board engine a UI shell drives: it owns the
// document, the construction state and the current drawing style.
package editor

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"PrimitiveBoard/internal/codec"
	"PrimitiveBoard/internal/geom"
	"PrimitiveBoard/internal/logging"
	"PrimitiveBoard/internal/render"
	"PrimitiveBoard/internal/state"
	"PrimitiveBoard/internal/viewport"
)

// ErrInvalidStrokeWidth is returned by SetStrokeWidth for widths below 1.
var ErrInvalidStrokeWidth = errors.New("editor: stroke width must be at least 1")

// Editor turns pointer events and commands into document changes.
//
// Shell callbacks are invoked after the editor lock is released, so they
// may call back into the editor.
type Editor struct {
	mu sync.Mutex

	doc  *state.Document
	cons *state.Constructor

	color    state.RGB
	width    int
	cursor   geom.Point
	viewport bool
	mapper   *viewport.Mapper
	opts     render.Options
	format   codec.Format

	// OnChange fires whenever the renderables change.
	OnChange func()
	// OnStatus receives the status line after every pointer move.
	OnStatus func(string)
}

// Option configures a new Editor.
type Option func(*Editor)

// WithDocument makes the editor operate on d instead of a fresh document.
func WithDocument(d *state.Document) Option {
	return func(e *Editor) { e.doc = d }
}

// WithStyle sets the initial color and stroke width. Widths below 1 are
// ignored.
func WithStyle(c state.RGB, width int) Option {
	return func(e *Editor) {
		e.color = c
		if width >= 1 {
			e.width = width
		}
	}
}

// WithKind selects the initial primitive kind.
func WithKind(k state.Kind) Option {
	return func(e *Editor) { e.cons.SetKind(k) }
}

// WithRenderOptions sets the rasterizer choices and the viewport color
// handed to the renderer.
func WithRenderOptions(o render.Options) Option {
	return func(e *Editor) { e.opts = o }
}

// WithViewport sets the window to viewport mapping used when the viewport
// pass is enabled.
func WithViewport(m viewport.Mapper) Option {
	return func(e *Editor) { e.mapper = &m }
}

// WithSaveFormat selects the format Save and SaveTo write.
func WithSaveFormat(f codec.Format) Option {
	return func(e *Editor) { e.format = f }
}

// New returns an editor with an empty document, no kind selected, black
// ink and width 1.
func New(opts ...Option) *Editor {
	e := &Editor{
		doc:    state.NewDocument(),
		cons:   state.NewConstructor(),
		color:  state.Black,
		width:  1,
		format: codec.FormatJSON,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Document exposes the underlying document.
func (e *Editor) Document() *state.Document {
	return e.doc
}

func (e *Editor) changed() {
	if e.OnChange != nil {
		e.OnChange()
	}
}

func (e *Editor) status(s string) {
	if e.OnStatus != nil {
		e.OnStatus(s)
	}
}

// commitLocked stores sh with the current style. Caller holds e.mu.
func (e *Editor) commitLocked(sh state.Shape) {
	e.doc.Commit(state.NewPrimitive(sh, e.color, e.width))
}

// PointerDown forwards a button press.
func (e *Editor) PointerDown(x, y float64) {
	e.mu.Lock()
	p := geom.Pt(x, y)
	e.cursor = p
	sh, done := e.cons.PointerDown(p)
	if done {
		e.commitLocked(sh)
	}
	preview := e.cons.Phase() != state.PhaseIdle
	e.mu.Unlock()

	if done || preview {
		e.changed()
	}
}

// PointerDrag forwards pointer motion with the button held.
func (e *Editor) PointerDrag(x, y float64) {
	e.mu.Lock()
	p := geom.Pt(x, y)
	e.cursor = p
	moved := e.cons.PointerDrag(p)
	st := e.statusLocked()
	e.mu.Unlock()

	e.status(st)
	if moved {
		e.changed()
	}
}

// PointerUp forwards a button release.
func (e *Editor) PointerUp(x, y float64) {
	e.mu.Lock()
	p := geom.Pt(x, y)
	e.cursor = p
	sh, done := e.cons.PointerUp(p)
	if done {
		e.commitLocked(sh)
	}
	e.mu.Unlock()

	if done {
		e.changed()
	}
}

// PointerMove records the hover position for the status line only.
func (e *Editor) PointerMove(x, y float64) {
	e.mu.Lock()
	e.cursor = geom.Pt(x, y)
	st := e.statusLocked()
	e.mu.Unlock()

	e.status(st)
}

// Status returns "(x, y) - KIND" for the last pointer position.
func (e *Editor) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusLocked()
}

func (e *Editor) statusLocked() string {
	return fmt.Sprintf("(%d, %d) - %s", int(e.cursor.X), int(e.cursor.Y), e.cons.Kind())
}

// SetKind switches the primitive kind and abandons any gesture in progress.
func (e *Editor) SetKind(k state.Kind) {
	e.mu.Lock()
	hadPreview := e.cons.Phase() != state.PhaseIdle
	e.cons.SetKind(k)
	st := e.statusLocked()
	e.mu.Unlock()

	e.status(st)
	if hadPreview {
		e.changed()
	}
}

// Kind returns the active primitive kind.
func (e *Editor) Kind() state.Kind {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cons.Kind()
}

// Phase reports what is being constructed right now.
func (e *Editor) Phase() state.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cons.Phase()
}

// SetColor sets the color used for subsequent commits and the preview.
func (e *Editor) SetColor(c state.RGB) {
	e.mu.Lock()
	e.color = c
	preview := e.cons.Phase() != state.PhaseIdle
	e.mu.Unlock()
	if preview {
		e.changed()
	}
}

// Color returns the current drawing color.
func (e *Editor) Color() state.RGB {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.color
}

// SetStrokeWidth sets the stroke width (dot diameter for points).
func (e *Editor) SetStrokeWidth(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStrokeWidth, n)
	}
	e.mu.Lock()
	e.width = n
	preview := e.cons.Phase() != state.PhaseIdle
	e.mu.Unlock()
	if preview {
		e.changed()
	}
	return nil
}

// StrokeWidth returns the current stroke width.
func (e *Editor) StrokeWidth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width
}

// SetViewportEnabled toggles the viewport pass.
func (e *Editor) SetViewportEnabled(on bool) {
	e.mu.Lock()
	changed := e.viewport != on
	e.viewport = on
	e.mu.Unlock()
	if changed {
		e.changed()
	}
}

// ViewportEnabled reports whether the viewport pass is on.
func (e *Editor) ViewportEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}

// RenderOptions returns the options a repaint should use. Viewport is set
// only while the viewport pass is enabled.
func (e *Editor) RenderOptions() render.Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	o := e.opts
	o.Viewport = nil
	if e.viewport && e.mapper != nil {
		m := *e.mapper
		o.Viewport = &m
	}
	return o
}

// Undo removes the last committed primitive.
func (e *Editor) Undo() {
	if e.doc.Undo() {
		e.changed()
	}
}

// Redo restores the last undone primitive.
func (e *Editor) Redo() {
	if e.doc.Redo() {
		e.changed()
	}
}

// Clear empties the document and abandons any gesture in progress. The
// selected kind and style are kept.
func (e *Editor) Clear() {
	e.mu.Lock()
	e.doc.Clear()
	e.cons.Reset()
	e.mu.Unlock()
	e.changed()
}

// Renderables returns the committed primitives in draw order followed by
// the elastic preview, if one is active. The preview has an empty ID.
func (e *Editor) Renderables() []state.Primitive {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.doc.Committed()
	if sh, ok := e.cons.Elastic(); ok {
		out = append(out, state.Primitive{Shape: sh, Color: e.color, Width: e.width})
	}
	return out
}

// Save writes the committed primitives to path. The document is not
// modified, whether or not the write succeeds.
func (e *Editor) Save(path string) error {
	e.mu.Lock()
	f := e.format
	e.mu.Unlock()
	if err := codec.WriteFile(path, e.doc.Committed(), f); err != nil {
		logging.For("editor").Error("save failed", "path", path, "err", err)
		return err
	}
	return nil
}

// SaveTo writes the committed primitives to w.
func (e *Editor) SaveTo(w io.Writer) error {
	e.mu.Lock()
	f := e.format
	e.mu.Unlock()
	return codec.Encode(w, e.doc.Committed(), f)
}

// Load replaces the document with the contents of path. On failure the
// current document is left exactly as it was.
func (e *Editor) Load(path string) error {
	ps, _, err := codec.ReadFile(path)
	if err != nil {
		logging.For("editor").Error("load failed", "path", path, "err", err)
		return err
	}
	e.replace(ps)
	return nil
}

// LoadFrom is Load for an arbitrary reader.
func (e *Editor) LoadFrom(r io.Reader) error {
	ps, _, err := codec.Decode(r)
	if err != nil {
		return err
	}
	e.replace(ps)
	return nil
}

func (e *Editor) replace(ps []state.Primitive) {
	e.mu.Lock()
	e.doc.Replace(ps)
	e.cons.Reset()
	e.mu.Unlock()
	e.changed()
}

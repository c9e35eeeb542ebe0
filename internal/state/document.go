package state

import (
	"sync"

	"PrimitiveBoard/internal/logging"
)

// Document is the ordered list of committed primitives plus the redo stack.
// Index 0 of the committed list is drawn first (bottom of the z-order).
//
// The board mutates a Document from a single goroutine, but the lock keeps
// a concurrent reader (an exporter, a loader running off the UI thread) from
// observing a half-applied Replace.
type Document struct {
	mu        sync.RWMutex
	committed []Primitive
	redo      []Primitive
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Commit appends p and invalidates the redo stack.
func (d *Document) Commit(p Primitive) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.committed = append(d.committed, p)
	d.redo = nil

	logging.For("document").Debug("commit",
		"id", p.ID, "kind", p.Kind(), "count", len(d.committed))
}

// Undo moves the last committed primitive onto the redo stack. It reports
// false when there was nothing to undo.
func (d *Document) Undo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.committed)
	if n == 0 {
		return false
	}
	last := d.committed[n-1]
	d.committed = d.committed[:n-1]
	d.redo = append(d.redo, last)

	logging.For("document").Debug("undo", "id", last.ID, "kind", last.Kind())
	return true
}

// Redo restores the most recently undone primitive. It reports false when
// the redo stack is empty.
func (d *Document) Redo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.redo)
	if n == 0 {
		return false
	}
	last := d.redo[n-1]
	d.redo = d.redo[:n-1]
	d.committed = append(d.committed, last)

	logging.For("document").Debug("redo", "id", last.ID, "kind", last.Kind())
	return true
}

// Clear empties both stacks.
func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.committed = nil
	d.redo = nil
	logging.For("document").Debug("clear")
}

// Replace swaps in ps as the committed list and resets redo. Used by load,
// after the whole file has been parsed.
func (d *Document) Replace(ps []Primitive) {
	cp := make([]Primitive, len(ps))
	copy(cp, ps)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.committed = cp
	d.redo = nil
	logging.For("document").Debug("replace", "count", len(cp))
}

// Committed returns a copy of the committed list in drawing order.
func (d *Document) Committed() []Primitive {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Primitive, len(d.committed))
	copy(out, d.committed)
	return out
}

// RedoStack returns a copy of the redo stack, top of stack last.
func (d *Document) RedoStack() []Primitive {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Primitive, len(d.redo))
	copy(out, d.redo)
	return out
}

// Len returns the number of committed primitives.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.committed)
}

package history

import "kaku/internal/canvas"

// Change records one cell before and after an edit.
type Change struct {
	X   int
	Y   int
	Old canvas.Cell
	New canvas.Cell
}

// Setter is anything an operation can be replayed onto.
type Setter interface {
	Set(x, y int, cell canvas.Cell) bool
}

// Operation is an immutable record of one or more cell changes; the unit of
// undo/redo. It holds diff values only, never references into a live grid.
type Operation struct {
	changes []Change
}

// SetCell builds a single-cell operation.
func SetCell(x, y int, old, new canvas.Cell) Operation {
	return Operation{changes: []Change{{X: x, Y: y, Old: old, New: new}}}
}

// SetCells builds a multi-cell operation. The slice is copied.
func SetCells(changes []Change) Operation {
	cp := make([]Change, len(changes))
	copy(cp, changes)
	return Operation{changes: cp}
}

// Len is the number of changed cells.
func (o Operation) Len() int {
	return len(o.changes)
}

// Changes returns a copy of the recorded changes.
func (o Operation) Changes() []Change {
	cp := make([]Change, len(o.changes))
	copy(cp, o.changes)
	return cp
}

// Apply writes every New value (redo direction).
func (o Operation) Apply(dst Setter) {
	for _, ch := range o.changes {
		dst.Set(ch.X, ch.Y, ch.New)
	}
}

// Revert writes every Old value in reverse order (undo direction).
func (o Operation) Revert(dst Setter) {
	for i := len(o.changes) - 1; i >= 0; i-- {
		ch := o.changes[i]
		dst.Set(ch.X, ch.Y, ch.Old)
	}
}

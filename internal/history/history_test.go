package history

import (
	"testing"

	"kaku/internal/canvas"
)

func TestHistory_PushAndUndo(t *testing.T) {
	h := New(10)
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("fresh history must be empty")
	}

	h.Push(SetCell(0, 0, canvas.Empty, canvas.Block(1)))
	if !h.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}
	if h.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	op, ok := h.Undo()
	if !ok {
		t.Fatalf("expected Undo=true")
	}
	if op.Len() != 1 {
		t.Fatalf("op.Len()=%d, want 1", op.Len())
	}
	if h.CanUndo() {
		t.Fatalf("expected CanUndo=false after undo")
	}
	if !h.CanRedo() {
		t.Fatalf("expected CanRedo=true after undo")
	}
}

func TestHistory_Redo(t *testing.T) {
	h := New(10)
	h.Push(SetCell(0, 0, canvas.Empty, canvas.Block(1)))
	h.Undo()

	op, ok := h.Redo()
	if !ok {
		t.Fatalf("expected Redo=true")
	}
	if got := op.Changes()[0].New; got != canvas.Block(1) {
		t.Fatalf("redo op new=%+v", got)
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatalf("undo=%d redo=%d after redo", h.UndoLen(), h.RedoLen())
	}
}

func TestHistory_EmptyStacksAreNoOps(t *testing.T) {
	h := New(3)
	if _, ok := h.Undo(); ok {
		t.Fatalf("expected Undo=false on empty history")
	}
	if _, ok := h.Redo(); ok {
		t.Fatalf("expected Redo=false on empty history")
	}
	if h.UndoLen() != 0 || h.RedoLen() != 0 {
		t.Fatalf("empty-stack calls mutated history")
	}
}

func TestHistory_PushClearsRedo(t *testing.T) {
	h := New(10)
	h.Push(SetCell(0, 0, canvas.Empty, canvas.Block(1)))
	h.Push(SetCell(1, 0, canvas.Empty, canvas.Block(1)))
	h.Undo()
	h.Undo()
	if h.RedoLen() != 2 {
		t.Fatalf("redo=%d, want 2", h.RedoLen())
	}

	h.Push(SetCell(1, 1, canvas.Empty, canvas.Block(2)))
	if h.CanRedo() {
		t.Fatalf("push must clear every pending redo entry")
	}
}

func TestHistory_EvictsOldest(t *testing.T) {
	h := New(3)
	for i := 0; i < 5; i++ {
		h.Push(SetCell(i, 0, canvas.Empty, canvas.Block(1)))
	}
	if h.UndoLen() != 3 {
		t.Fatalf("undo=%d, want 3", h.UndoLen())
	}

	var xs []int
	for {
		op, ok := h.Undo()
		if !ok {
			break
		}
		xs = append(xs, op.Changes()[0].X)
	}
	want := []int{4, 3, 2}
	if len(xs) != len(want) {
		t.Fatalf("undone=%v, want %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("undone=%v, want %v", xs, want)
		}
	}
}

func TestHistory_DefaultDepth(t *testing.T) {
	if got := New(0).Cap(); got != DefaultDepth {
		t.Fatalf("New(0).Cap()=%d, want %d", got, DefaultDepth)
	}
	h := New(DefaultDepth)
	for i := 0; i < DefaultDepth+7; i++ {
		h.Push(SetCell(i%32, 0, canvas.Empty, canvas.Block(1)))
	}
	if h.UndoLen() != DefaultDepth {
		t.Fatalf("undo=%d, want %d", h.UndoLen(), DefaultDepth)
	}
}

func TestHistory_Clear(t *testing.T) {
	h := New(5)
	h.Push(SetCell(0, 0, canvas.Empty, canvas.Block(1)))
	h.Push(SetCell(0, 1, canvas.Empty, canvas.Block(1)))
	h.Undo()
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("Clear left entries behind")
	}
}

func TestOperation_ApplyRevert(t *testing.T) {
	c := canvas.New(4, 4)
	c.Set(1, 1, canvas.Block(2))
	before := c.Clone()

	old1, _ := c.Get(1, 1)
	old2, _ := c.Get(2, 1)
	op := SetCells([]Change{
		{X: 1, Y: 1, Old: old1, New: canvas.Block(5)},
		{X: 2, Y: 1, Old: old2, New: canvas.Block(5)},
	})

	op.Apply(c)
	if got, _ := c.Get(2, 1); got != canvas.Block(5) {
		t.Fatalf("apply: (2,1)=%+v", got)
	}
	op.Revert(c)
	if !c.Equal(before) {
		t.Fatalf("revert did not restore the canvas bit-for-bit")
	}
}

func TestOperation_IsImmutable(t *testing.T) {
	changes := []Change{{X: 0, Y: 0, Old: canvas.Empty, New: canvas.Block(1)}}
	op := SetCells(changes)
	changes[0].New = canvas.Block(9)

	got := op.Changes()
	if got[0].New != canvas.Block(1) {
		t.Fatalf("operation aliased the caller's slice")
	}
	got[0].New = canvas.Block(8)
	if op.Changes()[0].New != canvas.Block(1) {
		t.Fatalf("Changes() exposed internal storage")
	}
}

package history

// DefaultDepth is the undo depth used when none is configured.
const DefaultDepth = 50

// History keeps bounded undo and redo stacks of operations. It is a pure
// log: callers apply the returned operations to their own canvas.
type History struct {
	undo  []Operation
	redo  []Operation
	limit int
}

// New returns a history holding at most limit undo entries. A limit below
// one falls back to DefaultDepth.
func New(limit int) *History {
	if limit < 1 {
		limit = DefaultDepth
	}
	return &History{
		undo:  make([]Operation, 0, limit),
		redo:  make([]Operation, 0, limit),
		limit: limit,
	}
}

// Push records op, clears the redo stack and evicts the oldest entry once
// the undo stack is full.
func (h *History) Push(op Operation) {
	h.redo = h.redo[:0]
	h.undo = appendBounded(h.undo, op, h.limit)
}

// Undo pops the newest entry and moves it to the redo stack. The caller
// reverts it.
func (h *History) Undo() (Operation, bool) {
	if len(h.undo) == 0 {
		return Operation{}, false
	}
	i := len(h.undo) - 1
	op := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, op)
	return op, true
}

// Redo pops the newest undone entry and moves it back to the undo stack.
// The caller applies it.
func (h *History) Redo() (Operation, bool) {
	if len(h.redo) == 0 {
		return Operation{}, false
	}
	i := len(h.redo) - 1
	op := h.redo[i]
	h.redo = h.redo[:i]
	h.undo = appendBounded(h.undo, op, h.limit)
	return op, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
func (h *History) UndoLen() int  { return len(h.undo) }
func (h *History) RedoLen() int  { return len(h.redo) }
func (h *History) Cap() int      { return h.limit }

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

func appendBounded(stack []Operation, op Operation, limit int) []Operation {
	if len(stack) >= limit {
		n := copy(stack, stack[len(stack)-limit+1:])
		stack = stack[:n]
	}
	return append(stack, op)
}

package engine

import (
	"kaku/internal/canvas"
	"kaku/internal/history"
	"kaku/internal/tool"
)

func (a *App) draw() {
	if !a.tool.Active() {
		return
	}
	switch a.tool {
	case tool.Brush:
		a.paint(canvas.Block(a.fg))
	case tool.Eraser:
		a.paint(canvas.Empty)
	case tool.Fill:
		a.floodFill()
	}
}

// paint writes cell at the cursor and, with symmetry on, at the mirrored
// column. If the cursor cell already holds cell the call does nothing, even
// when the mirror differs.
func (a *App) paint(cell canvas.Cell) {
	x, y := a.cursor.X, a.cursor.Y
	if old, ok := a.canvas.Get(x, y); !ok || old == cell {
		return
	}
	targets := []int{x}
	if a.symmetry {
		if mx := a.canvas.Width() - 1 - x; mx != x {
			targets = append(targets, mx)
		}
	}

	var changes []history.Change
	for _, tx := range targets {
		old, ok := a.canvas.Get(tx, y)
		if !ok || old == cell {
			continue
		}
		changes = append(changes, history.Change{X: tx, Y: y, Old: old, New: cell})
	}
	a.commit(changes)
}

// floodFill repaints the 4-connected region of cells equal to the one under
// the cursor with a block in the foreground color. Cells are marked when
// pushed, so the stack never holds more than width*height entries.
func (a *App) floodFill() {
	sx, sy := a.cursor.X, a.cursor.Y
	target, ok := a.canvas.Get(sx, sy)
	if !ok {
		return
	}
	replacement := canvas.Block(a.fg)
	if target == replacement {
		return
	}

	w, h := a.canvas.Width(), a.canvas.Height()
	visited := make([]bool, w*h)
	stack := make([][2]int, 0, w*h)
	visited[sy*w+sx] = true
	stack = append(stack, [2]int{sx, sy})

	var changes []history.Change
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := p[0], p[1]

		changes = append(changes, history.Change{X: x, Y: y, Old: target, New: replacement})

		for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
			nx, ny := n[0], n[1]
			if !a.canvas.InBounds(nx, ny) || visited[ny*w+nx] {
				continue
			}
			if cur, _ := a.canvas.Get(nx, ny); cur != target {
				continue
			}
			visited[ny*w+nx] = true
			stack = append(stack, [2]int{nx, ny})
		}
	}
	a.commit(changes)
}

// commit writes changes to the canvas as one undoable operation.
func (a *App) commit(changes []history.Change) {
	if len(changes) == 0 {
		return
	}
	var op history.Operation
	if len(changes) == 1 {
		c := changes[0]
		op = history.SetCell(c.X, c.Y, c.Old, c.New)
	} else {
		op = history.SetCells(changes)
	}
	op.Apply(a.canvas)
	a.history.Push(op)
	a.dirty = true
}

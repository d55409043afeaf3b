package cursor

// Cursor is a position on the canvas. Every mutator clamps it to the bounds
// it is given, so X stays in [0, width) and Y in [0, height).
type Cursor struct {
	X int
	Y int
}

// At returns a cursor at (x, y) without clamping.
func At(x, y int) Cursor {
	return Cursor{X: x, Y: y}
}

// MoveBy shifts the cursor by (dx, dy) and clamps each axis independently.
func (c *Cursor) MoveBy(dx, dy, width, height int) {
	c.X += dx
	c.Y += dy
	c.clamp(width, height)
}

// JumpTo places the cursor at (x, y), clamped.
func (c *Cursor) JumpTo(x, y, width, height int) {
	c.X = x
	c.Y = y
	c.clamp(width, height)
}

// Home moves to the start of the current row.
func (c *Cursor) Home() {
	c.X = 0
}

// End moves to the last column of the current row.
func (c *Cursor) End(width int) {
	c.X = last(width)
}

func (c *Cursor) TopLeft() {
	c.X = 0
	c.Y = 0
}

func (c *Cursor) BottomRight(width, height int) {
	c.X = last(width)
	c.Y = last(height)
}

func (c *Cursor) clamp(width, height int) {
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.X > last(width) {
		c.X = last(width)
	}
	if c.Y > last(height) {
		c.Y = last(height)
	}
}

// last is the highest valid index for a bound; 0 for an empty axis.
func last(bound int) int {
	if bound <= 0 {
		return 0
	}
	return bound - 1
}

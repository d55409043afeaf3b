package canvas

// MaxSize caps both canvas dimensions.
const MaxSize = 32

// Reader is the read-only view of a grid handed to presentation and codecs.
type Reader interface {
	Width() int
	Height() int
	Get(x, y int) (Cell, bool)
}

// Canvas is a fixed-size, dense, row-major grid of cells.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// New allocates an empty canvas. Dimensions are clamped to [0, MaxSize].
func New(width, height int) *Canvas {
	width = clampDim(width)
	height = clampDim(height)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c.Clear()
	return c
}

func clampDim(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x, y) addresses a cell.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) index(x, y int) int {
	return y*c.width + x
}

// Get returns the cell at (x, y). ok is false outside the grid.
func (c *Canvas) Get(x, y int) (Cell, bool) {
	if !c.InBounds(x, y) {
		return Cell{}, false
	}
	return c.cells[c.index(x, y)], true
}

// Set stores cell at (x, y). Out of bounds writes are ignored and report false.
func (c *Canvas) Set(x, y int, cell Cell) bool {
	if !c.InBounds(x, y) {
		return false
	}
	c.cells[c.index(x, y)] = cell
	return true
}

// Fill overwrites every position with cell.
func (c *Canvas) Fill(cell Cell) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

// Clear resets every position to Empty.
func (c *Canvas) Clear() {
	c.Fill(Empty)
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	cells := make([]Cell, len(c.cells))
	copy(cells, c.cells)
	return &Canvas{width: c.width, height: c.height, cells: cells}
}

// Equal reports whether both canvases have the same size and contents.
func (c *Canvas) Equal(o *Canvas) bool {
	if c.width != o.width || c.height != o.height {
		return false
	}
	for i := range c.cells {
		if c.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Each calls fn for every cell in row-major order.
func (c *Canvas) Each(fn func(x, y int, cell Cell)) {
	for i, cell := range c.cells {
		fn(i%c.width, i/c.width, cell)
	}
}

// EachNonEmpty calls fn for every cell whose glyph is not a space.
func (c *Canvas) EachNonEmpty(fn func(x, y int, cell Cell)) {
	c.Each(func(x, y int, cell Cell) {
		if !cell.IsEmpty() {
			fn(x, y, cell)
		}
	})
}

// CountNonEmpty returns the number of drawn cells.
func (c *Canvas) CountNonEmpty() int {
	n := 0
	for _, cell := range c.cells {
		if !cell.IsEmpty() {
			n++
		}
	}
	return n
}

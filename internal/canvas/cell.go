package canvas

// BlockGlyph is the full block drawn by the brush and fill tools.
const BlockGlyph = '█'

// NumColors is the size of the indexed palette.
const NumColors = 16

// Cell is one grid position: a glyph with a foreground/background pair.
type Cell struct {
	Glyph rune
	FG    uint8
	BG    uint8
}

// Empty is the sentinel stored in every untouched position.
var Empty = Cell{Glyph: ' ', FG: 7, BG: 0}

// Block returns a full block in the given foreground color.
func Block(fg uint8) Cell {
	return Cell{Glyph: BlockGlyph, FG: fg, BG: 0}
}

// IsEmpty reports whether the cell shows nothing (a space glyph).
func (c Cell) IsEmpty() bool {
	return c.Glyph == ' '
}

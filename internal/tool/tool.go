package tool

// Tool is the closed set of drawing tools. Line and Rectangle are reserved
// and have no effect on the canvas.
type Tool int

const (
	Brush Tool = iota
	Eraser
	Fill
	Line
	Rectangle
)

var all = []Tool{Brush, Eraser, Fill, Line, Rectangle}

// All returns every tool in display order.
func All() []Tool {
	out := make([]Tool, len(all))
	copy(out, all)
	return out
}

func (t Tool) Name() string {
	switch t {
	case Brush:
		return "Brush"
	case Eraser:
		return "Eraser"
	case Fill:
		return "Fill"
	case Line:
		return "Line"
	case Rectangle:
		return "Rect"
	default:
		return "Unknown"
	}
}

// Shortcut is the key shown next to the tool in the sidebar.
func (t Tool) Shortcut() rune {
	switch t {
	case Brush:
		return 'b'
	case Eraser:
		return 'e'
	case Fill:
		return 'f'
	case Line:
		return 'l'
	case Rectangle:
		return 'r'
	default:
		return '?'
	}
}

// Active reports whether the tool mutates the canvas.
func (t Tool) Active() bool {
	return t == Brush || t == Eraser || t == Fill
}

func (t Tool) String() string {
	return t.Name()
}

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the editor bindings shown in the help overlay. Key presses
// are decoded by input.Decoder; only CloseHelp is matched here.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	LineStart, LineEnd    key.Binding
	TopLeft, BottomRight  key.Binding
	Draw                  key.Binding
	Brush, Eraser, Fill   key.Binding
	Color, BrightGreen    key.Binding
	Symmetry, Grid        key.Binding
	Undo, Redo            key.Binding
	Save, Export, Copy    key.Binding
	Help, CloseHelp, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),

		LineStart:   key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("0/home", "line start")),
		LineEnd:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		TopLeft:     key.NewBinding(key.WithKeys("g g"), key.WithHelp("gg", "top-left")),
		BottomRight: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom-right")),

		Draw:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "draw")),
		Brush:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "brush")),
		Eraser: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "eraser")),
		Fill:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fill")),

		Color:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "color")),
		BrightGreen: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "color 10")),
		Symmetry:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "symmetry")),
		Grid:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z", "u"), key.WithHelp("u/^Z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+r"), key.WithHelp("^Y/^R", "redo")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "save")),
		Export: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^X", "export .txt")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),

		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		CloseHelp: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q/^C", "quit")),
	}
}

type section struct {
	title    string
	bindings []key.Binding
}

func (k KeyMap) sections() []section {
	return []section{
		{"Navigation", []key.Binding{k.Left, k.Right, k.Up, k.Down, k.LineStart, k.LineEnd, k.TopLeft, k.BottomRight}},
		{"Drawing", []key.Binding{k.Draw, k.Brush, k.Eraser, k.Fill, k.Color, k.BrightGreen, k.Symmetry, k.Grid}},
		{"Edit", []key.Binding{k.Undo, k.Redo}},
		{"File", []key.Binding{k.Save, k.Export, k.Copy}},
		{"General", []key.Binding{k.Help, k.CloseHelp, k.Quit}},
	}
}

package input

import "kaku/internal/tool"

// seqState tracks the two-key sequence parser.
type seqState uint8

const (
	stateIdle     seqState = iota // Awaiting a fresh key
	stateGPending                 // After unmodified 'g', awaiting second key
)

// Decoder turns key presses into actions. It owns the 'gg' sequence state;
// the zero value is ready to use.
type Decoder struct {
	state seqState
}

// NewDecoder returns an idle decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Pending reports whether a 'g' is waiting for its second key.
func (d *Decoder) Pending() bool {
	return d.state == stateGPending
}

// Reset discards any pending sequence.
func (d *Decoder) Reset() {
	d.state = stateIdle
}

// Decode processes one key event.
//
// An unmodified 'g' arms the sequence and yields None. A second 'g' yields
// Jump(TopLeft). Any other key discards the pending 'g' without toggling the
// grid and is decoded on its own.
func (d *Decoder) Decode(ev KeyEvent) Action {
	if ev.Release {
		return none
	}

	if d.state == stateGPending {
		d.state = stateIdle
		if ev.isRune('g') {
			return Jump(JumpTopLeft)
		}
		return Lookup(ev)
	}

	if ev.isRune('g') && !ev.ctrl() {
		d.state = stateGPending
		return none
	}

	return Lookup(ev)
}

// Lookup maps a single key press through the key table, ignoring sequences.
func Lookup(ev KeyEvent) Action {
	if ev.Release {
		return none
	}
	ctrl := ev.ctrl()

	switch ev.Code {
	case KeyLeft:
		return Move(-1, 0)
	case KeyRight:
		return Move(1, 0)
	case KeyUp:
		return Move(0, -1)
	case KeyDown:
		return Move(0, 1)
	case KeyHome:
		return Jump(JumpLineStart)
	case KeyEnd:
		return Jump(JumpLineEnd)
	case KeyRune:
		return lookupRune(ev.Rune, ctrl)
	}
	return none
}

func lookupRune(r rune, ctrl bool) Action {
	switch {
	case r == 'q' && !ctrl:
		return simple(ActionQuit)
	case r == 'c' && ctrl:
		return simple(ActionQuit)
	case r == 'c':
		return simple(ActionCopy)

	case r == 'h':
		return Move(-1, 0)
	case r == 'l':
		return Move(1, 0)
	case r == 'k':
		return Move(0, -1)
	case r == 'j':
		return Move(0, 1)

	case r == '0' && !ctrl:
		return Jump(JumpLineStart)
	case r == 'G':
		return Jump(JumpBottomRight)

	case r == ' ':
		return simple(ActionDraw)

	case r == 'b':
		return SelectTool(tool.Brush)
	case r == 'e':
		return SelectTool(tool.Eraser)
	case r == 'f':
		return SelectTool(tool.Fill)

	case r == 's' && ctrl:
		return simple(ActionSave)
	case r == 's':
		return simple(ActionToggleSymmetry)
	case r == 'g':
		return simple(ActionToggleGrid)
	case r == '?':
		return simple(ActionToggleHelp)

	case r >= '1' && r <= '9':
		return SelectColor(uint8(r - '0'))
	case r == 'a':
		return SelectColor(10)

	case r == 'z' && ctrl:
		return simple(ActionUndo)
	case r == 'u' && !ctrl:
		return simple(ActionUndo)
	case (r == 'y' || r == 'r') && ctrl:
		return simple(ActionRedo)
	case r == 'x' && ctrl:
		return simple(ActionExport)
	}
	return none
}

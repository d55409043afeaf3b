package input

// KeyCode identifies a key. Printable keys use KeyRune with Rune set.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyOther
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// KeyEvent is one key transition from the event source. Only presses reach
// the decoder's tables; releases decode to None.
type KeyEvent struct {
	Code    KeyCode
	Rune    rune
	Mods    Modifiers
	Release bool
}

// Char builds a press of a printable key.
func Char(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r}
}

// Ctrl builds a press of r with the control modifier held.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r, Mods: ModCtrl}
}

// Special builds a press of a non-printable key.
func Special(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

func (e KeyEvent) ctrl() bool { return e.Mods.Has(ModCtrl) }

func (e KeyEvent) isRune(r rune) bool {
	return e.Code == KeyRune && e.Rune == r
}

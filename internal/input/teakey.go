package input

import tea "github.com/charmbracelet/bubbletea"

// FromKeyMsg converts a bubbletea key message into a KeyEvent. Control
// letters arrive from the terminal as dedicated key types and come back as
// the letter with ModCtrl set. ok is false for messages the editor ignores,
// such as pasted text arriving as a multi-rune message.
func FromKeyMsg(msg tea.KeyMsg) (KeyEvent, bool) {
	var mods Modifiers
	if msg.Alt {
		mods |= ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return KeyEvent{}, false
		}
		return KeyEvent{Code: KeyRune, Rune: msg.Runes[0], Mods: mods}, true
	case tea.KeySpace:
		return KeyEvent{Code: KeyRune, Rune: ' ', Mods: mods}, true

	case tea.KeyLeft:
		return KeyEvent{Code: KeyLeft, Mods: mods}, true
	case tea.KeyRight:
		return KeyEvent{Code: KeyRight, Mods: mods}, true
	case tea.KeyUp:
		return KeyEvent{Code: KeyUp, Mods: mods}, true
	case tea.KeyDown:
		return KeyEvent{Code: KeyDown, Mods: mods}, true
	case tea.KeyShiftLeft:
		return KeyEvent{Code: KeyLeft, Mods: mods | ModShift}, true
	case tea.KeyShiftRight:
		return KeyEvent{Code: KeyRight, Mods: mods | ModShift}, true
	case tea.KeyShiftUp:
		return KeyEvent{Code: KeyUp, Mods: mods | ModShift}, true
	case tea.KeyShiftDown:
		return KeyEvent{Code: KeyDown, Mods: mods | ModShift}, true
	case tea.KeyCtrlLeft:
		return KeyEvent{Code: KeyLeft, Mods: mods | ModCtrl}, true
	case tea.KeyCtrlRight:
		return KeyEvent{Code: KeyRight, Mods: mods | ModCtrl}, true
	case tea.KeyCtrlUp:
		return KeyEvent{Code: KeyUp, Mods: mods | ModCtrl}, true
	case tea.KeyCtrlDown:
		return KeyEvent{Code: KeyDown, Mods: mods | ModCtrl}, true

	case tea.KeyHome:
		return KeyEvent{Code: KeyHome, Mods: mods}, true
	case tea.KeyEnd:
		return KeyEvent{Code: KeyEnd, Mods: mods}, true
	case tea.KeyEnter:
		return KeyEvent{Code: KeyEnter, Mods: mods}, true
	case tea.KeyEscape:
		return KeyEvent{Code: KeyEscape, Mods: mods}, true
	case tea.KeyTab:
		return KeyEvent{Code: KeyTab, Mods: mods}, true
	case tea.KeyBackspace:
		return KeyEvent{Code: KeyBackspace, Mods: mods}, true
	case tea.KeyDelete:
		return KeyEvent{Code: KeyDelete, Mods: mods}, true
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return KeyEvent{Code: KeyRune, Rune: r, Mods: mods | ModCtrl}, true
	}
	return KeyEvent{Code: KeyOther, Mods: mods}, true
}

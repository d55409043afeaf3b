package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyEvent
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, Char('g')},
		{"capital", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, Char('G')},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, Char(' ')},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, Ctrl('z')},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, Ctrl('c')},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, Ctrl('s')},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, Special(KeyLeft)},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, Special(KeyHome)},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, Special(KeyEnd)},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, Special(KeyEnter)},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, KeyEvent{Code: KeyRune, Rune: 'x', Mods: ModAlt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromKeyMsg(tt.msg)
			if !ok {
				t.Fatalf("expected ok")
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromKeyMsg_IgnoresMultiRune(t *testing.T) {
	for _, runes := range [][]rune{[]rune("abc"), {}} {
		if _, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: runes}); ok {
			t.Fatalf("expected %q to be ignored", string(runes))
		}
	}
}

func TestFromKeyMsg_DecodesThroughTable(t *testing.T) {
	d := NewDecoder()
	ev, _ := FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := d.Decode(ev); got != simple(ActionRedo) {
		t.Fatalf("ctrl+y decoded to %s", got)
	}
}

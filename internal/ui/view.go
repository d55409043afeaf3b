package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"kaku/internal/canvas"
	"kaku/internal/tool"
)

const sidebarWidth = 20

var (
	dimColor   = lipgloss.Color("8")
	accent     = lipgloss.Color("6")
	barStyle   = lipgloss.NewStyle().Background(dimColor).Foreground(lipgloss.Color("15"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(dimColor)
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	activeTool = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	msgStyle   = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")).Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	canvasBox = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(dimColor)
	helpBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	sidebar   = lipgloss.NewStyle().
			Width(sidebarWidth).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(dimColor).
			PaddingLeft(1)
)

var colorNames = [canvas.NumColors]string{
	"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White",
	"Br.Black", "Br.Red", "Br.Green", "Br.Yellow", "Br.Blue", "Br.Magenta", "Br.Cyan", "Br.White",
}

func colorOf(i uint8) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(i)))
}

func colorName(i uint8) string {
	if int(i) < len(colorNames) {
		return colorNames[i]
	}
	return "Unknown"
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

func (m Model) View() string {
	w, h := m.size()
	if m.tooSmall() {
		rw, rh := m.required()
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", rw, rh, m.width, m.height)
	}

	bodyHeight := h - 3
	var body string
	if m.app.Help() {
		body = lipgloss.Place(w, bodyHeight, lipgloss.Center, lipgloss.Center, m.helpView(bodyHeight-2))
	} else {
		area := lipgloss.Place(w-sidebarWidth-2, bodyHeight, lipgloss.Center, lipgloss.Center, m.canvasView())
		body = lipgloss.JoinHorizontal(lipgloss.Top, area, m.sidebarView(bodyHeight))
	}

	return strings.Join([]string{
		m.headerView(w),
		body,
		m.messageView(w),
		m.statusView(w),
	}, "\n")
}

func (m Model) fileName() string {
	if p := m.app.FilePath(); p != "" {
		return filepath.Base(p)
	}
	return "untitled"
}

func (m Model) headerView(width int) string {
	left := " kaku  " + m.fileName()
	if m.app.Dirty() {
		left += " [+]"
	}
	right := "[?] Help "
	pad := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 1 {
		pad = 1
	}
	line := runewidth.Truncate(left+strings.Repeat(" ", pad)+right, width, "")
	return barStyle.Render(line)
}

// glyph returns r if it occupies exactly one terminal column, keeping the
// grid aligned.
func glyph(r rune) string {
	if runewidth.RuneWidth(r) != 1 {
		return "?"
	}
	return string(r)
}

func (m Model) canvasView() string {
	view := m.app.View()
	cur := m.app.Cursor()
	axis := -1
	if m.app.Symmetry() {
		axis = view.Width() / 2
	}

	rows := make([]string, 0, view.Height())
	for y := 0; y < view.Height(); y++ {
		var b strings.Builder
		for x := 0; x < view.Width(); x++ {
			cell, _ := view.Get(x, y)
			style := lipgloss.NewStyle().Foreground(colorOf(cell.FG))
			if cell.BG != 0 {
				style = style.Background(colorOf(cell.BG))
			}
			ch := glyph(cell.Glyph)
			if cell.IsEmpty() {
				switch {
				case x == axis:
					ch, style = "│", style.Foreground(dimColor)
				case m.app.Grid():
					ch, style = "·", style.Foreground(dimColor)
				}
			}
			if x == cur.X && y == cur.Y {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(ch))
		}
		rows = append(rows, b.String())
	}
	return canvasBox.Render(strings.Join(rows, "\n"))
}

func (m Model) sidebarView(height int) string {
	lines := []string{boldStyle.Render("Tools"), "─────────"}
	for _, t := range tool.All() {
		entry := fmt.Sprintf("[%c] %s", t.Shortcut(), t.Name())
		if t == m.app.Tool() {
			lines = append(lines, activeTool.Render("▶ "+entry))
		} else {
			lines = append(lines, dimStyle.Render("  "+entry))
		}
	}

	lines = append(lines, "", boldStyle.Render("Symmetry"), "─────────")
	if m.app.Symmetry() {
		lines = append(lines, onStyle.Render("[s] ON"))
	} else {
		lines = append(lines, dimStyle.Render("[s] OFF"))
	}

	lines = append(lines, "", boldStyle.Render("Colors"), "─────────")
	for _, start := range []uint8{0, 8} {
		var row strings.Builder
		for i := start; i < start+8; i++ {
			swatch := "▓"
			if i == m.app.Foreground() {
				swatch = "█"
			}
			row.WriteString(lipgloss.NewStyle().Foreground(colorOf(i)).Render(swatch))
		}
		lines = append(lines, row.String())
	}
	lines = append(lines,
		fmt.Sprintf("FG: %s", colorName(m.app.Foreground())),
		fmt.Sprintf("BG: %s", colorName(m.app.Background())),
		"",
		dimStyle.Render(fmt.Sprintf("%dx%d", m.app.View().Width(), m.app.View().Height())),
	)
	return sidebar.Height(height).Render(strings.Join(lines, "\n"))
}

func (m Model) messageView(width int) string {
	msg := m.app.Message()
	if msg == "" {
		return ""
	}
	msg = runewidth.Truncate(msg, width-2, "…")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, msgStyle.Render(" "+msg+" "))
}

func (m Model) statusView(width int) string {
	cur := m.app.Cursor()
	sym := "OFF"
	if m.app.Symmetry() {
		sym = "ON"
	}
	parts := []string{
		fmt.Sprintf("Pos: %d,%d", cur.X, cur.Y),
		"Tool: " + m.app.Tool().Name(),
		"Sym: " + sym,
		fmt.Sprintf("FG: %d BG: %d", m.app.Foreground(), m.app.Background()),
	}
	switch {
	case m.app.FilePath() != "" && m.app.Dirty():
		parts = append(parts, m.fileName()+" [+]")
	case m.app.FilePath() != "":
		parts = append(parts, m.fileName())
	case m.app.Dirty():
		parts = append(parts, "[unsaved]")
	}
	if m.decoder.Pending() {
		parts = append(parts, "g…")
	}
	line := runewidth.Truncate(strings.Join(parts, " │ "), width, "…")
	return barStyle.Render(runewidth.FillRight(line, width))
}

// helpView lays bindings out two per row and crops to maxLines.
func (m Model) helpView(maxLines int) string {
	entry := func(b key.Binding) string {
		h := b.Help()
		return keyStyle.Render(runewidth.FillRight(h.Key, 7)) + runewidth.FillRight(h.Desc, 13)
	}

	var lines []string
	for _, s := range m.keys.sections() {
		lines = append(lines, titleStyle.Render(s.title))
		for i := 0; i < len(s.bindings); i += 2 {
			row := "  " + entry(s.bindings[i])
			if i+1 < len(s.bindings) {
				row += entry(s.bindings[i+1])
			}
			lines = append(lines, row)
		}
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return helpBox.Render(strings.Join(lines, "\n"))
}

package export

import (
	"fmt"
	"strings"

	"kaku/internal/canvas"
)

// Reset is the SGR sequence that clears an active color.
const Reset = "\x1b[0m"

// fgCodes maps palette indices to SGR foreground codes.
var fgCodes = [canvas.NumColors]int{
	30, 31, 32, 33, 34, 35, 36, 37,
	90, 91, 92, 93, 94, 95, 96, 97,
}

// ColorCode returns the SGR sequence selecting foreground color index fg.
// Indices outside the palette fall back to white.
func ColorCode(fg uint8) string {
	code := 37
	if int(fg) < len(fgCodes) {
		code = fgCodes[fg]
	}
	return fmt.Sprintf("\x1b[%dm", code)
}

// Plain renders glyphs only. With trim, trailing whitespace is cut from every
// row and trailing rows without content are dropped. Rows are joined by
// newlines with no final newline.
func Plain(r canvas.Reader, trim bool) string {
	rows := make([]string, 0, r.Height())
	content := make([]bool, 0, r.Height())
	for y := 0; y < r.Height(); y++ {
		var line strings.Builder
		for x := 0; x < r.Width(); x++ {
			cell, _ := r.Get(x, y)
			line.WriteRune(cell.Glyph)
		}
		row := line.String()
		if trim {
			row = strings.TrimRight(row, " \t")
		}
		rows = append(rows, row)
		content = append(content, lastDrawn(r, y) >= 0)
	}
	return join(rows, content, trim)
}

// ANSI renders the grid with SGR foreground escapes. A color escape precedes
// each run of same-colored glyphs and a reset precedes any space, and ends
// the line, while a color is active. Color state starts fresh on every line.
// The trim policy matches Plain, and a row with drawn content is never
// dropped.
func ANSI(r canvas.Reader, trim bool) string {
	rows := make([]string, 0, r.Height())
	content := make([]bool, 0, r.Height())
	for y := 0; y < r.Height(); y++ {
		end := r.Width()
		last := lastDrawn(r, y)
		if trim {
			end = last + 1
		}
		rows = append(rows, ansiRow(r, y, end))
		content = append(content, last >= 0)
	}
	return join(rows, content, trim)
}

func ansiRow(r canvas.Reader, y, end int) string {
	var line strings.Builder
	active := -1
	for x := 0; x < end; x++ {
		cell, _ := r.Get(x, y)
		if cell.IsEmpty() {
			if active >= 0 {
				line.WriteString(Reset)
				active = -1
			}
			line.WriteRune(' ')
			continue
		}
		if active != int(cell.FG) {
			line.WriteString(ColorCode(cell.FG))
			active = int(cell.FG)
		}
		line.WriteRune(cell.Glyph)
	}
	if active >= 0 {
		line.WriteString(Reset)
	}
	return line.String()
}

// lastDrawn returns the column of the rightmost non-empty cell in row y, or
// -1 for a blank row.
func lastDrawn(r canvas.Reader, y int) int {
	for x := r.Width() - 1; x >= 0; x-- {
		cell, _ := r.Get(x, y)
		if !cell.IsEmpty() {
			return x
		}
	}
	return -1
}

func join(rows []string, content []bool, trim bool) string {
	if trim {
		n := len(rows)
		for n > 0 && !content[n-1] && rows[n-1] == "" {
			n--
		}
		rows = rows[:n]
	}
	return strings.Join(rows, "\n")
}

// Package stats summarizes what has been drawn on a canvas.
package stats

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"kaku/internal/canvas"
)

type Summary struct {
	Width, Height int
	Drawn         int
	Blocks        int
	Colors        [canvas.NumColors]int // drawn cells per foreground color
	RowDensity    []float64             // drawn cells per row
	// Bounds of the drawn area, valid when Drawn > 0.
	MinX, MinY, MaxX, MaxY int
}

func Summarize(r canvas.Reader) Summary {
	s := Summary{
		Width:      r.Width(),
		Height:     r.Height(),
		RowDensity: make([]float64, r.Height()),
		MinX:       r.Width(),
		MinY:       r.Height(),
		MaxX:       -1,
		MaxY:       -1,
	}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			cell, _ := r.Get(x, y)
			if cell.IsEmpty() {
				continue
			}
			s.Drawn++
			s.RowDensity[y]++
			if cell.Glyph == canvas.BlockGlyph {
				s.Blocks++
			}
			if int(cell.FG) < len(s.Colors) {
				s.Colors[cell.FG]++
			}
			s.MinX = min(s.MinX, x)
			s.MinY = min(s.MinY, y)
			s.MaxX = max(s.MaxX, x)
			s.MaxY = max(s.MaxY, y)
		}
	}
	return s
}

// Coverage is the drawn fraction of the grid.
func (s Summary) Coverage() float64 {
	area := s.Width * s.Height
	if area == 0 {
		return 0
	}
	return float64(s.Drawn) / float64(area)
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "canvas:   %dx%d\n", s.Width, s.Height)
	fmt.Fprintf(&b, "drawn:    %d cells (%.1f%%), %d blocks\n", s.Drawn, s.Coverage()*100, s.Blocks)
	if s.Drawn > 0 {
		fmt.Fprintf(&b, "bounds:   (%d,%d)-(%d,%d)\n", s.MinX, s.MinY, s.MaxX, s.MaxY)
	}
	b.WriteString("colors:  ")
	for i, n := range s.Colors {
		if n > 0 {
			fmt.Fprintf(&b, " %d:%d", i, n)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// Plot draws the per-row density as an ASCII line graph.
func (s Summary) Plot(height int) string {
	data := s.RowDensity
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	if height < 1 {
		height = 8
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Caption("drawn cells per row"),
	)
}

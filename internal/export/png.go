package export

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"kaku/internal/canvas"
)

// ErrNothingToExport is returned for a canvas with no area.
var ErrNothingToExport = errors.New("export: nothing to export")

// Palette holds the RGB values used for the 16 indexed colors.
var Palette = [canvas.NumColors]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, {0xcd, 0x00, 0x00, 0xff}, {0x00, 0xcd, 0x00, 0xff}, {0xcd, 0xcd, 0x00, 0xff},
	{0x00, 0x00, 0xee, 0xff}, {0xcd, 0x00, 0xcd, 0xff}, {0x00, 0xcd, 0xcd, 0xff}, {0xe5, 0xe5, 0xe5, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff}, {0xff, 0x00, 0x00, 0xff}, {0x00, 0xff, 0x00, 0xff}, {0xff, 0xff, 0x00, 0xff},
	{0x5c, 0x5c, 0xff, 0xff}, {0xff, 0x00, 0xff, 0xff}, {0x00, 0xff, 0xff, 0xff}, {0xff, 0xff, 0xff, 0xff},
}

// PNGOptions controls raster export.
type PNGOptions struct {
	CellWidth  float64 // pixels per column
	CellHeight float64 // pixels per row
	FontSize   float64
	Padding    int // cells of margin around the grid
}

// DefaultPNGOptions renders square-ish cells at a readable size.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{CellWidth: 8, CellHeight: 16, FontSize: 12, Padding: 1}
}

func paletteColor(i uint8) color.RGBA {
	if int(i) < len(Palette) {
		return Palette[i]
	}
	return Palette[7]
}

// PNG rasterises the grid. Block glyphs become filled rectangles in their
// foreground color; other glyphs are drawn with Go Mono. Cell backgrounds
// other than 0 are painted behind the glyph.
func PNG(w io.Writer, r canvas.Reader, opts PNGOptions) error {
	if r.Width() == 0 || r.Height() == 0 {
		return ErrNothingToExport
	}
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		opts = DefaultPNGOptions()
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}

	cols := r.Width() + 2*opts.Padding
	rows := r.Height() + 2*opts.Padding
	dc := gg.NewContext(int(float64(cols)*opts.CellWidth), int(float64(rows)*opts.CellHeight))
	dc.SetColor(Palette[0])
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("export: parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	dc.SetFontFace(face)

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			cell, _ := r.Get(x, y)
			px := float64(x+opts.Padding) * opts.CellWidth
			py := float64(y+opts.Padding) * opts.CellHeight

			if cell.BG != 0 {
				dc.SetColor(paletteColor(cell.BG))
				dc.DrawRectangle(px, py, opts.CellWidth, opts.CellHeight)
				dc.Fill()
			}
			if cell.IsEmpty() {
				continue
			}

			dc.SetColor(paletteColor(cell.FG))
			if cell.Glyph == canvas.BlockGlyph {
				dc.DrawRectangle(px, py, opts.CellWidth, opts.CellHeight)
				dc.Fill()
				continue
			}
			dc.DrawStringAnchored(string(cell.Glyph), px+opts.CellWidth/2, py+opts.CellHeight/2, 0.5, 0.35)
		}
	}

	if err := png.Encode(w, dc.Image()); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

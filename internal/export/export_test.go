package export

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"kaku/internal/canvas"
)

func TestANSI_RedBlockThenSpace(t *testing.T) {
	c := canvas.New(3, 1)
	c.Set(0, 0, canvas.Block(1))

	got := ANSI(c, false)
	want := "\x1b[31m█\x1b[0m  "
	if got != want {
		t.Fatalf("ANSI=%q, want %q", got, want)
	}
	if !strings.Contains(got, "\x1b[31m"+string(canvas.BlockGlyph)) {
		t.Fatalf("color escape must precede the block: %q", got)
	}
}

func TestANSI_Trimmed(t *testing.T) {
	c := canvas.New(3, 1)
	c.Set(0, 0, canvas.Block(1))

	if got, want := ANSI(c, true), "\x1b[31m█\x1b[0m"; got != want {
		t.Fatalf("ANSI=%q, want %q", got, want)
	}
}

func TestANSI_NoRedundantEscapes(t *testing.T) {
	c := canvas.New(4, 1)
	c.Set(0, 0, canvas.Block(2))
	c.Set(1, 0, canvas.Block(2))
	c.Set(2, 0, canvas.Block(12))
	c.Set(3, 0, canvas.Block(12))

	want := "\x1b[32m██\x1b[94m██\x1b[0m"
	if got := ANSI(c, false); got != want {
		t.Fatalf("ANSI=%q, want %q", got, want)
	}
}

func TestANSI_ResetPerLine(t *testing.T) {
	c := canvas.New(1, 2)
	c.Set(0, 0, canvas.Block(3))
	c.Set(0, 1, canvas.Block(3))

	want := "\x1b[33m█\x1b[0m\n\x1b[33m█\x1b[0m"
	if got := ANSI(c, false); got != want {
		t.Fatalf("ANSI=%q, want %q", got, want)
	}
}

func TestPlain_Trim(t *testing.T) {
	c := canvas.New(5, 5)
	c.Set(1, 0, canvas.Block(1))
	c.Set(0, 2, canvas.Cell{Glyph: '#', FG: 7})

	want := " █\n\n#"
	if got := Plain(c, true); got != want {
		t.Fatalf("Plain=%q, want %q", got, want)
	}
}

func TestPlain_NoTrim(t *testing.T) {
	c := canvas.New(3, 2)
	c.Set(2, 1, canvas.Block(1))

	want := "   \n  █"
	if got := Plain(c, false); got != want {
		t.Fatalf("Plain=%q, want %q", got, want)
	}
}

func TestPlain_EmptyCanvas(t *testing.T) {
	if got := Plain(canvas.New(4, 4), true); got != "" {
		t.Fatalf("Plain=%q, want empty", got)
	}
	if got := ANSI(canvas.New(4, 4), true); got != "" {
		t.Fatalf("ANSI=%q, want empty", got)
	}
}

func TestColorCode(t *testing.T) {
	tests := []struct {
		fg   uint8
		want string
	}{
		{0, "\x1b[30m"},
		{1, "\x1b[31m"},
		{7, "\x1b[37m"},
		{8, "\x1b[90m"},
		{15, "\x1b[97m"},
		{99, "\x1b[37m"},
	}
	for _, tt := range tests {
		if got := ColorCode(tt.fg); got != tt.want {
			t.Errorf("ColorCode(%d)=%q, want %q", tt.fg, got, tt.want)
		}
	}
}

func TestPNG(t *testing.T) {
	c := canvas.New(4, 3)
	c.Set(0, 0, canvas.Block(1))
	c.Set(1, 1, canvas.Cell{Glyph: '@', FG: 10, BG: 4})

	var buf bytes.Buffer
	if err := PNG(&buf, c, DefaultPNGOptions()); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	opts := DefaultPNGOptions()
	wantW := int(float64(4+2*opts.Padding) * opts.CellWidth)
	wantH := int(float64(3+2*opts.Padding) * opts.CellHeight)
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Fatalf("size=%dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}

	// center of the red block at (0,0)
	px := int((float64(opts.Padding) + 0.5) * opts.CellWidth)
	py := int((float64(opts.Padding) + 0.5) * opts.CellHeight)
	r, g, b, _ := img.At(px, py).RGBA()
	red := Palette[1]
	if uint8(r>>8) != red.R || uint8(g>>8) != red.G || uint8(b>>8) != red.B {
		t.Fatalf("block pixel=(%d,%d,%d), want %v", r>>8, g>>8, b>>8, red)
	}
}

func TestPNG_ZeroSize(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, canvas.New(0, 0), DefaultPNGOptions()); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("err=%v, want ErrNothingToExport", err)
	}
}

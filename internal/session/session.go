// Package session reads and writes .kaku files: a versioned, sparse JSON
// snapshot of a canvas. Only drawn cells are stored, so file size tracks
// content rather than the grid bound.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"

	"kaku/internal/canvas"
)

// Version is written into every saved file.
const Version = "1.0"

// Ext is the conventional session file extension.
const Ext = ".kaku"

var (
	// ErrUnsupportedVersion is returned for files whose major version is not 1.
	ErrUnsupportedVersion = errors.New("session: unsupported file version")

	// ErrCorrupt is returned for files that do not decode into a valid canvas.
	ErrCorrupt = errors.New("session: invalid file format")
)

// StoredCell is one drawn cell with its coordinates.
type StoredCell struct {
	X    uint16 `json:"x"`
	Y    uint16 `json:"y"`
	Char string `json:"char"`
	FG   uint8  `json:"fg"`
	BG   uint8  `json:"bg"`
}

// StoredCanvas is the sparse canvas body.
type StoredCanvas struct {
	Width  uint16       `json:"width"`
	Height uint16       `json:"height"`
	Cells  []StoredCell `json:"cells"`
}

// Metadata carries timestamps and an optional author.
type Metadata struct {
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Author   string    `json:"author,omitempty"`
}

// File is the on-disk record. It holds no link back to a live canvas.
type File struct {
	Version  string       `json:"version"`
	Canvas   StoredCanvas `json:"canvas"`
	Metadata Metadata     `json:"metadata"`
}

// NewMetadata stamps created and modified with now.
func NewMetadata(now time.Time, author string) Metadata {
	now = now.UTC()
	return Metadata{Created: now, Modified: now, Author: author}
}

// Encode captures the drawn cells of c.
func Encode(c canvas.Reader, meta Metadata) File {
	f := File{
		Version: Version,
		Canvas: StoredCanvas{
			Width:  uint16(c.Width()),
			Height: uint16(c.Height()),
			Cells:  []StoredCell{},
		},
		Metadata: meta,
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			cell, _ := c.Get(x, y)
			if cell.IsEmpty() {
				continue
			}
			f.Canvas.Cells = append(f.Canvas.Cells, StoredCell{
				X:    uint16(x),
				Y:    uint16(y),
				Char: string(cell.Glyph),
				FG:   cell.FG,
				BG:   cell.BG,
			})
		}
	}
	return f
}

// Touch refreshes the modified timestamp.
func (f *File) Touch(now time.Time) {
	f.Metadata.Modified = now.UTC()
}

// CheckVersion accepts version strings of the form "1.<minor>[...]".
func CheckVersion(v string) error {
	if !strings.HasPrefix(v, "1.") {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	if parsed.Major() != 1 {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}
	return nil
}

// Build rebuilds a canvas from the file. Dimensions are re-clamped to
// canvas.MaxSize and cells landing outside them are dropped.
func (f File) Build() (*canvas.Canvas, error) {
	if err := CheckVersion(f.Version); err != nil {
		return nil, err
	}

	cells := make([]canvas.Cell, len(f.Canvas.Cells))
	for i, sc := range f.Canvas.Cells {
		cell, err := sc.cell()
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d at (%d,%d): %v", ErrCorrupt, i, sc.X, sc.Y, err)
		}
		cells[i] = cell
	}

	c := canvas.New(int(f.Canvas.Width), int(f.Canvas.Height))
	for i, sc := range f.Canvas.Cells {
		c.Set(int(sc.X), int(sc.Y), cells[i])
	}
	return c, nil
}

func (sc StoredCell) cell() (canvas.Cell, error) {
	if !utf8.ValidString(sc.Char) || utf8.RuneCountInString(sc.Char) != 1 {
		return canvas.Cell{}, fmt.Errorf("char %q is not a single rune", sc.Char)
	}
	r, _ := utf8.DecodeRuneInString(sc.Char)
	if sc.FG >= canvas.NumColors || sc.BG >= canvas.NumColors {
		return canvas.Cell{}, fmt.Errorf("color fg=%d bg=%d out of range", sc.FG, sc.BG)
	}
	return canvas.Cell{Glyph: r, FG: sc.FG, BG: sc.BG}, nil
}

// Marshal renders the file as indented JSON.
func Marshal(f File) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// Unmarshal parses JSON into a File and validates its version.
func Unmarshal(data []byte) (File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := CheckVersion(f.Version); err != nil {
		return File{}, err
	}
	return f, nil
}

// Save writes c to path, refreshing the modified timestamp. The file is
// written to a temporary sibling and renamed into place, so a failed save
// never leaves a truncated session behind.
func Save(path string, c canvas.Reader, meta Metadata, now time.Time) (File, error) {
	f := Encode(c, meta)
	if f.Metadata.Created.IsZero() {
		f.Metadata.Created = now.UTC()
	}
	f.Touch(now)

	data, err := Marshal(f)
	if err != nil {
		return File{}, fmt.Errorf("session: encode: %w", err)
	}
	if err := writeAtomic(path, data); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads a session file and rebuilds its canvas.
func Load(path string) (*canvas.Canvas, Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("session: read %s: %w", path, err)
	}
	f, err := Unmarshal(data)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("session: load %s: %w", path, err)
	}
	c, err := f.Build()
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("session: load %s: %w", path, err)
	}
	return c, f.Metadata, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	return nil
}

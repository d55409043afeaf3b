package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"kaku/internal/clip"
	"kaku/internal/export"
	"kaku/internal/session"
)

const (
	untitledSession = "untitled" + session.Ext
	untitledExport  = "untitled.txt"
)

// ErrClipboardUnavailable is reported when no clipboard sink is configured
// or the system clipboard cannot be reached.
var ErrClipboardUnavailable = clip.ErrUnavailable

// Clipboard accepts exported text.
type Clipboard interface {
	WriteAll(text string) error
}

// Open starts an editor on path. An existing file is loaded and any load
// error is returned; a missing one becomes the save target of a blank
// canvas. An empty path opens an untitled canvas.
func Open(path string, opts Options) (*App, error) {
	a := New(opts)
	if path == "" {
		return a, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		a.filePath = path
		return a, nil
	}
	c, meta, err := session.Load(path)
	if err != nil {
		return nil, err
	}
	a.canvas = c
	a.meta = meta
	a.filePath = path
	log.Printf("opened %s (%dx%d, %d cells)", path, c.Width(), c.Height(), c.CountNonEmpty())
	return a, nil
}

func (a *App) save() {
	path := a.filePath
	if path == "" {
		path = a.opts.SavePath(untitledSession)
		a.filePath = path
	}
	if a.meta.Author == "" {
		a.meta.Author = a.opts.Author
	}

	f, err := session.Save(path, a.canvas, a.meta, a.opts.Now())
	if err != nil {
		log.Printf("save %s: %v", path, err)
		a.showMessage(fmt.Sprintf("Save failed: %v", err))
		return
	}
	a.meta = f.Metadata
	a.dirty = false
	log.Printf("saved %s (%d cells)", path, len(f.Canvas.Cells))
	a.showMessage("Saved")
}

// exportPath is the session path with a .txt extension.
func (a *App) exportPath() string {
	if a.filePath == "" {
		return a.opts.SavePath(untitledExport)
	}
	return strings.TrimSuffix(a.filePath, filepath.Ext(a.filePath)) + ".txt"
}

func (a *App) export() {
	path := a.exportPath()
	content := export.ANSI(a.canvas, a.opts.TrimExport)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Printf("export %s: %v", path, err)
		a.showMessage(fmt.Sprintf("Export failed: %v", err))
		return
	}
	log.Printf("exported %s", path)
	a.showMessage("Exported to " + path)
}

func (a *App) copyToClipboard() {
	if a.opts.Clipboard == nil {
		a.showMessage(fmt.Sprintf("Copy failed: %v", ErrClipboardUnavailable))
		return
	}
	content := export.ANSI(a.canvas, a.opts.TrimExport)
	if err := a.opts.Clipboard.WriteAll(content); err != nil {
		log.Printf("copy: %v", err)
		a.showMessage(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	a.showMessage("Copied to clipboard")
}

// load swaps in the canvas stored at path. On failure the current canvas,
// history and dirty flag are left as they were.
func (a *App) load(path string) {
	c, meta, err := session.Load(path)
	if err != nil {
		log.Printf("load %s: %v", path, err)
		a.showMessage(fmt.Sprintf("Load failed: %v", err))
		return
	}
	a.canvas = c
	a.meta = meta
	a.filePath = path
	a.cursor.JumpTo(0, 0, c.Width(), c.Height())
	a.history.Clear()
	a.dirty = false
	log.Printf("loaded %s", path)
	a.showMessage("Loaded " + filepath.Base(path))
}

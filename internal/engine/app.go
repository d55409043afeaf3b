// Package engine owns the live editing state: the canvas, the cursor, the
// undo history and the UI toggles. Every key action flows through
// App.Execute; presentation reads state back through accessors only.
package engine

import (
	"time"

	"kaku/internal/canvas"
	"kaku/internal/cursor"
	"kaku/internal/history"
	"kaku/internal/input"
	"kaku/internal/session"
	"kaku/internal/tool"
)

const (
	DefaultForeground uint8 = 7
	DefaultBackground uint8 = 0
	DefaultMessageTicks     = 40
)

// Options configures a new App. Zero values select the defaults.
type Options struct {
	Width        int
	Height       int
	HistoryDepth int
	Author       string
	TrimExport   bool
	MessageTicks int
	Clipboard    Clipboard
	// SavePath resolves a bare file name such as "untitled.kaku" to the
	// location it should be written to.
	SavePath func(name string) string
	Now      func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = canvas.MaxSize, canvas.MaxSize
	}
	if o.MessageTicks < 1 {
		o.MessageTicks = DefaultMessageTicks
	}
	if o.SavePath == nil {
		o.SavePath = func(name string) string { return name }
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type App struct {
	opts Options

	canvas  *canvas.Canvas
	cursor  cursor.Cursor
	history *history.History
	meta    session.Metadata

	tool       tool.Tool
	fg, bg     uint8
	symmetry   bool
	showGrid   bool
	showHelp   bool
	dirty      bool
	shouldQuit bool
	filePath   string

	message      string
	messageTicks int
}

func New(opts Options) *App {
	opts = opts.withDefaults()
	return &App{
		opts:    opts,
		canvas:  canvas.New(opts.Width, opts.Height),
		history: history.New(opts.HistoryDepth),
		meta:    session.NewMetadata(opts.Now(), opts.Author),
		tool:    tool.Brush,
		fg:      DefaultForeground,
		bg:      DefaultBackground,
	}
}

// Execute applies one decoded action.
func (a *App) Execute(action input.Action) {
	switch action.Kind {
	case input.ActionNone:
	case input.ActionQuit:
		a.shouldQuit = true
	case input.ActionMove:
		a.cursor.MoveBy(action.DX, action.DY, a.canvas.Width(), a.canvas.Height())
	case input.ActionJump:
		a.jump(action.Target)
	case input.ActionDraw:
		a.draw()
	case input.ActionSelectTool:
		a.tool = action.Tool
	case input.ActionToggleSymmetry:
		a.symmetry = !a.symmetry
	case input.ActionToggleGrid:
		a.showGrid = !a.showGrid
	case input.ActionToggleHelp:
		a.showHelp = !a.showHelp
	case input.ActionSelectColor:
		if action.Color < canvas.NumColors {
			a.fg = action.Color
		}
	case input.ActionUndo:
		a.undo()
	case input.ActionRedo:
		a.redo()
	case input.ActionSave:
		a.save()
	case input.ActionExport:
		a.export()
	case input.ActionCopy:
		a.copyToClipboard()
	case input.ActionLoad:
		a.load(action.Path)
	}
}

func (a *App) jump(target input.JumpTarget) {
	w, h := a.canvas.Width(), a.canvas.Height()
	switch target {
	case input.JumpTopLeft:
		a.cursor.TopLeft()
	case input.JumpBottomRight:
		a.cursor.BottomRight(w, h)
	case input.JumpLineStart:
		a.cursor.Home()
	case input.JumpLineEnd:
		a.cursor.End(w)
	}
}

func (a *App) undo() {
	op, ok := a.history.Undo()
	if !ok {
		return
	}
	op.Revert(a.canvas)
	a.dirty = true
	a.showMessage("Undo")
}

func (a *App) redo() {
	op, ok := a.history.Redo()
	if !ok {
		return
	}
	op.Apply(a.canvas)
	a.dirty = true
	a.showMessage("Redo")
}

func (a *App) showMessage(msg string) {
	a.message = msg
	a.messageTicks = a.opts.MessageTicks
}

// Tick advances the status message countdown by one frame.
func (a *App) Tick() {
	if a.messageTicks == 0 {
		return
	}
	a.messageTicks--
	if a.messageTicks == 0 {
		a.message = ""
	}
}

// View returns a read-only view of the live canvas. It must not be retained
// across Execute calls; use Snapshot for that.
func (a *App) View() canvas.Reader { return a.canvas }

// Snapshot returns an independent copy of the canvas.
func (a *App) Snapshot() *canvas.Canvas { return a.canvas.Clone() }

func (a *App) Cursor() cursor.Cursor { return a.cursor }
func (a *App) Tool() tool.Tool       { return a.tool }
func (a *App) Foreground() uint8     { return a.fg }
func (a *App) Background() uint8     { return a.bg }
func (a *App) Symmetry() bool        { return a.symmetry }
func (a *App) Grid() bool            { return a.showGrid }
func (a *App) Help() bool            { return a.showHelp }
func (a *App) Dirty() bool           { return a.dirty }
func (a *App) ShouldQuit() bool      { return a.shouldQuit }
func (a *App) FilePath() string      { return a.filePath }
func (a *App) CanUndo() bool         { return a.history.CanUndo() }
func (a *App) CanRedo() bool         { return a.history.CanRedo() }

// Message returns the current status message, or "" once it has expired.
func (a *App) Message() string { return a.message }

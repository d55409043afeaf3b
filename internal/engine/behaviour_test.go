package engine_test

import (
	"math/rand"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kaku/internal/canvas"
	"kaku/internal/engine"
	"kaku/internal/input"
	"kaku/internal/tool"
)

var (
	drawAction = input.Action{Kind: input.ActionDraw}
	undoAction = input.Action{Kind: input.ActionUndo}
	redoAction = input.Action{Kind: input.ActionRedo}
	symmetryOn = input.Action{Kind: input.ActionToggleSymmetry}
)

func cell(app *engine.App, x, y int) canvas.Cell {
	c, ok := app.View().Get(x, y)
	ExpectWithOffset(1, ok).To(BeTrue())
	return c
}

var _ = Describe("App", func() {
	var (
		app     *engine.App
		decoder *input.Decoder
	)

	press := func(keys ...input.KeyEvent) {
		for _, k := range keys {
			app.Execute(decoder.Decode(k))
		}
	}

	BeforeEach(func() {
		app = engine.New(engine.Options{Width: 10, Height: 10})
		decoder = input.NewDecoder()
	})

	Describe("drawing a block and reverting it", func() {
		It("follows space, ctrl+z, ctrl+y", func() {
			app.Execute(input.Move(5, 5))
			app.Execute(input.SelectColor(3))

			press(input.Char(' '))
			Expect(cell(app, 5, 5)).To(Equal(canvas.Block(3)))

			press(input.Ctrl('z'))
			Expect(cell(app, 5, 5)).To(Equal(canvas.Empty))

			press(input.Ctrl('y'))
			Expect(cell(app, 5, 5)).To(Equal(canvas.Block(3)))
		})
	})

	Describe("undo and redo", func() {
		It("restores the pre-undo canvas after N undos and N redos", func() {
			rng := rand.New(rand.NewSource(7))
			tools := []tool.Tool{tool.Brush, tool.Brush, tool.Eraser, tool.Fill}
			for i := 0; i < 40; i++ {
				app.Execute(input.SelectTool(tools[rng.Intn(len(tools))]))
				app.Execute(input.SelectColor(uint8(rng.Intn(canvas.NumColors))))
				app.Execute(input.Move(rng.Intn(7)-3, rng.Intn(7)-3))
				if rng.Intn(5) == 0 {
					app.Execute(symmetryOn)
				}
				app.Execute(drawAction)
			}
			before := app.Snapshot()

			n := 0
			for app.CanUndo() {
				app.Execute(undoAction)
				n++
			}
			Expect(n).To(BeNumerically(">", 0))
			Expect(app.Snapshot().CountNonEmpty()).To(Equal(0))

			for i := 0; i < n; i++ {
				app.Execute(redoAction)
			}
			Expect(app.Snapshot().Equal(before)).To(BeTrue())
			Expect(app.CanRedo()).To(BeFalse())
		})

		It("drops pending redo entries when a new edit is made", func() {
			app.Execute(drawAction)
			app.Execute(input.Move(1, 0))
			app.Execute(drawAction)
			app.Execute(undoAction)
			app.Execute(undoAction)
			Expect(app.CanRedo()).To(BeTrue())

			app.Execute(input.Move(0, 1))
			app.Execute(drawAction)
			Expect(app.CanRedo()).To(BeFalse())
		})

		It("keeps only the most recent edits once the history is full", func() {
			app = engine.New(engine.Options{Width: 10, Height: 10, HistoryDepth: 3})
			for x := 0; x < 5; x++ {
				app.Execute(input.Jump(input.JumpTopLeft))
				app.Execute(input.Move(x, 0))
				app.Execute(drawAction)
			}
			for app.CanUndo() {
				app.Execute(undoAction)
			}
			Expect(cell(app, 0, 0)).To(Equal(canvas.Block(7)))
			Expect(cell(app, 1, 0)).To(Equal(canvas.Block(7)))
			Expect(cell(app, 2, 0)).To(Equal(canvas.Empty))
			Expect(cell(app, 4, 0)).To(Equal(canvas.Empty))
		})
	})

	Describe("symmetry", func() {
		BeforeEach(func() {
			app.Execute(symmetryOn)
		})

		It("draws both columns and reverts them with one undo", func() {
			app.Execute(input.Move(1, 4))
			app.Execute(drawAction)
			Expect(cell(app, 1, 4)).To(Equal(canvas.Block(7)))
			Expect(cell(app, 8, 4)).To(Equal(canvas.Block(7)))

			app.Execute(undoAction)
			Expect(cell(app, 1, 4)).To(Equal(canvas.Empty))
			Expect(cell(app, 8, 4)).To(Equal(canvas.Empty))
			Expect(app.CanUndo()).To(BeFalse())
		})

		It("erases mirrored cells too", func() {
			app.Execute(drawAction)
			app.Execute(input.SelectTool(tool.Eraser))
			app.Execute(drawAction)
			Expect(app.Snapshot().CountNonEmpty()).To(Equal(0))
		})
	})

	Describe("flood fill", func() {
		BeforeEach(func() {
			app.Execute(input.SelectTool(tool.Fill))
			app.Execute(input.SelectColor(5))
		})

		It("is a no-op over a region already in the fill color", func() {
			app.Execute(drawAction)
			Expect(app.Snapshot().CountNonEmpty()).To(Equal(100))

			app.Execute(drawAction)
			app.Execute(undoAction)
			Expect(app.Snapshot().CountNonEmpty()).To(Equal(0))
			Expect(app.CanUndo()).To(BeFalse())
		})

		It("leaves the dirty flag alone when nothing changes", func() {
			dir := GinkgoT().TempDir()
			app = engine.New(engine.Options{
				Width: 10, Height: 10,
				SavePath: func(name string) string { return filepath.Join(dir, name) },
			})
			app.Execute(input.SelectTool(tool.Fill))
			app.Execute(drawAction)
			app.Execute(input.Action{Kind: input.ActionSave})
			Expect(app.Dirty()).To(BeFalse())

			app.Execute(drawAction)
			Expect(app.Dirty()).To(BeFalse())
		})
	})

	Describe("key sequences", func() {
		It("jumps to the top-left on g g without toggling the grid", func() {
			app.Execute(input.Move(4, 4))
			press(input.Char('g'), input.Char('g'))
			Expect(app.Cursor().X).To(Equal(0))
			Expect(app.Cursor().Y).To(Equal(0))
			Expect(app.Grid()).To(BeFalse())
		})

		It("drops a pending g when another key follows", func() {
			press(input.Char('g'), input.Char('l'))
			Expect(app.Cursor().X).To(Equal(1))
			Expect(app.Grid()).To(BeFalse())
			Expect(decoder.Pending()).To(BeFalse())
		})
	})
})

package input

import (
	"fmt"

	"kaku/internal/tool"
)

// ActionKind tags the semantic action produced from a key press.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionMove
	ActionJump
	ActionDraw
	ActionSelectTool
	ActionToggleSymmetry
	ActionToggleGrid
	ActionToggleHelp
	ActionSelectColor
	ActionUndo
	ActionRedo
	ActionSave
	ActionExport
	ActionCopy
	ActionLoad
)

// JumpTarget is the destination of a Jump action.
type JumpTarget uint8

const (
	JumpTopLeft JumpTarget = iota
	JumpBottomRight
	JumpLineStart
	JumpLineEnd
)

// Action is a decoded key press. Only the fields matching Kind are set:
// DX/DY for Move, Target for Jump, Tool for SelectTool, Color for
// SelectColor and Path for Load.
type Action struct {
	Kind   ActionKind
	DX, DY int
	Target JumpTarget
	Tool   tool.Tool
	Color  uint8
	Path   string
}

var none = Action{Kind: ActionNone}

func simple(k ActionKind) Action     { return Action{Kind: k} }
func Move(dx, dy int) Action         { return Action{Kind: ActionMove, DX: dx, DY: dy} }
func Jump(target JumpTarget) Action  { return Action{Kind: ActionJump, Target: target} }
func SelectTool(t tool.Tool) Action  { return Action{Kind: ActionSelectTool, Tool: t} }
func SelectColor(color uint8) Action { return Action{Kind: ActionSelectColor, Color: color} }
func Load(path string) Action        { return Action{Kind: ActionLoad, Path: path} }

func (a Action) Is(kind ActionKind) bool { return a.Kind == kind }

var kindNames = map[ActionKind]string{
	ActionNone:           "None",
	ActionQuit:           "Quit",
	ActionMove:           "Move",
	ActionJump:           "Jump",
	ActionDraw:           "Draw",
	ActionSelectTool:     "SelectTool",
	ActionToggleSymmetry: "ToggleSymmetry",
	ActionToggleGrid:     "ToggleGrid",
	ActionToggleHelp:     "ToggleHelp",
	ActionSelectColor:    "SelectColor",
	ActionUndo:           "Undo",
	ActionRedo:           "Redo",
	ActionSave:           "Save",
	ActionExport:         "Export",
	ActionCopy:           "Copy",
	ActionLoad:           "Load",
}

func (k ActionKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

func (t JumpTarget) String() string {
	switch t {
	case JumpTopLeft:
		return "TopLeft"
	case JumpBottomRight:
		return "BottomRight"
	case JumpLineStart:
		return "LineStart"
	case JumpLineEnd:
		return "LineEnd"
	default:
		return fmt.Sprintf("JumpTarget(%d)", uint8(t))
	}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return fmt.Sprintf("Move(%d,%d)", a.DX, a.DY)
	case ActionJump:
		return fmt.Sprintf("Jump(%s)", a.Target)
	case ActionSelectTool:
		return fmt.Sprintf("SelectTool(%s)", a.Tool)
	case ActionSelectColor:
		return fmt.Sprintf("SelectColor(%d)", a.Color)
	case ActionLoad:
		return fmt.Sprintf("Load(%q)", a.Path)
	default:
		return a.Kind.String()
	}
}

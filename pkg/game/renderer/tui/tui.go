package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"mazerunner/pkg/engine/locale"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// Cell contents, three columns wide
const (
	IconWall    = "###"
	IconFloor   = "   "
	IconStart   = " S "
	IconExit    = " E "
	IconPlayer  = " @ "
	IconRoute   = " . "
	CornerPost  = "+"
	WallAcross  = "---"
	OpenAcross  = "   "
	WallUpright = "|"
	OpenUpright = " "
)

// clearScreen is the ANSI sequence for clearing the screen and homing the cursor
const clearScreen = "\033[H\033[2J"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorWall    color.Style
	colorPassage color.Style
	colorStart   color.Style
	colorExit    color.Style
	colorPlayer  color.Style
	colorRoute   color.Style
	colorDenied  color.Style
	colorSubtle  color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a new TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	t := &TUIRenderer{out: w}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorPassage = color.Style{color.FgBlue}
	t.colorStart = color.Style{color.FgCyan, color.OpBold}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgYellow, color.BgBlack, color.OpBold}
	t.colorRoute = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StylePassage:
		return t.colorPassage.Sprint(text)
	case renderer.StyleStart:
		return t.colorStart.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleRoute:
		return t.colorRoute.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// RenderFrame writes a complete frame for g
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Fprint(t.out, t.Frame(g))
}

// Frame returns a complete frame for g: header, maze, move count,
// messages and the controls line
func (t *TUIRenderer) Frame(g *state.Game) string {
	var sb strings.Builder

	sb.WriteString(t.colorSubtle.Sprint(locale.Get("MAZE_HEADER", g.Grid.Length(), g.Grid.Height(), g.Seed)))
	sb.WriteString("\n\n")

	var route []world.Coordinate
	if g.ShowRoute {
		route = g.Route
	}
	sb.WriteString(t.RenderGrid(g.Grid, g.Agent.Position(), route))
	sb.WriteString("\n")

	sb.WriteString(locale.Get("MOVES", g.Agent.Moves()))
	sb.WriteString("\n")

	for _, msg := range g.Messages {
		sb.WriteString("  ")
		sb.WriteString(msg)
		sb.WriteString("\n")
	}

	sb.WriteString(t.colorSubtle.Sprint(locale.Get("CONTROLS")))
	sb.WriteString("\n")
	return sb.String()
}

// RenderGrid draws the grid top-down, z growing downwards, with the agent at
// agentPos and route cells marked. The entrance behind the starting cell and
// the exit in front of the ending cell are drawn open.
func (t *TUIRenderer) RenderGrid(grid *world.Grid, agentPos world.Coordinate, route []world.Coordinate) string {
	onRoute := make(map[world.Coordinate]bool, len(route))
	for _, pos := range route {
		onRoute[pos] = true
	}

	var sb strings.Builder
	for z := 0; z < grid.Height(); z++ {
		t.writeAcross(&sb, grid, z, world.Back)

		for x := 0; x < grid.Length(); x++ {
			cell, _ := grid.Lookup(world.NewCoordinate(x, z))
			t.writeUpright(&sb, cell.HasWall(world.Left))
			sb.WriteString(t.cellContent(cell, agentPos, onRoute))
		}
		last, _ := grid.Lookup(world.NewCoordinate(grid.Length()-1, z))
		t.writeUpright(&sb, last.HasWall(world.Right))
		sb.WriteString("\n")
	}
	t.writeAcross(&sb, grid, grid.Height()-1, world.Front)

	return sb.String()
}

// writeAcross writes the horizontal wall line on the dir side of row z
func (t *TUIRenderer) writeAcross(sb *strings.Builder, grid *world.Grid, z int, dir world.Direction) {
	for x := 0; x < grid.Length(); x++ {
		cell, _ := grid.Lookup(world.NewCoordinate(x, z))
		sb.WriteString(t.colorWall.Sprint(CornerPost))

		closed := cell.HasWall(dir)
		if (cell.StartingCell && dir == world.Back) || (cell.EndingCell && dir == world.Front) {
			closed = false
		}
		if closed {
			sb.WriteString(t.colorWall.Sprint(WallAcross))
		} else {
			sb.WriteString(OpenAcross)
		}
	}
	sb.WriteString(t.colorWall.Sprint(CornerPost))
	sb.WriteString("\n")
}

func (t *TUIRenderer) writeUpright(sb *strings.Builder, closed bool) {
	if closed {
		sb.WriteString(t.colorWall.Sprint(WallUpright))
	} else {
		sb.WriteString(OpenUpright)
	}
}

func (t *TUIRenderer) cellContent(cell *world.Cell, agentPos world.Coordinate, onRoute map[world.Coordinate]bool) string {
	switch {
	case cell.Position() == agentPos:
		return t.colorPlayer.Sprint(IconPlayer)
	case cell.IsWall:
		return t.colorWall.Sprint(IconWall)
	case cell.StartingCell:
		return t.colorStart.Sprint(IconStart)
	case cell.EndingCell:
		return t.colorExit.Sprint(IconExit)
	case onRoute[cell.Position()]:
		return t.colorRoute.Sprint(IconRoute)
	default:
		return t.colorPassage.Sprint(IconFloor)
	}
}

// GridSize returns the width and height in characters of a rendered grid
func GridSize(grid *world.Grid) (width, height int) {
	return 4*grid.Length() + 1, 2*grid.Height() + 1
}

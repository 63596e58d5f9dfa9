package renderer

import (
	"mazerunner/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StylePassage
	StyleStart
	StyleExit
	StylePlayer
	StyleRoute
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame:
	// header, maze, status and messages
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

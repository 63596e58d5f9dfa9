package gameplay

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mazerunner/pkg/engine/world"
)

// Agent errors
var (
	ErrNoGrid          = errors.New("agent needs a grid")
	ErrNoStartCell     = errors.New("grid has no start cell")
	ErrInvalidPosition = errors.New("position is not a passable cell")
)

// Agent is something that walks through a grid one cell at a time.
// It holds its own position; the grid is only consulted, never changed.
type Agent struct {
	id       uuid.UUID
	grid     *world.Grid
	position world.Coordinate
	moves    int
}

// NewAgent places a new agent on the grid's starting cell
func NewAgent(grid *world.Grid) (*Agent, error) {
	if grid == nil {
		return nil, ErrNoGrid
	}
	start := grid.StartCell()
	if start == nil {
		return nil, ErrNoStartCell
	}
	return NewAgentAt(grid, start.Position())
}

// NewAgentAt places a new agent at pos, which must be a passable cell of grid
func NewAgentAt(grid *world.Grid, pos world.Coordinate) (*Agent, error) {
	if grid == nil {
		return nil, ErrNoGrid
	}
	c, ok := grid.Lookup(pos)
	if !ok || c.IsWall {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	return &Agent{
		id:       uuid.New(),
		grid:     grid,
		position: pos,
	}, nil
}

// ID returns the agent's identifier
func (a *Agent) ID() uuid.UUID {
	return a.id
}

// Position returns the agent's current coordinate
func (a *Agent) Position() world.Coordinate {
	return a.position
}

// Grid returns the grid the agent moves within
func (a *Agent) Grid() *world.Grid {
	return a.grid
}

// Moves returns the number of successful moves made so far
func (a *Agent) Moves() int {
	return a.moves
}

// Move steps the agent in dir. A refused move leaves the agent where it was.
func (a *Agent) Move(dir world.Direction) bool {
	next, ok := TryMove(a.grid, a.position, dir)
	if !ok {
		return false
	}
	a.position = next
	a.moves++
	return true
}

// Cell returns the cell the agent stands on
func (a *Agent) Cell() *world.Cell {
	c, _ := a.grid.Lookup(a.position)
	return c
}

// AtExit returns true when the agent stands on the ending cell
func (a *Agent) AtExit() bool {
	c := a.Cell()
	return c != nil && c.EndingCell
}

// Reset returns the agent to the starting cell and clears the move count
func (a *Agent) Reset() {
	if start := a.grid.StartCell(); start != nil {
		a.position = start.Position()
	}
	a.moves = 0
}

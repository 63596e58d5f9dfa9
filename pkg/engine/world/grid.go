package world

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest length or height a grid can be built with.
// Anything smaller leaves no room for a boundary plus distinct start and end cells.
const MinDimension = 3

// Grid errors
var (
	ErrGridTooSmall  = errors.New("grid dimensions too small")
	ErrNoStartCell   = errors.New("grid has no start cell")
	ErrNoEndCell     = errors.New("grid has no end cell")
	ErrOpenPerimeter = errors.New("perimeter cell is passable")
)

// Grid is the set of cells a maze is carved into, keyed by coordinate.
// x runs over [0, length) and z over [0, height); every cell shares the
// y component Layer.
type Grid struct {
	cells  map[Coordinate]*Cell
	length int
	height int

	startCell *Cell
	endCell   *Cell
}

// NewGrid creates a new fully walled grid with the given dimensions
func NewGrid(length, height int) (*Grid, error) {
	g := &Grid{}
	if err := g.Build(length, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Build initializes the grid with the given dimensions.
//
// Cells on x=0, x=length-1 and z=0 are impassable, except the starting cell
// at (1, Layer, 0) which is forced open. The ending cell is placed at
// (length-2, Layer, height-1) on the open far edge.
func (g *Grid) Build(length, height int) error {
	if length < MinDimension || height < MinDimension {
		return fmt.Errorf("%w: %dx%d, minimum is %dx%d", ErrGridTooSmall, length, height, MinDimension, MinDimension)
	}

	g.length = length
	g.height = height
	g.cells = make(map[Coordinate]*Cell, length*height)

	start := g.StartPosition()
	end := g.EndPosition()

	for x := 0; x < length; x++ {
		for z := 0; z < height; z++ {
			pos := NewCoordinate(x, z)
			c := NewCell(pos)

			if g.IsOnPerimeter(pos) {
				c.IsWall = true
			}
			if pos == start {
				c.IsWall = false
				c.StartingCell = true
				g.startCell = c
			}
			if pos == end {
				c.EndingCell = true
				g.endCell = c
			}

			g.cells[pos] = c
		}
	}
	return nil
}

// Length returns the number of cells along x
func (g *Grid) Length() int {
	return g.length
}

// Height returns the number of cells along z
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of cells
func (g *Grid) Size() int {
	return len(g.cells)
}

// StartPosition returns where the starting cell of a grid this size lives
func (g *Grid) StartPosition() Coordinate {
	return NewCoordinate(1, 0)
}

// EndPosition returns where the ending cell of a grid this size lives
func (g *Grid) EndPosition() Coordinate {
	return NewCoordinate(g.length-2, g.height-1)
}

// StartCell returns the starting cell
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// EndCell returns the ending cell
func (g *Grid) EndCell() *Cell {
	return g.endCell
}

// Contains checks if a coordinate addresses a cell of this grid
func (g *Grid) Contains(pos Coordinate) bool {
	_, ok := g.cells[pos]
	return ok
}

// IsOnPerimeter checks if a coordinate lies on one of the walled edges.
// The far z edge is left open.
func (g *Grid) IsOnPerimeter(pos Coordinate) bool {
	if pos.Y != Layer || pos.X < 0 || pos.X >= g.length || pos.Z < 0 || pos.Z >= g.height {
		return false
	}
	return pos.X == 0 || pos.X == g.length-1 || pos.Z == 0
}

// Lookup returns the cell at the given coordinate.
// The second result is false when there is no cell there.
func (g *Grid) Lookup(pos Coordinate) (*Cell, bool) {
	if g.cells == nil {
		return nil, false
	}
	c, ok := g.cells[pos]
	return c, ok
}

// Neighbor returns the cell adjacent to pos in the specified direction
func (g *Grid) Neighbor(pos Coordinate, dir Direction) (*Cell, bool) {
	if !dir.IsValid() {
		return nil, false
	}
	return g.Lookup(pos.Step(dir))
}

// Neighbors returns the existing cells adjacent to pos in Back, Right,
// Front, Left order
func (g *Grid) Neighbors(pos Coordinate) []*Cell {
	neighbors := make([]*Cell, 0, 4)
	for _, dir := range AllDirections() {
		if c, ok := g.Neighbor(pos, dir); ok {
			neighbors = append(neighbors, c)
		}
	}
	return neighbors
}

// ForEachCell iterates over all cells row by row, z then x
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for z := 0; z < g.height; z++ {
		for x := 0; x < g.length; x++ {
			if c, ok := g.Lookup(NewCoordinate(x, z)); ok {
				fn(c)
			}
		}
	}
}

// Cells returns every cell in ForEachCell order
func (g *Grid) Cells() []*Cell {
	cells := make([]*Cell, 0, len(g.cells))
	g.ForEachCell(func(c *Cell) {
		cells = append(cells, c)
	})
	return cells
}

// ResetVisited clears the generation flag on every cell
func (g *Grid) ResetVisited() {
	for _, c := range g.cells {
		c.Visited = false
	}
}

// Validate checks the grid for structural issues
func (g *Grid) Validate() error {
	if g.length < MinDimension || g.height < MinDimension {
		return fmt.Errorf("%w: %dx%d", ErrGridTooSmall, g.length, g.height)
	}

	if g.startCell == nil {
		return ErrNoStartCell
	}

	if g.endCell == nil {
		return ErrNoEndCell
	}

	var err error
	g.ForEachCell(func(c *Cell) {
		if err == nil && g.IsOnPerimeter(c.Position()) && !c.IsWall && !c.StartingCell {
			err = fmt.Errorf("%w: %v", ErrOpenPerimeter, c.Position())
		}
	})
	return err
}

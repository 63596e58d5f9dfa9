// Package world provides the grid primitives a maze is carved from:
// coordinates, directions, walled cells and the grid that owns them.
package world

import (
	"errors"
	"fmt"
)

// ErrNotAdjacent is returned when a wall is removed between two cells that
// are not axis-aligned neighbours.
var ErrNotAdjacent = errors.New("cells are not adjacent")

// Cell represents a single unit of the grid.
type Cell struct {
	position Coordinate

	// One slot per direction, indexed by Direction. All start closed.
	walls [4]bool

	// Cell type flags
	IsWall       bool // Impassable terrain, never carved
	StartingCell bool
	EndingCell   bool

	// Visited is only meaningful while a generator runs; afterwards it
	// reads as "carved".
	Visited bool
}

// NewCell creates a fully enclosed cell at the given position
func NewCell(pos Coordinate) *Cell {
	return &Cell{
		position: pos,
		walls:    [4]bool{true, true, true, true},
	}
}

// Position returns the coordinate the cell was created at
func (c *Cell) Position() Coordinate {
	return c.position
}

// HasWall returns true if the wall slot facing dir is closed.
// Invalid directions always read as closed.
func (c *Cell) HasWall(dir Direction) bool {
	if !dir.IsValid() {
		return true
	}
	return c.walls[dir]
}

// Walls returns a copy of the wall slots in Back, Right, Front, Left order
func (c *Cell) Walls() [4]bool {
	return c.walls
}

// RemoveWall opens the wall slot facing dir
func (c *Cell) RemoveWall(dir Direction) {
	if dir.IsValid() {
		c.walls[dir] = false
	}
}

// RestoreWall closes the wall slot facing dir
func (c *Cell) RestoreWall(dir Direction) {
	if dir.IsValid() {
		c.walls[dir] = true
	}
}

// IsEnclosed returns true if every wall slot is closed
func (c *Cell) IsEnclosed() bool {
	return c.walls == [4]bool{true, true, true, true}
}

// RemoveWallBetween opens the pair of wall slots shared by current and next.
// The offsets are taken as current minus next.
func RemoveWallBetween(current, next *Cell) error {
	if current == nil || next == nil {
		return ErrNotAdjacent
	}

	a, b := current.position, next.position
	dx, dz := a.X-b.X, a.Z-b.Z
	if a.Y != b.Y || abs(dx)+abs(dz) != 1 {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}

	switch {
	case dx == -1: // next is to the right
		next.walls[Left] = false
		current.walls[Right] = false
	case dx == 1: // next is to the left
		next.walls[Right] = false
		current.walls[Left] = false
	case dz == -1: // next is in front
		next.walls[Back] = false
		current.walls[Front] = false
	case dz == 1: // next is behind
		next.walls[Front] = false
		current.walls[Back] = false
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Package generator carves perfect mazes into world grids.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/stack"

	"mazerunner/pkg/engine/world"
)

// Generation errors
var (
	ErrNilGrid          = errors.New("grid is nil")
	ErrStartOutOfBounds = errors.New("start coordinate is outside the grid")
	ErrStartIsWall      = errors.New("start coordinate is an impassable cell")
)

// RecursiveBacktracker carves a maze by depth-first search with backtracking.
// The path back to the start is kept on an explicit stack of coordinates, so
// the depth of the carved path is bounded by the grid size, not the call stack.
type RecursiveBacktracker struct {
	rng RandomSource
}

// NewRecursiveBacktracker returns a backtracker that draws its choices from rng.
// A nil rng is replaced with a time-seeded source.
func NewRecursiveBacktracker(rng RandomSource) *RecursiveBacktracker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RecursiveBacktracker{rng: rng}
}

// Name returns the name of this generator
func (b *RecursiveBacktracker) Name() string {
	return "Recursive Backtracker"
}

// Generate carves passages into grid starting at start. Every passable cell
// reachable from start ends up visited and joined to it by exactly one path.
// Impassable cells keep all four walls.
func (b *RecursiveBacktracker) Generate(grid *world.Grid, start world.Coordinate) error {
	if grid == nil {
		return ErrNilGrid
	}

	current, ok := grid.Lookup(start)
	if !ok {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if current.IsWall {
		return fmt.Errorf("%w: %v", ErrStartIsWall, start)
	}

	path := stack.New[world.Coordinate]()

	for {
		current.Visited = true

		candidates := carvableNeighbors(grid, current)
		if len(candidates) > 0 {
			next := candidates[b.rng.Intn(len(candidates))]
			path.Push(current.Position())

			// Neighbours are always axis-aligned, so this cannot fail.
			if err := world.RemoveWallBetween(current, next); err != nil {
				return err
			}

			next.Visited = true
			current = next
			continue
		}

		if path.Size() == 0 {
			return nil
		}

		current, _ = grid.Lookup(path.Pop())
	}
}

// carvableNeighbors returns the neighbours of c that exist, are passable and
// have not been visited yet
func carvableNeighbors(grid *world.Grid, c *world.Cell) []*world.Cell {
	var valid []*world.Cell
	for _, n := range grid.Neighbors(c.Position()) {
		if !n.Visited && !n.IsWall {
			valid = append(valid, n)
		}
	}
	return valid
}

package generator

import (
	"fmt"

	"mazerunner/pkg/engine/world"
)

// GridGenerator is an interface for maze carving algorithms
type GridGenerator interface {
	Generate(grid *world.Grid, start world.Coordinate) error
	Name() string
}

// RandomSource picks uniformly from [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Build creates a length x height grid and carves it with gen starting
// from the grid's starting cell.
func Build(gen GridGenerator, length, height int) (*world.Grid, error) {
	grid, err := world.NewGrid(length, height)
	if err != nil {
		return nil, err
	}

	if err := gen.Generate(grid, grid.StartPosition()); err != nil {
		return nil, fmt.Errorf("%s: %w", gen.Name(), err)
	}
	return grid, nil
}

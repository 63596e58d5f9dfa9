// Package gameplay tests movement validation, agents and route solving.
package gameplay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/generator"
)

// makeOpenPair returns a 4x4 grid where (1,1) and (2,1) are joined by a
// cleared wall pair and nothing else is carved.
func makeOpenPair(t *testing.T) (*world.Grid, *world.Cell, *world.Cell) {
	t.Helper()
	grid, err := world.NewGrid(4, 4)
	require.NoError(t, err)
	left, ok := grid.Lookup(world.NewCoordinate(1, 1))
	require.True(t, ok)
	right, ok := grid.Lookup(world.NewCoordinate(2, 1))
	require.True(t, ok)
	require.NoError(t, world.RemoveWallBetween(left, right))
	return grid, left, right
}

func generated(t *testing.T, length, height int, seed int64) *world.Grid {
	t.Helper()
	grid, err := generator.Build(generator.NewRecursiveBacktracker(rand.New(rand.NewSource(seed))), length, height)
	require.NoError(t, err)
	return grid
}

func TestTryMove_ThroughOpenPair(t *testing.T) {
	grid, left, right := makeOpenPair(t)

	got, ok := TryMove(grid, left.Position(), world.Right)
	require.True(t, ok)
	assert.Equal(t, right.Position(), got)

	got, ok = TryMove(grid, right.Position(), world.Left)
	require.True(t, ok)
	assert.Equal(t, left.Position(), got)
}

func TestTryMove_DestinationWallBlocks(t *testing.T) {
	grid, left, right := makeOpenPair(t)
	right.RestoreWall(world.Left)

	_, ok := TryMove(grid, left.Position(), world.Right)
	assert.False(t, ok, "closed destination slot must block entry")
}

func TestTryMove_OriginWallBlocks(t *testing.T) {
	grid, left, right := makeOpenPair(t)
	left.RestoreWall(world.Right)
	require.False(t, right.HasWall(world.Left))

	_, ok := TryMove(grid, left.Position(), world.Right)
	assert.False(t, ok, "closed origin Right slot must block +x regardless of the neighbour")
}

func TestTryMove_DestinationSlotMapping(t *testing.T) {
	tests := []struct {
		dir  world.Direction
		slot world.Direction
	}{
		{world.Right, world.Left},
		{world.Left, world.Right},
		{world.Front, world.Back},
		{world.Back, world.Front},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			grid, err := world.NewGrid(5, 5)
			require.NoError(t, err)
			from, _ := grid.Lookup(world.NewCoordinate(2, 2))
			to, ok := grid.Neighbor(from.Position(), tt.dir)
			require.True(t, ok)

			from.RemoveWall(tt.dir)
			_, moved := TryMove(grid, from.Position(), tt.dir)
			assert.False(t, moved, "destination %v slot still closed", tt.slot)

			to.RemoveWall(tt.slot)
			got, moved := TryMove(grid, from.Position(), tt.dir)
			assert.True(t, moved)
			assert.Equal(t, to.Position(), got)
		})
	}
}

func TestTryMove_ImpassableDestination(t *testing.T) {
	grid, err := world.NewGrid(4, 4)
	require.NoError(t, err)
	from, _ := grid.Lookup(world.NewCoordinate(1, 1))
	wall, _ := grid.Lookup(world.NewCoordinate(0, 1))
	require.True(t, wall.IsWall)

	// Even with both slots open, a wall cell can never be entered.
	from.RemoveWall(world.Left)
	wall.RemoveWall(world.Right)

	_, ok := TryMove(grid, from.Position(), world.Left)
	assert.False(t, ok)
}

func TestTryMove_OutOfBounds(t *testing.T) {
	grid := generated(t, 5, 5, 1)
	start := grid.StartCell().Position()

	// Behind the start there is no cell at all.
	_, ok := TryMove(grid, start, world.Back)
	assert.False(t, ok)

	// The exit sits on the open far edge; there is nothing in front of it.
	_, ok = TryMove(grid, grid.EndCell().Position(), world.Front)
	assert.False(t, ok)
}

func TestTryMove_InvalidInput(t *testing.T) {
	grid := generated(t, 5, 5, 1)

	_, ok := TryMove(nil, world.NewCoordinate(1, 1), world.Right)
	assert.False(t, ok)

	_, ok = TryMove(grid, grid.StartPosition(), world.Direction(8))
	assert.False(t, ok)
}

func TestTryMove_NeverCrossesClosedWalls(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		grid := generated(t, 8, 8, seed)

		for z := -1; z <= grid.Height(); z++ {
			for x := -1; x <= grid.Length(); x++ {
				pos := world.NewCoordinate(x, z)
				for _, dir := range world.AllDirections() {
					got, ok := TryMove(grid, pos, dir)
					if !ok {
						continue
					}
					dest, found := grid.Lookup(got)
					require.True(t, found, "seed %d: moved outside the grid to %v", seed, got)
					assert.False(t, dest.IsWall)
					assert.False(t, dest.HasWall(dir.Opposite()), "seed %d: %v %v crossed a closed wall", seed, pos, dir)
				}
			}
		}
	}
}

func TestOpenDirections(t *testing.T) {
	grid, left, _ := makeOpenPair(t)
	assert.Equal(t, []world.Direction{world.Right}, OpenDirections(grid, left.Position()))
	assert.True(t, CanEnter(grid, left.Position(), world.Right))
	assert.False(t, CanEnter(grid, left.Position(), world.Front))
}

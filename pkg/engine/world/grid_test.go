package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_TooSmall(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {2, 5}, {5, 2}, {-1, 3}, {3, 1}} {
		g, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrGridTooSmall, "NewGrid(%d, %d)", dims[0], dims[1])
		assert.Nil(t, g)
	}
}

func TestNewGrid_Dimensions(t *testing.T) {
	g, err := NewGrid(7, 4)
	require.NoError(t, err)

	assert.Equal(t, 7, g.Length())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 28, g.Size())
	assert.Len(t, g.Cells(), 28)

	for x := 0; x < 7; x++ {
		for z := 0; z < 4; z++ {
			c, ok := g.Lookup(NewCoordinate(x, z))
			require.True(t, ok, "cell (%d,%d) missing", x, z)
			assert.Equal(t, NewCoordinate(x, z), c.Position())
			assert.True(t, c.IsEnclosed(), "cell %v starts with an open wall", c.Position())
			assert.False(t, c.Visited)
		}
	}
}

func TestNewGrid_BoundaryWalls(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	g.ForEachCell(func(c *Cell) {
		pos := c.Position()
		onBoundary := pos.X == 0 || pos.X == 4 || pos.Z == 0
		switch {
		case pos == NewCoordinate(1, 0):
			assert.False(t, c.IsWall, "start cell must be passable")
		case onBoundary:
			assert.True(t, c.IsWall, "boundary cell %v should be a wall", pos)
		default:
			assert.False(t, c.IsWall, "interior cell %v should be passable", pos)
		}
	})

	require.NoError(t, g.Validate())
}

func TestNewGrid_StartAndEndMarkers(t *testing.T) {
	g, err := NewGrid(6, 9)
	require.NoError(t, err)

	require.NotNil(t, g.StartCell())
	require.NotNil(t, g.EndCell())
	assert.Equal(t, Coordinate{X: 1, Y: 1, Z: 0}, g.StartCell().Position())
	assert.Equal(t, Coordinate{X: 4, Y: 1, Z: 8}, g.EndCell().Position())
	assert.False(t, g.EndCell().IsWall)

	starts, ends := 0, 0
	g.ForEachCell(func(c *Cell) {
		if c.StartingCell {
			starts++
		}
		if c.EndingCell {
			ends++
		}
	})
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)
}

func TestNewGrid_MinimumSizeHasDistinctMarkers(t *testing.T) {
	g, err := NewGrid(MinDimension, MinDimension)
	require.NoError(t, err)
	assert.NotEqual(t, g.StartCell().Position(), g.EndCell().Position())
}

func TestLookup_OutOfBounds(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	for _, pos := range []Coordinate{
		NewCoordinate(-1, 0),
		NewCoordinate(4, 0),
		NewCoordinate(0, 4),
		{X: 1, Y: 0, Z: 1},
	} {
		c, ok := g.Lookup(pos)
		assert.False(t, ok, "Lookup(%v) found a cell", pos)
		assert.Nil(t, c)
	}

	var empty Grid
	_, ok := empty.Lookup(NewCoordinate(0, 0))
	assert.False(t, ok)
}

func TestNeighbors_Order(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	got := g.Neighbors(NewCoordinate(1, 1))
	require.Len(t, got, 4)
	assert.Equal(t, NewCoordinate(1, 0), got[0].Position())
	assert.Equal(t, NewCoordinate(2, 1), got[1].Position())
	assert.Equal(t, NewCoordinate(1, 2), got[2].Position())
	assert.Equal(t, NewCoordinate(0, 1), got[3].Position())

	// Corner cells only have two neighbours inside the grid.
	assert.Len(t, g.Neighbors(NewCoordinate(0, 0)), 2)
}

func TestForEachCell_RowOrder(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	cells := g.Cells()
	assert.Equal(t, NewCoordinate(0, 0), cells[0].Position())
	assert.Equal(t, NewCoordinate(1, 0), cells[1].Position())
	assert.Equal(t, NewCoordinate(0, 1), cells[3].Position())
	assert.Equal(t, NewCoordinate(2, 2), cells[8].Position())
}

func TestValidate_OpenPerimeter(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	c, ok := g.Lookup(NewCoordinate(0, 2))
	require.True(t, ok)
	c.IsWall = false

	assert.ErrorIs(t, g.Validate(), ErrOpenPerimeter)
}

func TestResetVisited(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	g.ForEachCell(func(c *Cell) { c.Visited = true })
	g.ResetVisited()
	g.ForEachCell(func(c *Cell) {
		assert.False(t, c.Visited, "cell %v still visited", c.Position())
	})
}

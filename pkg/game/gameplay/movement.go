// Package gameplay provides core game logic for agent movement through a carved grid.
package gameplay

import (
	"mazerunner/pkg/engine/world"
)

// TryMove returns the coordinate one step from pos in dir, if the move is allowed.
//
// A move is allowed when the destination exists, is passable, and its wall
// slot facing back toward pos is open. The wall slot of the origin cell facing
// the destination must be open too. On a generated grid both slots always
// agree; the second check only matters on a partially carved grid.
//
// A refused move returns false and the zero coordinate.
func TryMove(grid *world.Grid, pos world.Coordinate, dir world.Direction) (world.Coordinate, bool) {
	if grid == nil || !dir.IsValid() {
		return world.Coordinate{}, false
	}

	next := pos.Step(dir)
	dest, ok := grid.Lookup(next)
	if !ok || dest.IsWall {
		return world.Coordinate{}, false
	}

	if dest.HasWall(dir.Opposite()) {
		return world.Coordinate{}, false
	}

	if origin, ok := grid.Lookup(pos); ok && origin.HasWall(dir) {
		return world.Coordinate{}, false
	}

	return next, true
}

// CanEnter checks if the cell one step from pos in dir can be entered
func CanEnter(grid *world.Grid, pos world.Coordinate, dir world.Direction) bool {
	_, ok := TryMove(grid, pos, dir)
	return ok
}

// OpenDirections returns the directions an agent at pos could move in
func OpenDirections(grid *world.Grid, pos world.Coordinate) []world.Direction {
	var open []world.Direction
	for _, dir := range world.AllDirections() {
		if CanEnter(grid, pos, dir) {
			open = append(open, dir)
		}
	}
	return open
}

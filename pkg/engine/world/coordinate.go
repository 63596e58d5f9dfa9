package world

import "fmt"

// Layer is the y component shared by every cell of a grid. Grids are flat
// but positions are carried in three dimensions.
const Layer = 1

// Coordinate is an integer position in grid space
type Coordinate struct {
	X int
	Y int
	Z int
}

// NewCoordinate returns the coordinate on the grid layer at x, z
func NewCoordinate(x, z int) Coordinate {
	return Coordinate{X: x, Y: Layer, Z: z}
}

// Step returns the coordinate one unit away in the given direction.
// An invalid direction returns the coordinate unchanged.
func (c Coordinate) Step(dir Direction) Coordinate {
	dx, dz := dir.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y, Z: c.Z + dz}
}

// DirectionTo returns the direction leading from c to an axis-aligned
// neighbour. The second result is false for any other coordinate.
func (c Coordinate) DirectionTo(other Coordinate) (Direction, bool) {
	if c.Y != other.Y {
		return 0, false
	}
	for _, dir := range AllDirections() {
		if c.Step(dir) == other {
			return dir, true
		}
	}
	return 0, false
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

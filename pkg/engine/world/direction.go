package world

// Direction represents a cardinal direction on the grid plane.
// The numeric value doubles as the index of the matching wall slot on a Cell.
type Direction int

// Direction constants, in wall slot order
const (
	Back  Direction = iota // -z
	Right                  // +x
	Front                  // +z
	Left                   // -x
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Back, Right, Front, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Back:
		return "Back"
	case Right:
		return "Right"
	case Front:
		return "Front"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Back && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Back:
		return Front
	case Front:
		return Back
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the x and z offsets for this direction
func (d Direction) Delta() (xDelta, zDelta int) {
	switch d {
	case Back:
		return 0, -1
	case Right:
		return 1, 0
	case Front:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

package gameplay

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"mazerunner/pkg/engine/world"
)

// Solve finds the shortest route from one coordinate to another using only
// moves TryMove accepts. The route includes both ends. On a perfect maze it
// is the only route.
func Solve(grid *world.Grid, from, to world.Coordinate) ([]world.Coordinate, bool) {
	if grid == nil || !grid.Contains(from) || !grid.Contains(to) {
		return nil, false
	}

	visited := mapset.New[world.Coordinate]()
	parent := make(map[world.Coordinate]world.Coordinate)
	pending := queue.New[world.Coordinate]()

	visited.Put(from)
	pending.Enqueue(from)

	for !pending.Empty() {
		current := pending.Dequeue()
		if current == to {
			return buildRoute(parent, from, to), true
		}

		for _, dir := range world.AllDirections() {
			next, ok := TryMove(grid, current, dir)
			if !ok || visited.Has(next) {
				continue
			}
			visited.Put(next)
			parent[next] = current
			pending.Enqueue(next)
		}
	}

	return nil, false
}

func buildRoute(parent map[world.Coordinate]world.Coordinate, from, to world.Coordinate) []world.Coordinate {
	route := []world.Coordinate{to}
	for current := to; current != from; {
		current = parent[current]
		route = append(route, current)
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

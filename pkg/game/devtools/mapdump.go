// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/gameplay"
)

// cellSymbol returns the single-character symbol for a cell (no agent overlay).
func cellSymbol(cell *world.Cell) rune {
	switch {
	case cell == nil:
		return ' '
	case cell.StartingCell:
		return 'S'
	case cell.EndingCell:
		return 'E'
	case cell.IsWall:
		return '#'
	default:
		return '.'
	}
}

// wallBits renders the wall slots in Back, Right, Front, Left order as 1/0.
func wallBits(cell *world.Cell) string {
	bits := make([]byte, 0, 4)
	for _, closed := range cell.Walls() {
		if closed {
			bits = append(bits, '1')
		} else {
			bits = append(bits, '0')
		}
	}
	return string(bits)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// writePlan writes one line per z row with the agent overlaid as '@'.
func writePlan(w io.Writer, grid *world.Grid, agent *gameplay.Agent) {
	for z := 0; z < grid.Height(); z++ {
		for x := 0; x < grid.Length(); x++ {
			pos := world.NewCoordinate(x, z)
			if agent != nil && agent.Position() == pos {
				fmt.Fprint(w, "@")
				continue
			}
			cell, _ := grid.Lookup(pos)
			fmt.Fprintf(w, "%c", cellSymbol(cell))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a plain-text dump of grid: metadata, legend, a plan view
// and one line per cell with its flags and wall slots. agent may be nil.
func DumpMap(w io.Writer, grid *world.Grid, agent *gameplay.Agent) error {
	if grid == nil {
		return fmt.Errorf("dump map: %w", gameplay.ErrNoGrid)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# mazerunner map dump")
	fmt.Fprintf(bw, "size: %dx%d\n", grid.Length(), grid.Height())
	if start := grid.StartCell(); start != nil {
		fmt.Fprintf(bw, "start: %v\n", start.Position())
	}
	if end := grid.EndCell(); end != nil {
		fmt.Fprintf(bw, "end: %v\n", end.Position())
	}
	if agent != nil {
		fmt.Fprintf(bw, "agent: %s\n", agent.ID())
		fmt.Fprintf(bw, "agent_position: %v\n", agent.Position())
		fmt.Fprintf(bw, "moves: %d\n", agent.Moves())
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## legend")
	fmt.Fprintln(bw, "# impassable, . passable, S start, E end, @ agent")
	fmt.Fprintln(bw, "walls: 1 closed / 0 open, in Back Right Front Left order")

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## plan")
	writePlan(bw, grid, agent)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## cells")
	grid.ForEachCell(func(c *world.Cell) {
		pos := c.Position()
		fmt.Fprintf(bw, "%d %d %d wall=%d start=%d end=%d walls=%s\n",
			pos.X, pos.Y, pos.Z, flag(c.IsWall), flag(c.StartingCell), flag(c.EndingCell), wallBits(c))
	})

	return bw.Flush()
}

// DumpMapToFile writes DumpMap output into dir and returns the file path.
// The file is named after the agent, or "map.txt" without one.
func DumpMapToFile(dir string, grid *world.Grid, agent *gameplay.Agent) (string, error) {
	name := "map.txt"
	if agent != nil {
		name = fmt.Sprintf("map-%s.txt", agent.ID())
	}
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, grid, agent); err != nil {
		return "", err
	}
	return path, f.Close()
}

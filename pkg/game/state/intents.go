package state

import (
	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/locale"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/devtools"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet.
var dynamicGet = locale.Get

// DumpDir is where map dumps requested from inside a game are written
var DumpDir = "."

// DirectionForAction returns the grid direction a movement action walks in
func DirectionForAction(a input.Action) (world.Direction, bool) {
	switch a {
	case input.ActionMoveBack:
		return world.Back, true
	case input.ActionMoveRight:
		return world.Right, true
	case input.ActionMoveFront:
		return world.Front, true
	case input.ActionMoveLeft:
		return world.Left, true
	default:
		return 0, false
	}
}

// ProcessIntent applies a high-level input intent to the game
func (g *Game) ProcessIntent(intent input.Intent) {
	if dir, ok := DirectionForAction(intent.Action); ok {
		g.move(dir)
		return
	}

	switch intent.Action {
	case input.ActionNone:
		return

	case input.ActionQuit:
		g.Quit = true

	case input.ActionToggleRoute:
		g.ShowRoute = !g.ShowRoute
		if g.ShowRoute {
			g.UpdateRoute()
			g.AddMessage(locale.Get("ROUTE_SHOWN"))
		} else {
			g.AddMessage(locale.Get("ROUTE_HIDDEN"))
		}

	case input.ActionReset:
		g.Agent.Reset()
		g.Won = false
		if g.ShowRoute {
			g.UpdateRoute()
		}
		g.AddMessage(locale.Get("RESET"))

	case input.ActionDumpMap:
		path, err := devtools.DumpMapToFile(DumpDir, g.Grid, g.Agent)
		if err != nil {
			g.AddMessage(locale.Get("MAP_DUMP_FAILED", err))
		} else {
			g.AddMessage(locale.Get("MAP_DUMPED", path))
		}
	}
}

func (g *Game) move(dir world.Direction) {
	if g.Won {
		return
	}

	if !g.Agent.Move(dir) {
		g.AddMessage(locale.Get("BLOCKED", dynamicGet(dir.String())))
		return
	}

	if g.ShowRoute {
		g.UpdateRoute()
	}

	if g.Agent.AtExit() {
		g.Won = true
		g.AddMessage(locale.Get("EXIT_REACHED", g.Agent.Moves()))
	}
}

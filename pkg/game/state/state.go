package state

import (
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/gameplay"
)

const maxMessages = 5

// Game represents one maze session: the carved grid and the agent walking it
type Game struct {
	Grid  *world.Grid
	Agent *gameplay.Agent

	Seed int64

	Messages []string

	// Route from the agent to the exit, shown when ShowRoute is set
	Route     []world.Coordinate
	ShowRoute bool

	Won  bool
	Quit bool
}

// NewGame creates a game with a fresh agent on the grid's starting cell
func NewGame(grid *world.Grid, seed int64) (*Game, error) {
	agent, err := gameplay.NewAgent(grid)
	if err != nil {
		return nil, err
	}
	return &Game{
		Grid:     grid,
		Agent:    agent,
		Seed:     seed,
		Messages: make([]string, 0),
	}, nil
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// UpdateRoute recomputes the route from the agent to the exit
func (g *Game) UpdateRoute() bool {
	end := g.Grid.EndCell()
	if end == nil {
		g.Route = nil
		return false
	}
	route, ok := gameplay.Solve(g.Grid, g.Agent.Position(), end.Position())
	g.Route = route
	return ok
}

package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"settlers/board"
	"settlers/control"
	"settlers/game"
)

// Click is a resolved input: exactly one field is set. It is the closed set
// of things a player can interact with.
type Click struct {
	Control   bool
	Card      *game.Card
	Node      *board.Node
	Connector *board.Connector
	Cell      *board.Cell
}

// IsZero reports whether the click targets nothing.
func (c Click) IsZero() bool {
	return !c.Control && c.Card == nil && c.Node == nil && c.Connector == nil && c.Cell == nil
}

// InputSource produces the next click for the game's current state. A zero
// click means the source has nothing left to play.
type InputSource interface {
	NextClick(*game.Game) Click
}

// Engine drives a game from an input source until a number of regular turns
// has completed. The game itself never terminates, so the cap is the only
// stop condition.
type Engine struct {
	Game     *game.Game
	Control  *control.Control
	Input    InputSource
	MaxTurns int

	// OnFrame, when set, runs after every applied input. It stands in for
	// the animation-frame tick that drives the rendering adapter.
	OnFrame func()
}

func New(g *game.Game, input InputSource, maxTurns int) *Engine {
	return &Engine{
		Game:     g,
		Control:  control.New(g),
		Input:    input,
		MaxTurns: maxTurns,
	}
}

// Run executes the game loop and returns the number of regular turns played.
func (e *Engine) Run() (int, error) {
	g := e.Game
	log.Info().Int("players", g.PlayerCount).Int("first", g.FirstPlayer).Msg("game starting")

	lastTurn := -1
	for g.Step != game.StepTurn || g.TurnCount() < e.MaxTurns {
		if g.Step == game.StepTurn && g.TurnCount() != lastTurn {
			lastTurn = g.TurnCount()
			log.Debug().Int("turn", lastTurn).Int("player", g.CurrentPlayerID).Msg("turn started")
		}

		click := e.Input.NextClick(g)
		if click.IsZero() {
			return g.TurnCount(), fmt.Errorf("engine: input exhausted in step %s", g.Step)
		}
		e.apply(click)
		if e.OnFrame != nil {
			e.OnFrame()
		}
	}

	log.Info().Int("turns", g.TurnCount()).Msg("game stopped at turn cap")
	return g.TurnCount(), nil
}

// apply routes a click to its handler. Illegal clicks are silently unhandled,
// matching the rules engine's failure semantics.
func (e *Engine) apply(click Click) bool {
	switch {
	case click.Control:
		return e.Control.Click()
	case click.Card != nil:
		click.Card.Toggle()
		return true
	case click.Node != nil:
		return e.Game.HandleNodeClick(click.Node)
	case click.Connector != nil:
		return e.Game.HandleConnectorClick(click.Connector)
	case click.Cell != nil:
		return e.Game.HandleCellClick(click.Cell)
	default:
		return false
	}
}

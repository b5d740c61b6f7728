package engine

import (
	"golang.org/x/exp/rand"

	"settlers/control"
	"settlers/game"
)

// RandomInput plays uniformly among the currently legal targets: highlighted
// nodes, connectors and cells, card toggles while a discard selection is
// pending, and the primary control whenever it is enabled.
type RandomInput struct {
	rng *rand.Rand
}

func NewRandomInput(rng *rand.Rand) *RandomInput {
	return &RandomInput{rng: rng}
}

func (ri *RandomInput) NextClick(g *game.Game) Click {
	candidates := ri.candidates(g)
	if len(candidates) == 0 {
		return Click{}
	}
	return candidates[ri.rng.Intn(len(candidates))]
}

func (ri *RandomInput) candidates(g *game.Game) []Click {
	var clicks []Click

	for _, n := range g.Board.Nodes {
		if n.Selected {
			clicks = append(clicks, Click{Node: n})
		}
	}
	for _, c := range g.Board.Connectors {
		if c.Selected {
			clicks = append(clicks, Click{Connector: c})
		}
	}
	for _, c := range g.Board.Cells {
		if c.Selected {
			clicks = append(clicks, Click{Cell: c})
		}
	}

	// During a discard selection, steer toward exactly half the hand
	// selected: select more while short, deselect while over.
	if g.Step == game.StepRobberDiscard {
		p := g.Player(g.CurrentPlayer())
		half := len(p.Hand) / 2
		selected := p.SelectedCount()
		for _, card := range p.Hand {
			if selected < half && !card.Selected {
				clicks = append(clicks, Click{Card: card})
			}
			if selected > half && card.Selected {
				clicks = append(clicks, Click{Card: card})
			}
		}
	}

	if !control.StatusFor(g.Action).Disabled {
		clicks = append(clicks, Click{Control: true})
	}

	return clicks
}

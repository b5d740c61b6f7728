package game

import (
	"settlers/board"
	"settlers/event"
)

// Card is a single resource card in a player's hand. Selection is used by the
// robber discard flow; the summary panel toggles it on click.
type Card struct {
	event.Emitter
	Type     board.Terrain
	Selected bool
}

// Toggle flips the selection flag and notifies observers.
func (c *Card) Toggle() {
	c.Selected = !c.Selected
	c.Fire(event.Event{Kind: event.Toggle, Data: c})
}

// Pieces tracks a player's remaining building stock.
type Pieces struct {
	Roads    int
	Villages int
	Cities   int
}

// Cost is a resource requirement, type to count.
type Cost map[board.Terrain]int

// Player holds identity, remaining pieces and the card ledger.
type Player struct {
	event.Emitter
	ID     int
	Pieces Pieces
	Hand   []*Card

	setupNode *board.Node // most recent setup placement, cleared after the setup turn
}

func NewPlayer(id int) *Player {
	return &Player{
		ID:     id,
		Pieces: Pieces{Roads: 15, Villages: 5, Cities: 4},
	}
}

// DrawCard appends a new card of the given type to the hand and fires a
// drawcard event carrying the card, so subscribers can hook the card's own
// toggle events. A statechange follows to refresh derived views.
func (p *Player) DrawCard(t board.Terrain) *Card {
	card := &Card{Type: t}
	p.Hand = append(p.Hand, card)
	p.Fire(event.Event{Kind: event.DrawCard, Data: card})
	p.Fire(event.Event{Kind: event.StateChange, Data: p})
	return card
}

// HasCards reports whether the hand covers every requirement.
func (p *Player) HasCards(cost Cost) bool {
	counts := p.CardCounts()
	for t, n := range cost {
		if counts[t] < n {
			return false
		}
	}
	return true
}

// UseCards removes the given counts from the hand, taking the first matching
// card per unit. Callers must gate on HasCards first; coming up short here is
// a programming error.
func (p *Player) UseCards(cost Cost) {
	for t, n := range cost {
		for i := 0; i < n; i++ {
			if !p.removeFirst(t) {
				panic("game: UseCards without enough cards, check HasCards first")
			}
		}
	}
	p.Fire(event.Event{Kind: event.StateChange, Data: p})
}

// DiscardSelected removes every selected card and returns how many were
// removed.
func (p *Player) DiscardSelected() int {
	kept := p.Hand[:0]
	removed := 0
	for _, c := range p.Hand {
		if c.Selected {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	p.Hand = kept
	if removed > 0 {
		p.Fire(event.Event{Kind: event.StateChange, Data: p})
	}
	return removed
}

// SelectedCount returns how many cards are currently flagged for discard.
func (p *Player) SelectedCount() int {
	n := 0
	for _, c := range p.Hand {
		if c.Selected {
			n++
		}
	}
	return n
}

// CardCounts returns the hand tallied per resource type.
func (p *Player) CardCounts() Cost {
	counts := Cost{}
	for _, c := range p.Hand {
		counts[c.Type]++
	}
	return counts
}

func (p *Player) removeFirst(t board.Terrain) bool {
	for i, c := range p.Hand {
		if c.Type == t {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

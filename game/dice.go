package game

import (
	"golang.org/x/exp/rand"

	"settlers/event"
)

// Dice is the pair of six-sided dice. The random source is injected so tests
// can supply deterministic sequences.
type Dice struct {
	event.Emitter
	rng  *rand.Rand
	A, B int
}

func NewDice(rng *rand.Rand) *Dice {
	return &Dice{rng: rng}
}

// Roll throws both dice independently, notifies observers and returns the
// sum.
func (d *Dice) Roll() int {
	d.A = d.rng.Intn(6) + 1
	d.B = d.rng.Intn(6) + 1
	d.Fire(event.Event{Kind: event.StateChange, Data: d})
	return d.A + d.B
}

// Sum returns the last rolled total, 0 before the first roll.
func (d *Dice) Sum() int {
	if d.A == 0 {
		return 0
	}
	return d.A + d.B
}

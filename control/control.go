package control

import (
	"fmt"

	"settlers/event"
	"settlers/game"
)

// Status is the presentation of the primary control for one action value.
type Status struct {
	Label    string
	Disabled bool
}

// statuses is the full action table. Every action the state machine can
// publish must appear here.
var statuses = map[game.Action]Status{
	game.ActionSetupVillage:  {Label: "Place a village", Disabled: true},
	game.ActionSetupRoad:     {Label: "Place a road", Disabled: true},
	game.ActionRollDice:      {Label: "Roll dice"},
	game.ActionNextTurn:      {Label: "End turn"},
	game.ActionRobberSelect:  {Label: "Select cards to discard", Disabled: true},
	game.ActionRobberDiscard: {Label: "Discard"},
	game.ActionRobberPlace:   {Label: "Place the robber", Disabled: true},
}

// StatusFor resolves the presentation for an action. A missing entry is a
// bug in the phase table, not user input, so it fails loudly.
func StatusFor(a game.Action) Status {
	s, ok := statuses[a]
	if !ok {
		panic(fmt.Sprintf("control: no status for action %q", a))
	}
	return s
}

// Control is the single primary button. Its label and enabled state follow
// the game's current action; clicking it dispatches the phase-appropriate
// bulk action.
type Control struct {
	event.Emitter
	game     *game.Game
	Label    string
	Disabled bool
}

func New(g *game.Game) *Control {
	c := &Control{game: g}
	c.refresh()
	g.AddObserver(event.ObserverFunc(func(e event.Event) bool {
		if e.Kind != event.StateChange {
			return false
		}
		c.refresh()
		return false
	}))
	return c
}

// Click fires the control's click event and runs the current action. Clicks
// on a disabled control are unhandled.
func (c *Control) Click() bool {
	if c.Disabled {
		return false
	}
	c.Fire(event.Event{Kind: event.Click, Data: c})
	return c.game.DoAction()
}

func (c *Control) refresh() {
	s := StatusFor(c.game.Action)
	if s.Label == c.Label && s.Disabled == c.Disabled {
		return
	}
	c.Label = s.Label
	c.Disabled = s.Disabled
	c.Fire(event.Event{Kind: event.StateChange, Data: c})
}

// DiceControl is the dice display. Clicking it rolls only while the pending
// action is the dice roll.
type DiceControl struct {
	event.Emitter
	game *game.Game
}

func NewDice(g *game.Game) *DiceControl {
	d := &DiceControl{game: g}
	g.Dice.AddObserver(event.ObserverFunc(func(e event.Event) bool {
		if e.Kind != event.StateChange {
			return false
		}
		d.Fire(event.Event{Kind: event.StateChange, Data: d})
		return false
	}))
	return d
}

// Faces returns the last rolled dice values.
func (d *DiceControl) Faces() (int, int) {
	return d.game.Dice.A, d.game.Dice.B
}

func (d *DiceControl) Click() bool {
	if d.game.Action != game.ActionRollDice {
		return false
	}
	return d.game.DoAction()
}

package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"settlers/board"
	"settlers/event"
)

// Building costs outside the setup phases.
var (
	villageCost = Cost{board.Wood: 1, board.Brick: 1, board.Wheat: 1, board.Sheep: 1}
	roadCost    = Cost{board.Wood: 1, board.Brick: 1}
)

// robberHandLimit is the hand size at which a rolled 7 forces a discard.
const robberHandLimit = 8

// Game is the aggregate root: players, dice, the board graph and the phase
// state. All mutation is synchronous; observers may re-enter the game from
// their handlers.
type Game struct {
	event.Emitter
	Board   *board.Board
	Players []*Player
	Dice    *Dice

	Step   Step
	Action Action

	PlayerCount int
	FirstPlayer int

	// CurrentPlayerID mirrors CurrentPlayer() for display consumers. It is
	// republished after every transition, never authoritative.
	CurrentPlayerID int

	setupTurn  int
	robberTurn int
	turnCount  int
}

// NewGame wires a fresh game in the first setup phase. The random source
// feeds the dice.
func NewGame(b *board.Board, playerCount, firstPlayer int, rng *rand.Rand) (*Game, error) {
	if _, ok := setupOrder[playerCount]; !ok {
		return nil, fmt.Errorf("game: unsupported player count %d", playerCount)
	}
	if firstPlayer < 1 || firstPlayer > playerCount {
		return nil, fmt.Errorf("game: first player %d out of range 1..%d", firstPlayer, playerCount)
	}

	g := &Game{
		Board:       b,
		Dice:        NewDice(rng),
		Step:        StepSetupVillage,
		Action:      ActionSetupVillage,
		PlayerCount: playerCount,
		FirstPlayer: firstPlayer,
	}
	for id := 1; id <= playerCount; id++ {
		p := NewPlayer(id)
		// Hook every drawn card's toggle events so discard selection can
		// recompute the pending action.
		p.AddObserver(event.ObserverFunc(func(e event.Event) bool {
			if e.Kind != event.DrawCard {
				return false
			}
			card := e.Data.(*Card)
			card.AddObserver(event.ObserverFunc(g.onCardToggle))
			return true
		}))
		g.Players = append(g.Players, p)
	}

	g.refreshHighlights()
	g.publish()
	return g, nil
}

// Player returns the player with the given id (1..N).
func (g *Game) Player(id int) *Player {
	return g.Players[id-1]
}

// CurrentPlayer derives the acting player from the phase and its counter.
// During setup it follows the snake-draft offsets; during the robber discard
// round it walks every player once; otherwise it follows the turn counter.
func (g *Game) CurrentPlayer() int {
	offset := 0
	switch g.Step {
	case StepSetupVillage, StepSetupRoad:
		offset = setupOrder[g.PlayerCount][g.setupTurn]
	case StepRobberDiscard:
		offset = g.robberTurn
	case StepTurn, StepRobberPlace:
		offset = g.turnCount
	}
	return (g.FirstPlayer-1+offset)%g.PlayerCount + 1
}

// TurnCount returns the number of completed regular turns.
func (g *Game) TurnCount() int {
	return g.turnCount
}

// SetupTurn returns the current index into the snake-draft order.
func (g *Game) SetupTurn() int {
	return g.setupTurn
}

// CanBuildVillage reports whether the current player may place a village on
// the node in the current phase.
func (g *Game) CanBuildVillage(n *board.Node) bool {
	if n.Owner != 0 || siblingOwned(n) {
		return false
	}
	switch g.Step {
	case StepSetupVillage:
		return true
	case StepTurn:
		p := g.Player(g.CurrentPlayer())
		if p.Pieces.Villages == 0 || !p.HasCards(villageCost) {
			return false
		}
		for _, c := range n.Connectors() {
			if c.Owner == p.ID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CanBuildRoad reports whether the current player may place a road on the
// connector in the current phase.
func (g *Game) CanBuildRoad(c *board.Connector) bool {
	if c.Owner != 0 {
		return false
	}
	p := g.Player(g.CurrentPlayer())
	switch g.Step {
	case StepSetupRoad:
		return p.setupNode != nil && c.Touches(p.setupNode)
	case StepTurn:
		if p.Pieces.Roads == 0 || !p.HasCards(roadCost) {
			return false
		}
		for _, n := range []*board.Node{c.NodeA, c.NodeB} {
			if n.Owner == p.ID {
				return true
			}
			for _, other := range n.Connectors() {
				if other != c && other.Owner == p.ID {
					return true
				}
			}
		}
		return false
	default:
		return false
	}
}

// BuildVillage places a village for the current player. Callers gate on
// CanBuildVillage. Setup placements are free and advance the phase; regular
// placements consume the village cost.
func (g *Game) BuildVillage(n *board.Node) {
	p := g.Player(g.CurrentPlayer())
	n.SetOwner(p.ID)
	p.Pieces.Villages--
	p.Fire(event.Event{Kind: event.StateChange, Data: p})

	if g.Step == StepSetupVillage {
		p.setupNode = n
		g.NextTurn()
		return
	}
	p.UseCards(villageCost)
	g.refreshHighlights()
	g.publish()
}

// BuildRoad places a road for the current player. Callers gate on
// CanBuildRoad.
func (g *Game) BuildRoad(c *board.Connector) {
	p := g.Player(g.CurrentPlayer())
	c.SetOwner(p.ID)
	p.Pieces.Roads--
	p.Fire(event.Event{Kind: event.StateChange, Data: p})

	if g.Step == StepSetupRoad {
		g.NextTurn()
		return
	}
	p.UseCards(roadCost)
	g.refreshHighlights()
	g.publish()
}

// HandleNodeClick builds a village when the click is legal; illegal clicks
// are reported unhandled.
func (g *Game) HandleNodeClick(n *board.Node) bool {
	if !g.CanBuildVillage(n) {
		return false
	}
	g.BuildVillage(n)
	return true
}

// HandleConnectorClick builds a road when the click is legal.
func (g *Game) HandleConnectorClick(c *board.Connector) bool {
	if !g.CanBuildRoad(c) {
		return false
	}
	g.BuildRoad(c)
	return true
}

// HandleCellClick relocates the robber during robber_place. The target must
// be a highlighted land cell other than the robber's current cell.
func (g *Game) HandleCellClick(c *board.Cell) bool {
	if g.Step != StepRobberPlace || !c.Selected {
		return false
	}
	g.Board.Robber().SetRobber(false)
	c.SetRobber(true)
	g.NextTurn()
	return true
}

// DoAction runs the bulk action named by the current action value. Disabled
// actions report the click unhandled; an action missing from the dispatch is
// a phase-table bug and panics.
func (g *Game) DoAction() bool {
	switch g.Action {
	case ActionNextTurn:
		g.NextTurn()
	case ActionRollDice:
		g.ThrowDice()
	case ActionRobberDiscard:
		g.robberDiscard()
	case ActionSetupVillage, ActionSetupRoad, ActionRobberSelect, ActionRobberPlace:
		return false
	default:
		panic(fmt.Sprintf("game: unknown action %d", g.Action))
	}
	return true
}

// ThrowDice resolves a dice roll: a 7 starts the robber sequence before any
// distribution; every other sum pays one card per owned node adjacent to a
// matching cell.
func (g *Game) ThrowDice() {
	sum := g.Dice.Roll()
	if sum == 7 {
		g.handleRobber()
		return
	}
	g.distribute(sum)
	g.Action = ActionNextTurn
	g.refreshHighlights()
	g.publish()
}

// NextTurn is the single phase-advance function; every phase has exactly one
// deterministic successor. It recomputes the buildable highlights and
// republishes the denormalized current player.
func (g *Game) NextTurn() {
	switch g.Step {
	case StepSetupVillage:
		g.Step = StepSetupRoad
		g.Action = ActionSetupRoad
	case StepSetupRoad:
		g.Player(g.CurrentPlayer()).setupNode = nil
		g.setupTurn++
		if g.setupTurn == len(setupOrder[g.PlayerCount]) {
			g.Step = StepTurn
			g.Action = ActionRollDice
			g.turnCount = 0
		} else {
			g.Step = StepSetupVillage
			g.Action = ActionSetupVillage
		}
	case StepTurn:
		g.turnCount++
		g.Action = ActionRollDice
	case StepRobberDiscard:
		g.robberTurn++
		g.advanceRobber()
		return
	case StepRobberPlace:
		g.Step = StepTurn
		g.Action = ActionNextTurn
	}
	g.refreshHighlights()
	g.publish()
}

func (g *Game) handleRobber() {
	g.Step = StepRobberDiscard
	g.robberTurn = 0
	g.advanceRobber()
}

// advanceRobber walks the discard round, skipping players under the hand
// limit, then opens robber placement.
func (g *Game) advanceRobber() {
	for g.robberTurn < g.PlayerCount {
		p := g.Player(g.CurrentPlayer())
		if len(p.Hand) >= robberHandLimit {
			g.Action = ActionRobberSelect
			g.refreshHighlights()
			g.publish()
			return
		}
		g.robberTurn++
	}
	g.Step = StepRobberPlace
	g.Action = ActionRobberPlace
	g.refreshHighlights()
	g.publish()
}

// robberDiscard confirms the discard selection for the current player.
func (g *Game) robberDiscard() {
	g.Player(g.CurrentPlayer()).DiscardSelected()
	g.NextTurn()
}

// onCardToggle recomputes the pending action while a discard selection is in
// progress: the confirm action unlocks only when exactly half the hand
// (rounded down) is selected.
func (g *Game) onCardToggle(e event.Event) bool {
	if e.Kind != event.Toggle {
		return false
	}
	if g.Step != StepRobberDiscard {
		return false
	}
	if g.Action != ActionRobberSelect && g.Action != ActionRobberDiscard {
		return false
	}
	p := g.Player(g.CurrentPlayer())
	if p.SelectedCount() == len(p.Hand)/2 {
		g.Action = ActionRobberDiscard
	} else {
		g.Action = ActionRobberSelect
	}
	g.publish()
	return true
}

// distribute pays one resource card per owned node adjacent to each cell
// matching the rolled sum. The robber's cell never produces.
// TODO: cities should yield two cards once a city build path exists.
func (g *Game) distribute(sum int) {
	for _, c := range g.Board.Cells {
		if c.Value != sum || c.Robber {
			continue
		}
		for _, n := range c.Nodes() {
			if n.Owner != 0 {
				g.Player(n.Owner).DrawCard(c.Terrain)
			}
		}
	}
}

// refreshHighlights recomputes the selection flags marking legal build and
// robber targets for the current phase.
func (g *Game) refreshHighlights() {
	for _, n := range g.Board.Nodes {
		n.SetSelected(g.CanBuildVillage(n))
	}
	for _, c := range g.Board.Connectors {
		c.SetSelected(g.CanBuildRoad(c))
	}
	for _, c := range g.Board.Cells {
		c.SetSelected(g.Step == StepRobberPlace && c.Terrain.Land() && !c.Robber)
	}
}

func (g *Game) publish() {
	g.CurrentPlayerID = g.CurrentPlayer()
	g.Fire(event.Event{Kind: event.StateChange, Data: g})
}

func siblingOwned(n *board.Node) bool {
	for _, s := range n.Siblings() {
		if s.Owner != 0 {
			return true
		}
	}
	return false
}

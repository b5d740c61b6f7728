package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"settlers/board"
)

func testGame(t *testing.T, players int) *Game {
	t.Helper()
	b, err := board.New(board.StandardLayout())
	require.NoError(t, err)
	g, err := NewGame(b, players, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return g
}

func firstBuildableNode(g *Game) *board.Node {
	for _, n := range g.Board.Nodes {
		if g.CanBuildVillage(n) {
			return n
		}
	}
	return nil
}

func firstBuildableConnector(g *Game) *board.Connector {
	for _, c := range g.Board.Connectors {
		if g.CanBuildRoad(c) {
			return c
		}
	}
	return nil
}

// runSetup plays through the snake draft greedily and returns the player who
// placed each setup village, in order.
func runSetup(t *testing.T, g *Game) []int {
	t.Helper()
	var order []int
	for g.Step == StepSetupVillage || g.Step == StepSetupRoad {
		if g.Step == StepSetupVillage {
			order = append(order, g.CurrentPlayer())
			n := firstBuildableNode(g)
			require.NotNil(t, n, "setup must always find a buildable node")
			require.True(t, g.HandleNodeClick(n))
		} else {
			c := firstBuildableConnector(g)
			require.NotNil(t, c, "setup must always find a buildable road")
			require.True(t, g.HandleConnectorClick(c))
		}
	}
	return order
}

func giveCards(p *Player, cost Cost) {
	for terrain, n := range cost {
		for i := 0; i < n; i++ {
			p.DrawCard(terrain)
		}
	}
}

// seedWithSum finds a seed whose first dice roll produces the wanted sum.
func seedWithSum(t *testing.T, want int) uint64 {
	t.Helper()
	for seed := uint64(1); seed < 100000; seed++ {
		rng := rand.New(rand.NewSource(seed))
		if rng.Intn(6)+1+rng.Intn(6)+1 == want {
			return seed
		}
	}
	t.Fatalf("no seed found rolling a %d", want)
	return 0
}

func TestSetupSnakeDraft(t *testing.T) {
	for _, players := range []int{2, 3, 4, 5, 6} {
		g := testGame(t, players)

		order := runSetup(t, g)

		require.Len(t, order, 2*players, "setup holds two placements per player")
		visits := map[int]int{}
		for _, p := range order {
			visits[p]++
		}
		for id := 1; id <= players; id++ {
			require.Equal(t, 2, visits[id], "player %d places exactly twice", id)
		}
		// Snake draft: the second half mirrors the first.
		for i := 0; i < players; i++ {
			require.Equal(t, order[i], order[2*players-1-i], "descending pass mirrors ascending")
		}

		require.Equal(t, StepTurn, g.Step)
		require.Equal(t, 0, g.TurnCount())
		require.Equal(t, ActionRollDice, g.Action)
	}
}

func TestFourPlayerSetupEndToEnd(t *testing.T) {
	g := testGame(t, 4)

	order := runSetup(t, g)

	require.Equal(t, []int{1, 2, 3, 4, 4, 3, 2, 1}, order)
	require.Equal(t, StepTurn, g.Step)
	require.Equal(t, 0, g.TurnCount())
	require.Equal(t, 1, g.CurrentPlayer())
	require.Equal(t, 1, g.CurrentPlayerID)
}

func TestSetupVillageRejectsOwnedSiblings(t *testing.T) {
	g := testGame(t, 4)

	n := firstBuildableNode(g)
	require.True(t, g.HandleNodeClick(n))

	// Player 1's setup road is placed; player 2 must not build adjacent to
	// the new village, in any phase.
	require.True(t, g.HandleConnectorClick(firstBuildableConnector(g)))
	for _, step := range []Step{StepSetupVillage, StepSetupRoad, StepTurn, StepRobberDiscard, StepRobberPlace} {
		saved := g.Step
		g.Step = step
		for _, sibling := range n.Siblings() {
			require.False(t, g.CanBuildVillage(sibling), "sibling of an owned node in step %s", step)
		}
		g.Step = saved
	}
}

func TestVillageBuildConsumesCost(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	p := g.Player(1)
	require.Equal(t, 3, p.Pieces.Villages, "two villages spent in setup")

	// Extend a road chain far enough that some node clears the sibling
	// rule, then build a village there.
	var target *board.Node
	for i := 0; i < 12 && target == nil; i++ {
		giveCards(p, roadCost)
		c := firstBuildableConnector(g)
		require.NotNil(t, c)
		require.True(t, g.HandleConnectorClick(c))
		giveCards(p, villageCost)
		target = firstBuildableNode(g)
		if target == nil {
			p.UseCards(villageCost)
		}
	}
	require.NotNil(t, target, "road chain should open a village site")

	require.True(t, p.HasCards(villageCost), "cost must be covered immediately before the build")
	before := p.CardCounts()
	villagesBefore := p.Pieces.Villages

	require.True(t, g.HandleNodeClick(target))

	after := p.CardCounts()
	for terrain, n := range villageCost {
		require.Equal(t, before[terrain]-n, after[terrain], "one %s consumed", terrain)
	}
	require.Equal(t, villagesBefore-1, p.Pieces.Villages)
	require.Equal(t, 1, target.Owner)
}

func TestRoadBuildRoundTrip(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	p := g.Player(1)
	giveCards(p, roadCost)
	c := firstBuildableConnector(g)
	require.NotNil(t, c)

	require.True(t, g.HandleConnectorClick(c))

	require.Equal(t, 1, c.Owner)
	require.False(t, g.CanBuildRoad(c), "an owned connector is never buildable again")
	require.False(t, g.HandleConnectorClick(c), "repeat click is unhandled")
}

func TestBuildWithoutCardsIsIgnored(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	c := firstBuildableConnector(g)
	require.Nil(t, c, "no cards after setup, nothing is buildable")
	require.False(t, g.HandleConnectorClick(g.Board.Connectors[0]))
	require.Nil(t, firstBuildableNode(g))
}

func TestSevenTriggersRobberBeforeDistribution(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	handSizes := func() []int {
		var sizes []int
		for _, p := range g.Players {
			sizes = append(sizes, len(p.Hand))
		}
		return sizes
	}
	before := handSizes()

	g.Dice = NewDice(rand.New(rand.NewSource(seedWithSum(t, 7))))
	require.True(t, g.DoAction(), "roll the dice via the primary action")

	// Nobody holds 8 cards, so the discard round auto-advances straight to
	// robber placement. No resources may have been distributed.
	require.Equal(t, StepRobberPlace, g.Step)
	require.Equal(t, ActionRobberPlace, g.Action)
	require.Equal(t, before, handSizes(), "a 7 never distributes resources")

	robber := g.Board.Robber()
	require.False(t, robber.Selected, "current robber cell is not a target")
	var target *board.Cell
	for _, c := range g.Board.Cells {
		if c.Selected {
			require.True(t, c.Terrain.Land(), "robber targets are land cells")
			require.NotEqual(t, robber, c)
			if target == nil {
				target = c
			}
		}
	}
	require.NotNil(t, target)

	require.True(t, g.HandleCellClick(target))
	require.False(t, robber.Robber)
	require.True(t, target.Robber)
	require.Equal(t, StepTurn, g.Step)
	require.Equal(t, ActionNextTurn, g.Action)
}

func TestRobberPlaceIgnoresIllegalCells(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	g.Dice = NewDice(rand.New(rand.NewSource(seedWithSum(t, 7))))
	require.True(t, g.DoAction())
	require.Equal(t, StepRobberPlace, g.Step)

	require.False(t, g.HandleCellClick(g.Board.Robber()), "robber must move to a different cell")
	for _, c := range g.Board.Cells {
		if c.Terrain == board.Ocean {
			require.False(t, g.HandleCellClick(c), "ocean cells never take the robber")
			break
		}
	}
}

func TestEightCardsForceDiscard(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	p := g.Player(1)
	giveCards(p, Cost{board.Wood: 3, board.Brick: 2, board.Wheat: 2, board.Ore: 1})
	require.Len(t, p.Hand, 8)

	g.Dice = NewDice(rand.New(rand.NewSource(seedWithSum(t, 7))))
	require.True(t, g.DoAction())

	require.Equal(t, StepRobberDiscard, g.Step)
	require.Equal(t, ActionRobberSelect, g.Action)
	require.Equal(t, 1, g.CurrentPlayer(), "the discard round starts at the first player")

	// Selecting fewer than half keeps the confirm action locked.
	for i := 0; i < 3; i++ {
		p.Hand[i].Toggle()
		require.Equal(t, ActionRobberSelect, g.Action)
	}
	p.Hand[3].Toggle()
	require.Equal(t, ActionRobberDiscard, g.Action, "exactly half selected unlocks the discard")

	// Deselecting flips back.
	p.Hand[3].Toggle()
	require.Equal(t, ActionRobberSelect, g.Action)
	p.Hand[3].Toggle()
	require.Equal(t, ActionRobberDiscard, g.Action)

	require.True(t, g.DoAction(), "confirm the discard")
	require.Len(t, p.Hand, 4, "half the hand is shed")
	require.Equal(t, StepRobberPlace, g.Step, "remaining players are under the limit")
}

func TestDiscardRoundVisitsLaterPlayers(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	p3 := g.Player(3)
	giveCards(p3, Cost{board.Wood: 4, board.Sheep: 3, board.Ore: 2})
	require.Len(t, p3.Hand, 9)

	g.Dice = NewDice(rand.New(rand.NewSource(seedWithSum(t, 7))))
	require.True(t, g.DoAction())

	require.Equal(t, StepRobberDiscard, g.Step)
	require.Equal(t, 3, g.CurrentPlayer(), "players under the limit are skipped")

	for i := 0; i < 4; i++ {
		p3.Hand[i].Toggle()
	}
	require.Equal(t, ActionRobberDiscard, g.Action)
	require.True(t, g.DoAction())
	require.Len(t, p3.Hand, 5)
	require.Equal(t, StepRobberPlace, g.Step)
}

func TestDistributionPaysVillagesOnce(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	// Pick a producing cell adjacent to an owned node.
	var cell *board.Cell
	for _, c := range g.Board.Cells {
		if c.Value == 0 || c.Robber {
			continue
		}
		for _, n := range c.Nodes() {
			if n.Owner != 0 {
				cell = c
				break
			}
		}
		if cell != nil {
			break
		}
	}
	require.NotNil(t, cell, "greedy setup should cover a producing cell")

	expected := map[int]int{}
	for _, c := range g.Board.Cells {
		if c.Value != cell.Value || c.Robber {
			continue
		}
		for _, n := range c.Nodes() {
			if n.Owner != 0 && c.Terrain == cell.Terrain {
				expected[n.Owner]++
			}
		}
	}

	before := map[int]int{}
	for _, p := range g.Players {
		before[p.ID] = p.CardCounts()[cell.Terrain]
	}

	g.distribute(cell.Value)

	for _, p := range g.Players {
		require.Equal(t, before[p.ID]+expected[p.ID], p.CardCounts()[cell.Terrain],
			"player %d gains one %s per adjacent village", p.ID, cell.Terrain)
	}
}

func TestRobberBlocksProduction(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	var cell *board.Cell
	for _, c := range g.Board.Cells {
		if c.Value == 0 {
			continue
		}
		for _, n := range c.Nodes() {
			if n.Owner != 0 {
				cell = c
				break
			}
		}
		if cell != nil {
			break
		}
	}
	require.NotNil(t, cell)

	g.Board.Robber().SetRobber(false)
	cell.SetRobber(true)

	owner := 0
	for _, n := range cell.Nodes() {
		if n.Owner != 0 {
			owner = n.Owner
			break
		}
	}
	p := g.Player(owner)

	// Count what the player would earn from other same-value cells.
	expected := 0
	for _, c := range g.Board.Cells {
		if c.Value != cell.Value || c.Robber || c.Terrain != cell.Terrain {
			continue
		}
		for _, n := range c.Nodes() {
			if n.Owner == owner {
				expected++
			}
		}
	}

	before := p.CardCounts()[cell.Terrain]
	g.distribute(cell.Value)
	require.Equal(t, before+expected, p.CardCounts()[cell.Terrain],
		"the robber's cell never produces")
}

func TestNextTurnAdvancesAndRearms(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	g.Dice = NewDice(rand.New(rand.NewSource(seedWithSum(t, 6))))
	require.True(t, g.DoAction())
	require.Equal(t, ActionNextTurn, g.Action, "a resolved roll arms the end of turn")

	require.True(t, g.DoAction())
	require.Equal(t, 1, g.TurnCount())
	require.Equal(t, 2, g.CurrentPlayer(), "turn passes to the next player")
	require.Equal(t, ActionRollDice, g.Action)
}

func TestUnknownActionPanics(t *testing.T) {
	g := testGame(t, 4)
	g.Action = Action(99)
	require.Panics(t, func() { g.DoAction() })
}

func TestNewGameRejectsBadArguments(t *testing.T) {
	b, err := board.New(board.StandardLayout())
	require.NoError(t, err)

	_, err = NewGame(b, 1, 1, rand.New(rand.NewSource(1)))
	require.Error(t, err, "player count below the setup table")
	_, err = NewGame(b, 7, 1, rand.New(rand.NewSource(1)))
	require.Error(t, err, "player count above the setup table")
	_, err = NewGame(b, 4, 5, rand.New(rand.NewSource(1)))
	require.Error(t, err, "first player outside 1..N")
}

func TestPieceTotalsStayConstant(t *testing.T) {
	g := testGame(t, 4)
	runSetup(t, g)

	for _, p := range g.Players {
		villages, roads := 0, 0
		for _, n := range g.Board.Nodes {
			if n.Owner == p.ID {
				villages++
			}
		}
		for _, c := range g.Board.Connectors {
			if c.Owner == p.ID {
				roads++
			}
		}
		require.Equal(t, 5, villages+p.Pieces.Villages)
		require.Equal(t, 15, roads+p.Pieces.Roads)
		require.Equal(t, 4, p.Pieces.Cities, "no city build path yet")
	}
}

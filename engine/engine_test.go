package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"settlers/board"
	"settlers/game"
)

func newEngine(t *testing.T, players, maxTurns int, seed uint64) *Engine {
	t.Helper()
	b, err := board.New(board.StandardLayout())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	g, err := game.NewGame(b, players, 1, rng)
	require.NoError(t, err)
	return New(g, NewRandomInput(rng), maxTurns)
}

func TestRandomGameRunsToTurnCap(t *testing.T) {
	e := newEngine(t, 4, 20, 11)

	frames := 0
	e.OnFrame = func() { frames++ }

	turns, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, 20, turns)
	require.Equal(t, game.StepTurn, e.Game.Step)
	require.Positive(t, frames)
}

func TestRandomGamePreservesPieceTotals(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		e := newEngine(t, 3, 15, seed)
		_, err := e.Run()
		require.NoError(t, err)

		g := e.Game
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
			require.Equal(t, 5, villages+p.Pieces.Villages, "seed %d", seed)
			require.Equal(t, 15, roads+p.Pieces.Roads, "seed %d", seed)
		}

		robbers := 0
		for _, c := range g.Board.Cells {
			if c.Robber {
				require.True(t, c.Terrain.Land(), "robber stays on land")
				robbers++
			}
		}
		require.Equal(t, 1, robbers, "seed %d", seed)
	}
}

func TestClickIsZero(t *testing.T) {
	require.True(t, Click{}.IsZero())
	require.False(t, Click{Control: true}.IsZero())
	require.False(t, Click{Card: &game.Card{}}.IsZero())
}

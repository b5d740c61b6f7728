package game

import "settlers/board"

// PlayerSummary is the per-player slice of the denormalized view consumed by
// the summary panel.
type PlayerSummary struct {
	ID       int
	Pieces   Pieces
	Cards    map[board.Terrain]int
	Selected int
	HandSize int
}

// Summary is a read-only snapshot of the game for display consumers. It is
// rebuilt on demand and never fed back into the engine.
type Summary struct {
	Step          Step
	Action        Action
	CurrentPlayer int
	TurnCount     int
	SetupTurn     int
	RobberTurn    int
	Players       []PlayerSummary
}

func (g *Game) Summary() Summary {
	s := Summary{
		Step:          g.Step,
		Action:        g.Action,
		CurrentPlayer: g.CurrentPlayer(),
		TurnCount:     g.turnCount,
		SetupTurn:     g.setupTurn,
		RobberTurn:    g.robberTurn,
	}
	for _, p := range g.Players {
		s.Players = append(s.Players, PlayerSummary{
			ID:       p.ID,
			Pieces:   p.Pieces,
			Cards:    p.CardCounts(),
			Selected: p.SelectedCount(),
			HandSize: len(p.Hand),
		})
	}
	return s
}

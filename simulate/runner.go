package simulate

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"settlers/board"
	"settlers/engine"
	"settlers/event"
	"settlers/game"
	"settlers/render"
)

// Config parameterizes a simulation batch.
type Config struct {
	Games    int
	Players  int
	MaxTurns int
	Seed     uint64
	OutDir   string
}

// Run plays the configured number of random games on the standard board and
// writes the collected records as CSV.
func Run(cfg Config) error {
	writer, err := NewWriter(cfg.OutDir)
	if err != nil {
		return err
	}

	var gameRecords []GameRecord
	var rollRecords []RollRecord

	for i := 0; i < cfg.Games; i++ {
		id := i + 1
		seed := cfg.Seed + uint64(i)
		log.Info().Int("game", id).Uint64("seed", seed).Msg("simulating game")

		record, rolls, err := runGame(id, seed, cfg)
		if err != nil {
			return fmt.Errorf("game %d: %w", id, err)
		}
		gameRecords = append(gameRecords, record)
		rollRecords = append(rollRecords, rolls...)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteRollRecords(rollRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Int("games", len(gameRecords)).Msg("records written")
	return nil
}

func runGame(id int, seed uint64, cfg Config) (GameRecord, []RollRecord, error) {
	b, err := board.New(board.StandardLayout())
	if err != nil {
		return GameRecord{}, nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	g, err := game.NewGame(b, cfg.Players, 1, rng)
	if err != nil {
		return GameRecord{}, nil, err
	}

	var rolls []RollRecord
	g.Dice.AddObserver(event.ObserverFunc(func(e event.Event) bool {
		if e.Kind != event.StateChange {
			return false
		}
		rolls = append(rolls, RollRecord{
			Game:   id,
			Turn:   g.TurnCount(),
			Player: g.CurrentPlayer(),
			Die1:   g.Dice.A,
			Die2:   g.Dice.B,
		})
		return false
	}))

	paints := 0
	scheduler := render.NewScheduler(b, render.PainterFunc(func(*board.Board) {
		paints++
	}))

	eng := engine.New(g, engine.NewRandomInput(rng), cfg.MaxTurns)
	eng.OnFrame = func() { scheduler.Tick() }

	start := time.Now()
	turns, err := eng.Run()
	end := time.Now()
	if err != nil {
		return GameRecord{}, nil, err
	}

	return GameRecord{
		ID:        id,
		Seed:      seed,
		Players:   cfg.Players,
		Turns:     turns,
		Paints:    paints,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}, rolls, nil
}

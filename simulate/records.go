package simulate

import "time"

// GameRecord summarizes one simulated game.
type GameRecord struct {
	ID        int
	Seed      uint64
	Players   int
	Turns     int
	Paints    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// RollRecord captures one dice roll.
type RollRecord struct {
	Game   int
	Turn   int
	Player int
	Die1   int
	Die2   int
}

func (r RollRecord) Sum() int {
	return r.Die1 + r.Die2
}

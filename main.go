package main

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"settlers/simulate"
)

type config struct {
	Players  int    `env:"SETTLERS_PLAYERS" envDefault:"4"`
	Games    int    `env:"SETTLERS_GAMES" envDefault:"1"`
	Seed     uint64 `env:"SETTLERS_SEED" envDefault:"1"`
	MaxTurns int    `env:"SETTLERS_MAX_TURNS" envDefault:"200"`
	OutDir   string `env:"SETTLERS_OUT_DIR" envDefault:"simulations"`
	Debug    bool   `env:"SETTLERS_DEBUG" envDefault:"false"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	err := simulate.Run(simulate.Config{
		Games:    cfg.Games,
		Players:  cfg.Players,
		MaxTurns: cfg.MaxTurns,
		Seed:     cfg.Seed,
		OutDir:   cfg.OutDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

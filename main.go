package main

import (
	"bufio"
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/internal/config"
	"github.com/robalobadob/guessing-game/internal/game"
	"github.com/robalobadob/guessing-game/internal/logging"
	"github.com/robalobadob/guessing-game/internal/session"
	"github.com/robalobadob/guessing-game/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level")
	}
	log.Debug().Int("min", cfg.Min).Int("max", cfg.Max).Str("db", cfg.DBPath).Msg("starting guessing game")

	history := store.NewMemoryStore()
	if cfg.DBPath != "" {
		history, err = store.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("failed to open round history")
		}
	}
	defer history.Close()

	d := session.New(os.Stdout, bufio.NewReader(os.Stdin),
		session.WithBounds(game.Bounds{Min: cfg.Min, Max: cfg.Max}),
		session.WithStore(history),
	)
	if err := d.Run(context.Background()); err != nil {
		_ = history.Close()
		log.Fatal().Err(err).Msg("session ended")
	}
}

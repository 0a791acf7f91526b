// Command guess-stats serves the round history recorded by the guessing
// game as JSON over HTTP. GUESS_DB must point at the game's SQLite file.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/internal/config"
	"github.com/robalobadob/guessing-game/internal/httpserver"
	"github.com/robalobadob/guessing-game/internal/logging"
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
	if cfg.DBPath == "" {
		log.Fatal().Msg("GUESS_DB is required")
	}

	st, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("failed to open round history")
	}
	defer st.Close()

	srv := httpserver.New(st)
	log.Info().Str("addr", cfg.StatsAddr).Msg("starting guess-stats")
	if err := srv.Start(cfg.StatsAddr); err != nil {
		_ = st.Close()
		log.Fatal().Err(err).Msg("server exited")
	}
}

package main

import (
	"errors"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plurimot/motus-backend/internal/config"
	"github.com/plurimot/motus-backend/internal/game"
	"github.com/plurimot/motus-backend/internal/server"
	"github.com/plurimot/motus-backend/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	provider, err := words.NewProvider(words.ParseMode(cfg.GuessValidation))
	if err != nil {
		log.Fatal().Err(err).Msg("loading word corpus")
	}

	registry := game.NewRegistry(provider, cfg.MaxRounds, cfg.MaxAttempts)
	srv := server.NewServer(cfg, registry)

	log.Info().Str("port", cfg.Port).
		Str("validation", cfg.GuessValidation).
		Int("maxRounds", cfg.MaxRounds).
		Int("maxAttempts", cfg.MaxAttempts).
		Msg("starting motus backend")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
}

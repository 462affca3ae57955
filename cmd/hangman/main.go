// Package main is the entry point for hangman.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/logging"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
	"github.com/samdwyer/hangman/internal/wordsource"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Not fatal: variables may be set directly
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	if envErr != nil {
		logger.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx := context.Background()

	tracer := telemetry.Tracer("game")
	if !cfg.Telemetry.Enabled {
		tracer = telemetry.NoopTracer()
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry setup failed, continuing without observability")
		tracer = telemetry.NoopTracer()
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error().Err(err).Msg("shutting down telemetry")
			}
		}()
	}

	theme, err := gamedata.LoadTheme()
	if err != nil {
		logger.Warn().Err(err).Msg("theme not loaded, using defaults")
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	g := game.New(screen, wordsource.NewFile(), game.Config{
		Lives:    cfg.Lives,
		WordFile: cfg.WordFile,
		Theme:    &theme,
		Logger:   logger,
		Tracer:   tracer,
	})

	logger.Info().Int("lives", cfg.Lives).Msg("game starting")
	if err := g.Run(ctx); err != nil {
		logger.WithLevel(zerolog.FatalLevel).Err(err).Msg("game aborted")
		return err
	}
	logger.Info().Msg("game exited")
	return nil
}

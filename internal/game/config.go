package game

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/session"
	"github.com/samdwyer/hangman/internal/telemetry"
)

// Config holds game configuration options.
type Config struct {
	// Lives per round. Zero means session.InitialLives.
	Lives int
	// WordFile prefills the filename prompt at the start of every round.
	WordFile string
	// Theme colors the screen. The zero value means gamedata.DefaultTheme.
	Theme *gamedata.Theme
	// Logger receives round and turn events.
	Logger zerolog.Logger
	// Tracer records round and turn spans. Nil means the global provider.
	Tracer trace.Tracer
}

func (c Config) lives() int {
	if c.Lives <= 0 {
		return session.InitialLives
	}
	return c.Lives
}

func (c Config) theme() gamedata.Theme {
	if c.Theme == nil {
		return gamedata.DefaultTheme
	}
	return *c.Theme
}

func (c Config) tracer() trace.Tracer {
	if c.Tracer == nil {
		return telemetry.Tracer("game")
	}
	return c.Tracer
}

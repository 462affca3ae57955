package game

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/hangman/internal/session"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
	"github.com/samdwyer/hangman/internal/wordsource"
)

// mapSource is a test Source serving words from memory.
type mapSource map[string]string

func (m mapSource) Load(filename string) (string, error) {
	word, ok := m[filename]
	if !ok {
		return "", wordsource.ErrUnavailable
	}
	return word, nil
}

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	screen, err := ui.NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	require.NoError(t, err)
	t.Cleanup(screen.Close)

	cfg.Logger = zerolog.Nop()
	cfg.Tracer = telemetry.NoopTracer()
	return New(screen, mapSource{"cat.txt": "CAT", "dog.txt": "DOG"}, cfg)
}

func typeText(g *Game, text string) {
	for _, r := range text {
		g.handleKeyEvent(context.Background(), tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func press(g *Game, key tcell.Key) {
	g.handleKeyEvent(context.Background(), tcell.NewEventKey(key, 0, tcell.ModNone))
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateFilename, "filename"},
		{StateChoose, "choose"},
		{StateLetter, "letter"},
		{StateWord, "word"},
		{StatePlayAgain, "play_again"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNewPrefillsWordFile(t *testing.T) {
	g := newTestGame(t, Config{WordFile: "cat.txt"})

	assert.Equal(t, StateFilename, g.State())
	assert.Equal(t, "cat.txt", g.Frame().Input)
	assert.Equal(t, "Give the filename with the unknown word:", g.Frame().Question)
	assert.Nil(t, g.Round())
}

func TestMissingFileReprompts(t *testing.T) {
	g := newTestGame(t, Config{})

	typeText(g, "nope.txt")
	press(g, tcell.KeyEnter)

	assert.Equal(t, StateFilename, g.State())
	assert.Equal(t, msgBadFile, g.Frame().Message)
	assert.Nil(t, g.Round())

	press(g, tcell.KeyBackspace2)
	assert.Equal(t, "nope.tx", g.Frame().Input)
}

func TestWinningRound(t *testing.T) {
	g := newTestGame(t, Config{WordFile: "cat.txt"})
	press(g, tcell.KeyEnter)

	require.Equal(t, StateChoose, g.State())
	require.NotNil(t, g.Round())
	assert.Equal(t, msgReady, g.Frame().Message)

	typeText(g, "lC")
	assert.Equal(t, StateChoose, g.State())
	assert.Equal(t, msgGood, g.Frame().Message)
	assert.Equal(t, "C**", g.Round().Mask())

	typeText(g, "lZ")
	assert.Equal(t, msgBad, g.Frame().Message)
	assert.Equal(t, 9, g.Round().Lives())

	typeText(g, "wCAT")
	press(g, tcell.KeyEnter)

	assert.Equal(t, StatePlayAgain, g.State())
	assert.Equal(t, msgWon, g.Frame().Message)
	assert.Equal(t, session.StateWon, g.Round().State())
	assert.True(t, g.Running())
}

func TestLosingRoundRevealsWord(t *testing.T) {
	g := newTestGame(t, Config{Lives: 1, WordFile: "dog.txt"})
	press(g, tcell.KeyEnter)

	typeText(g, "lX")

	assert.Equal(t, StatePlayAgain, g.State())
	assert.Equal(t, msgLost, g.Frame().Message)
	assert.Equal(t, "DOG", g.Frame().Reveal)
	assert.Equal(t, session.StateLost, g.Round().State())
}

func TestInvalidSelectionCostsNothing(t *testing.T) {
	g := newTestGame(t, Config{WordFile: "cat.txt"})
	press(g, tcell.KeyEnter)

	typeText(g, "x")

	assert.Equal(t, StateChoose, g.State())
	assert.Equal(t, msgIncompatible, g.Frame().Message)
	assert.Equal(t, session.InitialLives, g.Round().Lives())
	assert.Zero(t, g.Round().Turns())
}

func TestEmptyWordGuessReprompts(t *testing.T) {
	g := newTestGame(t, Config{WordFile: "cat.txt"})
	press(g, tcell.KeyEnter)

	typeText(g, "w")
	press(g, tcell.KeyEnter)

	assert.Equal(t, StateChoose, g.State())
	assert.Equal(t, msgIncompatible, g.Frame().Message)
	assert.Equal(t, session.InitialLives, g.Round().Lives())
}

func TestPlayAgain(t *testing.T) {
	g := newTestGame(t, Config{Lives: 1, WordFile: "dog.txt"})
	press(g, tcell.KeyEnter)
	typeText(g, "lX")
	require.Equal(t, StatePlayAgain, g.State())

	typeText(g, "y")
	assert.Equal(t, StateFilename, g.State())
	assert.Equal(t, "dog.txt", g.Frame().Input)
	assert.Nil(t, g.Round())

	press(g, tcell.KeyEnter)
	require.Equal(t, StateChoose, g.State())
	assert.Equal(t, "***", g.Round().Mask())
	assert.Equal(t, 1, g.Round().Lives())

	typeText(g, "wDOG")
	press(g, tcell.KeyEnter)
	require.Equal(t, StatePlayAgain, g.State())

	typeText(g, "n")
	assert.False(t, g.Running())
}

func TestEscapeQuits(t *testing.T) {
	g := newTestGame(t, Config{})
	press(g, tcell.KeyEscape)
	assert.False(t, g.Running())
}

func TestGuessOnFinishedRoundStopsGame(t *testing.T) {
	g := newTestGame(t, Config{Lives: 1, WordFile: "dog.txt"})
	press(g, tcell.KeyEnter)
	typeText(g, "lX")

	// Drive the finished session directly, as a buggy caller would.
	res, err := g.Round().GuessLetter('D')
	g.afterTurn(context.Background(), res, err)

	assert.False(t, g.Running())
	assert.True(t, errors.Is(g.err, session.ErrInvalidOperation))
	assert.Equal(t, "***", g.Round().Mask())
}

func TestRunProcessesInjectedKeys(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)

	g := New(screen, mapSource{"cat.txt": "CAT"}, Config{WordFile: "cat.txt", Logger: zerolog.Nop()})

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	for _, r := range "wCAT" {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, session.StateWon, g.Round().State())
	assert.Equal(t, 1, g.rounds)
}

func TestConfigTracer(t *testing.T) {
	assert.NotNil(t, Config{}.tracer())

	noop := telemetry.NoopTracer()
	assert.Equal(t, noop, Config{Tracer: noop}.tracer())
}

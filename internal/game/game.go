package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/session"
	"github.com/samdwyer/hangman/internal/ui"
	"github.com/samdwyer/hangman/internal/wordsource"
)

// Feedback lines.
const (
	msgReady        = "Ready to start!"
	msgBadFile      = "not a valid file, please try again"
	msgIncompatible = "Incompatible, try again"
	msgGood         = "Good Choice!"
	msgBad          = "Bad Choice!"
	msgWon          = "Congratulations!"
	msgLost         = "You Lose"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	source   wordsource.Source
	cfg      Config
	log      zerolog.Logger
	tracer   trace.Tracer

	state   State
	round   *session.Session
	input   []rune
	frame   ui.Frame
	rounds  int
	running bool
	err     error

	roundCtx  context.Context
	roundSpan trace.Span
}

// New creates a new game drawing to screen and reading words from source.
func New(screen *ui.Screen, source wordsource.Source, cfg Config) *Game {
	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.theme()),
		source:   source,
		cfg:      cfg,
		log:      cfg.Logger,
		tracer:   cfg.tracer(),
		running:  true,
	}
	g.enter(StateFilename)
	g.input = []rune(cfg.WordFile)
	return g
}

// State returns what the game is currently waiting for.
func (g *Game) State() State { return g.state }

// Round returns the session of the current or just finished round, or nil
// while a word is being chosen.
func (g *Game) Round() *session.Session { return g.round }

// Frame returns the prompt and feedback that will be drawn next.
func (g *Game) Frame() ui.Frame {
	f := g.frame
	f.Question = g.state.question()
	f.Input = string(g.input)
	return f
}

// Running reports whether the main loop should continue.
func (g *Game) Running() bool { return g.running }

// Run executes the main game loop until the player quits. It returns an
// error only when a round was driven into an invalid operation.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		g.renderer.Render(g.round, g.Frame())

		// Blocking
		g.handleInput(ctx)
	}

	g.endRound()
	g.screen.Close()
	return g.err
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
		return
	case tcell.KeyEnter:
		g.submit(ctx)
		return
	case tcell.KeyRune:
		g.handleRune(ctx, ev.Rune())
	}
}

// handleRune reacts to a printable key according to the current state.
func (g *Game) handleRune(ctx context.Context, r rune) {
	switch g.state {
	case StateFilename, StateWord:
		g.input = append(g.input, r)

	case StateChoose:
		switch r {
		case 'w':
			g.enter(StateWord)
		case 'l':
			g.enter(StateLetter)
		default:
			_, err := g.round.InvalidChoice()
			g.rejectInput(err)
		}

	case StateLetter:
		res, err := g.round.GuessLetter(r)
		g.afterTurn(ctx, res, err)

	case StatePlayAgain:
		if r == 'n' {
			g.running = false
			return
		}
		g.round = nil
		g.enter(StateFilename)
		g.input = []rune(g.cfg.WordFile)
	}
}

// submit handles Enter for the states that collect a line of text.
func (g *Game) submit(ctx context.Context) {
	switch g.state {
	case StateFilename:
		g.startRound(ctx, string(g.input))
	case StateWord:
		res, err := g.round.GuessWord(string(g.input))
		g.afterTurn(ctx, res, err)
	}
}

// startRound loads a word and begins a new session. Load failures reprompt.
func (g *Game) startRound(ctx context.Context, filename string) {
	word, err := g.source.Load(filename)
	if err != nil {
		g.log.Warn().Err(err).Str("file", filename).Msg("word source unavailable")
		g.enter(StateFilename)
		g.input = []rune(filename)
		g.frame = ui.Frame{Message: msgBadFile, Tone: ui.ToneBad}
		return
	}

	round, err := session.NewWithLives(word, g.cfg.lives())
	if err != nil {
		g.log.Warn().Err(err).Str("file", filename).Msg("rejected word")
		g.enter(StateFilename)
		g.frame = ui.Frame{Message: msgBadFile, Tone: ui.ToneBad}
		return
	}

	g.rounds++
	g.round = round
	g.roundCtx, g.roundSpan = g.tracer.Start(ctx, "round")
	g.roundSpan.SetAttributes(
		attribute.Int("round.number", g.rounds),
		attribute.Int("round.word_length", len([]rune(word))),
		attribute.Int("round.lives", round.Lives()),
	)
	g.log.Info().
		Int("round", g.rounds).
		Int("word_length", len([]rune(word))).
		Int("lives", round.Lives()).
		Msg("round started")

	g.enter(StateChoose)
	g.frame = ui.Frame{Message: msgReady}
}

// afterTurn applies the outcome of a guess to the shell.
func (g *Game) afterTurn(ctx context.Context, res session.TurnResult, err error) {
	if g.roundCtx != nil {
		ctx = g.roundCtx
	}
	_, span := g.tracer.Start(ctx, "turn."+res.Kind.String())
	defer span.End()
	span.SetAttributes(
		attribute.Bool("turn.hit", res.Hit),
		attribute.Int("turn.revealed", res.Revealed),
		attribute.Int("turn.lives", res.Lives),
		attribute.String("turn.state", res.State.String()),
	)

	switch {
	case errors.Is(err, session.ErrInvalidOperation):
		span.RecordError(err)
		span.SetStatus(codes.Error, "guess on finished round")
		g.log.Error().Err(err).Str("state", g.state.String()).Msg("guess on finished round")
		g.err = fmt.Errorf("round %d: %w", g.rounds, err)
		g.running = false
		return
	case err != nil:
		g.rejectInput(err)
		return
	}

	g.log.Debug().
		Str("kind", res.Kind.String()).
		Bool("hit", res.Hit).
		Int("revealed", res.Revealed).
		Int("lives", res.Lives).
		Str("state", res.State.String()).
		Msg("turn resolved")

	switch res.State {
	case session.StateWon:
		g.finishRound(ui.Frame{Message: msgWon, Tone: ui.ToneGood})
	case session.StateLost:
		g.finishRound(ui.Frame{Message: msgLost, Tone: ui.ToneBad, Reveal: g.round.Word()})
	default:
		g.enter(StateChoose)
		if res.Hit {
			g.frame = ui.Frame{Message: msgGood, Tone: ui.ToneGood}
		} else {
			g.frame = ui.Frame{Message: msgBad, Tone: ui.ToneBad}
		}
	}
}

// rejectInput reprompts for a mode after malformed input.
func (g *Game) rejectInput(err error) {
	if errors.Is(err, session.ErrInvalidOperation) {
		g.err = err
		g.running = false
		return
	}
	g.log.Debug().Err(err).Msg("input rejected")
	g.enter(StateChoose)
	g.frame = ui.Frame{Message: msgIncompatible, Tone: ui.ToneBad}
}

// finishRound reports the result and asks whether to play again.
func (g *Game) finishRound(f ui.Frame) {
	g.log.Info().
		Int("round", g.rounds).
		Str("result", g.round.State().String()).
		Int("turns", g.round.Turns()).
		Int("misses", g.round.Misses()).
		Int("lives", g.round.Lives()).
		Msg("round finished")

	g.endRound()
	g.enter(StatePlayAgain)
	g.frame = f
}

// endRound closes the round span, if one is open.
func (g *Game) endRound() {
	if g.roundSpan == nil {
		return
	}
	if g.round != nil {
		g.roundSpan.SetAttributes(
			attribute.String("round.result", g.round.State().String()),
			attribute.Int("round.turns", g.round.Turns()),
		)
	}
	g.roundSpan.End()
	g.roundSpan = nil
	g.roundCtx = nil
}

// enter switches state and clears the input line and feedback.
func (g *Game) enter(s State) {
	g.state = s
	g.input = nil
	g.frame = ui.Frame{}
}

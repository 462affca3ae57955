package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/session"
)

// Tone colors the feedback line.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
)

// Frame is everything drawn below the round status.
type Frame struct {
	Question string // Prompt shown to the player
	Input    string // Text typed so far, echoed after the question
	Message  string // Feedback from the previous action
	Tone     Tone
	Reveal   string // Secret word, shown once a round is lost
}

// Layout rows.
const (
	rowTitle    = 0
	rowMask     = 2
	rowLives    = 3
	rowMessage  = 5
	rowReveal   = 6
	rowQuestion = 8
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the round status of s (if any) and f.
func (r *Renderer) Render(s *session.Session, f Frame) {
	r.screen.Clear()

	r.drawText(0, rowTitle, "HANGMAN", tcell.StyleDefault.Foreground(r.theme.Title).Bold(true))

	if s != nil {
		r.drawMask(s)
		lives := tcell.StyleDefault.Foreground(r.theme.Lives)
		r.drawText(0, rowLives, "Number of turns remaining: "+strconv.Itoa(s.Lives()), lives)
	}

	if f.Message != "" {
		r.drawText(0, rowMessage, f.Message, r.toneStyle(f.Tone))
	}
	if f.Reveal != "" {
		r.drawText(0, rowReveal, fmt.Sprintf("The word was %s", f.Reveal), tcell.StyleDefault.Foreground(r.theme.Prompt))
	}

	x := r.drawText(0, rowQuestion, f.Question, tcell.StyleDefault.Foreground(r.theme.Prompt))
	if f.Input != "" {
		r.drawText(x+1, rowQuestion, f.Input, tcell.StyleDefault.Foreground(r.theme.Input))
	}

	r.screen.Show()
}

// drawMask writes the mask with hidden and uncovered positions styled apart.
func (r *Renderer) drawMask(s *session.Session) {
	x := r.drawText(0, rowMask, "The word is ", tcell.StyleDefault.Foreground(r.theme.Prompt))
	hidden := tcell.StyleDefault.Foreground(r.theme.Placeholder)
	shown := tcell.StyleDefault.Foreground(r.theme.Revealed).Bold(true)
	for i, ch := range []rune(s.Mask()) {
		style := hidden
		if s.Revealed(i) {
			style = shown
		}
		r.screen.SetContent(x, rowMask, ch, style)
		x++
	}
}

func (r *Renderer) toneStyle(t Tone) tcell.Style {
	switch t {
	case ToneGood:
		return tcell.StyleDefault.Foreground(r.theme.Good)
	case ToneBad:
		return tcell.StyleDefault.Foreground(r.theme.Bad)
	default:
		return tcell.StyleDefault.Foreground(r.theme.Prompt)
	}
}

// drawText writes msg starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) int {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

package session

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// InitialLives is the number of misses a player may make in a default round.
	InitialLives = 10

	// Placeholder hides letters that have not been guessed yet.
	Placeholder = '*'
)

// Session holds the state of one round: the secret word, what the player
// has uncovered so far, and the lives left.
//
// A Session is not safe for concurrent use.
type Session struct {
	word     []rune
	mask     []rune
	revealed []bool
	lives    int
	max      int
	state    State
	turns    int
	misses   int
}

// New starts a round for word with InitialLives lives.
func New(word string) (*Session, error) {
	return NewWithLives(word, InitialLives)
}

// NewWithLives starts a round for word with the given number of lives.
func NewWithLives(word string, lives int) (*Session, error) {
	if word == "" {
		return nil, fmt.Errorf("%w: empty word", ErrInvalidInput)
	}
	if lives < 1 {
		return nil, fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidInput, lives)
	}

	w := []rune(word)
	mask := make([]rune, len(w))
	for i := range mask {
		mask[i] = Placeholder
	}

	return &Session{
		word:     w,
		mask:     mask,
		revealed: make([]bool, len(w)),
		lives:    lives,
		max:      lives,
		state:    StateInProgress,
	}, nil
}

// Word returns the secret word.
func (s *Session) Word() string { return string(s.word) }

// Mask returns the word as the player currently sees it.
func (s *Session) Mask() string { return string(s.mask) }

// Revealed reports whether position i of the word has been uncovered.
// Out of range positions are reported as hidden.
func (s *Session) Revealed(i int) bool {
	return i >= 0 && i < len(s.revealed) && s.revealed[i]
}

// Lives returns the number of misses still allowed.
func (s *Session) Lives() int { return s.lives }

// MaxLives returns the number of lives the round started with.
func (s *Session) MaxLives() int { return s.max }

// State returns the current state of the round.
func (s *Session) State() State { return s.state }

// Turns returns the number of guesses that were resolved.
func (s *Session) Turns() int { return s.turns }

// Misses returns the number of guesses that cost a life.
func (s *Session) Misses() int { return s.misses }

// GuessLetter uncovers every position holding letter. Matching is
// case-sensitive. A letter that is not in the word costs one life; a letter
// that is, even one already uncovered, costs nothing.
func (s *Session) GuessLetter(letter rune) (TurnResult, error) {
	if err := s.checkPlayable(); err != nil {
		return s.snapshot(GuessLetter, string(letter)), err
	}
	if letter == 0 || unicode.IsSpace(letter) || unicode.IsControl(letter) || letter == unicode.ReplacementChar {
		return s.snapshot(GuessLetter, string(letter)), fmt.Errorf("%w: %q is not a letter", ErrInvalidInput, letter)
	}

	hit := false
	revealed := 0
	for i, c := range s.word {
		if c != letter {
			continue
		}
		hit = true
		if s.reveal(i) {
			revealed++
		}
	}

	s.resolve(hit)

	result := s.snapshot(GuessLetter, string(letter))
	result.Hit = hit
	result.Revealed = revealed
	return result, nil
}

// GuessWord ends the round in a win when candidate equals the secret word
// exactly. Any other candidate, including one of a different length, costs
// one life and leaves the mask untouched.
func (s *Session) GuessWord(candidate string) (TurnResult, error) {
	if err := s.checkPlayable(); err != nil {
		return s.snapshot(GuessWord, candidate), err
	}
	if candidate == "" || strings.IndexFunc(candidate, unicode.IsSpace) >= 0 {
		return s.snapshot(GuessWord, candidate), fmt.Errorf("%w: %q is not a single word", ErrInvalidInput, candidate)
	}

	hit := candidate == string(s.word)
	revealed := 0
	if hit {
		for i := range s.word {
			if s.reveal(i) {
				revealed++
			}
		}
	}

	s.resolve(hit)

	result := s.snapshot(GuessWord, candidate)
	result.Hit = hit
	result.Revealed = revealed
	return result, nil
}

// InvalidChoice records that the player selected neither letter nor word
// mode. The round is left untouched and the turn is not counted.
func (s *Session) InvalidChoice() (TurnResult, error) {
	if err := s.checkPlayable(); err != nil {
		return s.snapshot(GuessNone, ""), err
	}
	return s.snapshot(GuessNone, ""), ErrInvalidChoice
}

func (s *Session) checkPlayable() error {
	if s.state.Terminal() {
		return fmt.Errorf("%w: round already %s", ErrInvalidOperation, s.state)
	}
	return nil
}

// resolve charges a life for a miss and recomputes the state.
func (s *Session) resolve(hit bool) {
	s.turns++
	if !hit {
		s.misses++
		if s.lives > 0 {
			s.lives--
		}
	}

	switch {
	case s.solved():
		s.state = StateWon
	case s.lives == 0:
		s.state = StateLost
	default:
		s.state = StateInProgress
	}
}

// reveal uncovers position i and reports whether it was hidden before.
func (s *Session) reveal(i int) bool {
	if s.revealed[i] {
		return false
	}
	s.revealed[i] = true
	s.mask[i] = s.word[i]
	return true
}

// solved reports whether every position has been uncovered. The mask alone
// cannot tell, since the word may itself contain Placeholder.
func (s *Session) solved() bool {
	for _, ok := range s.revealed {
		if !ok {
			return false
		}
	}
	return true
}

func (s *Session) snapshot(kind GuessKind, guess string) TurnResult {
	return TurnResult{
		Kind:  kind,
		Guess: guess,
		Mask:  string(s.mask),
		Lives: s.lives,
		State: s.state,
	}
}

// Package session implements the rules of a single hangman round.
package session

// State represents where a round stands.
type State int

const (
	// StateInProgress is the default state; guesses are accepted.
	StateInProgress State = iota
	// StateWon means the whole word has been revealed.
	StateWon
	// StateLost means the player ran out of lives.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// GuessKind identifies which kind of guess produced a TurnResult.
type GuessKind int

const (
	// GuessNone marks a discarded turn (invalid mode selection).
	GuessNone GuessKind = iota
	// GuessLetter is a single letter guess.
	GuessLetter
	// GuessWord is a whole word guess.
	GuessWord
)

// String returns a human-readable kind name.
func (k GuessKind) String() string {
	switch k {
	case GuessNone:
		return "none"
	case GuessLetter:
		return "letter"
	case GuessWord:
		return "word"
	default:
		return "unknown"
	}
}

// TurnResult is a snapshot of the round after one turn.
type TurnResult struct {
	Kind     GuessKind
	Guess    string // The letter or word as submitted
	Hit      bool   // Letter present in the word, or word matched exactly
	Revealed int    // Positions newly uncovered by this turn
	Mask     string
	Lives    int
	State    State
}

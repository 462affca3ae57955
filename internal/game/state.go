// Package game provides the main game loop and state management.
package game

// State represents what the shell is waiting for.
type State int

const (
	// StateFilename waits for the path of the file holding the secret word.
	StateFilename State = iota
	// StateChoose waits for the player to pick word [w] or letter [l] mode.
	StateChoose
	// StateLetter waits for a single letter.
	StateLetter
	// StateWord waits for a whole word terminated by Enter.
	StateWord
	// StatePlayAgain waits for the answer to "play again [y/n]".
	StatePlayAgain
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateFilename:
		return "filename"
	case StateChoose:
		return "choose"
	case StateLetter:
		return "letter"
	case StateWord:
		return "word"
	case StatePlayAgain:
		return "play_again"
	default:
		return "unknown"
	}
}

// question returns the prompt shown while in state s.
func (s State) question() string {
	switch s {
	case StateFilename:
		return "Give the filename with the unknown word:"
	case StateChoose:
		return "Would you like to guess the word [w] or guess a letter [l]:"
	case StateLetter:
		return "What letter have you chosen?:"
	case StateWord:
		return "What word have you chosen?:"
	case StatePlayAgain:
		return "Do you want to play again [y/n]:"
	default:
		return ""
	}
}

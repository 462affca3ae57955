// Package wordsource loads the secret word for a round.
package wordsource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxWordLength is the longest word a source will hand out.
const MaxWordLength = 45

var (
	// ErrUnavailable wraps every failure to produce a word. Callers reprompt.
	ErrUnavailable = errors.New("word source unavailable")

	ErrEmptyWord      = fmt.Errorf("%w: file holds no word", ErrUnavailable)
	ErrNotSingleToken = fmt.Errorf("%w: file holds more than one word", ErrUnavailable)
	ErrTooLong        = fmt.Errorf("%w: word longer than %d characters", ErrUnavailable, MaxWordLength)
)

// Source supplies the secret word for one round.
type Source interface {
	Load(filename string) (string, error)
}

// File reads words from files. With a nil FS it reads from the OS
// filesystem relative to the working directory.
type File struct {
	FS fs.FS
}

// NewFile returns a Source backed by the OS filesystem.
func NewFile() *File {
	return &File{}
}

// Load returns the single word stored in filename.
func (f *File) Load(filename string) (string, error) {
	name := strings.TrimSpace(filename)
	if name == "" {
		return "", fmt.Errorf("%w: no filename given", ErrUnavailable)
	}

	content, err := f.read(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnavailable, name, err)
	}

	return Parse(content)
}

func (f *File) read(name string) ([]byte, error) {
	if f.FS != nil {
		return fs.ReadFile(f.FS, name)
	}
	return os.ReadFile(name)
}

// Parse extracts the word from raw file content. Surrounding whitespace,
// such as a trailing newline, is ignored.
func Parse(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", ErrUnavailable)
	}

	word := strings.TrimSpace(string(content))
	switch {
	case word == "":
		return "", ErrEmptyWord
	case strings.IndexFunc(word, unicode.IsSpace) >= 0:
		return "", ErrNotSingleToken
	case utf8.RuneCountInString(word) > MaxWordLength:
		return "", ErrTooLong
	}
	return word, nil
}

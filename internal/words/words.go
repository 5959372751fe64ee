// internal/words/words.go
//
// Root word source for the game.
//
// Responsibilities:
//   - Load the root word list from an override file or the embedded default.
//   - Pick one entry uniformly at random for each new round.
//
// The list is loaded again on every pick so a round start and every restart
// see the resource as it currently is. A missing, unreadable or empty list
// yields ErrNoWords, which callers treat as fatal.
//
// Environment variables (read by the caller, see config.go):
//   WORDS_ROOT_FILE=/path/to/start.txt

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"unicode"

	"github.com/robalobadob/wordscramble/assets"
)

// ErrNoWords reports that the root word list could not be loaded or is empty.
var ErrNoWords = errors.New("words: root word list is empty")

// Loader returns the raw root word list.
type Loader func() ([]string, error)

// Source hands out root words.
type Source struct {
	name string
	load Loader
}

// NewSource wraps a custom loader. name is only used in errors and logs.
func NewSource(name string, load Loader) *Source {
	return &Source{name: name, load: load}
}

// Embedded returns a Source backed by the bundled start.txt.
func Embedded() *Source {
	return NewSource("embedded:start.txt", assets.RootWords)
}

// FromFile returns a Source reading a newline-delimited file.
func FromFile(path string) *Source {
	return NewSource(path, func() ([]string, error) { return readWordFile(path) })
}

// Configured picks FromFile when path is set, otherwise Embedded.
func Configured(path string) *Source {
	if path != "" {
		return FromFile(path)
	}
	return Embedded()
}

// Name identifies where the list comes from.
func (s *Source) Name() string { return s.name }

// Load reads the list and keeps only well-formed words.
// Any failure is reported as ErrNoWords wrapped with the cause.
func (s *Source) Load() ([]string, error) {
	raw, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoWords, s.name, err)
	}
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if isWord(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoWords, s.name)
	}
	return out, nil
}

// Random loads the list and returns one entry chosen uniformly at random.
func (s *Source) Random() (string, error) {
	list, err := s.Load()
	if err != nil {
		return "", err
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", fmt.Errorf("words: pick: %w", err)
	}
	return list[n.Int64()], nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// isWord reports whether s is non-empty and made of lowercase letters only.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) || unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

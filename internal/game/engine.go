// internal/game/engine.go
//
// Round controller.
// Responsibilities:
//   - Start rounds with a random root word from the word source.
//   - Validate submissions and prepend accepted words.
//   - Restart a round in place (same ID, new root word, no words).
//
// Notes:
//   - Root words come from a RootSource (see the words package).
//   - A source failure (words.ErrNoWords) is returned to the caller, which
//     treats it as fatal.
//   - Rejections leave the round untouched.
package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/spell"
)

// RootSource hands out random root words.
type RootSource interface {
	Random() (string, error)
}

// Engine applies the game rules. It holds no round state and is safe for
// concurrent use; callers serialize access to each Round.
type Engine struct {
	words   RootSource
	checker spell.Checker
	lang    language.Tag
	now     func() time.Time
}

// NewEngine wires the word source, spell checker and round language.
func NewEngine(words RootSource, checker spell.Checker, lang language.Tag) *Engine {
	return &Engine{words: words, checker: checker, lang: lang, now: time.Now}
}

// Language is the language new rounds are checked in.
func (e *Engine) Language() language.Tag { return e.lang }

// NewRound starts a round with a fresh ID.
func (e *Engine) NewRound() (*Round, error) {
	r := &Round{ID: uuid.NewString(), Language: e.lang}
	if err := e.start(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Restart clears the accepted words and picks a new root word.
// On error the round is left as it was.
func (e *Engine) Restart(r *Round) error {
	return e.start(r)
}

// start picks a root word and resets the round.
func (e *Engine) start(r *Round) error {
	root, err := e.words.Random()
	if err != nil {
		return err
	}
	r.RootWord = root
	r.UsedWords = []string{}
	r.StartedAt = e.now()
	return nil
}

// Submit normalizes and validates candidate against r.
// Accepted words are prepended to r.UsedWords; anything else leaves r unchanged.
func (e *Engine) Submit(ctx context.Context, r *Round, candidate string) (Result, error) {
	word := Normalize(candidate)
	outcome, err := Validate(ctx, e.checker, r.Language, word, r.RootWord, r.UsedWords)
	if err != nil {
		return Result{}, err
	}

	res := Result{Word: word, Outcome: outcome}
	switch {
	case outcome == OutcomeAccepted:
		r.UsedWords = append([]string{word}, r.UsedWords...)
	case outcome.Rejected():
		if a, ok := outcome.Alert(); ok {
			res.Alert = &a
		}
	}
	return res, nil
}

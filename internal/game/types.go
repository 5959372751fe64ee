// internal/game/types.go
//
// Core type definitions for the word game.
// Defines:
//   - Outcome: result of validating one submission.
//   - Alert:   user-facing title/message for a rejected submission.
//   - Round:   state of a single round (root word + accepted words).
//   - Result:  what Submit reports back to a front end.

package game

import (
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Outcome is the validation result for a single candidate.
type Outcome string

const (
	OutcomeAccepted   Outcome = "accepted"
	OutcomeEmpty      Outcome = "empty" // blank input, silently ignored
	OutcomeDuplicate  Outcome = "duplicate"
	OutcomeImpossible Outcome = "impossible"
	OutcomeMisspelled Outcome = "misspelled"
	OutcomeRootWord   Outcome = "root_word"
	OutcomeTooShort   Outcome = "too_short"
)

// Rejected reports whether the outcome is one of the user-facing rejections.
func (o Outcome) Rejected() bool {
	switch o {
	case OutcomeDuplicate, OutcomeImpossible, OutcomeMisspelled, OutcomeRootWord, OutcomeTooShort:
		return true
	}
	return false
}

// Alert is the title/message pair shown for a rejection.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Alert returns the user-facing explanation for o. ok is false for
// outcomes that show nothing (accepted, empty).
func (o Outcome) Alert() (a Alert, ok bool) {
	switch o {
	case OutcomeDuplicate:
		return Alert{"Word used already", "Not again! Think."}, true
	case OutcomeImpossible:
		return Alert{"Not possible", "Thinking too outside the box eh?"}, true
	case OutcomeMisspelled:
		return Alert{"Spelling error", "Reread that, will you luv?"}, true
	case OutcomeRootWord:
		return Alert{"Used the root word!", "You can do better mate."}, true
	case OutcomeTooShort:
		return Alert{"Word too short!", "Think big. Go large!"}, true
	}
	return Alert{}, false
}

// Round holds the state of one play-through.
type Round struct {
	ID        string       // Stable across restarts (uuid).
	RootWord  string       // Lowercase; fixed until restart.
	UsedWords []string     // Accepted words, most recent first.
	Language  language.Tag // Language used for spell checking.
	StartedAt time.Time    // Set on start and on every restart.
}

// Entry is one accepted word annotated with its letter count.
type Entry struct {
	Word    string `json:"word"`
	Letters int    `json:"letters"`
}

// Entries returns UsedWords in display order with their letter counts.
func (r *Round) Entries() []Entry {
	out := make([]Entry, 0, len(r.UsedWords))
	for _, w := range r.UsedWords {
		out = append(out, Entry{Word: w, Letters: utf8.RuneCountInString(w)})
	}
	return out
}

// Clone returns a deep copy safe to hand out of a store.
func (r *Round) Clone() *Round {
	c := *r
	c.UsedWords = append([]string(nil), r.UsedWords...)
	return &c
}

// Result describes the effect of one Submit call.
type Result struct {
	Word    string  // Normalized candidate.
	Outcome Outcome
	Alert   *Alert  // Set only for rejections.
}

// Accepted reports whether the word was added to the round.
func (r Result) Accepted() bool { return r.Outcome == OutcomeAccepted }

// Ignored reports whether the submission was blank and nothing happened.
func (r Result) Ignored() bool { return r.Outcome == OutcomeEmpty }

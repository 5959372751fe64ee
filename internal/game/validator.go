// internal/game/validator.go
//
// Submission rules.
// Checks run in a fixed order and stop at the first failure:
// duplicate, possible from the root's letters, spelled correctly,
// not the root word, long enough. Only the spelling check has a side effect.

package game

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/spell"
)

// MinLength is the shortest accepted word, in letters.
const MinLength = 3

// Normalize lowercases and trims a raw submission.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate runs the submission checks against a normalized candidate.
//
// Order (first failure wins):
//
//	duplicate -> possible from root letters -> spelled correctly -> equals root -> length
//
// A blank candidate yields OutcomeEmpty without running any check.
// The only side effect is the checker lookup; its failure is returned as an error.
func Validate(ctx context.Context, checker spell.Checker, lang language.Tag, candidate, rootWord string, usedWords []string) (Outcome, error) {
	if candidate == "" {
		return OutcomeEmpty, nil
	}
	if !isOriginal(candidate, usedWords) {
		return OutcomeDuplicate, nil
	}
	if !isPossible(candidate, rootWord) {
		return OutcomeImpossible, nil
	}
	ok, err := checker.Check(ctx, candidate, lang)
	if err != nil {
		return "", fmt.Errorf("game: spell check %q: %w", candidate, err)
	}
	if !ok {
		return OutcomeMisspelled, nil
	}
	if candidate == rootWord {
		return OutcomeRootWord, nil
	}
	if utf8.RuneCountInString(candidate) < MinLength {
		return OutcomeTooShort, nil
	}
	return OutcomeAccepted, nil
}

// isOriginal reports whether word has not been accepted yet this round.
func isOriginal(word string, used []string) bool {
	for _, u := range used {
		if u == word {
			return false
		}
	}
	return true
}

// isPossible reports whether word can be spelled from root's letters, each
// letter of root usable at most once per occurrence.
func isPossible(word, root string) bool {
	counts := make(map[rune]int, len(root))
	for _, r := range root {
		counts[r]++
	}
	for _, r := range word {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}

// internal/spell/spell.go
//
// Spell-check capability: (word, language) -> recognized.
//
// Two backends implement Checker:
//   - Dictionary: in-memory word sets per language, built from the bundled
//     dictionaries and optional extra files.
//   - SQLite:     a `dictionary(lang, word)` table (see sqlite.go).
//
// Language tags are resolved with golang.org/x/text/language, so a request
// for "en-GB" is served by the "en" dictionary.

package spell

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/assets"
)

// Checker reports whether a word is spelled correctly in a language.
type Checker interface {
	Check(ctx context.Context, word string, lang language.Tag) (bool, error)
}

// Dictionary is an in-memory Checker. Safe for concurrent use.
type Dictionary struct {
	mu      sync.RWMutex
	tags    []language.Tag
	sets    []map[string]struct{} // parallel to tags
	matcher language.Matcher
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{}
}

// Embedded builds a Dictionary from every bundled dictionary file.
func Embedded() (*Dictionary, error) {
	lists, err := assets.Dictionaries()
	if err != nil {
		return nil, fmt.Errorf("spell: load bundled dictionaries: %w", err)
	}
	d := NewDictionary()
	for code, list := range lists {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("spell: dictionary %q: %w", code, err)
		}
		d.Add(tag, list...)
	}
	return d, nil
}

// Add registers words for lang. Words join the dictionary lang already
// resolves to, so en-GB additions extend "en" instead of hiding it.
// Words are stored lowercased.
func (d *Dictionary) Add(lang language.Tag, words ...string) {
	if len(words) == 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.match(lang)
	if i < 0 {
		d.tags = append(d.tags, lang)
		d.sets = append(d.sets, make(map[string]struct{}, len(words)))
		d.matcher = language.NewMatcher(d.tags)
		i = len(d.tags) - 1
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			d.sets[i][w] = struct{}{}
		}
	}
}

// AddFile registers every word of a newline-delimited file for lang.
func (d *Dictionary) AddFile(lang language.Tag, path string) error {
	list, err := ReadFile(path)
	if err != nil {
		return err
	}
	d.Add(lang, list...)
	return nil
}

// ReadFile reads a newline-delimited word list, skipping blank and # lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spell: open %s: %w", path, err)
	}
	defer f.Close()
	list, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("spell: read %s: %w", path, err)
	}
	return list, nil
}

// Languages lists the registered languages in registration order.
func (d *Dictionary) Languages() []language.Tag {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]language.Tag(nil), d.tags...)
}

// Len returns the number of words known for lang (after matching).
func (d *Dictionary) Len(lang language.Tag) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i := d.match(lang); i >= 0 {
		return len(d.sets[i])
	}
	return 0
}

// words returns a copy of the exact-tag word set for lang.
func (d *Dictionary) words(lang language.Tag) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := d.index(lang)
	if i < 0 {
		return nil
	}
	out := make([]string, 0, len(d.sets[i]))
	for w := range d.sets[i] {
		out = append(out, w)
	}
	return out
}

// Check implements Checker. Unsupported languages recognize nothing.
func (d *Dictionary) Check(_ context.Context, word string, lang language.Tag) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := d.match(lang)
	if i < 0 {
		return false, nil
	}
	_, ok := d.sets[i][strings.ToLower(word)]
	return ok, nil
}

// index finds an exact tag; callers hold mu.
func (d *Dictionary) index(lang language.Tag) int {
	for i, t := range d.tags {
		if t == lang {
			return i
		}
	}
	return -1
}

// match resolves lang to a registered dictionary; callers hold mu.
func (d *Dictionary) match(lang language.Tag) int {
	if len(d.tags) == 0 {
		return -1
	}
	if i := d.index(lang); i >= 0 {
		return i
	}
	_, i, conf := d.matcher.Match(lang)
	if conf == language.No {
		return -1
	}
	return i
}

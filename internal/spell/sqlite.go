// internal/spell/sqlite.go
//
// SQLite-backed Checker. Words live in the `dictionary` table created by
// assets/sql/001_dictionary.sql and are keyed by the base language code
// ("en" for en-US, en-GB, ...).

package spell

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// SQLite is a Checker over a dictionary table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite wraps an open database. The dictionary table must exist.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// langKey maps a tag to the base language code used as table key.
func langKey(lang language.Tag) string {
	base, _ := lang.Base()
	return base.String()
}

// Check implements Checker.
func (s *SQLite) Check(ctx context.Context, word string, lang language.Tag) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM dictionary WHERE lang=? AND word=?`,
		langKey(lang), strings.ToLower(word),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("spell: lookup %q: %w", word, err)
	}
	return true, nil
}

// Count returns how many words are stored for lang.
func (s *SQLite) Count(ctx context.Context, lang language.Tag) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM dictionary WHERE lang=?`, langKey(lang),
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("spell: count: %w", err)
	}
	return n, nil
}

// Import inserts words for lang inside one transaction; existing rows are kept.
// Returns the number of new rows.
func (s *SQLite) Import(ctx context.Context, lang language.Tag, words []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("spell: begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary (lang, word) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("spell: prepare import: %w", err)
	}
	defer stmt.Close()

	key := langKey(lang)
	added := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, key, w)
		if err != nil {
			return 0, fmt.Errorf("spell: import %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("spell: commit import: %w", err)
	}
	return added, nil
}

// Seed imports every language of d whose table slice is still empty.
// Use Import for words that must be added on every start.
func (s *SQLite) Seed(ctx context.Context, d *Dictionary) error {
	for _, tag := range d.Languages() {
		n, err := s.Count(ctx, tag)
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if _, err := s.Import(ctx, tag, d.words(tag)); err != nil {
			return err
		}
	}
	return nil
}

// db.go
//
// Dictionary storage helpers.
// Responsibilities:
//   - Opening the SQLite dictionary with safe defaults (WAL, busy timeout).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Building the spell checker the engine uses: the in-memory dictionary,
//     or the SQLite table seeded from it on first start.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/spell"
)

// openDB opens (and creates if missing) a SQLite database file.
func openDB(path string) (*sql.DB, error) {
	// Ensure directory exists for ./data/dict.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	return db, nil
}

// migrate applies the embedded SQL migrations in lexical order, skipping
// the ones already recorded in _migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	migs, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	for _, m := range migs {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, m.Name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.Name).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.Name, err)
		}
		log.Info().Str("migration", m.Name).Msg("applied")
	}
	return nil
}

// buildChecker assembles the spell checker for lang. The returned close
// function releases the database, if one was opened.
//
// The bundled dictionaries seed an empty table once; words from
// SPELL_DICTIONARY_FILE are merged on every start.
func buildChecker(ctx context.Context, cfg Config, lang language.Tag) (spell.Checker, func(), error) {
	noop := func() {}

	dict, err := spell.Embedded()
	if err != nil {
		return nil, noop, err
	}
	var extra []string
	if cfg.DictionaryFile != "" {
		if extra, err = spell.ReadFile(cfg.DictionaryFile); err != nil {
			return nil, noop, err
		}
	}

	if cfg.DictionaryDB == "" {
		dict.Add(lang, extra...)
		if dict.Len(lang) == 0 {
			return nil, noop, fmt.Errorf("no dictionary for language %s", lang)
		}
		log.Info().Str("lang", lang.String()).Int("words", dict.Len(lang)).Msg("using in-memory dictionary")
		return dict, noop, nil
	}

	db, err := openDB(cfg.DictionaryDB)
	if err != nil {
		return nil, noop, err
	}
	closeDB := func() { _ = db.Close() }
	if err := migrate(ctx, db); err != nil {
		closeDB()
		return nil, noop, err
	}

	sqlite := spell.NewSQLite(db)
	if err := sqlite.Seed(ctx, dict); err != nil {
		closeDB()
		return nil, noop, fmt.Errorf("seed dictionary: %w", err)
	}
	if len(extra) > 0 {
		added, err := sqlite.Import(ctx, lang, extra)
		if err != nil {
			closeDB()
			return nil, noop, fmt.Errorf("import %s: %w", cfg.DictionaryFile, err)
		}
		log.Info().Str("file", cfg.DictionaryFile).Int("added", added).Msg("imported extra words")
	}
	n, err := sqlite.Count(ctx, lang)
	if err != nil {
		closeDB()
		return nil, noop, err
	}
	if n == 0 {
		closeDB()
		return nil, noop, fmt.Errorf("no dictionary for language %s in %s", lang, cfg.DictionaryDB)
	}
	log.Info().Str("lang", lang.String()).Int("words", n).Str("db", cfg.DictionaryDB).Msg("using sqlite dictionary")
	return sqlite, closeDB, nil
}

// config.go
//
// Process configuration, read from the environment (and `.env` in development).
//
// Environment variables:
//   PORT                   HTTP port (default 5175).
//   LOG_LEVEL              zerolog level (default info).
//   LOG_FILE               Log destination in -tui mode (default: discarded).
//   GAME_LANGUAGE          Spell-check language tag (default en).
//   WORDS_ROOT_FILE        Root word list override (default: embedded start.txt).
//   SPELL_DICTIONARY_FILE  Extra words for the game language.
//   SPELL_DB_PATH          SQLite dictionary; when set, lookups go to SQLite.
//   SESSION_SECRET         HMAC key for round session tokens.
//   SESSION_COOKIE         Session cookie name.
//   SESSION_TTL            Session lifetime and idle round eviction (default 24h).
//   CLIENT_ORIGIN          Allowed CORS origin.
//   SECURE_COOKIES         Secure + SameSite=None cookies (set behind HTTPS).

package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string        `env:"LOG_FILE"`
	Language       string        `env:"GAME_LANGUAGE" envDefault:"en"`
	RootWordsFile  string        `env:"WORDS_ROOT_FILE"`
	DictionaryFile string        `env:"SPELL_DICTIONARY_FILE"`
	DictionaryDB   string        `env:"SPELL_DB_PATH"`
	SessionSecret  string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionCookie  string        `env:"SESSION_COOKIE" envDefault:"wordscramble_round"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	SecureCookies  bool          `env:"SECURE_COOKIES" envDefault:"false"`
}

// loadConfig parses the environment into a Config.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// languageTag parses GAME_LANGUAGE.
func (c Config) languageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("GAME_LANGUAGE %q: %w", c.Language, err)
	}
	return tag, nil
}

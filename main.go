package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/tui"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	tuiMode := flag.Bool("tui", false, "play in the terminal instead of serving HTTP")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	closeLog := setupLogging(cfg, *tuiMode)
	defer closeLog()

	lang, err := cfg.languageTag()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// The root word list is a required asset: fail fast when it is missing.
	src := words.Configured(cfg.RootWordsFile)
	list, err := src.Load()
	if err != nil {
		log.Fatal().Err(err).Str("source", src.Name()).Msg("failed to load root words")
	}
	log.Info().Str("source", src.Name()).Int("words", len(list)).Msg("root words loaded")

	checker, closeChecker, err := buildChecker(context.Background(), cfg, lang)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up spell checking")
	}
	defer closeChecker()

	engine := game.NewEngine(src, checker, lang)

	if *tuiMode {
		if err := runTUI(engine); err != nil {
			closeChecker()
			closeLog()
			fmt.Fprintf(os.Stderr, "wordscramble: %v\n", err)
			os.Exit(1)
		}
		return
	}

	srv := httpserver.New(store.NewMemoryStore(cfg.SessionTTL), engine, httpserver.Options{
		SessionSecret: cfg.SessionSecret,
		CookieName:    cfg.SessionCookie,
		SessionTTL:    cfg.SessionTTL,
		ClientOrigin:  cfg.ClientOrigin,
		SecureCookies: cfg.SecureCookies,
	})
	log.Info().Str("port", cfg.Port).Str("lang", engine.Language().String()).Msg("starting wordscramble")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// setupLogging applies LOG_LEVEL and, in terminal mode, moves logs off the
// screen into LOG_FILE (or drops them).
func setupLogging(cfg Config, tuiMode bool) func() {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !tuiMode {
		return func() {}
	}
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.LogFile).Msg("open log file")
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }
}

// runTUI plays one round in the terminal until the player quits.
func runTUI(engine *game.Engine) error {
	round, err := engine.NewRound()
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(tui.NewModel(engine, round), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

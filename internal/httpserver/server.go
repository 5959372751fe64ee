// internal/httpserver/server.go
//
// HTTP server wiring for the word game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", POST /round/new.
//   - Round endpoints (require a round session): GET /round, POST /round/submit,
//     POST /round/restart.
//
// Notes:
//   - Each client plays exactly one round; the round ID travels in a signed
//     session token (see session.go), as a cookie or a bearer header.
//   - Rounds live in the store; every action runs under store.Update so a
//     submission completes before the next one on the same round starts.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

// Options configures sessions and CORS.
type Options struct {
	SessionSecret string        // HMAC key for session tokens.
	CookieName    string        // Session cookie name.
	SessionTTL    time.Duration // Token lifetime.
	ClientOrigin  string        // Allowed CORS origin.
	SecureCookies bool          // Secure + SameSite=None cookies.
}

func (o Options) withDefaults() Options {
	if o.SessionSecret == "" {
		o.SessionSecret = "dev_secret_change_me"
	}
	if o.CookieName == "" {
		o.CookieName = "wordscramble_round"
	}
	if o.SessionTTL <= 0 {
		o.SessionTTL = 24 * time.Hour
	}
	if o.ClientOrigin == "" {
		o.ClientOrigin = "http://localhost:5173"
	}
	return o
}

// Server bundles router, round store and game engine.
type Server struct {
	r      *chi.Mux
	store  store.Store
	engine *game.Engine
	opts   Options
	now    func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, engine *game.Engine, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), store: st, engine: engine, opts: opts.withDefaults(), now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordscramble","endpoints":["/health","POST /round/new","GET /round","POST /round/submit","POST /round/restart"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/round/new", s.handleNewRound)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireRound)
		r.Get("/round", s.handleGetRound)
		r.Post("/round/submit", s.handleSubmit)
		r.Post("/round/restart", s.handleRestart)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one debug line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ ROUND --------------------------------------

// roundView is the JSON shape of a round.
type roundView struct {
	ID       string       `json:"id"`
	RootWord string       `json:"rootWord"`
	Language string       `json:"language"`
	Words    []game.Entry `json:"words"` // most recent first
}

func viewOf(r *game.Round) roundView {
	return roundView{
		ID:       r.ID,
		RootWord: r.RootWord,
		Language: r.Language.String(),
		Words:    r.Entries(),
	}
}

// sessionRes is returned by POST /round/new and POST /round/restart.
type sessionRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Round     roundView `json:"round"`
}

// handleNewRound starts a round, stores it and hands out its session token.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	rd, err := s.engine.NewRound()
	if err != nil {
		s.roundStartFailed(w, err)
		return
	}
	if err := s.store.Save(r.Context(), rd); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.issueSession(w, rd.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	log.Info().Str("round", rd.ID).Str("root", rd.RootWord).Msg("round started")
	writeJSON(w, http.StatusOK, sessionRes{Token: tok, ExpiresAt: exp, Round: viewOf(rd)})
}

// handleGetRound returns the current round.
func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	rd, err := s.store.Get(r.Context(), roundID(r))
	if err != nil {
		s.storeFailed(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rd))
}

// submitReq/Res payloads for POST /round/submit.
type submitReq struct {
	Word string `json:"word"`
}
type submitRes struct {
	Word      string       `json:"word"`
	Outcome   game.Outcome `json:"outcome"`
	Accepted  bool         `json:"accepted"`
	Alert     *game.Alert  `json:"alert,omitempty"`
	Round     roundView    `json:"round"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// handleSubmit validates one candidate against the round.
// Rejections are regular 200 responses carrying the alert.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res submitRes
	err := s.store.Update(r.Context(), roundID(r), func(rd *game.Round) error {
		out, err := s.engine.Submit(r.Context(), rd, req.Word)
		if err != nil {
			return err
		}
		res = submitRes{
			Word:     out.Word,
			Outcome:  out.Outcome,
			Accepted: out.Accepted(),
			Alert:    out.Alert,
			Round:    viewOf(rd),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.storeFailed(w, err)
			return
		}
		log.Error().Err(err).Str("round", roundID(r)).Msg("submit")
		writeError(w, http.StatusInternalServerError, "check_failed")
		return
	}

	if res.Token, res.ExpiresAt, err = s.issueSession(w, roundID(r)); err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	log.Debug().Str("round", roundID(r)).Str("word", res.Word).Str("outcome", string(res.Outcome)).Msg("submission")
	writeJSON(w, http.StatusOK, res)
}

// handleRestart clears the round and picks a new root word.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	var res sessionRes
	err := s.store.Update(r.Context(), roundID(r), func(rd *game.Round) error {
		if err := s.engine.Restart(rd); err != nil {
			return err
		}
		res.Round = viewOf(rd)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.storeFailed(w, err)
			return
		}
		s.roundStartFailed(w, err)
		return
	}
	if res.Token, res.ExpiresAt, err = s.issueSession(w, res.Round.ID); err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	log.Info().Str("round", res.Round.ID).Str("root", res.Round.RootWord).Msg("round restarted")
	writeJSON(w, http.StatusOK, res)
}

// roundStartFailed reports a word source failure. The list is validated at
// startup, so this means the resource vanished while serving.
func (s *Server) roundStartFailed(w http.ResponseWriter, err error) {
	if errors.Is(err, words.ErrNoWords) {
		log.Error().Err(err).Msg("root word list unavailable")
		writeError(w, http.StatusInternalServerError, "word_list_unavailable")
		return
	}
	log.Error().Err(err).Msg("start round")
	writeError(w, http.StatusInternalServerError, "start_failed")
}

// storeFailed maps store errors to responses.
func (s *Server) storeFailed(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "round_not_found")
		return
	}
	log.Error().Err(err).Msg("store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// internal/httpserver/session.go
//
// Round sessions: HS256 tokens carrying the round ID ("rid"), sent as a
// cookie or an Authorization bearer header and re-issued on every write.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ctxRoundKey is the context key type for the session's round ID.
type ctxRoundKey struct{}

// roundClaims carries the round ID in the "rid" claim.
type roundClaims struct {
	RoundID string `json:"rid"`
	jwt.RegisteredClaims
}

// signSession creates an HS256 token for roundID valid for SessionTTL.
func (s *Server) signSession(roundID string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.opts.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, roundClaims{
		RoundID: roundID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	ss, err := t.SignedString([]byte(s.opts.SessionSecret))
	return ss, exp, err
}

// parseSession verifies a token and returns its round ID.
func (s *Server) parseSession(tok string) (string, error) {
	claims := &roundClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.RoundID == "" {
		return "", errors.New("invalid session")
	}
	return claims.RoundID, nil
}

// issueSession signs a fresh token for roundID and sets the cookie.
// Every write re-issues it, so a round that is being played never expires.
func (s *Server) issueSession(w http.ResponseWriter, roundID string) (string, time.Time, error) {
	tok, exp, err := s.signSession(roundID)
	if err != nil {
		return "", time.Time{}, err
	}
	s.setSessionCookie(w, tok, exp)
	return tok, exp, nil
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.SecureCookies {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the session cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.opts.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// requireRound enforces a valid session and injects the round ID into the request context.
func (s *Server) requireRound(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := s.bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "no_session")
			return
		}
		id, err := s.parseSession(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_session")
			return
		}
		ctx := context.WithValue(r.Context(), ctxRoundKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// roundID returns the round ID placed by requireRound.
func roundID(r *http.Request) string {
	id, _ := r.Context().Value(ctxRoundKey{}).(string)
	return id
}

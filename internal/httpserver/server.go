// internal/httpserver/server.go
//
// HTTP server wiring for the wordle API.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON, CORS, access logs).
//   - Public endpoints: "/", "/health".
//   - Attempt endpoints: POST /word/{length}/attempt, one per loaded vocabulary.
//
// Notes:
//   - CORS allows a single configured origin, or any origin with "*".
//   - Attempt endpoints are rate limited per client IP when a rate is configured.

package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-api/internal/words"
)

// WordSource yields today's secret word for a vocabulary.
type WordSource interface {
	TodayWord(ctx context.Context, whitelist *words.Vocabulary) (string, error)
}

// Options tunes the HTTP layer.
type Options struct {
	ClientOrigin   string        // CORS origin; "" or "*" allows any
	RateLimitRPS   int           // attempts per second per client; 0 disables limiting
	RateLimitBurst int           // burst size for the limiter
	Timeout        time.Duration // per-request handler timeout; 0 means 10s
}

// Server bundles router, vocabularies and the daily word source.
type Server struct {
	r      *chi.Mux
	vocabs *words.Set
	words  WordSource
}

// New constructs a Server, installs middleware, and registers routes.
func New(vocabs *words.Set, src WordSource, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), vocabs: vocabs, words: src}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)         // add X-Request-ID
	s.r.Use(chimw.RealIP)            // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)           // zerolog logger in context + access log
	s.r.Use(chimw.Recoverer)         // recover from panics
	s.r.Use(chimw.Timeout(timeout))  // bound handler time
	s.r.Use(jsonContentType)         // default JSON responses
	s.r.Use(cors(opts.ClientOrigin)) // single-origin or open CORS

	// --- diagnostics ---
	s.r.Get("/", s.handleIndex)
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// --- game ---
	limiter := newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	s.r.With(limiter.middleware).Post("/word/{length}/attempt", s.handleAttempt)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
	})

	return s
}

// Handler exposes the router (for http.Server and tests).
func (s *Server) Handler() http.Handler { return s.r }

// handleIndex describes the service and its endpoints.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	endpoints := []string{"/health"}
	for _, n := range s.vocabs.Lengths() {
		endpoints = append(endpoints, fmt.Sprintf("POST /word/%d/attempt", n))
	}
	writeJSON(w, http.StatusOK, map[string]any{"service": "wordle-api", "endpoints": endpoints})
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

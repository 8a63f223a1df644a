// internal/httpserver/server.go
//
// HTTP server wiring for the word scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, request log).
//   - Public endpoints: "/", "/health", "/debug/words", POST /sessions.
//   - Session endpoints (bearer session token): snapshot, dismiss, submit,
//     give up, acknowledge, new word, and the websocket snapshot stream.
//   - The tick loop that drives every live session's countdown.
//
// Notes:
//   - The server is the single owner of every game.Session; handlers and the
//     tick loop reach a session only through store.Entry, which serializes access.
//   - CORS is origin-aware so a browser client on CLIENT_ORIGIN can call in.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/store"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Store       store.Store
	Corpus      *words.Corpus
	Checker     game.Checker
	LexiconSize int // reported by /debug/words
	Settings    game.Settings
	Clock       game.Clock // nil means the wall clock

	Secret       string
	TokenTTL     time.Duration
	ClientOrigin string
	DailySalt    string
}

// Server bundles router, session store and the snapshot hub.
type Server struct {
	r    *chi.Mux
	deps Deps
	hub  *Hub
}

// New constructs a Server, installs middleware, and registers routes.
func New(deps Deps) *Server {
	if deps.TokenTTL <= 0 {
		deps.TokenTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), deps: deps, hub: NewHub()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(jsonContentType)
	s.r.Use(cors(deps.ClientOrigin))

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"service":"wordscramble-go","endpoints":["/health","POST /sessions","/sessions/{id}/*"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]int{
				"rootWords": s.deps.Corpus.Len(),
				"lexicon":   s.deps.LexiconSize,
				"sessions":  len(s.deps.Store.All(r.Context())),
			})
		})

		r.Post("/sessions", s.handleCreate)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/sessions/{id}", s.handleGet)
			r.Post("/sessions/{id}/dismiss", s.handleDismiss)
			r.Post("/sessions/{id}/submit", s.handleSubmit)
			r.Post("/sessions/{id}/giveup", s.handleGiveUp)
			r.Post("/sessions/{id}/acknowledge", s.handleAcknowledge)
			r.Post("/sessions/{id}/newword", s.handleNewWord)
		})
	})

	// The stream outlives the request timeout.
	s.r.With(s.requireSession).Get("/sessions/{id}/stream", s.handleStream)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Hub exposes the snapshot hub.
func (s *Server) Hub() *Hub { return s.hub }

// Run serves HTTP on addr and drives the tick loop until ctx is cancelled,
// then shuts the listener down gracefully.
func (s *Server) Run(ctx context.Context, addr string, tick, idleTTL time.Duration) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	go s.TickLoop(ctx, tick, idleTTL)

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
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
}

// requestLogger writes one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("reqId", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("took", time.Since(start)).
				Msg("http")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

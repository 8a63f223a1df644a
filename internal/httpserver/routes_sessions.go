// internal/httpserver/routes_sessions.go
//
// HTTP routes for game sessions.
//   - POST /sessions                  → open a session (instructions phase)
//   - GET  /sessions/{id}             → current snapshot
//   - POST /sessions/{id}/dismiss     → instructions → playing
//   - POST /sessions/{id}/submit      → evaluate {"word": "..."}
//   - POST /sessions/{id}/giveup      → playing → round_over
//   - POST /sessions/{id}/acknowledge → round_over → instructions (next round)
//   - POST /sessions/{id}/newword     → fresh root word mid-round
//
// Every mutating route answers {snapshot, event} and, when the event is not
// empty, fans the same frame out to the session's websocket subscribers.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/words"
)

// createReq is the optional body of POST /sessions.
type createReq struct {
	Seed  *uint64 `json:"seed"`  // deterministic root words and quips
	Daily bool    `json:"daily"` // today's shared root word sequence
}

type createRes struct {
	SessionID string        `json:"sessionId"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Snapshot  game.Snapshot `json:"snapshot"`
}

// frame is both the action response and the websocket message.
type frame struct {
	Event    game.Event    `json:"event"`
	Snapshot game.Snapshot `json:"snapshot"`
}

type submitReq struct {
	Word string `json:"word"`
}

// handleCreate opens a new session and returns its bearer token.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	seed := words.CryptoSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}
	var picker game.Picker
	switch {
	case req.Daily:
		picker = words.NewDailyPicker(s.deps.Corpus, s.deps.DailySalt, nil)
	default:
		picker = words.NewRandomPicker(s.deps.Corpus, seed)
	}

	sess, err := game.NewSession(game.Config{
		Settings: s.deps.Settings,
		Picker:   picker,
		Checker:  s.deps.Checker,
		Clock:    s.deps.Clock,
		Rand:     rand.New(rand.NewPCG(seed, ^seed)),
	})
	if err != nil {
		log.Error().Err(err).Msg("new session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}

	id := uuid.NewString()
	tok, exp, err := s.signToken(id)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.deps.Store.Put(r.Context(), id, sess)
	log.Info().Str("session", id).Bool("daily", req.Daily).Msg("session opened")

	writeJSON(w, http.StatusCreated, createRes{
		SessionID: id,
		Token:     tok,
		ExpiresAt: exp,
		Snapshot:  sess.Snapshot(),
	})
}

// handleGet returns the current snapshot without changing anything.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	entryFrom(r).Do(func(sess *game.Session) { snap = sess.Snapshot() })
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*game.Session).Dismiss)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.apply(w, r, func(sess *game.Session) (game.Snapshot, game.Event, error) {
		return sess.Submit(req.Word)
	})
}

func (s *Server) handleGiveUp(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*game.Session).GiveUp)
}

func (s *Server) handleAcknowledge(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*game.Session).Acknowledge)
}

func (s *Server) handleNewWord(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*game.Session).NewWord)
}

// apply runs op under the session lock, answers with the resulting frame
// and publishes it to stream subscribers. Publishing happens under the same
// lock so subscribers see frames in the order the session produced them.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, op func(*game.Session) (game.Snapshot, game.Event, error)) {
	e := entryFrom(r)
	var (
		f   frame
		err error
	)
	e.Do(func(sess *game.Session) {
		f.Snapshot, f.Event, err = op(sess)
		if err == nil && f.Event != game.EventNone {
			s.hub.Publish(e.ID, f)
		}
	})
	if errors.Is(err, game.ErrWrongPhase) {
		writeError(w, http.StatusConflict, "wrong_phase")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("session", e.ID).Msg("session action")
		writeError(w, http.StatusInternalServerError, "action_failed")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

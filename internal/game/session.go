// internal/game/session.go
//
// Session ties one Round and one Timer to the phase state machine:
//
//	instructions --Dismiss--> playing
//	playing --Submit--> playing (score/timer update or penalty)
//	playing --Tick (expiry)--> round_over
//	playing --GiveUp--> round_over
//	round_over --Acknowledge--> instructions (next round)
//
// Every operation returns a fresh Snapshot and the Event it produced.
// A Session is owned by one logical caller at a time; it holds no locks.

package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrWrongPhase is returned when an operation is not valid in the current phase.
var ErrWrongPhase = errors.New("wrong phase")

// Picker supplies root words for new rounds.
type Picker interface {
	Pick() string
}

// Settings are the tunable durations of a session, in seconds.
type Settings struct {
	OpeningSeconds int // first round after the session opens
	RoundSeconds   int // every later round, and after NewWord
	BonusSeconds   int // added on each accepted word
}

// DefaultSettings mirrors the classic timings: 30s opener, 60s rounds, +10s per word.
func DefaultSettings() Settings {
	return Settings{OpeningSeconds: 30, RoundSeconds: 60, BonusSeconds: 10}
}

// withDefaults replaces every non-positive duration with its default.
func (st Settings) withDefaults() Settings {
	def := DefaultSettings()
	if st.OpeningSeconds <= 0 {
		st.OpeningSeconds = def.OpeningSeconds
	}
	if st.RoundSeconds <= 0 {
		st.RoundSeconds = def.RoundSeconds
	}
	if st.BonusSeconds <= 0 {
		st.BonusSeconds = def.BonusSeconds
	}
	return st
}

// Config collects a session's collaborators. Picker and Checker are required.
type Config struct {
	Settings Settings
	Picker   Picker
	Checker  Checker
	Clock    Clock      // defaults to RealClock
	Rand     *rand.Rand // dismiss labels; defaults to a time-seeded source
}

// Session is a single player's game.
type Session struct {
	settings Settings
	picker   Picker
	round    *Round
	timer    *Timer
	rng      *rand.Rand
	phase    Phase

	lastOutcome *Outcome
	summary     *Summary
	quip        string
}

// NewSession opens a session in the instructions phase with its first root
// word chosen and the opening countdown loaded but paused.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Picker == nil {
		return nil, errors.New("game: session needs a root word picker")
	}
	if cfg.Checker == nil {
		return nil, errors.New("game: session needs a dictionary checker")
	}
	cfg.Settings = cfg.Settings.withDefaults()
	if cfg.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		cfg.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	s := &Session{
		settings: cfg.Settings,
		picker:   cfg.Picker,
		round:    NewRound(cfg.Checker),
		timer:    NewTimer(cfg.Clock),
		rng:      cfg.Rand,
	}
	s.beginRound(s.settings.OpeningSeconds)
	s.phase = PhaseInstructions
	return s, nil
}

// Phase is the current state machine position.
func (s *Session) Phase() Phase { return s.phase }

// Dismiss closes the instructions and starts (or resumes) the countdown.
func (s *Session) Dismiss() (Snapshot, Event, error) {
	if s.phase != PhaseInstructions {
		return s.Snapshot(), EventNone, fmt.Errorf("dismiss in %s: %w", s.phase, ErrWrongPhase)
	}
	s.phase = PhasePlaying
	s.timer.Resume()
	return s.Snapshot(), EventDismissed, nil
}

// Submit evaluates a candidate word. Blank input reports EventNone and
// leaves everything untouched.
func (s *Session) Submit(raw string) (Snapshot, Event, error) {
	if s.phase != PhasePlaying {
		return s.Snapshot(), EventNone, fmt.Errorf("submit in %s: %w", s.phase, ErrWrongPhase)
	}
	out, ok := s.round.Submit(raw)
	if !ok {
		return s.Snapshot(), EventNone, nil
	}
	s.lastOutcome = &out
	if out.Accepted {
		s.quip = ""
		s.timer.Extend(s.settings.BonusSeconds)
		return s.Snapshot(), EventAccepted, nil
	}
	s.quip = Quip(s.rng)
	return s.Snapshot(), EventRejected, nil
}

// Tick forwards one host tick to the countdown. Outside the playing phase,
// or while the timer is paused, it is a no-op reporting EventNone.
func (s *Session) Tick() (Snapshot, Event) {
	if s.phase != PhasePlaying || !s.timer.Running() {
		return s.Snapshot(), EventNone
	}
	if s.timer.Tick() {
		s.finish()
		return s.Snapshot(), EventRoundOver
	}
	return s.Snapshot(), EventTick
}

// GiveUp ends the round early with the same settlement as a timeout.
func (s *Session) GiveUp() (Snapshot, Event, error) {
	if s.phase != PhasePlaying {
		return s.Snapshot(), EventNone, fmt.Errorf("give up in %s: %w", s.phase, ErrWrongPhase)
	}
	s.timer.Pause()
	s.finish()
	return s.Snapshot(), EventRoundOver, nil
}

// Acknowledge dismisses the round-over dialog and loads the next round,
// paused behind the instructions.
func (s *Session) Acknowledge() (Snapshot, Event, error) {
	if s.phase != PhaseRoundOver {
		return s.Snapshot(), EventNone, fmt.Errorf("acknowledge in %s: %w", s.phase, ErrWrongPhase)
	}
	s.beginRound(s.settings.RoundSeconds)
	s.phase = PhaseInstructions
	return s.Snapshot(), EventRoundStarted, nil
}

// NewWord abandons the current round for a fresh root word. The score is
// reset without settling against the high score. The countdown restarts at
// the round duration and keeps running if the player was mid-round.
func (s *Session) NewWord() (Snapshot, Event, error) {
	if s.phase == PhaseRoundOver {
		return s.Snapshot(), EventNone, fmt.Errorf("new word in %s: %w", s.phase, ErrWrongPhase)
	}
	s.beginRound(s.settings.RoundSeconds)
	if s.phase == PhasePlaying {
		s.timer.Resume()
	}
	return s.Snapshot(), EventRoundStarted, nil
}

// Snapshot returns a read-only copy of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        s.phase,
		Round:        s.round.State(),
		Timer:        s.timer.State(),
		TimerDisplay: s.timer.Display(),
		DismissLabel: s.quip,
	}
	if s.lastOutcome != nil {
		o := *s.lastOutcome
		snap.LastOutcome = &o
	}
	if s.summary != nil {
		sum := *s.summary
		snap.Summary = &sum
		snap.SummaryText = sum.Message()
	}
	switch s.phase {
	case PhaseInstructions:
		snap.Dialog = &Dialog{Title: InstructionsTitle, Message: InstructionsMessage, Dismiss: InstructionsDismiss}
	case PhaseRoundOver:
		msg := snap.SummaryText
		if snap.Timer.Remaining == 0 {
			msg = TimeoutPrefix + msg
		}
		snap.Dialog = &Dialog{Title: RoundOverTitle, Message: msg, Dismiss: s.quip}
	}
	return snap
}

// beginRound picks a root word and loads a paused countdown of seconds.
func (s *Session) beginRound(seconds int) {
	s.round.Start(s.picker.Pick())
	s.timer.Restart(seconds)
	s.timer.Pause()
	s.lastOutcome = nil
	s.summary = nil
	s.quip = ""
}

func (s *Session) finish() {
	sum := s.round.End()
	s.summary = &sum
	s.quip = Quip(s.rng)
	s.phase = PhaseRoundOver
}

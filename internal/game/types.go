// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Reason / Outcome: result of a single submission (accepted or rejected).
//   - Summary: settlement of a finished round (new high score or final score).
//   - Phase / Event: session state machine positions and the events it reports.
//   - RoundState / TimerState / Snapshot: read-only views for the presentation layer.

package game

import (
	"fmt"
	"time"
)

// Reason identifies why a submission was rejected.
type Reason string

const (
	ReasonAlreadyUsed      Reason = "already_used"
	ReasonNotASubsetOfRoot Reason = "not_a_subset_of_root"
	ReasonTooShort         Reason = "too_short"
	ReasonNotARealWord     Reason = "not_a_real_word"
)

// Title is the short heading shown with a rejection.
func (r Reason) Title() string {
	switch r {
	case ReasonAlreadyUsed:
		return "Word used already"
	case ReasonNotASubsetOfRoot:
		return "Word not recognized"
	case ReasonTooShort:
		return "Word is too short"
	case ReasonNotARealWord:
		return "Word not possible"
	}
	return "Word rejected"
}

// Message is the longer explanation shown with a rejection.
func (r Reason) Message() string {
	switch r {
	case ReasonAlreadyUsed:
		return "Be more original!"
	case ReasonNotASubsetOfRoot:
		return "You can't just make them up, you know."
	case ReasonTooShort:
		return fmt.Sprintf("Must be %d letters or longer!", MinWordLength)
	case ReasonNotARealWord:
		return "That's not a real word..."
	}
	return ""
}

// Outcome is the result of a submission that was actually evaluated.
// Exactly one of LettersScored (> 0) or Reason is meaningful, selected by Accepted.
type Outcome struct {
	Accepted      bool   `json:"accepted"`
	Word          string `json:"word"`
	LettersScored int    `json:"lettersScored,omitempty"`
	Reason        Reason `json:"reason,omitempty"`
	Title         string `json:"title,omitempty"`
	Message       string `json:"message,omitempty"`
}

func accepted(word string, letters int) Outcome {
	return Outcome{Accepted: true, Word: word, LettersScored: letters}
}

func rejected(word string, r Reason) Outcome {
	return Outcome{Word: word, Reason: r, Title: r.Title(), Message: r.Message() + "\nscore decremented"}
}

// SummaryKind distinguishes the two ways a round can settle.
type SummaryKind string

const (
	SummaryNewHighScore SummaryKind = "new_high_score"
	SummaryFinalScore   SummaryKind = "final_score"
)

// Summary reports the settlement of a finished round.
type Summary struct {
	Kind  SummaryKind `json:"kind"`
	Score int         `json:"score"`
}

// Message renders the summary the way the round-over dialog shows it.
func (s Summary) Message() string {
	if s.Kind == SummaryNewHighScore {
		return fmt.Sprintf("New High Score: %d!", s.Score)
	}
	return fmt.Sprintf("Your score was: %d", s.Score)
}

// Phase is a position in the session state machine.
//
//	instructions --dismiss--> playing --timeout|giveup--> round_over --acknowledge--> instructions
type Phase string

const (
	PhaseInstructions Phase = "instructions"
	PhasePlaying      Phase = "playing"
	PhaseRoundOver    Phase = "round_over"
)

// Event is the discrete notification a session operation reports alongside
// its snapshot. EventNone means nothing observable happened.
type Event string

const (
	EventNone         Event = ""
	EventDismissed    Event = "dismissed"
	EventAccepted     Event = "accepted"
	EventRejected     Event = "rejected"
	EventTick         Event = "tick"
	EventRoundOver    Event = "round_over"
	EventRoundStarted Event = "round_started"
)

// RoundState is the authoritative state of one round.
type RoundState struct {
	RootWord  string   `json:"rootWord"`
	UsedWords []string `json:"usedWords"` // most recent first
	Score     int      `json:"score"`
	HighScore int      `json:"highScore"`
}

// TimerState is a copy of the countdown's state.
type TimerState struct {
	Remaining int           `json:"remaining"`
	Running   bool          `json:"running"`
	Elapsed   time.Duration `json:"-"`
}

// Snapshot is everything the presentation layer needs to render a session.
type Snapshot struct {
	Phase        Phase      `json:"phase"`
	Round        RoundState `json:"round"`
	Timer        TimerState `json:"timer"`
	TimerDisplay string     `json:"timerDisplay"`
	LastOutcome  *Outcome   `json:"lastOutcome,omitempty"`
	Summary      *Summary   `json:"summary,omitempty"`
	SummaryText  string     `json:"summaryText,omitempty"`
	DismissLabel string     `json:"dismissLabel,omitempty"`
	Dialog       *Dialog    `json:"dialog,omitempty"`
}

// Dialog is the modal a phase puts in front of the board.
type Dialog struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Dismiss string `json:"dismiss"`
}

const (
	InstructionsTitle   = "Game instructions"
	InstructionsMessage = "Make as many words using existing letters from given word! \n" +
		"Score goes up for each letter formed by your word. \n" +
		"Score is decreased by 1 when a rule is broken. \n" +
		"1. Words must be at least 3 letters long\n" +
		"2. Words must each be unique\n" +
		"3. Words must be actual words"
	InstructionsDismiss = "Cool, let's play!"

	RoundOverTitle = "Game Over..."
	// TimeoutPrefix leads the round-over message when the clock ran out.
	TimeoutPrefix = "You ran out of time. \n"
)

// internal/game/engine.go
//
// Round engine for a single word scramble round.
// Responsibilities:
//   - Start a round from a root word (clears used words and score, keeps high score).
//   - Normalize and validate submissions in a fixed order:
//     originality → letter subset → minimum length → dictionary.
//   - Score accepted words by letter count; penalize every rejection by 1.
//   - Settle the round against the running high score.
//
// Notes:
//   - Rejections are values (Outcome), never errors.
//   - The dictionary is an injected Checker; the engine performs no I/O itself.
//   - Round is not safe for concurrent use; the host serializes calls.
package game

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	// MinWordLength is the shortest word (in letters) that can score.
	MinWordLength = 3
	// Penalty is subtracted from the score on every rejected submission.
	Penalty = 1
)

// Lang is the language every submission is checked against.
var Lang = language.English

// Checker reports whether word is a recognized word of lang.
// Implementations may return false for obscure but valid words.
type Checker interface {
	Recognizes(word string, lang language.Tag) bool
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(word string, lang language.Tag) bool

func (f CheckerFunc) Recognizes(word string, lang language.Tag) bool { return f(word, lang) }

// Round holds the state of the current round plus the high score carried
// across rounds.
type Round struct {
	state   RoundState
	checker Checker
}

// NewRound constructs a round engine with an empty state.
func NewRound(checker Checker) *Round {
	return &Round{checker: checker, state: RoundState{UsedWords: []string{}}}
}

// Start begins a new round on root. Used words and score are reset;
// the high score is preserved.
func (r *Round) Start(root string) RoundState {
	r.state = RoundState{
		RootWord:  Normalize(root),
		UsedWords: []string{},
		Score:     0,
		HighScore: r.state.HighScore,
	}
	return r.State()
}

// Submit validates raw as a candidate word and applies the score change.
// ok is false when the normalized input is empty: nothing changed and no
// outcome is reported.
func (r *Round) Submit(raw string) (out Outcome, ok bool) {
	word := Normalize(raw)
	if word == "" {
		return Outcome{}, false
	}

	switch {
	case !r.isOriginal(word):
		return r.reject(word, ReasonAlreadyUsed), true
	case !isPossible(word, r.state.RootWord):
		return r.reject(word, ReasonNotASubsetOfRoot), true
	case !isLongEnough(word):
		return r.reject(word, ReasonTooShort), true
	case !r.isReal(word):
		return r.reject(word, ReasonNotARealWord), true
	}

	n := letters(word)
	r.state.UsedWords = append([]string{word}, r.state.UsedWords...)
	r.state.Score += n
	return accepted(word, n), true
}

// End settles the round: a score above the high score replaces it.
// Used words are left in place until the next Start.
func (r *Round) End() Summary {
	if r.state.Score > r.state.HighScore {
		r.state.HighScore = r.state.Score
		return Summary{Kind: SummaryNewHighScore, Score: r.state.HighScore}
	}
	return Summary{Kind: SummaryFinalScore, Score: r.state.Score}
}

// GiveUp ends the round early with the same settlement as a timeout.
func (r *Round) GiveUp() Summary { return r.End() }

// State returns a copy of the round state.
func (r *Round) State() RoundState {
	s := r.state
	s.UsedWords = append([]string(nil), r.state.UsedWords...)
	if s.UsedWords == nil {
		s.UsedWords = []string{}
	}
	return s
}

func (r *Round) reject(word string, reason Reason) Outcome {
	r.state.Score -= Penalty
	return rejected(word, reason)
}

// isOriginal rejects repeats and the root word itself.
func (r *Round) isOriginal(word string) bool {
	if word == r.state.RootWord {
		return false
	}
	for _, w := range r.state.UsedWords {
		if w == word {
			return false
		}
	}
	return true
}

func (r *Round) isReal(word string) bool {
	if r.checker == nil {
		return false
	}
	return r.checker.Recognizes(word, Lang)
}

// isPossible reports whether word's letters form a sub-multiset of root's.
func isPossible(word, root string) bool {
	avail := make(map[rune]int, len(root))
	for _, c := range root {
		avail[c]++
	}
	for _, c := range word {
		avail[c]--
		if avail[c] < 0 {
			return false
		}
	}
	return true
}

func isLongEnough(word string) bool { return letters(word) >= MinWordLength }

func letters(word string) int { return utf8.RuneCountInString(word) }

// Normalize trims surrounding whitespace, composes to NFC and lowercases.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	return cases.Lower(Lang).String(norm.NFC.String(s))
}

// Package lexicon provides dictionary checkers for the game engine.
//
// A checker answers one question: is this lowercase word a recognized word
// of the given language? Only English is supported; every other language
// tag is rejected. Checkers may return false for obscure but valid words.
package lexicon

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/apps/go-server/assets"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/words"
)

// Set is an in-memory lexicon. It is read-only after construction and safe
// for concurrent use.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a lexicon from list; entries are normalized the way the
// engine normalizes submissions.
func NewSet(list []string) *Set {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		w = game.Normalize(w)
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return &Set{words: m}
}

// LoadSet reads a lexicon from path (one word per line), or the embedded
// fallback dictionary when path is empty.
func LoadSet(path string) (*Set, error) {
	if path == "" {
		list, err := assets.DictionaryWords()
		if err != nil {
			return nil, fmt.Errorf("read embedded dictionary: %w", err)
		}
		return NewSet(list), nil
	}
	list, err := words.ReadWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return NewSet(list), nil
}

// Recognizes reports whether word is in the set and lang is English.
func (s *Set) Recognizes(word string, lang language.Tag) bool {
	if !isEnglish(lang) {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len is the number of distinct words.
func (s *Set) Len() int { return len(s.words) }

// Words returns the words in no particular order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	return out
}

// isEnglish matches any tag whose base language is explicitly English
// (en, en-US, en-GB). "und" is not guessed into English.
func isEnglish(lang language.Tag) bool {
	base, conf := lang.Base()
	if conf != language.Exact {
		return false
	}
	en, _ := language.English.Base()
	return base == en
}

// langKey is the storage key for a language: its base subtag, e.g. "en".
func langKey(lang language.Tag) string {
	base, _ := lang.Base()
	return base.String()
}

// internal/words/corpus.go
//
// Root word corpus for the game engine.
//
// Responsibilities:
//   - Load candidate root words once at startup, from a file or the embedded default.
//   - Keep the list immutable for the lifetime of the process.
//   - Supply pickers (random, seeded, daily) that choose a root word per round.
//
// Loading rules (LoadCorpus):
//   1. If a path is given (CORPUS_FILE), read one word per line from it.
//      A missing or unreadable file is an error; the caller treats it as fatal.
//   2. Otherwise use the embedded assets/start.txt.
//   3. If the source exists but yields no words, the corpus holds the single
//      placeholder word "jonathan".
//
// Lines are trimmed and lowercased; blank lines and '#' comments are skipped.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordscramble/apps/go-server/assets"
)

// Placeholder is the root word used when a corpus is present but empty.
const Placeholder = "jonathan"

// Corpus is an immutable, ordered, non-empty list of root words.
type Corpus struct {
	words []string
}

// NewCorpus builds a corpus from list, normalizing each entry.
func NewCorpus(list []string) *Corpus {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		out = []string{Placeholder}
	}
	return &Corpus{words: out}
}

// LoadCorpus reads the corpus from path, or from the embedded list when path is empty.
func LoadCorpus(path string) (*Corpus, error) {
	if path == "" {
		list, err := assets.StartWords()
		if err != nil {
			return nil, fmt.Errorf("read embedded start words: %w", err)
		}
		return NewCorpus(list), nil
	}
	list, err := ReadWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return NewCorpus(list), nil
}

// Len is the number of root words.
func (c *Corpus) Len() int { return len(c.words) }

// At returns the i-th root word.
func (c *Corpus) At(i int) string { return c.words[i] }

// Words returns a copy of the root words in order.
func (c *Corpus) Words() []string { return append([]string(nil), c.words...) }

// ReadWordFile loads one word per line from a file, lowercased and trimmed.
// Blank lines and '#' comments are skipped.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

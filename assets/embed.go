// Package assets embeds the default word lists shipped with the server:
// start.txt holds candidate root words, dictionary.txt a small fallback lexicon.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// StartWords returns the embedded root word corpus.
func StartWords() ([]string, error) {
	return readLines("start.txt")
}

// DictionaryWords returns the embedded fallback lexicon.
func DictionaryWords() ([]string, error) {
	return readLines("dictionary.txt")
}

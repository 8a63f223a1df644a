package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

func TestSetRecognizes(t *testing.T) {
	s := NewSet([]string{" Data ", "lid", ""})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Recognizes("data", language.English))
	assert.True(t, s.Recognizes("lid", language.AmericanEnglish))
	assert.False(t, s.Recognizes("dita", language.English))
	assert.False(t, s.Recognizes("data", language.French))
	assert.False(t, s.Recognizes("data", language.Und))
}

func TestSetMatchesNormalizedSubmissions(t *testing.T) {
	decomposed := "Cafe\u0301"
	s := NewSet([]string{decomposed})
	assert.True(t, s.Recognizes(game.Normalize("café"), language.English))
	assert.True(t, s.Recognizes(game.Normalize(decomposed), language.English))
}

func TestLoadSetEmbedded(t *testing.T) {
	s, err := LoadSet("")
	require.NoError(t, err)
	assert.True(t, s.Recognizes("data", language.English))
	assert.True(t, s.Recognizes("valid", language.English))
}

func TestLoadSetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alpha\n# skip\nbeta\n"), 0o644))
	s, err := LoadSet(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, s.Words())

	_, err = LoadSet(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSQLiteImportAndLookup(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data", "lexicon.db")

	lx, err := OpenSQLite(dsn)
	require.NoError(t, err)

	n, err := lx.Import(ctx, []string{"data", "LID", "data", " "}, language.English)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := lx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.True(t, lx.Recognizes("data", language.English))
	assert.True(t, lx.Recognizes("lid", language.BritishEnglish))
	assert.False(t, lx.Recognizes("dita", language.English))
	assert.False(t, lx.Recognizes("data", language.German))
	require.NoError(t, lx.Close())

	// Reopening reapplies nothing and keeps the words.
	lx, err = OpenSQLite(dsn)
	require.NoError(t, err)
	defer lx.Close()
	assert.True(t, lx.Recognizes("data", language.English))

	_, err = lx.Import(ctx, []string{"E\u0301tal"}, language.English)
	require.NoError(t, err)
	assert.True(t, lx.Recognizes(game.Normalize("étal"), language.English))
}

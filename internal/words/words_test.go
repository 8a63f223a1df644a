package words

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCorpusNormalizes(t *testing.T) {
	c := NewCorpus([]string{"  Validate ", "", "# comment", "SILKWORM"})
	assert.Equal(t, []string{"validate", "silkworm"}, c.Words())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "silkworm", c.At(1))
}

func TestNewCorpusEmptyUsesPlaceholder(t *testing.T) {
	c := NewCorpus([]string{"", "   "})
	assert.Equal(t, []string{Placeholder}, c.Words())
}

func TestLoadCorpusEmbedded(t *testing.T) {
	c, err := LoadCorpus("")
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 10)
	assert.Contains(t, c.Words(), "validate")
}

func TestLoadCorpusFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "start.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\n\nBravo\n"), 0o644))

	c, err := LoadCorpus(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo"}, c.Words())

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	c, err = LoadCorpus(empty)
	require.NoError(t, err)
	assert.Equal(t, []string{Placeholder}, c.Words())
}

func TestLoadCorpusMissingFile(t *testing.T) {
	_, err := LoadCorpus(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRandomPickerIsDeterministicPerSeed(t *testing.T) {
	c := NewCorpus([]string{"a1", "b2", "c3", "d4", "e5", "f6"})
	p1 := NewRandomPicker(c, 42)
	p2 := NewRandomPicker(c, 42)
	for i := 0; i < 20; i++ {
		w := p1.Pick()
		assert.Equal(t, w, p2.Pick())
		assert.Contains(t, c.Words(), w)
	}
}

func TestCryptoSeededPickerPicksFromCorpus(t *testing.T) {
	c := NewCorpus([]string{"validate"})
	assert.Equal(t, "validate", NewRandomPicker(c, CryptoSeed()).Pick())
}

func TestDailyIndex(t *testing.T) {
	day := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	a := DailyIndex(day, 0, "salt", 40)
	assert.Equal(t, a, DailyIndex(day.Add(-23*time.Hour), 0, "salt", 40), "same UTC day")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 40)
	assert.Equal(t, 0, DailyIndex(day, 0, "salt", 0))
	assert.Equal(t, "2024-03-01", DateKey(day))
}

func TestDailyPickerSequence(t *testing.T) {
	c := NewCorpus([]string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8"})
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	p1 := NewDailyPicker(c, "salt", clock)
	p2 := NewDailyPicker(c, "salt", clock)
	first := []string{p1.Pick(), p1.Pick(), p1.Pick()}
	assert.Equal(t, first, []string{p2.Pick(), p2.Pick(), p2.Pick()})

	now = now.Add(24 * time.Hour)
	assert.Equal(t, c.At(DailyIndex(now, 0, "salt", c.Len())), p1.Pick(), "sequence restarts on a new day")
}

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

type fixedPicker string

func (p fixedPicker) Pick() string { return string(p) }

func newSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(game.Config{
		Picker:  fixedPicker("validate"),
		Checker: game.CheckerFunc(func(w string, _ language.Tag) bool { return w == "data" }),
	})
	require.NoError(t, err)
	return s
}

func TestMemoryStorePutGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	e := st.Put(ctx, "s1", newSession(t))
	got, err := st.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, e, got)
	assert.Len(t, st.All(ctx), 1)

	st.Delete(ctx, "s1")
	st.Delete(ctx, "s1")
	_, err = st.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntrySerializesAccess(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	e := st.Put(ctx, "s1", newSession(t))
	e.Do(func(s *game.Session) { _, _, _ = s.Dismiss() })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Do(func(s *game.Session) { _, _, _ = s.Submit("zzz") })
		}()
	}
	wg.Wait()

	var score int
	e.Peek(func(s *game.Session) { score = s.Snapshot().Round.Score })
	assert.Equal(t, -50, score)
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	st.Put(ctx, "old", newSession(t))

	assert.Empty(t, st.Prune(ctx, time.Now().Add(-time.Hour)))
	assert.Equal(t, []string{"old"}, st.Prune(ctx, time.Now().Add(time.Second)))
	assert.Empty(t, st.All(ctx))
}

func TestPruneKeepsTouchedEntries(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	st.Put(ctx, "idle", newSession(t))
	active := st.Put(ctx, "active", newSession(t))

	cutoff := time.Now().Add(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	active.Do(func(*game.Session) {})

	assert.Equal(t, []string{"idle"}, st.Prune(ctx, cutoff))
	_, err := st.Get(ctx, "active")
	assert.NoError(t, err)
}

// internal/store/memory.go
//
// In-memory registry of live game sessions.
// This is the host-side owner of every game.Session: the engine itself is
// not safe for concurrent use, so each entry carries its own mutex and all
// access goes through Entry.Do / Entry.Peek.
//
// Characteristics:
//   - Sessions keyed by ID in a map guarded by an RWMutex.
//   - Per-session mutex serializes HTTP handlers and the tick loop.
//   - Idle sessions can be pruned; state is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the registry interface for live sessions.
type Store interface {
	// Put registers sess under id, replacing any previous entry.
	Put(ctx context.Context, id string, sess *game.Session) *Entry

	// Get retrieves the entry for id or ErrNotFound.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete forgets id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string)

	// All returns every live entry in no particular order.
	All(ctx context.Context) []*Entry

	// Prune removes entries not touched since before and returns their IDs.
	Prune(ctx context.Context, before time.Time) []string
}

// Entry is one hosted session plus the lock that serializes access to it.
type Entry struct {
	ID string

	mu       sync.Mutex
	sess     *game.Session
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session and marks it as active.
// Use it for player actions.
func (e *Entry) Do(fn func(*game.Session)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = time.Now()
	fn(e.sess)
}

// Peek runs fn with exclusive access without marking activity.
// Use it for host-driven work such as ticks.
func (e *Entry) Peek(fn func(*game.Session)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.sess)
}

// LastSeen is the time of the last Do call (or creation).
func (e *Entry) LastSeen() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSeen
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

func (m *memory) Put(ctx context.Context, id string, sess *game.Session) *Entry {
	e := &Entry{ID: id, sess: sess, lastSeen: time.Now()}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = e
	return e
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
}

func (m *memory) All(ctx context.Context) []*Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out
}

func (m *memory) Prune(ctx context.Context, before time.Time) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var stale []string
	for id, e := range m.entries {
		if e.LastSeen().Before(before) {
			delete(m.entries, id)
			stale = append(stale, id)
		}
	}
	return stale
}

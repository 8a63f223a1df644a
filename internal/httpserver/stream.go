package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"nhooyr.io/websocket"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

const (
	pingEvery    = 15 * time.Second
	writeTimeout = 5 * time.Second
	sendBuffer   = 16
)

// Hub fans snapshot frames out to websocket subscribers, per session.
// Slow subscribers drop frames instead of blocking the publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan []byte]struct{})}
}

// Subscribe registers a new subscriber for session id.
func (h *Hub) Subscribe(id string) chan []byte {
	ch := make(chan []byte, sendBuffer)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[id] == nil {
		h.subs[id] = make(map[chan []byte]struct{})
	}
	h.subs[id][ch] = struct{}{}
	return ch
}

// Unsubscribe removes ch. It is safe to call after Close.
func (h *Hub) Unsubscribe(id string, ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subs[id]; ok {
		if _, ok := set[ch]; ok {
			delete(set, ch)
			close(ch)
		}
		if len(set) == 0 {
			delete(h.subs, id)
		}
	}
}

// Close disconnects every subscriber of session id.
func (h *Hub) Close(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[id] {
		close(ch)
	}
	delete(h.subs, id)
}

// Subscribers is the number of live subscribers for id.
func (h *Hub) Subscribers(id string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[id])
}

// Publish encodes f once and offers it to every subscriber of id.
func (h *Hub) Publish(id string, f frame) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.subs[id]) == 0 {
		return
	}
	msg, err := json.Marshal(f)
	if err != nil {
		log.Warn().Err(err).Str("session", id).Msg("encode frame")
		return
	}
	for ch := range h.subs[id] {
		select {
		case ch <- msg:
		default:
		}
	}
}

// handleStream upgrades to a websocket and pushes a frame after every change
// to the session, starting with the current snapshot.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	e := entryFrom(r)
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originPatterns(s.deps.ClientOrigin),
	})
	if err != nil {
		log.Warn().Err(err).Str("session", e.ID).Msg("websocket accept")
		return
	}
	defer c.Close(websocket.StatusNormalClosure, "bye")

	// Clients only listen; CloseRead handles control frames and reports
	// disconnects through ctx.
	ctx := c.CloseRead(r.Context())

	// Subscribing under the session lock makes every queued frame newer
	// than the initial snapshot.
	var (
		first frame
		ch    chan []byte
	)
	e.Peek(func(sess *game.Session) {
		first.Snapshot = sess.Snapshot()
		ch = s.hub.Subscribe(e.ID)
	})
	defer s.hub.Unsubscribe(e.ID, ch)
	msg, _ := json.Marshal(first)
	if err := write(ctx, c, msg); err != nil {
		return
	}

	ping := time.NewTicker(pingEvery)
	defer ping.Stop()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				_ = c.Close(websocket.StatusGoingAway, "session closed")
				return
			}
			if err := write(ctx, c, msg); err != nil {
				log.Debug().Err(err).Str("session", e.ID).Msg("stream write")
				return
			}
		case <-ping.C:
			if err := c.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func write(ctx context.Context, c *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.Write(ctx, websocket.MessageText, msg)
}

// originPatterns turns CLIENT_ORIGIN into the host pattern websocket.Accept expects.
func originPatterns(origin string) []string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return nil
	}
	return []string{u.Host}
}

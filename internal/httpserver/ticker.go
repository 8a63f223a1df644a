package httpserver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

// TickLoop drives every live session once per interval and prunes sessions
// idle for longer than idleTTL (when positive). It returns when ctx is done.
func (s *Server) TickLoop(ctx context.Context, interval, idleTTL time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.TickOnce(ctx)
			if idleTTL > 0 {
				s.Prune(ctx, time.Now().Add(-idleTTL))
			}
		}
	}
}

// TickOnce forwards one tick to every session and publishes the frames that
// changed something. It returns the number of rounds that ended.
func (s *Server) TickOnce(ctx context.Context) int {
	ended := 0
	for _, e := range s.deps.Store.All(ctx) {
		var f frame
		e.Peek(func(sess *game.Session) {
			f.Snapshot, f.Event = sess.Tick()
			if f.Event != game.EventNone {
				s.hub.Publish(e.ID, f)
			}
		})
		if f.Event == game.EventRoundOver {
			ended++
			log.Info().Str("session", e.ID).Int("score", f.Snapshot.Round.Score).Msg("round timed out")
		}
	}
	return ended
}

// Prune forgets sessions not used since before and disconnects their streams.
func (s *Server) Prune(ctx context.Context, before time.Time) []string {
	ids := s.deps.Store.Prune(ctx, before)
	for _, id := range ids {
		s.hub.Close(id)
		log.Info().Str("session", id).Msg("session pruned")
	}
	return ids
}

package session

import (
	"context"
	"time"

	"github.com/adhocore/gronx"
	"github.com/rs/zerolog/log"
)

// RunDailyReset wipes every conversation whenever expr is due, checking once
// a minute. Uses the process-local timezone. Blocks until ctx is cancelled;
// run it in its own goroutine.
func RunDailyReset(ctx context.Context, expr string, m *Manager) {
	g := gronx.New()
	if !g.IsValid(expr) {
		log.Error().Str("expr", expr).Msg("[SESSION] invalid reset schedule, conversations will never be cleared")
		return
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			due, err := g.IsDue(expr, now)
			if err != nil {
				log.Error().Err(err).Msg("[SESSION] reset schedule check failed")
				continue
			}
			if due {
				m.ResetAllConversations()
				log.Info().Msg("[SESSION] daily conversation reset complete")
			}
		}
	}
}

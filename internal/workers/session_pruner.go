// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Marrero

package workers

import (
	"time"

	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/session"
)

// SessionPruner periodically evicts sessions whose signed tokens have
// already expired. Without it the in-memory session table only shrinks on
// explicit logout and grows for the lifetime of the process.
type SessionPruner struct {
	sessions session.Store
	maxAge   time.Duration
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionPruner constructs a [SessionPruner] that removes sessions older
// than maxAge on every tick of interval. maxAge should match the lifetime
// of the tokens issued against the session table.
func NewSessionPruner(sessions session.Store, maxAge, interval time.Duration, logger *logger.Logger) *SessionPruner {
	return &SessionPruner{
		sessions: sessions,
		maxAge:   maxAge,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the pruning loop in a background goroutine and returns
// immediately.
func (p *SessionPruner) Run() {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for range ticker.C {
			p.prune()
		}
	}()
}

func (p *SessionPruner) prune() {
	removed := p.sessions.ClearExpired(p.maxAge)
	if removed > 0 {
		p.logger.Info().Str("func", "SessionPruner.prune").Int("removed", removed).Msg("evicted expired sessions")
	}
}

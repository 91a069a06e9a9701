// Package slog adds structured logging to wetsplit services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wetsplit"
)

// Ensure LoggingDecider implements wetsplit.Decider.
var _ wetsplit.Decider = (*LoggingDecider)(nil)

// LoggingDecider wraps a Decider with logging of the ranking outcome.
type LoggingDecider struct {
	next   wetsplit.Decider
	logger *slog.Logger
}

// NewLoggingDecider creates a new LoggingDecider.
func NewLoggingDecider(next wetsplit.Decider, logger *slog.Logger) *LoggingDecider {
	return &LoggingDecider{next: next, logger: logger}
}

// Decide delegates to the wrapped decider and logs the best candidate.
func (d *LoggingDecider) Decide(doc []byte) (*wetsplit.Decision, error) {
	begin := time.Now()
	decision, err := d.next.Decide(doc)
	if err != nil {
		d.logger.Error("decide",
			"size", len(doc),
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	best, score := "(none)", 0
	if c, err := decision.Best(); err == nil {
		best, score = c.Name, c.Score
	}
	d.logger.Info("decide",
		"candidates", len(decision.Candidates),
		"best", best,
		"score", score,
		"failed", len(decision.Failures),
		"duration", time.Since(begin),
	)
	for _, f := range decision.Failures {
		d.logger.Warn("extractor failed", "extractor", f.Name, "error", f.Err)
	}
	return decision, nil
}

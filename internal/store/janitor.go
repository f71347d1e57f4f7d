package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Janitor periodically expires stale pending approvals so that abandoned
// drafts do not accumulate in the store.
type Janitor struct {
	store    ApprovalStore
	interval time.Duration
	maxAge   time.Duration
	logger   *zap.Logger
}

// NewJanitor creates a new Janitor for the given store.
func NewJanitor(store ApprovalStore, interval, maxAge time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		store:    store,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger.Named("Janitor"),
	}
}

// Run sweeps the store on every tick until the context is canceled.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info("Expiry janitor started",
		zap.Duration("interval", j.interval),
		zap.Duration("max_age", j.maxAge),
	)

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("Expiry janitor stopped")
			return
		case <-ticker.C:
			if _, err := j.store.Expire(ctx, j.maxAge); err != nil {
				j.logger.Error("Expiry sweep failed", zap.Error(err))
			}
		}
	}
}

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
)

const defaultPruneInterval = 5 * time.Minute

type pruneWorker struct {
	name     string
	pruner   Pruner
	maxIdle  time.Duration
	interval time.Duration

	logger *logger.Logger
}

// NewPruneWorker returns a Worker that calls pruner.Prune(maxIdle) every
// interval. A zero or negative interval defaults to 5 minutes.
func NewPruneWorker(name string, pruner Pruner, maxIdle, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultPruneInterval
	}
	return &pruneWorker{
		name:     name,
		pruner:   pruner,
		maxIdle:  maxIdle,
		interval: interval,
		logger:   logger,
	}
}

func (w *pruneWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Str("worker", w.name).Msg("prune worker stopped")
			return
		case <-t.C:
			if n := w.pruner.Prune(w.maxIdle); n > 0 {
				w.logger.Debug().Str("worker", w.name).Int("pruned", n).Msg("dropped idle entries")
			}
		}
	}
}

// Package workers provides abstractions for managing and running
// background workers of the panel server.
// It defines the Worker interface and a Workers aggregate that runs
// several workers together until their context is cancelled.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Pruner drops entries idle for longer than maxIdle and reports how many
// were dropped. The request tracker and the /ui rate limiter implement it.
type Pruner interface {
	Prune(maxIdle time.Duration) int
}

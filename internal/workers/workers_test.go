// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/stretchr/testify/assert"
)

// countingWorker records Run calls and blocks until ctx is done.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewWorkers(w1, w2, w3).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// returns immediately with nothing to wait for
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

// spyPruner counts Prune calls.
type spyPruner struct {
	mu      sync.Mutex
	calls   int
	maxIdle time.Duration
}

func (p *spyPruner) Prune(maxIdle time.Duration) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.maxIdle = maxIdle
	return 1
}

func (p *spyPruner) snapshot() (int, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls, p.maxIdle
}

func TestPruneWorker_Run_PrunesOnTick(t *testing.T) {
	spy := &spyPruner{}
	w := NewPruneWorker("sessions", spy, time.Hour, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	calls, maxIdle := spy.snapshot()
	assert.GreaterOrEqual(t, calls, 3)
	assert.Equal(t, time.Hour, maxIdle)
}

func TestPruneWorker_Run_StopsOnCancel(t *testing.T) {
	spy := &spyPruner{}
	w := NewPruneWorker("sessions", spy, time.Hour, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)

	calls, _ := spy.snapshot()
	assert.Zero(t, calls)
}

func TestNewPruneWorker_DefaultInterval(t *testing.T) {
	w := NewPruneWorker("sessions", &spyPruner{}, time.Hour, 0, logger.Nop()).(*pruneWorker)
	assert.Equal(t, defaultPruneInterval, w.interval)
}

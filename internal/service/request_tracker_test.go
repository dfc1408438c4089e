// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqIDs issues "t1", "t2", ... so tests can assert on tokens.
type seqIDs struct {
	n atomic.Int64
}

func (s *seqIDs) Generate() string {
	return fmt.Sprintf("t%d", s.n.Add(1))
}

func newTestTracker(now *time.Time) *RequestTracker {
	tr := NewRequestTracker(&seqIDs{})
	if now != nil {
		tr.now = func() time.Time { return *now }
	}
	return tr
}

// ── Begin / Current ──────────────────────────────────────────────────────────

func TestRequestTracker_Begin_IssuesFreshTokens(t *testing.T) {
	tr := newTestTracker(nil)

	_, tok1 := tr.Begin(context.Background(), "s")
	_, tok2 := tr.Begin(context.Background(), "s")

	assert.Equal(t, "t1", tok1)
	assert.Equal(t, "t2", tok2)
	assert.False(t, tr.Current("s", tok1))
	assert.True(t, tr.Current("s", tok2))
}

func TestRequestTracker_Begin_CancelsPreviousContext(t *testing.T) {
	tr := newTestTracker(nil)

	ctx1, _ := tr.Begin(context.Background(), "s")
	ctx2, _ := tr.Begin(context.Background(), "s")

	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.NoError(t, ctx2.Err())
}

func TestRequestTracker_SessionsAreIndependent(t *testing.T) {
	tr := newTestTracker(nil)

	ctxA, tokA := tr.Begin(context.Background(), "a")
	_, tokB := tr.Begin(context.Background(), "b")

	assert.NoError(t, ctxA.Err())
	assert.True(t, tr.Current("a", tokA))
	assert.True(t, tr.Current("b", tokB))
	assert.Equal(t, 2, tr.Len())
}

func TestRequestTracker_Current_UnknownSession(t *testing.T) {
	tr := newTestTracker(nil)
	assert.False(t, tr.Current("nobody", "t1"))
}

// ── Finish ───────────────────────────────────────────────────────────────────

func TestRequestTracker_Finish_ReleasesContextKeepsToken(t *testing.T) {
	tr := newTestTracker(nil)

	ctx, tok := tr.Begin(context.Background(), "s")
	tr.Finish("s", tok)

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.True(t, tr.Current("s", tok))
}

func TestRequestTracker_Finish_StaleTokenIsNoop(t *testing.T) {
	tr := newTestTracker(nil)

	_, old := tr.Begin(context.Background(), "s")
	ctxNew, tok := tr.Begin(context.Background(), "s")
	tr.Finish("s", old)

	assert.NoError(t, ctxNew.Err())
	assert.True(t, tr.Current("s", tok))
}

// ── Prune ────────────────────────────────────────────────────────────────────

func TestRequestTracker_Prune_DropsOnlyIdleSessions(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(&now)

	_, idle := tr.Begin(context.Background(), "idle")
	tr.Finish("idle", idle)
	_, _ = tr.Begin(context.Background(), "inflight")

	now = now.Add(time.Hour)
	_, fresh := tr.Begin(context.Background(), "fresh")
	tr.Finish("fresh", fresh)

	pruned := tr.Prune(30 * time.Minute)

	assert.Equal(t, 1, pruned)
	assert.Equal(t, 2, tr.Len())
	assert.False(t, tr.Current("idle", idle))
	assert.True(t, tr.Current("fresh", fresh))
}

// ── Concurrency ──────────────────────────────────────────────────────────────

func TestRequestTracker_ConcurrentBegin_LastTokenWins(t *testing.T) {
	tr := newTestTracker(nil)

	var wg sync.WaitGroup
	tokens := make(chan string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, tok := tr.Begin(context.Background(), "s")
			tokens <- tok
		}()
	}
	wg.Wait()
	close(tokens)

	current := 0
	for tok := range tokens {
		if tr.Current("s", tok) {
			current++
		}
	}
	require.Equal(t, 1, current)
}

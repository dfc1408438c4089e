// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-portfolio-panel/internal/utils"
)

// RequestTracker remembers the latest submission token of every panel
// session. Beginning a submission cancels the previous in-flight one of the
// same session, so a superseded request can never overwrite a newer result.
//
// RequestTracker is safe for concurrent use.
type RequestTracker struct {
	ids utils.IDGenerator
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*trackedSession
}

type trackedSession struct {
	token    string
	cancel   context.CancelFunc
	lastSeen time.Time
}

// NewRequestTracker returns an empty tracker issuing tokens from ids.
func NewRequestTracker(ids utils.IDGenerator) *RequestTracker {
	return &RequestTracker{
		ids:      ids,
		now:      time.Now,
		sessions: make(map[string]*trackedSession),
	}
}

// Begin issues a new token for session and returns a context derived from
// parent that is cancelled when a newer submission begins or the token
// finishes.
func (t *RequestTracker) Begin(parent context.Context, session string) (context.Context, string) {
	ctx, cancel := context.WithCancel(parent)
	token := t.ids.Generate()

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.sessions[session]; ok && prev.cancel != nil {
		prev.cancel()
	}
	t.sessions[session] = &trackedSession{
		token:    token,
		cancel:   cancel,
		lastSeen: t.now(),
	}

	return ctx, token
}

// Current reports whether token is still the latest one of session.
func (t *RequestTracker) Current(session, token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[session]
	return ok && s.token == token
}

// Finish releases the context of token. The session keeps the token so a
// later Current check still succeeds until a newer submission begins.
func (t *RequestTracker) Finish(session, token string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[session]
	if !ok || s.token != token {
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.lastSeen = t.now()
}

// Prune drops sessions without an in-flight submission that were last seen
// more than maxIdle ago. It returns the number of dropped sessions.
func (t *RequestTracker) Prune(maxIdle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-maxIdle)
	pruned := 0
	for id, s := range t.sessions {
		if s.cancel == nil && s.lastSeen.Before(cutoff) {
			delete(t.sessions, id)
			pruned++
		}
	}
	return pruned
}

// Len returns the number of tracked sessions.
func (t *RequestTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

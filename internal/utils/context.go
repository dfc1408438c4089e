// Package utils provides small helpers shared across the panel: typed
// context keys, the resty client wrapper and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey stores the panel session identifier of the current
// request. The session scopes the latest-submission token.
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext returns the session id stored in ctx.
// ok is false when the value is missing, empty or of another type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}

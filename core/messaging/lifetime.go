package messaging

import "sync/atomic"

// Lifetime is an explicit liveness token. An entity that subscribes handlers
// bound to its own lifetime ends the token from its teardown path; the
// messenger then treats those subscriptions as dead, skipping and purging
// them without any error surfacing.
//
// This replaces implicit finalizer-based cleanup: liveness is checked
// manually at delivery time, and teardown is an explicit call.
type Lifetime struct {
	ended atomic.Bool
}

// NewLifetime returns a live token.
func NewLifetime() *Lifetime {
	return &Lifetime{}
}

// End marks the token dead. Idempotent.
func (l *Lifetime) End() {
	l.ended.Store(true)
}

// Alive reports whether the token is still live.
func (l *Lifetime) Alive() bool {
	return !l.ended.Load()
}

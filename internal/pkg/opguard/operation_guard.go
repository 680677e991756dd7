// Package opguard provides the operation guard that serializes lifecycle
// transitions per order. Concurrent callers attempting a transition on the
// same order (for example, a double-submitted delivery confirmation) are
// rejected immediately instead of queueing, so each delivery is processed
// at most once.
package opguard

import (
	"errors"
	"sync"
	"time"
)

// ErrOperationInProgress is returned by Acquire when a transition for the
// same key is already in flight. Callers should treat it as "a transition is
// already running", not as a failure to retry immediately.
var ErrOperationInProgress = errors.New("operation already in progress")

// DefaultTimeout bounds how long an acquired slot may be held. A holder that
// never releases (crashed goroutine, lost caller) is reaped on the next
// Acquire for the same key once the timeout has passed.
const DefaultTimeout = 10 * time.Second

// OperationGuard tracks in-flight operations by key and admits at most one
// concurrent operation per key. All state lives in process memory; the guard
// is safe for concurrent use.
type OperationGuard struct {
	mu       sync.Mutex
	timeout  time.Duration
	inFlight map[string]time.Time
}

// NewOperationGuard creates a guard with the given hold timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewOperationGuard(timeout time.Duration) *OperationGuard {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OperationGuard{
		timeout:  timeout,
		inFlight: make(map[string]time.Time),
	}
}

// Acquire admits an operation for key, recording it as in flight.
// Returns ErrOperationInProgress when another operation holds the key and the
// hold is younger than the timeout. Stale holds are replaced.
func (g *OperationGuard) Acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if acquiredAt, held := g.inFlight[key]; held {
		if time.Since(acquiredAt) < g.timeout {
			return ErrOperationInProgress
		}
	}

	g.inFlight[key] = time.Now()
	return nil
}

// Release frees the key after an operation completes, successfully or not.
// Releasing a key that is not held is a no-op.
func (g *OperationGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, key)
}

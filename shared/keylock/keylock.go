package keylock

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrWaitTimeout is returned when a lock could not be acquired within the
	// configured wait bound. Callers should surface it as a retryable error.
	ErrWaitTimeout = errors.New("timed out waiting for lock")
)

// KeyedLock serializes work per key. Each key gets its own exclusive lock, so
// operations on different keys never contend. Acquisition waits are bounded;
// no caller blocks indefinitely.
type KeyedLock struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func New() *KeyedLock {
	return &KeyedLock{
		slots: make(map[string]chan struct{}),
	}
}

// Acquire takes the lock for key, waiting at most wait. On success it returns
// a release function that must be called exactly once. Slots are retained for
// the lifetime of the lock; the population is bounded by the number of keys.
func (l *KeyedLock) Acquire(ctx context.Context, key string, wait time.Duration) (func(), error) {
	slot := l.slot(key)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-timer.C:
		return nil, ErrWaitTimeout
	case <-ctx.Done():
		return nil, ctx.Err() //nolint:wrapcheck
	}
}

func (l *KeyedLock) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}

	return slot
}

package keylock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/shared/keylock"
)

func TestAcquire_Release(t *testing.T) {
	lock := keylock.New()

	release, err := lock.Acquire(context.Background(), "room-1", 100*time.Millisecond)
	require.NoError(t, err)

	release()

	release, err = lock.Acquire(context.Background(), "room-1", 100*time.Millisecond)
	require.NoError(t, err)

	release()
}

func TestAcquire_TimesOutWhileHeld(t *testing.T) {
	lock := keylock.New()

	release, err := lock.Acquire(context.Background(), "room-1", 100*time.Millisecond)
	require.NoError(t, err)
	defer release()

	_, err = lock.Acquire(context.Background(), "room-1", 20*time.Millisecond)
	assert.ErrorIs(t, err, keylock.ErrWaitTimeout)
}

func TestAcquire_IndependentKeys(t *testing.T) {
	lock := keylock.New()

	release1, err := lock.Acquire(context.Background(), "room-1", 20*time.Millisecond)
	require.NoError(t, err)
	defer release1()

	// A different key must not contend with room-1.
	release2, err := lock.Acquire(context.Background(), "room-2", 20*time.Millisecond)
	require.NoError(t, err)

	release2()
}

func TestAcquire_ContextCancelled(t *testing.T) {
	lock := keylock.New()

	release, err := lock.Acquire(context.Background(), "room-1", time.Second)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = lock.Acquire(ctx, "room-1", time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAcquire_SerializesWriters(t *testing.T) {
	lock := keylock.New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		holders int
		maxSeen int
	)

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			release, err := lock.Acquire(context.Background(), "room-1", time.Second)
			if err != nil {
				return
			}
			defer release()

			mu.Lock()
			holders++
			if holders > maxSeen {
				maxSeen = holders
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

package livesync_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/theamal11z/grocerygunj1-sub002/internal/livesync"
)

func TestWatcher_CoalescesBurstIntoOneReload(t *testing.T) {
	var reloads int32
	w := livesync.NewWatcher("test", 50*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&reloads, 1)
		return nil
	})
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for i := 0; i < 10; i++ {
		w.Notify()
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&reloads) == 1
	}, time.Second, 10*time.Millisecond)

	// No further reloads without new notifications.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&reloads))
}

func TestWatcher_ReloadsAgainAfterNewNotification(t *testing.T) {
	var reloads int32
	w := livesync.NewWatcher("test", 20*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&reloads, 1)
		return nil
	})
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	w.Notify()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&reloads) == 1
	}, time.Second, 5*time.Millisecond)

	w.Notify()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&reloads) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestWatcher_ReloadErrorKeepsLoopAlive(t *testing.T) {
	var reloads int32
	w := livesync.NewWatcher("test", 20*time.Millisecond, func(ctx context.Context) error {
		if atomic.AddInt32(&reloads, 1) == 1 {
			return fmt.Errorf("backing store unavailable")
		}
		return nil
	})
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	w.Notify()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&reloads) == 1
	}, time.Second, 5*time.Millisecond)

	// The failed reload does not kill the loop.
	w.Notify()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&reloads) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := livesync.NewWatcher("test", 0, func(ctx context.Context) error { return nil })
	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	w.Stop()
	w.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestHub_RoutesByName(t *testing.T) {
	var productReloads, orderReloads int32
	hub := livesync.NewHub()
	defer hub.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub.Register(ctx, "products", 20*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&productReloads, 1)
		return nil
	})
	hub.Register(ctx, "orders", 20*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&orderReloads, 1)
		return nil
	})

	hub.Notify("products")
	hub.Notify("unknown") // silently dropped

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&productReloads) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&orderReloads))
}

func TestSnapshot(t *testing.T) {
	var snap livesync.Snapshot[string]

	items, ok := snap.Get()
	assert.False(t, ok)
	assert.Empty(t, items)

	snap.Set([]string{"a", "b"})
	items, ok = snap.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)

	// Set replaces wholesale.
	snap.Set(nil)
	items, ok = snap.Get()
	assert.True(t, ok)
	assert.Empty(t, items)
}

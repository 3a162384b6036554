// Package livesync keeps an in-memory collection in step with its backing
// store. A Watcher owns a reload closure; change notifications are coalesced
// through a single debounce timer so a burst of events triggers exactly one
// authoritative reload. The same abstraction serves every entity type that
// needs refetch-on-change; nothing here knows about carts or catalogs.
package livesync

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultDebounce is the coalescing window applied when none is given.
const DefaultDebounce = 250 * time.Millisecond

// Watcher debounces change notifications into reload calls.
type Watcher struct {
	name     string
	debounce time.Duration
	reload   func(ctx context.Context) error

	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewWatcher creates a watcher around a reload closure. The reload is only
// ever invoked from the watcher's own goroutine, so it needs no locking of
// its own against other reloads.
func NewWatcher(name string, debounce time.Duration, reload func(ctx context.Context) error) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		name:     name,
		debounce: debounce,
		reload:   reload,
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Notify records that the backing data changed. Safe for concurrent use;
// notifications arriving while one is already pending are merged.
func (w *Watcher) Notify() {
	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// Run consumes notifications until the context is cancelled or Stop is
// called. Each pending notification starts (or restarts nothing: the timer
// is already armed) a single debounce timer; when it fires, reload runs
// once. Reload errors are logged and the loop keeps going.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case <-w.notify:
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			}
		case <-fire:
			timer = nil
			fire = nil
			if err := w.reload(ctx); err != nil {
				log.Printf("livesync %s: reload failed: %v", w.name, err)
			}
		}
	}
}

// Stop terminates Run. Idempotent.
func (w *Watcher) Stop() {
	w.once.Do(func() { close(w.done) })
}

// Hub routes named change notifications to their watchers, so one message
// bus consumer can fan events out by entity.
type Hub struct {
	mu       sync.RWMutex
	watchers map[string]*Watcher
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{watchers: make(map[string]*Watcher)}
}

// Register adds a watcher under a name and starts its loop.
func (h *Hub) Register(ctx context.Context, name string, debounce time.Duration, reload func(ctx context.Context) error) *Watcher {
	w := NewWatcher(name, debounce, reload)
	h.mu.Lock()
	h.watchers[name] = w
	h.mu.Unlock()
	go w.Run(ctx)
	return w
}

// Notify forwards a change notification to the named watcher, if registered.
func (h *Hub) Notify(name string) {
	h.mu.RLock()
	w := h.watchers[name]
	h.mu.RUnlock()
	if w != nil {
		w.Notify()
	}
}

// Stop stops every registered watcher.
func (h *Hub) Stop() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, w := range h.watchers {
		w.Stop()
	}
}

package livesync

import "sync"

// Snapshot holds the latest loaded copy of a collection behind a lock.
// Watcher reloads write it; request handlers read it.
type Snapshot[T any] struct {
	mu    sync.RWMutex
	items []T
	ready bool
}

// Set replaces the snapshot wholesale.
func (s *Snapshot[T]) Set(items []T) {
	s.mu.Lock()
	s.items = items
	s.ready = true
	s.mu.Unlock()
}

// Get returns the current snapshot and whether one was ever loaded.
// The returned slice must not be mutated by callers.
func (s *Snapshot[T]) Get() ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.ready
}

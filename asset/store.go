package asset

import "sync"

// Handle is an opaque reference to a resource held by a [Store].
// The zero Handle refers to nothing and never resolves.
//
// The type parameter ties a handle to the store that issued it, so a
// texture handle cannot be resolved against a mesh store by accident.
type Handle[T any] struct {
	id uint32
}

// IsZero reports whether the handle refers to nothing.
func (h Handle[T]) IsZero() bool { return h.id == 0 }

// Store is a generic handle-indexed resource store.
//
// A Store hands out handles eagerly and fills in data later: Allocate
// reserves a handle with no data, Fulfill attaches the data, and
// LoadFromData does both in one step. Resolve never blocks; a handle whose
// data has not arrived yet simply resolves to false.
type Store[T any] struct {
	mu      sync.RWMutex
	next    uint32
	entries map[uint32]T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: make(map[uint32]T)}
}

// Allocate reserves a handle with no data attached.
// Resolving it fails until Fulfill is called.
func (s *Store[T]) Allocate() Handle[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return Handle[T]{id: s.next}
}

// Fulfill attaches data to a previously allocated handle.
// Fulfilling the zero handle is a no-op.
func (s *Store[T]) Fulfill(h Handle[T], v T) {
	if h.IsZero() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[h.id] = v
}

// LoadFromData registers v and returns a handle that resolves immediately.
func (s *Store[T]) LoadFromData(v T) Handle[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.entries[s.next] = v
	return Handle[T]{id: s.next}
}

// Resolve looks up the data for a handle.
// It reports false for the zero handle, for handles that were allocated but
// never fulfilled, and for handles that have been released.
func (s *Store[T]) Resolve(h Handle[T]) (T, bool) {
	var zero T
	if h.IsZero() {
		return zero, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[h.id]
	if !ok {
		return zero, false
	}
	return v, true
}

// Release drops the data for a handle. The handle id is not reused;
// subsequent resolves report the resource as unavailable.
func (s *Store[T]) Release(h Handle[T]) {
	if h.IsZero() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, h.id)
}

// Len returns the number of fulfilled entries.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

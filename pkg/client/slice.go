package client

import "sync"

// Slice caches the last-fetched records of one resource together with the
// loading, error and success flags a rendering layer needs. Transitions are
// explicit: callers mark an operation Pending, then Resolve or Reject it.
// There is no retry, no optimistic update and no request coalescing.
type Slice[T any] struct {
	mu      sync.Mutex
	items   []T
	item    *T
	loading bool
	err     string
	success bool
}

// Pending marks the start of an operation and clears the previous outcome.
func (s *Slice[T]) Pending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
	s.success = false
}

// ResolveList replaces the cached collection.
func (s *Slice[T]) ResolveList(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loading = false
	s.err = ""
}

// ResolveItem replaces the cached single record.
func (s *Slice[T]) ResolveItem(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item = &item
	s.loading = false
	s.err = ""
}

// ResolveWrite records a successful create, update or delete. The success
// flag stays set until ResetStatus so forms can react to it.
func (s *Slice[T]) ResolveWrite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = ""
	s.success = true
}

// Reject records a failed operation with the server's message verbatim.
func (s *Slice[T]) Reject(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = msg
	s.success = false
}

// ResetStatus clears the error and success flags without touching the cache.
func (s *Slice[T]) ResetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.success = false
}

// Items returns a copy of the cached collection.
func (s *Slice[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns a copy of the cached single record, or nil.
func (s *Slice[T]) Item() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.item == nil {
		return nil
	}
	item := *s.item
	return &item
}

func (s *Slice[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Slice[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Slice[T]) Success() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.success
}

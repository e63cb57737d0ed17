package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// No build tags, so it is testable outside WASM.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func()
	order  []int
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func())}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all subscribers in subscription order.
// Subscribers run outside the lock, so they may call Get or Subscribe.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	subs := make([]func(), 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Subscribe registers a callback fired when the value changes.
// Returns an unsubscribe func; call it in OnUnmount.
// Calling unsubscribe more than once is safe.
func (s *Signal[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, sid := range s.order {
			if sid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Package observe provides the change-notification half of the state holders
// in marquee. A renderer subscribes to a Subject and redraws when it publishes.
package observe

import (
	"sort"

	"go.uber.org/atomic"
)

// Subject fans a published value out to every current subscriber, in the
// order they subscribed. Publishing is synchronous: all listeners have run
// when Publish returns.
//
// Subjects are driven from the UI event loop and are not safe for concurrent
// Publish/Subscribe calls.
type Subject[T any] struct {
	nextID    atomic.Uint64
	listeners map[uint64]func(T)
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (s *Subject[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if s.listeners == nil {
		s.listeners = make(map[uint64]func(T))
	}

	id := s.nextID.Inc()
	s.listeners[id] = fn

	return func() {
		delete(s.listeners, id)
	}
}

// Publish calls every listener with v.
func (s *Subject[T]) Publish(v T) {
	if len(s.listeners) == 0 {
		return
	}

	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		// A listener may unsubscribe another one mid-publish.
		if fn, ok := s.listeners[id]; ok {
			fn(v)
		}
	}
}

// Len returns the number of active subscribers.
func (s *Subject[T]) Len() int {
	return len(s.listeners)
}

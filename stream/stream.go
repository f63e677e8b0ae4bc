package stream

import "sync"

// Stream is a push-based typed event stream. Occurrences pushed with
// Emit are dispatched synchronously to every subscriber, in
// subscription order, before Emit returns. Emissions are serialized:
// completions arriving from other goroutines re-enter the graph one at
// a time, so each occurrence propagates through a quiescent graph.
type Stream[T any] struct {
	emitMu sync.Mutex // serializes propagation
	mu     sync.Mutex // guards subs
	subs   []*subscriber[T]
}

type subscriber[T any] struct {
	fn      func(T)
	removed bool
}

// New creates an empty stream.
func New[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Subscribe registers fn to be invoked for every subsequent
// occurrence. Subscribers run in subscription order on the emitting
// goroutine. The returned func removes the subscription and is safe to
// call more than once, including from inside a handler.
func (s *Stream[T]) Subscribe(fn func(T)) func() {
	sub := &subscriber[T]{fn: fn}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub.removed {
			return
		}
		sub.removed = true
		for i, cur := range s.subs {
			if cur == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

// Emit pushes one occurrence through the stream. Handlers run on the
// calling goroutine; Emit returns after the last handler does. A
// handler must not Emit back into the stream it is subscribed on.
func (s *Stream[T]) Emit(v T) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	subs := make([]*subscriber[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		s.mu.Lock()
		removed := sub.removed
		s.mu.Unlock()
		if !removed {
			sub.fn(v)
		}
	}
}

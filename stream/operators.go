package stream

import "sync"

// Map derives a stream carrying fn applied to each source occurrence.
func Map[I, O any](src *Stream[I], fn func(I) O) *Stream[O] {
	out := New[O]()
	src.Subscribe(func(v I) {
		out.Emit(fn(v))
	})
	return out
}

// Filter derives a stream carrying only the occurrences that satisfy
// the predicate.
func Filter[T any](src *Stream[T], keep func(T) bool) *Stream[T] {
	out := New[T]()
	src.Subscribe(func(v T) {
		if keep(v) {
			out.Emit(v)
		}
	})
	return out
}

// Tap calls fn as a side effect for each occurrence, then passes the
// occurrence through unchanged. Use for logging or metrics.
func Tap[T any](src *Stream[T], fn func(T)) *Stream[T] {
	out := New[T]()
	src.Subscribe(func(v T) {
		fn(v)
		out.Emit(v)
	})
	return out
}

// Scan folds the source with fn, emitting each accumulator value. The
// initial value seeds the fold but is not itself emitted.
func Scan[I, O any](src *Stream[I], initial O, fn func(O, I) O) *Stream[O] {
	out := New[O]()
	acc := initial
	src.Subscribe(func(v I) {
		acc = fn(acc, v)
		out.Emit(acc)
	})
	return out
}

// Merge derives a stream carrying the occurrences of every source, in
// arrival order.
func Merge[T any](srcs ...*Stream[T]) *Stream[T] {
	out := New[T]()
	for _, src := range srcs {
		src.Subscribe(func(v T) {
			out.Emit(v)
		})
	}
	return out
}

// Cell holds the most recent occurrence of a stream. Build one with
// Hold.
type Cell[T any] struct {
	mu      sync.RWMutex
	current T
}

// Hold returns a Cell tracking the latest occurrence of src, seeded
// with initial. The seed is what consumers use to represent "outcome
// not yet known" before the first occurrence arrives.
func Hold[T any](src *Stream[T], initial T) *Cell[T] {
	c := &Cell[T]{current: initial}
	src.Subscribe(func(v T) {
		c.mu.Lock()
		c.current = v
		c.mu.Unlock()
	})
	return c
}

// Value returns the latest occurrence, or the seed if none arrived yet.
func (c *Cell[T]) Value() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

package httpflow

import (
	"github.com/kbukum/httpflow/optional"
	"github.com/kbukum/httpflow/stream"
)

// Successes projects a response stream onto its success arm: exactly
// one occurrence per source occurrence, present only for Success. The
// projection is stateless — a Waiting occurrence after a Success still
// projects to absent.
func Successes[A, B any](src *stream.Stream[Response[A, B]]) *stream.Stream[optional.Optional[A]] {
	return stream.Map(src, func(r Response[A, B]) optional.Optional[A] {
		if v, ok := r.Value(); ok {
			return optional.Some(v)
		}
		return optional.None[A]()
	})
}

// Failures is the mirror of Successes for the failure arm.
func Failures[A, B any](src *stream.Stream[Response[A, B]]) *stream.Stream[optional.Optional[B]] {
	return stream.Map(src, func(r Response[A, B]) optional.Optional[B] {
		if b, ok := r.Reason(); ok {
			return optional.Some(b)
		}
		return optional.None[B]()
	})
}

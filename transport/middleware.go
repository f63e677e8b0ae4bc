package transport

import (
	"context"

	"github.com/kbukum/httpflow"
)

// Middleware transforms a Transport by wrapping it. The returned
// transport delegates to the original while adding cross-cutting
// behavior (logging, tracing, etc.).
type Middleware func(httpflow.Transport) httpflow.Transport

// Chain composes multiple middlewares into one. Middlewares are
// applied in order: the first middleware is outermost (executes first
// on the way in, last on the way out).
//
// Chain(a, b, c)(tr) is equivalent to a(b(c(tr))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner httpflow.Transport) httpflow.Transport {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// Func adapts a function to the httpflow.Transport interface.
type Func func(ctx context.Context, call httpflow.Call) (httpflow.Result, error)

// RoundTrip implements httpflow.Transport.
func (f Func) RoundTrip(ctx context.Context, call httpflow.Call) (httpflow.Result, error) {
	return f(ctx, call)
}

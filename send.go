package httpflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbukum/httpflow/stream"
)

// Call carries the wire-level fields of one exchange as handed to the
// transport.
type Call struct {
	Verb    string
	URL     string
	Body    string
	Headers []Header
}

// Result is a completed exchange as reported by the transport,
// whatever its status code.
type Result struct {
	StatusCode    int
	StatusMessage string
	Body          string
}

// Transport performs the actual network exchange. RoundTrip either
// completes with a Result (for any status code, success or not) or
// returns an error for failures below the HTTP layer. Implementations
// should return *TransportError when they have a code for the failure.
type Transport interface {
	RoundTrip(ctx context.Context, call Call) (Result, error)
}

// TransportError is a connection-level failure reported with a code
// and message pair.
type TransportError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("httpflow: transport error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("httpflow: transport error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Send maps a stream of requests to a stream of typed outcomes.
//
// Every occurrence on requests dispatches exactly one RoundTrip, on
// its own goroutine, and produces exactly one occurrence on the
// returned stream once the exchange completes. Nothing is retried,
// batched, deduplicated, or cancelled once dispatched, and completions
// that race may appear out of submission order. Every failure surfaces
// as a Failure value on the stream; Send never aborts propagation and
// never emits Waiting. Consumers needing a "not yet resolved" initial
// state compose it themselves, e.g.:
//
//	responses := httpflow.Send(ctx, requests, tr)
//	latest := stream.Hold(responses, httpflow.Waiting[string, httpflow.Failure]())
func Send[T any](ctx context.Context, requests *stream.Stream[Request[T]], tr Transport) *stream.Stream[HTTPResponse[T]] {
	out := stream.New[HTTPResponse[T]]()
	requests.Subscribe(func(req Request[T]) {
		go func() {
			out.Emit(roundTrip(ctx, tr, req))
		}()
	})
	return out
}

// roundTrip performs one exchange and classifies its outcome.
func roundTrip[T any](ctx context.Context, tr Transport, req Request[T]) HTTPResponse[T] {
	res, err := tr.RoundTrip(ctx, Call{
		Verb:    req.Verb,
		URL:     req.URL,
		Body:    req.Body,
		Headers: req.Headers,
	})
	if err != nil {
		var te *TransportError
		if errors.As(err, &te) {
			return Failed[T, Failure](HTTPFailure(te.Code, te.Message))
		}
		return Failed[T, Failure](HTTPFailure(0, err.Error()))
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Failed[T, Failure](HTTPFailure(res.StatusCode, res.StatusMessage))
	}
	if v, ok := req.Parse(res.Body).Get(); ok {
		return Success[T, Failure](v)
	}
	return Failed[T, Failure](NoConversion(res.Body))
}

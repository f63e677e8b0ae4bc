package httpflow

// State discriminates the three outcomes of a Response.
type State int

const (
	// StateWaiting marks an outcome that is not yet known. Send never
	// emits it; consumers seed derived state with it (see stream.Hold
	// and stream.Scan).
	StateWaiting State = iota
	// StateSuccess marks a completed exchange whose body parsed.
	StateSuccess
	// StateFailure marks a classified failure.
	StateFailure
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Response is a closed three-state outcome: Waiting, Success carrying
// an A, or Failure carrying a B. The zero value is Waiting. A Response
// is produced once per completed exchange and is immutable.
type Response[A, B any] struct {
	state   State
	value   A
	failure B
}

// HTTPResponse is the outcome of one HTTP exchange.
type HTTPResponse[A any] = Response[A, Failure]

// Waiting returns the not-yet-known outcome.
func Waiting[A, B any]() Response[A, B] {
	return Response[A, B]{}
}

// Success wraps a successful payload.
func Success[A, B any](v A) Response[A, B] {
	return Response[A, B]{state: StateSuccess, value: v}
}

// Failed wraps a classified failure.
func Failed[A, B any](b B) Response[A, B] {
	return Response[A, B]{state: StateFailure, failure: b}
}

// State returns the discriminant.
func (r Response[A, B]) State() State {
	return r.state
}

// Value returns the success payload and whether the response is a
// success.
func (r Response[A, B]) Value() (A, bool) {
	return r.value, r.state == StateSuccess
}

// Reason returns the failure payload and whether the response is a
// failure.
func (r Response[A, B]) Reason() (B, bool) {
	return r.failure, r.state == StateFailure
}

// Match dispatches exhaustively over the three states and returns the
// chosen branch's result.
func Match[A, B, R any](r Response[A, B], waiting func() R, success func(A) R, failure func(B) R) R {
	switch r.state {
	case StateSuccess:
		return success(r.value)
	case StateFailure:
		return failure(r.failure)
	default:
		return waiting()
	}
}

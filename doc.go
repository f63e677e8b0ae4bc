// Package httpflow is a typed contract for issuing HTTP requests from
// a reactive dataflow graph and observing their outcomes as a stream
// of typed responses.
//
// A Request[T] describes one exchange plus how to interpret its body.
// Send maps a stream of requests, one-to-one, into a stream of
// HTTPResponse[T] values: every outcome is classified into a closed
// taxonomy (HTTP-level failure or conversion failure) and delivered as
// a value — nothing is thrown and no pipeline stage aborts.
//
// # Basic Usage
//
//	tr, err := nethttp.New(nethttp.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	requests := stream.New[httpflow.Request[string]]()
//	responses := httpflow.Send(ctx, requests, tr)
//	httpflow.Successes(responses).Subscribe(func(body optional.Optional[string]) {
//	    if v, ok := body.Get(); ok {
//	        fmt.Println(v)
//	    }
//	})
//	requests.Emit(httpflow.Get("https://api.example.com/health"))
//
// The transport performing the exchange is a collaborator behind the
// Transport interface; transport/nethttp and transport/restyhttp
// provide adapters, and the transport package provides logging and
// tracing middleware for them.
//
// Send performs no pooling, retrying, caching, redirect handling, or
// timeout management of its own; whatever the configured transport
// does is what happens on the wire.
package httpflow

// Package transport provides cross-cutting middleware for
// httpflow.Transport implementations, and adapters in its
// subpackages:
//
//   - nethttp: net/http-backed transport with file/env configuration
//   - restyhttp: go-resty-backed transport
//
// # Usage
//
//	tr, err := nethttp.New(nethttp.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wrapped := transport.Chain(
//	    transport.WithTracing("my-service"),
//	    transport.WithLogging(logger),
//	)(tr)
//	responses := httpflow.Send(ctx, requests, wrapped)
package transport

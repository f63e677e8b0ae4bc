// Package nethttp is the net/http-backed httpflow.Transport adapter.
//
// The adapter owns the concerns the dispatch contract leaves to its
// transport collaborator: connection handling, TLS, proxying, and an
// overall exchange timeout. Configure it directly with a Config value
// or load one from a file and environment with LoadConfig.
package nethttp

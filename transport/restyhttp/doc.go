// Package restyhttp is the go-resty-backed httpflow.Transport
// adapter. It lets an application that already carries a configured
// resty client reuse it for dispatching httpflow requests.
package restyhttp

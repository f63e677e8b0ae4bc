package httpflow

import (
	"net/http"

	"github.com/kbukum/httpflow/optional"
)

// Unit is the payload for requests whose response body carries no
// useful data.
type Unit struct{}

// Header is one request header pair. Header order and duplicate names
// are preserved and handed to the transport verbatim.
type Header struct {
	Name  string
	Value string
}

// Request describes one HTTP exchange and how to interpret its
// response body. A Request is built once and never mutated; it is
// consumed by Send once per occurrence on the input stream.
//
// Parse must be total: for any input string it returns a present or
// absent value and never panics. The type cannot enforce this; it is a
// contract on the function, and every builder in this package supplies
// a total parser.
type Request[T any] struct {
	Verb    string
	URL     string
	Body    string
	Parse   func(raw string) optional.Optional[T]
	Headers []Header
}

// New assembles a Request from its parts. No validation beyond
// structural assembly is applied; the named builders below are the
// usual entry points.
func New[T any](verb, url, body string, parse func(raw string) optional.Optional[T], headers []Header) Request[T] {
	return Request[T]{Verb: verb, URL: url, Body: body, Parse: parse, Headers: headers}
}

// Get builds a GET request whose response body is taken as-is. The
// parser is present for every input, so the request can never classify
// as a conversion failure.
func Get(url string) Request[string] {
	return New(http.MethodGet, url, "", func(raw string) optional.Optional[string] {
		return optional.Some(raw)
	}, nil)
}

// GetJSON builds a GET request whose response body is decoded as a
// JSON document. Malformed bodies classify as NoConversion.
func GetJSON(url string) Request[JSONValue] {
	return New(http.MethodGet, url, "", DecodeJSON, nil)
}

// Post builds a POST request carrying body whose response body is
// ignored. The parser is present with Unit for every input, so the
// request can never classify as a conversion failure.
func Post(url, body string) Request[Unit] {
	return New(http.MethodPost, url, body, parseUnit, nil)
}

// PostJSON builds a POST request carrying v encoded as JSON, with
// exactly one Content-Type: application/json header. The response body
// is ignored.
func PostJSON(url string, v any) Request[Unit] {
	headers := []Header{{Name: "Content-Type", Value: "application/json"}}
	return New(http.MethodPost, url, EncodeJSON(v), parseUnit, headers)
}

func parseUnit(string) optional.Optional[Unit] {
	return optional.Some(Unit{})
}

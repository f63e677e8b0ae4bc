package restyhttp

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kbukum/httpflow"
)

// Transport adapts a resty.Client to httpflow.Transport, for callers
// already standardized on resty.
type Transport struct {
	client *resty.Client
}

// New wraps an existing resty client. A nil client gets a fresh one
// with resty defaults.
func New(client *resty.Client) *Transport {
	if client == nil {
		client = resty.New()
	}
	return &Transport{client: client}
}

// NewWithTimeout builds a Transport over a fresh resty client with the
// given per-exchange timeout.
func NewWithTimeout(timeout time.Duration) *Transport {
	return &Transport{client: resty.New().SetTimeout(timeout)}
}

// RoundTrip performs one exchange. Completed exchanges are reported as
// a Result whatever the status code; failures below the HTTP layer are
// returned as *httpflow.TransportError.
func (t *Transport) RoundTrip(ctx context.Context, call httpflow.Call) (httpflow.Result, error) {
	req := t.client.R().SetContext(ctx)
	for _, h := range call.Headers {
		req.Header.Add(h.Name, h.Value)
	}
	if call.Body != "" {
		req.SetBody(call.Body)
	}

	resp, err := req.Execute(call.Verb, call.URL)
	if err != nil {
		return httpflow.Result{}, &httpflow.TransportError{Message: err.Error(), Err: err}
	}

	return httpflow.Result{
		StatusCode:    resp.StatusCode(),
		StatusMessage: statusMessage(resp.Status(), resp.StatusCode()),
		Body:          string(resp.Body()),
	}, nil
}

// statusMessage strips the numeric code from a status line, falling
// back to the standard text for the code.
func statusMessage(status string, code int) string {
	msg := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if msg == "" {
		msg = http.StatusText(code)
	}
	return msg
}

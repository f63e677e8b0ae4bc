package nethttp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kbukum/httpflow"
)

// Transport performs exchanges over net/http. It implements
// httpflow.Transport.
type Transport struct {
	client *http.Client
	cfg    Config
}

// New builds a Transport from the given config.
func New(cfg Config) (*Transport, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rt := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		if rt.TLSClientConfig == nil {
			rt.TLSClientConfig = &tls.Config{}
		}
		rt.TLSClientConfig.InsecureSkipVerify = true
	}
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("nethttp: parse proxy url: %w", err)
		}
		rt.Proxy = http.ProxyURL(proxy)
	}

	return &Transport{
		client: &http.Client{Transport: rt, Timeout: cfg.Timeout},
		cfg:    cfg,
	}, nil
}

// RoundTrip performs one exchange and reads the whole response body.
// Any completed exchange is reported as a Result regardless of status
// code; failures below the HTTP layer are returned as
// *httpflow.TransportError.
func (t *Transport) RoundTrip(ctx context.Context, call httpflow.Call) (httpflow.Result, error) {
	var body io.Reader
	if call.Body != "" {
		body = strings.NewReader(call.Body)
	}

	req, err := http.NewRequestWithContext(ctx, call.Verb, call.URL, body)
	if err != nil {
		return httpflow.Result{}, &httpflow.TransportError{Message: err.Error(), Err: err}
	}

	for k, v := range t.cfg.DefaultHeaders {
		req.Header.Set(k, v)
	}
	// Call headers are added, preserving order and duplicates within a
	// header name.
	for _, h := range call.Headers {
		req.Header.Add(h.Name, h.Value)
	}
	if t.cfg.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.cfg.UserAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return httpflow.Result{}, &httpflow.TransportError{Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return httpflow.Result{}, &httpflow.TransportError{
			Message: fmt.Sprintf("read response body: %v", err),
			Err:     err,
		}
	}

	return httpflow.Result{
		StatusCode:    resp.StatusCode,
		StatusMessage: statusMessage(resp.Status, resp.StatusCode),
		Body:          string(raw),
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

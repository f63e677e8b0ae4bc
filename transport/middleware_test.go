package transport

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kbukum/httpflow"
)

func okTransport(body string) httpflow.Transport {
	return Func(func(context.Context, httpflow.Call) (httpflow.Result, error) {
		return httpflow.Result{StatusCode: 200, StatusMessage: "OK", Body: body}, nil
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(inner httpflow.Transport) httpflow.Transport {
			return Func(func(ctx context.Context, call httpflow.Call) (httpflow.Result, error) {
				order = append(order, name)
				return inner.RoundTrip(ctx, call)
			})
		}
	}

	tr := Chain(mw("a"), mw("b"), mw("c"))(okTransport("hi"))
	_, err := tr.RoundTrip(context.Background(), httpflow.Call{Verb: "GET", URL: "http://x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("expected %v, got %v", want, order)
			break
		}
	}
}

func TestWithLogging_PassThrough(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	tr := WithLogging(log)(okTransport("hi"))
	res, err := tr.RoundTrip(context.Background(), httpflow.Call{Verb: "GET", URL: "http://x/ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 200 || res.Body != "hi" {
		t.Errorf("result should pass through unchanged, got %+v", res)
	}

	out := buf.String()
	if !strings.Contains(out, "dispatching exchange") || !strings.Contains(out, "exchange completed") {
		t.Errorf("expected dispatch and completion lines, got %s", out)
	}
	if !strings.Contains(out, "http://x/ok") {
		t.Errorf("expected url field, got %s", out)
	}
	if !strings.Contains(out, "exchange_id") {
		t.Errorf("expected exchange_id field, got %s", out)
	}
}

func TestWithLogging_Error(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	boom := errors.New("boom")
	tr := WithLogging(log)(Func(func(context.Context, httpflow.Call) (httpflow.Result, error) {
		return httpflow.Result{}, boom
	}))

	_, err := tr.RoundTrip(context.Background(), httpflow.Call{Verb: "GET", URL: "http://x"})
	if !errors.Is(err, boom) {
		t.Fatalf("error should pass through unchanged, got %v", err)
	}
	if !strings.Contains(buf.String(), "exchange failed") {
		t.Errorf("expected a failure line, got %s", buf.String())
	}
}

func TestWithTracing_PassThrough(t *testing.T) {
	// No tracer provider is registered, so spans are no-ops; the
	// middleware must still be transparent.
	tr := WithTracing("test")(okTransport("hi"))
	res, err := tr.RoundTrip(context.Background(), httpflow.Call{Verb: "GET", URL: "http://x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 200 || res.Body != "hi" {
		t.Errorf("result should pass through unchanged, got %+v", res)
	}
}

func TestWithTracing_ErrorPassThrough(t *testing.T) {
	boom := errors.New("boom")
	tr := WithTracing("test")(Func(func(context.Context, httpflow.Call) (httpflow.Result, error) {
		return httpflow.Result{}, boom
	}))
	_, err := tr.RoundTrip(context.Background(), httpflow.Call{Verb: "GET", URL: "http://x"})
	if !errors.Is(err, boom) {
		t.Errorf("error should pass through unchanged, got %v", err)
	}
}

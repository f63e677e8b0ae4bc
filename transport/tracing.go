package transport

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/httpflow"
)

// WithTracing returns a Middleware that opens an OpenTelemetry span
// around each exchange. The span is named after the verb and carries
// the url and, on completion, the status code. The globally registered
// tracer provider is used; without one the spans are no-ops.
func WithTracing(tracerName string) Middleware {
	return func(inner httpflow.Transport) httpflow.Transport {
		return Func(func(ctx context.Context, call httpflow.Call) (httpflow.Result, error) {
			tracer := otel.Tracer(tracerName)
			ctx, span := tracer.Start(ctx, "httpflow."+call.Verb,
				trace.WithSpanKind(trace.SpanKindClient))
			defer span.End()

			span.SetAttributes(
				attribute.String("http.method", call.Verb),
				attribute.String("http.url", call.URL),
			)

			res, err := inner.RoundTrip(ctx, call)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return res, err
			}

			span.SetAttributes(attribute.Int("http.status_code", res.StatusCode))
			return res, nil
		})
	}
}

package transport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbukum/httpflow"
)

// WithLogging returns a Middleware that logs each exchange. Dispatch
// and completion lines share a generated exchange id so interleaved
// completions can be correlated.
func WithLogging(log zerolog.Logger) Middleware {
	return func(inner httpflow.Transport) httpflow.Transport {
		return Func(func(ctx context.Context, call httpflow.Call) (httpflow.Result, error) {
			id := uuid.NewString()
			start := time.Now()

			log.Debug().
				Str("exchange_id", id).
				Str("verb", call.Verb).
				Str("url", call.URL).
				Msg("dispatching exchange")

			res, err := inner.RoundTrip(ctx, call)
			if err != nil {
				log.Error().
					Str("exchange_id", id).
					Dur("duration", time.Since(start)).
					Err(err).
					Msg("exchange failed")
				return res, err
			}

			log.Debug().
				Str("exchange_id", id).
				Dur("duration", time.Since(start)).
				Int("status", res.StatusCode).
				Msg("exchange completed")
			return res, nil
		})
	}
}

package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores id in ctx for WithRequest and Time.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs the duration of an operation when the returned func is deferred:
//
//	defer obs.Time(ctx, "amadeus.FetchOffers")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	l := WithRequest(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("op", name),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			l.Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		l.Info("operation finished", fields...)
	}
}

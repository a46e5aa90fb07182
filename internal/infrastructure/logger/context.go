package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	requestIDKey
	sessionIDKey
	subjectKey
)

// correlation keys in the order they are added to log lines
var correlation = []struct {
	key   ctxKey
	field string
}{
	{requestIDKey, "request_id"},
	{sessionIDKey, "session_id"},
	{subjectKey, "subject"},
}

// WithContext stores logger on ctx
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the stored logger, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID records the request id on ctx and on the returned logger,
// which is also stored on the returned context
func WithRequestID(ctx context.Context, logger *zap.Logger, id string) (context.Context, *zap.Logger) {
	return attach(ctx, logger, requestIDKey, "request_id", id)
}

// WithSessionID is WithRequestID for the shopper session
func WithSessionID(ctx context.Context, logger *zap.Logger, id string) (context.Context, *zap.Logger) {
	return attach(ctx, logger, sessionIDKey, "session_id", id)
}

// WithSubject is WithRequestID for the authenticated admin
func WithSubject(ctx context.Context, logger *zap.Logger, subject string) (context.Context, *zap.Logger) {
	return attach(ctx, logger, subjectKey, "subject", subject)
}

func attach(ctx context.Context, logger *zap.Logger, key ctxKey, field, value string) (context.Context, *zap.Logger) {
	logger = logger.With(zap.String(field, value))
	return WithContext(context.WithValue(ctx, key, value), logger), logger
}

func GetRequestID(ctx context.Context) string { return value(ctx, requestIDKey) }
func GetSessionID(ctx context.Context) string { return value(ctx, sessionIDKey) }
func GetSubject(ctx context.Context) string   { return value(ctx, subjectKey) }

func value(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// ContextFields returns the correlation ids present on ctx as log fields,
// for loggers that are not derived from the request logger
func ContextFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	for _, c := range correlation {
		if v := value(ctx, c.key); v != "" {
			fields = append(fields, zap.String(c.field, v))
		}
	}
	return fields
}

// WithTraceContext adds trace_id and span_id of the active span, if any
func WithTraceContext(ctx context.Context, logger *zap.Logger) *zap.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}

// L is the request logger with trace correlation. The ids are already on
// the stored logger; only the span changes below the HTTP layer.
//
//	logger.L(ctx).Info("order placed", zap.Int64("order_number", n))
func L(ctx context.Context) *zap.Logger {
	return WithTraceContext(ctx, FromContext(ctx))
}

// Package middleware provides the gin middleware of the storefront API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// untracedPaths are load balancer probes
var untracedPaths = map[string]bool{
	"/health":             true,
	"/api/v1/system/ping": true,
}

// Tracing starts a server span per request through otelgin. Span names
// follow "METHOD /route/:param". When disabled it only calls the next handler.
func Tracing(serviceName string, enabled bool, opts ...otelgin.Option) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	opts = append([]otelgin.Option{
		otelgin.WithFilter(func(r *http.Request) bool { return !untracedPaths[r.URL.Path] }),
	}, opts...)
	return otelgin.Middleware(serviceName, opts...)
}

// SpanAttributes tags the request span with the request, session and admin
// ids once the handler chain has run, and marks 4xx responses as errors
// too. It must run inside Tracing.
func SpanAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		var attrs []attribute.KeyValue
		for key, ctxKey := range map[string]string{
			"request_id": RequestIDKey,
			"session_id": SessionIDKey,
			"enduser.id": SubjectKey,
		} {
			if v := c.GetString(ctxKey); v != "" {
				attrs = append(attrs, attribute.String(key, v))
			}
		}
		span.SetAttributes(attrs...)

		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the trace ID lives on the echo context
	TraceIDContextKey = "trace_id"
)

// RequestID attaches a trace ID to every request. An inbound X-Trace-ID
// is honored so callers can correlate across services; otherwise a fresh
// UUID is minted. The ID is echoed back on the response and stored in
// the context for error responses and logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID reads the trace ID set by RequestID, or "" when the
// middleware did not run
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

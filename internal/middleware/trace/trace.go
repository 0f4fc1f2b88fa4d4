// Package trace assigns request IDs and logs request lifecycle events.
package trace

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ContextKey type for context keys.
type ContextKey string

// RequestIDKey is the context key for the request ID.
const RequestIDKey ContextKey = "request_id"

// Middleware handles request tracing and logging.
type Middleware struct {
	extractIP func(*http.Request) string
	total     atomic.Int64
}

// NewMiddleware creates a trace middleware. extractIP may be nil.
func NewMiddleware(extractIP func(*http.Request) string) *Middleware {
	return &Middleware{extractIP: extractIP}
}

// Middleware returns HTTP middleware that tags each request with a UUID and
// logs start and completion with timing.
func (m *Middleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := ""
		if m.extractIP != nil {
			clientIP = m.extractIP(r)
		}

		requestID := uuid.NewString()
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.DebugContext(ctx, "HTTP request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"client_ip", clientIP)

		m.total.Add(1)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)

		level := slog.LevelInfo
		switch {
		case rw.statusCode >= 500:
			level = slog.LevelError
		case rw.statusCode >= 400:
			level = slog.LevelWarn
		}

		slog.Log(ctx, level, "HTTP request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	})
}

// TotalRequests reports how many requests this middleware has seen.
func (m *Middleware) TotalRequests() int64 {
	return m.total.Load()
}

// GetRequestID extracts the request ID from context.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// responseWriter captures the status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

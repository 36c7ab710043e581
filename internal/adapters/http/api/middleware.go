// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/okian/discountmate/pkg/logger"
	"github.com/okian/discountmate/pkg/metrics"
)

// requestIDHeader carries the per-request correlation ID.
const requestIDHeader = "X-Request-ID"

// MetricsMiddleware wraps HTTP handlers to count requests by endpoint,
// method, and final status, and to tag each response with a request ID.
// Recording happens after the handler returns, whatever the outcome.
func MetricsMiddleware(next http.HandlerFunc, endpoint string, m *metrics.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		// Wrap the response writer to capture the status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		status := strconv.Itoa(wrapped.statusCode)
		m.RecordRequest(endpoint, r.Method, status)
		logger.Get().Debug(r.Context(), "request handled",
			logger.String("requestID", id),
			logger.String("endpoint", endpoint),
			logger.String("method", r.Method),
			logger.String("status", status))
	}
}

// LatencyMiddleware observes wall-clock handler duration on the request
// latency histogram. Applied only to the recommend path.
func LatencyMiddleware(next http.HandlerFunc, m *metrics.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			m.RecordRequestDuration(time.Since(start).Seconds())
		}()
		next.ServeHTTP(w, r)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	if err != nil {
		return n, fmt.Errorf("failed to write response: %w", err)
	}
	return n, nil
}

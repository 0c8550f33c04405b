package middleware

import (
	"net/http"
	"time"

	"github.com/and161185/catalog-loadtest/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// MetricsMiddleware records one sample per dispatch, keyed by the matched
// route pattern and the final status, regardless of handler outcome.
func MetricsMiddleware(registry *metrics.Registry) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			srw := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(srw, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			registry.Record(route, r.Method, srw.statusCode, time.Since(start))
		})
	}
}

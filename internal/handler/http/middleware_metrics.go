package http

import (
	"net/http"
	"time"
)

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		h.metrics.ObserveHTTPRequest(routePattern(r), r.Method, mw.statusCode(), time.Since(start))
	})
}

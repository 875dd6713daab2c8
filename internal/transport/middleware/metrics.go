package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records a counter and a latency histogram per route pattern.
// It must be the innermost middleware so the mux fills in r.Pattern on the
// request it sees; unmatched requests are reported as "unmatched".
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}

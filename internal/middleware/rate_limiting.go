package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cameratoon/scheduler/internal/metrics"
	"github.com/cameratoon/scheduler/pkg"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqIp, err := pkg.ReadUserIP(r)
			if err != nil {
				reqIp = r.RemoteAddr
			}

			allowed, retryAfter, err := rateLimiter.Allow(r.Context(), routerName+"::"+reqIp)
			if err != nil {
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if allowed {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterFailedLogins.Inc()
			}

			pkg.WriteError(
				w,
				fmt.Sprintf("retry after %.0f seconds", retryAfter.Seconds()),
				http.StatusTooManyRequests,
			)
		})
	}
}

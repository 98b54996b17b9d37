package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// RateLimit rejects requests from clients that exhausted their bucket.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			allowed, retryAfter := limiter.Allow(ip)
			if !allowed {
				zerolog.Ctx(r.Context()).Warn().
					Str("client_ip", ip).
					Dur("retry_after", retryAfter).
					Msg("rate limit exceeded")

				seconds := int(math.Ceil(retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

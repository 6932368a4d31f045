package api

import (
	"net/http"
	"sync"

	echo "github.com/labstack/echo/v5"
	"golang.org/x/time/rate"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// rateLimiters holds one token bucket per (route, caller) pair. Buckets are
// never evicted; the caller population is bounded by the auth proxy.
type rateLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

func newRateLimiters() *rateLimiters {
	return &rateLimiters{buckets: make(map[string]*rate.Limiter)}
}

func (r *rateLimiters) get(key string, perMinute int) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.buckets[key]; ok {
		return l
	}
	l := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	r.buckets[key] = l
	return l
}

// rateLimit enforces a per-caller sliding-window limit for one route. A
// violation is never retried server-side; the caller sees 429.
func (s *Server) rateLimit(route string, perMinute int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			key := route + "|" + extractAuthor(c)
			if !s.limits.get(key, perMinute).Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

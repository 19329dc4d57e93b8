package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Limiter is the interface the rate-limit middleware needs from the Redis
// fixed-window counter.
type Limiter interface {
	Allow(ctx context.Context, scope, caller string) (bool, error)
}

// RateLimit throttles the anonymous endpoints per client IP. A nil limiter
// disables throttling, and a failing Redis fails open: unauthenticated
// voting should degrade to the original unthrottled behavior, not to an
// outage.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			ok, err := limiter.Allow(c.Request().Context(), c.Path(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("path", c.Path()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
